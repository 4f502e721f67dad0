package threefa

import (
	"github.com/coregx/refa/dfa"
	"github.com/coregx/refa/state"
)

// ToDFA determinizes a ThreeFA into a DFA by carrying the three phases
// simultaneously:
//
//	State = (Some Pre | None, Set of Active, Set of Post)
//
// The pre component tracks "the match has not started yet"; the active set
// holds every currently plausible match start; the post set holds every
// currently plausible match end. Each transition advances all three and
// additionally enters from the pre state and exits every new active state,
// so matches may begin and end at any position. The DFA accepts once any
// post state accepts; lookaheads inside the pattern keep evolving through
// StepPost, so acceptance can also be withdrawn by later input.
//
// The resulting language is that of inputs containing a match of a; anchor
// the pattern with Start/End to constrain its position.
func ToDFA(a ThreeFA) dfa.DFA {
	return toDFA{a: a}
}

type toDFA struct {
	a ThreeFA
}

func (d toDFA) Initial() state.Value {
	pre := d.a.Initial()
	actives := state.NewSet()
	posts := state.NewSet()
	if act, ok := d.a.Enter(pre); ok {
		actives = actives.With(act)
		if post, ok := d.a.Exit(act); ok {
			posts = posts.With(post)
		}
	}
	return state.Pair(state.Some(pre), state.Pair(actives, posts))
}

func (d toDFA) Next(s state.Value, c byte) (state.Value, bool) {
	pre := s.First()
	if pre.IsSome() {
		if t, ok := d.a.StepPre(pre.Inner(), c); ok {
			pre = state.Some(t)
		} else {
			pre = state.None()
		}
	}

	var actives []state.Value
	for _, x := range s.Second().First().Elems() {
		if t, ok := d.a.StepActive(x, c); ok {
			actives = append(actives, t)
		}
	}
	if pre.IsSome() {
		if t, ok := d.a.Enter(pre.Inner()); ok {
			actives = append(actives, t)
		}
	}
	activeSet := state.NewSet(actives...)

	var posts []state.Value
	for _, x := range s.Second().Second().Elems() {
		if t, ok := d.a.StepPost(x, c); ok {
			posts = append(posts, t)
		}
	}
	for _, x := range activeSet.Elems() {
		if t, ok := d.a.Exit(x); ok {
			posts = append(posts, t)
		}
	}
	postSet := state.NewSet(posts...)

	if pre.IsNone() && activeSet.Len() == 0 && postSet.Len() == 0 {
		return state.Value{}, false
	}
	return state.Pair(pre, state.Pair(activeSet, postSet)), true
}

func (d toDFA) Accept(s state.Value) bool {
	for _, x := range s.Second().Second().Elems() {
		if d.a.Accept(x) {
			return true
		}
	}
	return false
}
