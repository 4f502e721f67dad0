package threefa

import (
	"github.com/coregx/refa/state"
)

// LookAhead returns the zero-width assertion that a can match starting at
// the current position.
//
// The assertion consumes nothing: StepActive always dies, so Enter must be
// followed immediately by Exit. Exit enters a and moves its evolution into
// the Post phase, where the remaining input drives a's Active and Post
// sets; the assertion holds once any member of the Post set accepts.
//
//	Pre    = a.Pre
//	Active = a.Pre
//	Post   = (Set of a.Active, Set of a.Post)
func LookAhead(a ThreeFA) ThreeFA {
	return lookAheadFA{a: a}
}

type lookAheadFA struct {
	a ThreeFA
}

func (f lookAheadFA) Initial() state.Value {
	return f.a.Initial()
}

func (f lookAheadFA) StepPre(s state.Value, c byte) (state.Value, bool) {
	return f.a.StepPre(s, c)
}

func (f lookAheadFA) StepActive(_ state.Value, _ byte) (state.Value, bool) {
	return state.Value{}, false
}

func (f lookAheadFA) StepPost(s state.Value, c byte) (state.Value, bool) {
	var actives []state.Value
	for _, x := range s.First().Elems() {
		if t, ok := f.a.StepActive(x, c); ok {
			actives = append(actives, t)
		}
	}
	activeSet := state.NewSet(actives...)

	var posts []state.Value
	for _, x := range s.Second().Elems() {
		if t, ok := f.a.StepPost(x, c); ok {
			posts = append(posts, t)
		}
	}
	for _, x := range activeSet.Elems() {
		if t, ok := f.a.Exit(x); ok {
			posts = append(posts, t)
		}
	}
	postSet := state.NewSet(posts...)

	if activeSet.Len() == 0 && postSet.Len() == 0 {
		return state.Value{}, false
	}
	return state.Pair(activeSet, postSet), true
}

func (f lookAheadFA) Enter(s state.Value) (state.Value, bool) {
	return s, true
}

func (f lookAheadFA) Exit(s state.Value) (state.Value, bool) {
	act, ok := f.a.Enter(s)
	if !ok {
		return state.Value{}, false
	}
	posts := state.NewSet()
	if post, ok := f.a.Exit(act); ok {
		posts = posts.With(post)
	}
	return state.Pair(state.NewSet(act), posts), true
}

func (f lookAheadFA) Accept(s state.Value) bool {
	for _, x := range s.Second().Elems() {
		if f.a.Accept(x) {
			return true
		}
	}
	return false
}

// LookBehind returns the zero-width assertion that a can match ending at
// the current position.
//
// The dual of LookAhead: a's Pre and Active sets evolve from position 0
// through the composite's Pre phase, spawning a new candidate match start
// at every position. At the boundary the accumulated Active states are
// frozen; Exit resolves each through a.Exit and the assertion holds when
// any survives to accept.
//
//	Pre    = (Set of a.Pre, Set of a.Active)
//	Active = (Set of a.Pre, Set of a.Active)
//	Post   = Set of a.Post
func LookBehind(a ThreeFA) ThreeFA {
	return lookBehindFA{a: a}
}

type lookBehindFA struct {
	a ThreeFA
}

func (f lookBehindFA) Initial() state.Value {
	pres := state.NewSet(f.a.Initial())
	actives := state.NewSet()
	if act, ok := f.a.Enter(f.a.Initial()); ok {
		actives = actives.With(act)
	}
	return state.Pair(pres, actives)
}

func (f lookBehindFA) StepPre(s state.Value, c byte) (state.Value, bool) {
	var pres []state.Value
	for _, x := range s.First().Elems() {
		if t, ok := f.a.StepPre(x, c); ok {
			pres = append(pres, t)
		}
	}
	preSet := state.NewSet(pres...)

	var actives []state.Value
	for _, x := range s.Second().Elems() {
		if t, ok := f.a.StepActive(x, c); ok {
			actives = append(actives, t)
		}
	}
	for _, x := range preSet.Elems() {
		if t, ok := f.a.Enter(x); ok {
			actives = append(actives, t)
		}
	}
	activeSet := state.NewSet(actives...)

	if preSet.Len() == 0 && activeSet.Len() == 0 {
		return state.Value{}, false
	}
	return state.Pair(preSet, activeSet), true
}

func (f lookBehindFA) StepActive(_ state.Value, _ byte) (state.Value, bool) {
	return state.Value{}, false
}

func (f lookBehindFA) StepPost(s state.Value, c byte) (state.Value, bool) {
	var next []state.Value
	for _, x := range s.Elems() {
		if t, ok := f.a.StepPost(x, c); ok {
			next = append(next, t)
		}
	}
	if len(next) == 0 {
		return state.Value{}, false
	}
	return state.NewSet(next...), true
}

func (f lookBehindFA) Enter(s state.Value) (state.Value, bool) {
	return s, true
}

func (f lookBehindFA) Exit(s state.Value) (state.Value, bool) {
	var out []state.Value
	for _, x := range s.Second().Elems() {
		if t, ok := f.a.Exit(x); ok {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return state.Value{}, false
	}
	return state.NewSet(out...), true
}

func (f lookBehindFA) Accept(s state.Value) bool {
	for _, x := range s.Elems() {
		if f.a.Accept(x) {
			return true
		}
	}
	return false
}
