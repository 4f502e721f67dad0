package threefa

import (
	"github.com/coregx/refa/state"
)

// Plus returns one-or-more repetition of a.
//
// Phase shapes:
//
//	Pre    = a.Pre
//	Active = (Some a.Pre | None, Set of (Set of a.Post, a.Active))
//	Post   = Set of (Set of a.Post)
//
// Each element of the active set is an iteration trace: the Post states of
// the repetitions completed so far, plus the Active state of the one in
// progress. The pre component keeps tracking the left boundary so a new
// repetition can begin whenever the current one can exit. On exit the
// in-progress iteration is finalised into its trace's Post set. A trace
// accepts when every completed repetition accepts.
func Plus(a ThreeFA) ThreeFA {
	return plusFA{a: a}
}

type plusFA struct {
	a ThreeFA
}

func (f plusFA) Initial() state.Value {
	return f.a.Initial()
}

func (f plusFA) StepPre(s state.Value, c byte) (state.Value, bool) {
	return f.a.StepPre(s, c)
}

func (f plusFA) StepActive(s state.Value, c byte) (state.Value, bool) {
	pre := s.First()
	if pre.IsSome() {
		if p, ok := f.a.StepPre(pre.Inner(), c); ok {
			pre = state.Some(p)
		} else {
			pre = state.None()
		}
	}

	var traces []state.Value
	for _, tr := range s.Second().Elems() {
		posts, ok := f.stepPostSet(tr.First(), c)
		if !ok {
			continue
		}
		act, ok := f.a.StepActive(tr.Second(), c)
		if !ok {
			continue
		}
		traces = append(traces, state.Pair(posts, act))
		// The advanced iteration may also end here, with a fresh one
		// entering from the tracked pre state.
		if pre.IsSome() {
			if post, ok := f.a.Exit(act); ok {
				if next, ok := f.a.Enter(pre.Inner()); ok {
					traces = append(traces, state.Pair(posts.With(post), next))
				}
			}
		}
	}
	set := state.NewSet(traces...)

	if pre.IsNone() && set.Len() == 0 {
		return state.Value{}, false
	}
	return state.Pair(pre, set), true
}

func (f plusFA) StepPost(s state.Value, c byte) (state.Value, bool) {
	var next []state.Value
	for _, posts := range s.Elems() {
		if advanced, ok := f.stepPostSet(posts, c); ok {
			next = append(next, advanced)
		}
	}
	if len(next) == 0 {
		return state.Value{}, false
	}
	return state.NewSet(next...), true
}

func (f plusFA) Enter(s state.Value) (state.Value, bool) {
	act, ok := f.a.Enter(s)
	if !ok {
		return state.Value{}, false
	}
	return state.Pair(state.Some(s), state.NewSet(state.Pair(state.NewSet(), act))), true
}

func (f plusFA) Exit(s state.Value) (state.Value, bool) {
	var out []state.Value
	for _, tr := range s.Second().Elems() {
		if post, ok := f.a.Exit(tr.Second()); ok {
			out = append(out, tr.First().With(post))
		}
	}
	if len(out) == 0 {
		return state.Value{}, false
	}
	return state.NewSet(out...), true
}

func (f plusFA) Accept(s state.Value) bool {
	for _, posts := range s.Elems() {
		all := true
		for _, p := range posts.Elems() {
			if !f.a.Accept(p) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// stepPostSet advances every completed-iteration Post state of one trace.
// The whole trace dies if any member dies: every completed repetition must
// remain consistent with the input to its right.
func (f plusFA) stepPostSet(posts state.Value, c byte) (state.Value, bool) {
	var next []state.Value
	for _, p := range posts.Elems() {
		t, ok := f.a.StepPost(p, c)
		if !ok {
			return state.Value{}, false
		}
		next = append(next, t)
	}
	return state.NewSet(next...), true
}
