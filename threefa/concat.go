package threefa

import (
	"github.com/coregx/refa/state"
)

// Concat returns the sequential composition: a's match immediately followed
// by b's match.
//
// Phase shapes:
//
//	Pre    = (a.Pre, b.Pre)
//	Active = (Some (a.Active, b.Pre) | None, Set of (a.Post, b.Active))
//	Post   = Set of (a.Post, b.Post)
//
// While the composite is active there is one live head (a still matching,
// b still waiting) plus a set of continuations where a has finished and b
// is matching. Every step advances the head and the set, and additionally
// tries to split at the current position by exiting a and entering b; the
// set being canonical merges splits that converge.
func Concat(a, b ThreeFA) ThreeFA {
	return concatFA{a: a, b: b}
}

type concatFA struct {
	a, b ThreeFA
}

func (f concatFA) Initial() state.Value {
	return state.Pair(f.a.Initial(), f.b.Initial())
}

func (f concatFA) StepPre(s state.Value, c byte) (state.Value, bool) {
	return bothStep(f.a.StepPre, f.b.StepPre, s, c)
}

func (f concatFA) StepActive(s state.Value, c byte) (state.Value, bool) {
	head := s.First()
	if head.IsSome() {
		aAct, okA := f.a.StepActive(head.Inner().First(), c)
		bPre, okB := f.b.StepPre(head.Inner().Second(), c)
		if okA && okB {
			head = state.Some(state.Pair(aAct, bPre))
		} else {
			head = state.None()
		}
	}

	var tail []state.Value
	for _, p := range s.Second().Elems() {
		aPost, okA := f.a.StepPost(p.First(), c)
		bAct, okB := f.b.StepActive(p.Second(), c)
		if okA && okB {
			tail = append(tail, state.Pair(aPost, bAct))
		}
	}
	if head.IsSome() {
		if aPost, ok := f.a.Exit(head.Inner().First()); ok {
			if bAct, ok := f.b.Enter(head.Inner().Second()); ok {
				tail = append(tail, state.Pair(aPost, bAct))
			}
		}
	}
	set := state.NewSet(tail...)

	if head.IsNone() && set.Len() == 0 {
		return state.Value{}, false
	}
	return state.Pair(head, set), true
}

func (f concatFA) StepPost(s state.Value, c byte) (state.Value, bool) {
	var next []state.Value
	for _, p := range s.Elems() {
		aPost, okA := f.a.StepPost(p.First(), c)
		bPost, okB := f.b.StepPost(p.Second(), c)
		if okA && okB {
			next = append(next, state.Pair(aPost, bPost))
		}
	}
	if len(next) == 0 {
		return state.Value{}, false
	}
	return state.NewSet(next...), true
}

func (f concatFA) Enter(s state.Value) (state.Value, bool) {
	aAct, ok := f.a.Enter(s.First())
	if !ok {
		return state.Value{}, false
	}
	bPre := s.Second()
	tail := state.NewSet()
	if aPost, ok := f.a.Exit(aAct); ok {
		if bAct, ok := f.b.Enter(bPre); ok {
			tail = tail.With(state.Pair(aPost, bAct))
		}
	}
	return state.Pair(state.Some(state.Pair(aAct, bPre)), tail), true
}

func (f concatFA) Exit(s state.Value) (state.Value, bool) {
	var out []state.Value
	for _, p := range s.Second().Elems() {
		if bPost, ok := f.b.Exit(p.Second()); ok {
			out = append(out, state.Pair(p.First(), bPost))
		}
	}
	if len(out) == 0 {
		return state.Value{}, false
	}
	return state.NewSet(out...), true
}

func (f concatFA) Accept(s state.Value) bool {
	for _, p := range s.Elems() {
		if f.a.Accept(p.First()) && f.b.Accept(p.Second()) {
			return true
		}
	}
	return false
}
