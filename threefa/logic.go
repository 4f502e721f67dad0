package threefa

import (
	"github.com/coregx/refa/state"
)

// Not returns the complement automaton. Each phase wraps the child's state
// in an option that absorbs dead branches, and acceptance is negated: a
// child that died before reaching an accepting Post state is exactly what
// the complement accepts.
func Not(a ThreeFA) ThreeFA {
	return notFA{a: a}
}

type notFA struct {
	a ThreeFA
}

func (f notFA) Initial() state.Value {
	return state.Some(f.a.Initial())
}

func (f notFA) StepPre(s state.Value, b byte) (state.Value, bool) {
	return stepOptPhase(f.a.StepPre, s, b), true
}

func (f notFA) StepActive(s state.Value, b byte) (state.Value, bool) {
	return stepOptPhase(f.a.StepActive, s, b), true
}

func (f notFA) StepPost(s state.Value, b byte) (state.Value, bool) {
	return stepOptPhase(f.a.StepPost, s, b), true
}

func (f notFA) Enter(s state.Value) (state.Value, bool) {
	return crossOpt(f.a.Enter, s), true
}

func (f notFA) Exit(s state.Value) (state.Value, bool) {
	return crossOpt(f.a.Exit, s), true
}

func (f notFA) Accept(s state.Value) bool {
	return !(s.IsSome() && f.a.Accept(s.Inner()))
}

// And returns the intersection automaton: a pointwise product in every
// phase, dead as soon as either side is dead.
func And(a, b ThreeFA) ThreeFA {
	return andFA{a: a, b: b}
}

type andFA struct {
	a, b ThreeFA
}

func (f andFA) Initial() state.Value {
	return state.Pair(f.a.Initial(), f.b.Initial())
}

func (f andFA) StepPre(s state.Value, c byte) (state.Value, bool) {
	return bothStep(f.a.StepPre, f.b.StepPre, s, c)
}

func (f andFA) StepActive(s state.Value, c byte) (state.Value, bool) {
	return bothStep(f.a.StepActive, f.b.StepActive, s, c)
}

func (f andFA) StepPost(s state.Value, c byte) (state.Value, bool) {
	return bothStep(f.a.StepPost, f.b.StepPost, s, c)
}

func (f andFA) Enter(s state.Value) (state.Value, bool) {
	return bothCross(f.a.Enter, f.b.Enter, s)
}

func (f andFA) Exit(s state.Value) (state.Value, bool) {
	return bothCross(f.a.Exit, f.b.Exit, s)
}

func (f andFA) Accept(s state.Value) bool {
	return f.a.Accept(s.First()) && f.b.Accept(s.Second())
}

// Or returns the union automaton: each side runs independently in an
// option, and the composite survives while either side does.
func Or(a, b ThreeFA) ThreeFA {
	return orFA{a: a, b: b}
}

type orFA struct {
	a, b ThreeFA
}

func (f orFA) Initial() state.Value {
	return state.Pair(state.Some(f.a.Initial()), state.Some(f.b.Initial()))
}

func (f orFA) StepPre(s state.Value, c byte) (state.Value, bool) {
	return eitherStep(f.a.StepPre, f.b.StepPre, s, c)
}

func (f orFA) StepActive(s state.Value, c byte) (state.Value, bool) {
	return eitherStep(f.a.StepActive, f.b.StepActive, s, c)
}

func (f orFA) StepPost(s state.Value, c byte) (state.Value, bool) {
	return eitherStep(f.a.StepPost, f.b.StepPost, s, c)
}

func (f orFA) Enter(s state.Value) (state.Value, bool) {
	return eitherCross(f.a.Enter, f.b.Enter, s)
}

func (f orFA) Exit(s state.Value) (state.Value, bool) {
	return eitherCross(f.a.Exit, f.b.Exit, s)
}

func (f orFA) Accept(s state.Value) bool {
	return (s.First().IsSome() && f.a.Accept(s.First().Inner())) ||
		(s.Second().IsSome() && f.b.Accept(s.Second().Inner()))
}

type stepFunc func(state.Value, byte) (state.Value, bool)

type crossFunc func(state.Value) (state.Value, bool)

// stepOptPhase advances an option-wrapped phase state, folding dead into
// None.
func stepOptPhase(step stepFunc, s state.Value, b byte) state.Value {
	if s.IsSome() {
		if t, ok := step(s.Inner(), b); ok {
			return state.Some(t)
		}
	}
	return state.None()
}

// crossOpt applies a boundary transition under an option wrapper.
func crossOpt(cross crossFunc, s state.Value) state.Value {
	if s.IsSome() {
		if t, ok := cross(s.Inner()); ok {
			return state.Some(t)
		}
	}
	return state.None()
}

// bothStep advances a pair state, dead when either side is dead.
func bothStep(stepA, stepB stepFunc, s state.Value, c byte) (state.Value, bool) {
	sa, ok := stepA(s.First(), c)
	if !ok {
		return state.Value{}, false
	}
	sb, ok := stepB(s.Second(), c)
	if !ok {
		return state.Value{}, false
	}
	return state.Pair(sa, sb), true
}

// bothCross applies a boundary transition on a pair state, dead when either
// side refuses the boundary.
func bothCross(crossA, crossB crossFunc, s state.Value) (state.Value, bool) {
	sa, ok := crossA(s.First())
	if !ok {
		return state.Value{}, false
	}
	sb, ok := crossB(s.Second())
	if !ok {
		return state.Value{}, false
	}
	return state.Pair(sa, sb), true
}

// eitherStep advances an option-pair state, dead only when both sides are
// dead.
func eitherStep(stepA, stepB stepFunc, s state.Value, c byte) (state.Value, bool) {
	sa := stepOptPhase(stepA, s.First(), c)
	sb := stepOptPhase(stepB, s.Second(), c)
	if sa.IsNone() && sb.IsNone() {
		return state.Value{}, false
	}
	return state.Pair(sa, sb), true
}

// eitherCross applies a boundary transition on an option-pair state, dead
// only when both sides refuse.
func eitherCross(crossA, crossB crossFunc, s state.Value) (state.Value, bool) {
	sa := crossOpt(crossA, s.First())
	sb := crossOpt(crossB, s.Second())
	if sa.IsNone() && sb.IsNone() {
		return state.Value{}, false
	}
	return state.Pair(sa, sb), true
}
