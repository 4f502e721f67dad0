package dfa

import (
	"github.com/coregx/refa/state"
)

// Not returns the DFA accepting the complement of a's language.
//
// The state wraps a's state in an option: once a dies, the complement keeps
// running in the None state and accepts everything from there. The option
// layer (rather than treating the composite as dead) keeps the complement
// sound under further composition.
func Not(a DFA) DFA {
	return notDFA{a: a}
}

type notDFA struct {
	a DFA
}

func (d notDFA) Initial() state.Value {
	return state.Some(d.a.Initial())
}

func (d notDFA) Next(s state.Value, b byte) (state.Value, bool) {
	if s.IsSome() {
		if t, ok := d.a.Next(s.Inner(), b); ok {
			return state.Some(t), true
		}
	}
	return state.None(), true
}

func (d notDFA) Accept(s state.Value) bool {
	return !(s.IsSome() && d.a.Accept(s.Inner()))
}

// And returns the DFA accepting the intersection of the two languages.
func And(a, b DFA) DFA {
	return andDFA{a: a, b: b}
}

type andDFA struct {
	a, b DFA
}

func (d andDFA) Initial() state.Value {
	return state.Pair(d.a.Initial(), d.b.Initial())
}

func (d andDFA) Next(s state.Value, c byte) (state.Value, bool) {
	sa, ok := d.a.Next(s.First(), c)
	if !ok {
		return state.Value{}, false
	}
	sb, ok := d.b.Next(s.Second(), c)
	if !ok {
		return state.Value{}, false
	}
	return state.Pair(sa, sb), true
}

func (d andDFA) Accept(s state.Value) bool {
	return d.a.Accept(s.First()) && d.b.Accept(s.Second())
}

// Or returns the DFA accepting the union of the two languages. Each side
// runs independently in an option; the composite dies only when both sides
// have died.
func Or(a, b DFA) DFA {
	return orDFA{a: a, b: b}
}

type orDFA struct {
	a, b DFA
}

func (d orDFA) Initial() state.Value {
	return state.Pair(state.Some(d.a.Initial()), state.Some(d.b.Initial()))
}

func (d orDFA) Next(s state.Value, c byte) (state.Value, bool) {
	sa := stepOpt(d.a, s.First(), c)
	sb := stepOpt(d.b, s.Second(), c)
	if sa.IsNone() && sb.IsNone() {
		return state.Value{}, false
	}
	return state.Pair(sa, sb), true
}

func (d orDFA) Accept(s state.Value) bool {
	return acceptOpt(d.a, s.First()) || acceptOpt(d.b, s.Second())
}

// Iff returns the DFA accepting strings on which a and b agree: the union
// of the intersection of both languages and the complement of their union.
//
// Iff states never die. Equivalence checking is built as Not(Iff(a, b)),
// and a dead branch on one side is itself an observation the product must
// keep exploring.
func Iff(a, b DFA) DFA {
	return iffDFA{a: a, b: b}
}

type iffDFA struct {
	a, b DFA
}

func (d iffDFA) Initial() state.Value {
	return state.Pair(state.Some(d.a.Initial()), state.Some(d.b.Initial()))
}

func (d iffDFA) Next(s state.Value, c byte) (state.Value, bool) {
	return state.Pair(stepOpt(d.a, s.First(), c), stepOpt(d.b, s.Second(), c)), true
}

func (d iffDFA) Accept(s state.Value) bool {
	return acceptOpt(d.a, s.First()) == acceptOpt(d.b, s.Second())
}

// stepOpt advances an option-wrapped child state, folding a dead branch
// into None.
func stepOpt(d DFA, s state.Value, c byte) state.Value {
	if s.IsSome() {
		if t, ok := d.Next(s.Inner(), c); ok {
			return state.Some(t)
		}
	}
	return state.None()
}

// acceptOpt reports acceptance of an option-wrapped child state; a dead
// branch accepts nothing.
func acceptOpt(d DFA, s state.Value) bool {
	return s.IsSome() && d.Accept(s.Inner())
}
