package dfa

import (
	"github.com/coregx/refa/state"
)

// Concat returns the DFA accepting the concatenation of the two languages.
//
// The state is the pair of a's (optional) state and the set of b-states
// spawned so far: whenever a is accepting, the current position is a
// candidate split point, so b's initial state joins the set. This is
// powerset determinization done inline; the set is canonical, so converged
// split points merge.
func Concat(a, b DFA) DFA {
	return concatDFA{a: a, b: b}
}

type concatDFA struct {
	a, b DFA
}

func (d concatDFA) Initial() state.Value {
	a0 := d.a.Initial()
	bs := state.NewSet()
	if d.a.Accept(a0) {
		bs = bs.With(d.b.Initial())
	}
	return state.Pair(state.Some(a0), bs)
}

func (d concatDFA) Next(s state.Value, c byte) (state.Value, bool) {
	sa := stepOpt(d.a, s.First(), c)

	var next []state.Value
	for _, bs := range s.Second().Elems() {
		if t, ok := d.b.Next(bs, c); ok {
			next = append(next, t)
		}
	}
	if sa.IsSome() && d.a.Accept(sa.Inner()) {
		next = append(next, d.b.Initial())
	}
	set := state.NewSet(next...)

	if sa.IsNone() && set.Len() == 0 {
		return state.Value{}, false
	}
	return state.Pair(sa, set), true
}

func (d concatDFA) Accept(s state.Value) bool {
	for _, bs := range s.Second().Elems() {
		if d.b.Accept(bs) {
			return true
		}
	}
	return false
}
