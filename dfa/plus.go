package dfa

import (
	"github.com/coregx/refa/state"
)

// Plus returns the DFA accepting one or more repetitions of a's language.
//
// The state is the set of live a-states, one per way of segmenting the
// input so far. Whenever the set is accepting, the next byte may begin a
// fresh repetition, so a's initial state joins the set.
func Plus(a DFA) DFA {
	return plusDFA{a: a}
}

type plusDFA struct {
	a DFA
}

func (d plusDFA) Initial() state.Value {
	return state.NewSet(d.a.Initial())
}

func (d plusDFA) Next(s state.Value, c byte) (state.Value, bool) {
	var next []state.Value
	for _, as := range s.Elems() {
		if t, ok := d.a.Next(as, c); ok {
			next = append(next, t)
		}
	}
	set := state.NewSet(next...)
	if d.Accept(set) {
		set = set.With(d.a.Initial())
	}
	if set.Len() == 0 {
		return state.Value{}, false
	}
	return set, true
}

func (d plusDFA) Accept(s state.Value) bool {
	for _, as := range s.Elems() {
		if d.a.Accept(as) {
			return true
		}
	}
	return false
}
