package threefa

import (
	"github.com/coregx/refa/dfa"
	"github.com/coregx/refa/state"
)

// FromDFA lifts a DFA into a ThreeFA matching exactly the DFA's language.
// The Pre and Post phases are unit: the lifted pattern places no constraint
// on the input outside its own match. Enter starts the DFA; Exit is
// permissible exactly when the DFA is in an accepting state.
func FromDFA(d dfa.DFA) ThreeFA {
	return fromDFA{d: d}
}

type fromDFA struct {
	d dfa.DFA
}

func (f fromDFA) Initial() state.Value {
	return state.Unit()
}

func (f fromDFA) StepPre(_ state.Value, _ byte) (state.Value, bool) {
	return state.Unit(), true
}

func (f fromDFA) StepActive(s state.Value, b byte) (state.Value, bool) {
	return f.d.Next(s, b)
}

func (f fromDFA) StepPost(_ state.Value, _ byte) (state.Value, bool) {
	return state.Unit(), true
}

func (f fromDFA) Enter(_ state.Value) (state.Value, bool) {
	return f.d.Initial(), true
}

func (f fromDFA) Exit(s state.Value) (state.Value, bool) {
	if f.d.Accept(s) {
		return state.Unit(), true
	}
	return state.Value{}, false
}

func (f fromDFA) Accept(_ state.Value) bool {
	return true
}
