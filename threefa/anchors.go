package threefa

import (
	"github.com/coregx/refa/state"
)

// Start returns the automaton anchoring its match to position 0: no input
// byte may be consumed in the Pre phase.
func Start() ThreeFA {
	return startFA{}
}

type startFA struct{}

func (startFA) Initial() state.Value {
	return state.Unit()
}

func (startFA) StepPre(_ state.Value, _ byte) (state.Value, bool) {
	return state.Value{}, false
}

func (startFA) StepActive(_ state.Value, _ byte) (state.Value, bool) {
	return state.Value{}, false
}

func (startFA) StepPost(_ state.Value, _ byte) (state.Value, bool) {
	return state.Unit(), true
}

func (startFA) Enter(_ state.Value) (state.Value, bool) {
	return state.Unit(), true
}

func (startFA) Exit(_ state.Value) (state.Value, bool) {
	return state.Unit(), true
}

func (startFA) Accept(_ state.Value) bool {
	return true
}

// End returns the automaton anchoring its match to the final position: no
// input byte may be consumed at or after the boundary.
func End() ThreeFA {
	return endFA{}
}

type endFA struct{}

func (endFA) Initial() state.Value {
	return state.Unit()
}

func (endFA) StepPre(_ state.Value, _ byte) (state.Value, bool) {
	return state.Unit(), true
}

func (endFA) StepActive(_ state.Value, _ byte) (state.Value, bool) {
	return state.Value{}, false
}

func (endFA) StepPost(_ state.Value, _ byte) (state.Value, bool) {
	return state.Value{}, false
}

func (endFA) Enter(_ state.Value) (state.Value, bool) {
	return state.Unit(), true
}

func (endFA) Exit(_ state.Value) (state.Value, bool) {
	return state.Unit(), true
}

func (endFA) Accept(_ state.Value) bool {
	return true
}
