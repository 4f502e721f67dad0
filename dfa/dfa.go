// Package dfa provides deterministic finite automata as composable values.
//
// A DFA is not a transition table but a behaviour: any value implementing
// the three-method DFA interface. Combinators (Not, And, Or, Iff, Concat,
// Plus) build composite automata whose states are derived structurally from
// their children's states, so the language operations of the regular-set
// algebra hold by construction.
//
// Transitions are total via the dead-branch convention: a false second
// return from Next means no extension of the input can ever be accepted
// from that state. It never means "accept everything".
package dfa

import (
	"github.com/coregx/refa/state"
)

// DFA is a deterministic finite automaton over bytes.
//
// Implementations must be pure: Accept is a predicate with no side effects,
// and Next is deterministic. Once Next reports a dead branch for a state,
// every continuation of that state is dead as well.
type DFA interface {
	// Initial returns the start state.
	Initial() state.Value

	// Next advances s on input b. A false return means the branch is dead:
	// no suffix can produce an accepting run.
	Next(s state.Value, b byte) (state.Value, bool)

	// Accept reports whether s is an accepting state.
	Accept(s state.Value) bool
}
