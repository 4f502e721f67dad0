// Package threefa provides three-phase finite automata: the composition
// layer that makes anchors and lookaround behave like ordinary regular
// operators.
//
// A ThreeFA models a sub-pattern relative to a position in a larger input.
// It runs in three phases with separate state spaces: Pre while the scan is
// still left of the sub-pattern's match, Active while inside it, and Post
// once past its right edge. Enter and Exit are the non-consuming
// transitions across the two boundaries. A sub-pattern can therefore
// constrain what happens before it (lookbehind, ^), after it (lookahead,
// $), and inside it, and those constraints survive composition.
//
// All phase states are state.Value and all transitions use the same
// dead-branch convention as package dfa: a false return drops the branch.
// ToDFA collapses a ThreeFA back into a dfa.DFA by tracking the three
// phases simultaneously as sets.
package threefa

import (
	"github.com/coregx/refa/state"
)

// ThreeFA is a three-phase finite automaton over bytes.
//
// The Pre, Active and Post phases have distinct state spaces even though
// they share the state.Value representation; callers must only feed a
// phase's states to that phase's step function.
type ThreeFA interface {
	// Initial returns the starting Pre state.
	Initial() state.Value

	// StepPre advances a Pre state: the scan is still left of the match.
	StepPre(s state.Value, b byte) (state.Value, bool)

	// StepActive advances an Active state: the scan is inside the match.
	StepActive(s state.Value, b byte) (state.Value, bool)

	// StepPost advances a Post state: the scan is past the match.
	StepPost(s state.Value, b byte) (state.Value, bool)

	// Enter crosses the match's left boundary without consuming input.
	// A false return means the boundary is not permissible here.
	Enter(s state.Value) (state.Value, bool)

	// Exit crosses the match's right boundary without consuming input.
	Exit(s state.Value) (state.Value, bool)

	// Accept reports whether a Post state is accepting.
	Accept(s state.Value) bool
}
