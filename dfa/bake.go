package dfa

import (
	"github.com/coregx/refa/internal/conv"
	"github.com/coregx/refa/state"
)

// StateID identifies a state of a baked DFA. State 0 is the initial state.
type StateID uint32

// Baked is a DFA flattened into an explicit transition table.
//
// Baking amortises the cost of repeatedly constructing combinator states:
// every reachable state of the source automaton is assigned a dense integer
// ID and its transitions over the chosen alphabet are recorded once. A
// transition absent from the table is a rejection. Once built, the table is
// immutable.
//
// Baked itself implements DFA (with Index states), so a baked automaton can
// be matched, compared, baked again, or converted to a regex like any other.
type Baked struct {
	states []bakedState
}

type bakedState struct {
	accept bool
	trans  map[byte]StateID
}

// Bake enumerates the states of d reachable over the given alphabet into a
// transition table. Traversal is depth-first from the initial state; IDs
// are assigned in first-visit order, so state 0 is the initial state.
func Bake(d DFA, alphabet []byte) *Baked {
	b := &Baked{}
	reverse := make(map[string]StateID)
	b.visit(d, alphabet, reverse, d.Initial())
	return b
}

func (bd *Baked) visit(d DFA, alphabet []byte, reverse map[string]StateID, s state.Value) StateID {
	id := StateID(conv.IntToUint32(len(bd.states)))
	reverse[s.Key()] = id
	bd.states = append(bd.states, bakedState{
		accept: d.Accept(s),
		trans:  make(map[byte]StateID),
	})
	for _, c := range alphabet {
		t, ok := d.Next(s, c)
		if !ok {
			continue
		}
		next, seen := reverse[t.Key()]
		if !seen {
			next = bd.visit(d, alphabet, reverse, t)
		}
		bd.states[id].trans[c] = next
	}
	return id
}

// Len returns the number of states in the table.
func (bd *Baked) Len() int {
	return len(bd.states)
}

// IsAccept reports whether the state with the given ID is accepting.
func (bd *Baked) IsAccept(id StateID) bool {
	return bd.states[id].accept
}

// Transition returns the successor of id on input b, if any.
func (bd *Baked) Transition(id StateID, b byte) (StateID, bool) {
	next, ok := bd.states[id].trans[b]
	return next, ok
}

// Initial implements DFA.
func (bd *Baked) Initial() state.Value {
	return state.Index(0)
}

// Next implements DFA.
func (bd *Baked) Next(s state.Value, b byte) (state.Value, bool) {
	next, ok := bd.states[s.Int()].trans[b]
	if !ok {
		return state.Value{}, false
	}
	return state.Index(int(next)), true
}

// Accept implements DFA.
func (bd *Baked) Accept(s state.Value) bool {
	return bd.states[s.Int()].accept
}
