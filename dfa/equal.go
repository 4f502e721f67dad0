package dfa

import (
	"github.com/coregx/refa/state"
)

// IsEmpty decides whether d accepts no string over the given alphabet.
//
// It runs a breadth-first search from the initial state, so the witness
// returned for a non-empty language is of minimal length. Exploration is
// deterministic: states are expanded in discovery order and the alphabet in
// the order given.
//
// Termination requires the reachable state space to be finite, which holds
// for every automaton built from the combinators in this module over a
// finite alphabet.
func IsEmpty(d DFA, alphabet []byte) (witness []byte, empty bool) {
	type node struct {
		s state.Value
		w []byte
	}
	initial := d.Initial()
	visited := map[string]struct{}{initial.Key(): {}}
	queue := []node{{s: initial}}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if d.Accept(n.s) {
			if n.w == nil {
				n.w = []byte{}
			}
			return n.w, false
		}
		for _, b := range alphabet {
			t, ok := d.Next(n.s, b)
			if !ok {
				continue
			}
			k := t.Key()
			if _, seen := visited[k]; seen {
				continue
			}
			visited[k] = struct{}{}
			w := make([]byte, len(n.w)+1)
			copy(w, n.w)
			w[len(n.w)] = b
			queue = append(queue, node{s: t, w: w})
		}
	}
	return nil, true
}

// Equal decides whether a and b accept the same language over the given
// alphabet. When they differ, the returned witness is a shortest word
// accepted by exactly one of them.
//
// The decision reduces to emptiness of Not(Iff(a, b)): Iff accepts where
// the two automata agree, so its negation is non-empty exactly when some
// word distinguishes them.
func Equal(a, b DFA, alphabet []byte) (witness []byte, equal bool) {
	return IsEmpty(Not(Iff(a, b)), alphabet)
}
