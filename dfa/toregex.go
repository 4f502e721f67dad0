package dfa

import (
	"fmt"

	"github.com/coregx/refa/internal/conv"
	"github.com/coregx/refa/internal/sparse"
)

// ToRegex converts d, restricted to the given alphabet, into a classical
// regular expression string by state elimination.
//
// The automaton is first baked so states have dense integer IDs, then
// modelled as a labelled graph with a virtual source (ε-edge to the initial
// state) and virtual sink (ε-edge from every accepting state). States are
// eliminated in ascending ID order; an eliminated state s with self-loop σ
// rewrites every path u→s→v into the label (α)(σ)*(β), coalescing parallel
// edges with |. The surviving source→sink label is the result.
//
// Parenthesisation is conservative and the output is canonical only up to
// language: different automata for the same language may render different
// strings. Alphabet bytes render as themselves when printable ASCII and as
// a backslash followed by two lowercase hex digits otherwise.
//
// A DFA accepting no strings has no expression in this dialect; ToRegex
// returns "" for it, which callers must not confuse with the regex for the
// empty string.
func ToRegex(d DFA, alphabet []byte) string {
	baked := Bake(d, alphabet)
	n := baked.Len()

	// Node 0 is the virtual source and sink; baked state i is node i+1.
	rows := make([]map[int]string, n+1)
	rows[0] = map[int]string{1: ""}
	for i := 0; i < n; i++ {
		id := StateID(conv.IntToUint32(i))
		row := make(map[int]string)
		if baked.IsAccept(id) {
			row[0] = ""
		}
		for _, c := range alphabet {
			t, ok := baked.Transition(id, c)
			if !ok {
				continue
			}
			label := renderSymbol(c)
			if prev, ok := row[int(t)+1]; ok {
				label = prev + "|" + label
			}
			row[int(t)+1] = label
		}
		rows[i+1] = row
	}

	alive := sparse.NewSparseSet(conv.IntToUint32(n + 1))
	for i := 1; i <= n; i++ {
		alive.Insert(conv.IntToUint32(i))
	}

	for id := 1; id <= n; id++ {
		alive.Remove(conv.IntToUint32(id))
		out := rows[id]
		loop := ""
		if self, ok := out[id]; ok {
			loop = "(" + self + ")*"
			delete(out, id)
		}
		incoming := append([]uint32{0}, alive.Values()...)
		for _, u := range incoming {
			in, ok := rows[u][id]
			if !ok {
				continue
			}
			delete(rows[u], id)
			for v, end := range out {
				path := "(" + in + ")" + loop + "(" + end + ")"
				if prev, ok := rows[u][v]; ok {
					path = prev + "|" + path
				}
				rows[u][v] = path
			}
		}
	}

	return rows[0][0]
}

// renderSymbol renders an alphabet byte for a regex label: printable ASCII
// stands for itself, anything else becomes a two-digit hex escape.
func renderSymbol(b byte) string {
	if b >= 0x20 && b <= 0x7e {
		return string(b)
	}
	return fmt.Sprintf("\\%02x", b)
}
