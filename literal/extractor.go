package literal

import (
	"github.com/coregx/refa/syntax"
)

// Required computes a set of alternatives at least one of which every input
// matched by n must contain as a substring. Returns nil when no such set
// can be established (pure anchors, optional constructs, or alternations
// too wide to be useful).
//
// The analysis is conservative:
//
//   - A literal requires itself; ε requires nothing.
//   - A concatenation requires both sides' literals; the more selective
//     side (longest minimum length, then fewer alternatives) is kept.
//   - An alternation requires the union of both branches, and only if both
//     branches yielded a requirement.
//   - X+ requires whatever one repetition requires; X? and X* require
//     nothing.
//   - Positive lookaround requires whatever the asserted pattern requires:
//     the assertion can only hold if that pattern matches somewhere inside
//     the input. Negative lookaround requires nothing.
func Required(n *syntax.Node) *Seq {
	switch n.Op {
	case syntax.OpLiteral:
		if len(n.Lit) == 0 {
			return nil
		}
		return NewSeq(Literal{Bytes: n.Lit})
	case syntax.OpConcat:
		return better(Required(n.Sub[0]), Required(n.Sub[1]))
	case syntax.OpAlternate:
		a := Required(n.Sub[0])
		b := Required(n.Sub[1])
		if a.IsEmpty() || b.IsEmpty() {
			return nil
		}
		return union(a, b)
	case syntax.OpPlus:
		return Required(n.Sub[0])
	case syntax.OpLookAhead, syntax.OpLookBehind:
		return Required(n.Sub[0])
	default:
		// OpDot, OpStart, OpEnd, OpEmpty, OpOptional, OpStar and the
		// negative lookarounds constrain nothing the prefilter can use.
		return nil
	}
}

// better picks the more selective of two requirement sets.
func better(a, b *Seq) *Seq {
	switch {
	case a.IsEmpty():
		return b
	case b.IsEmpty():
		return a
	case a.MinLen() != b.MinLen():
		if a.MinLen() > b.MinLen() {
			return a
		}
		return b
	case a.Len() <= b.Len():
		return a
	default:
		return b
	}
}
