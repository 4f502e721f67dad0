// Package syntax parses pattern expressions into automaton trees.
//
// The grammar is a whitespace-tolerant combinator surface rather than a
// classical regex dialect:
//
//	pattern   = alt
//	alt       = concat { "|" concat }        empty branches mean ε
//	concat    = { repeat }                   juxtaposition concatenates
//	repeat    = atom { "?" | "*" | "+" }
//	atom      = '"' escaped-bytes '"'        literal
//	          | identifier                   its bytes, literally
//	          | "."                          any single byte
//	          | "^" | "$"                    anchors
//	          | "(" alt ")"                  grouping
//	          | "(?=" alt ")"                lookahead
//	          | "(?!" alt ")"                negative lookahead
//	          | "(?<=" alt ")"               lookbehind
//	          | "(?<!" alt ")"               negative lookbehind
//
// Parse produces an AST; Node.Compile lowers it to a threefa.ThreeFA.
// Callers needing constructs outside the grammar compose the combinator
// packages directly; the parser builds nothing they cannot.
package syntax

import (
	"github.com/coregx/refa/dfa"
	"github.com/coregx/refa/threefa"
)

// Op identifies an AST node's operator.
type Op uint8

const (
	// OpLiteral matches the literal bytes in Lit.
	OpLiteral Op = iota
	// OpDot matches any single byte.
	OpDot
	// OpStart anchors the match start to position 0.
	OpStart
	// OpEnd anchors the match end to the final position.
	OpEnd
	// OpEmpty matches the empty string (an empty alternation branch).
	OpEmpty
	// OpConcat concatenates Sub[0] and Sub[1].
	OpConcat
	// OpAlternate matches Sub[0] or Sub[1].
	OpAlternate
	// OpOptional matches Sub[0] zero or one times.
	OpOptional
	// OpStar matches Sub[0] zero or more times.
	OpStar
	// OpPlus matches Sub[0] one or more times.
	OpPlus
	// OpLookAhead asserts Sub[0] matches starting here.
	OpLookAhead
	// OpNegLookAhead asserts the complement of Sub[0] starting here: it
	// compiles to LookAhead(Not(Sub[0])), which holds when some span
	// starting here is outside Sub[0]'s language.
	OpNegLookAhead
	// OpLookBehind asserts Sub[0] matches ending here.
	OpLookBehind
	// OpNegLookBehind asserts the complement of Sub[0] ending here: it
	// compiles to LookBehind(Not(Sub[0])), which holds when some span
	// ending here is outside Sub[0]'s language.
	OpNegLookBehind
)

// Node is a pattern AST node. Binary ops have two Sub entries, unary ops
// one; OpLiteral carries Lit.
type Node struct {
	Op  Op
	Sub []*Node
	Lit []byte
}

// CompileDFA lowers the AST directly to a DFA, which matches whole inputs
// against the pattern's language. This lowering exists only for
// pure-regular patterns; it reports false when the AST uses anchors or
// lookaround, which need the three-phase lowering.
func (n *Node) CompileDFA() (dfa.DFA, bool) {
	switch n.Op {
	case OpLiteral:
		return dfa.Literal(n.Lit), true
	case OpDot:
		return dfa.Dot(), true
	case OpEmpty:
		return dfa.Empty(), true
	case OpConcat:
		a, okA := n.Sub[0].CompileDFA()
		b, okB := n.Sub[1].CompileDFA()
		if !okA || !okB {
			return nil, false
		}
		return dfa.Concat(a, b), true
	case OpAlternate:
		a, okA := n.Sub[0].CompileDFA()
		b, okB := n.Sub[1].CompileDFA()
		if !okA || !okB {
			return nil, false
		}
		return dfa.Or(a, b), true
	case OpOptional:
		a, ok := n.Sub[0].CompileDFA()
		if !ok {
			return nil, false
		}
		return dfa.Or(dfa.Empty(), a), true
	case OpStar:
		a, ok := n.Sub[0].CompileDFA()
		if !ok {
			return nil, false
		}
		return dfa.Or(dfa.Empty(), dfa.Plus(a)), true
	case OpPlus:
		a, ok := n.Sub[0].CompileDFA()
		if !ok {
			return nil, false
		}
		return dfa.Plus(a), true
	default:
		return nil, false
	}
}

// Compile lowers the AST to a three-phase automaton.
func (n *Node) Compile() threefa.ThreeFA {
	switch n.Op {
	case OpLiteral:
		return threefa.FromDFA(dfa.Literal(n.Lit))
	case OpDot:
		return threefa.FromDFA(dfa.Dot())
	case OpStart:
		return threefa.Start()
	case OpEnd:
		return threefa.End()
	case OpEmpty:
		return threefa.FromDFA(dfa.Empty())
	case OpConcat:
		return threefa.Concat(n.Sub[0].Compile(), n.Sub[1].Compile())
	case OpAlternate:
		return threefa.Or(n.Sub[0].Compile(), n.Sub[1].Compile())
	case OpOptional:
		return threefa.Or(threefa.FromDFA(dfa.Empty()), n.Sub[0].Compile())
	case OpStar:
		return threefa.Or(threefa.FromDFA(dfa.Empty()), threefa.Plus(n.Sub[0].Compile()))
	case OpPlus:
		return threefa.Plus(n.Sub[0].Compile())
	case OpLookAhead:
		return threefa.LookAhead(n.Sub[0].Compile())
	case OpNegLookAhead:
		return threefa.LookAhead(threefa.Not(n.Sub[0].Compile()))
	case OpLookBehind:
		return threefa.LookBehind(n.Sub[0].Compile())
	case OpNegLookBehind:
		return threefa.LookBehind(threefa.Not(n.Sub[0].Compile()))
	}
	panic("syntax: unknown op")
}
