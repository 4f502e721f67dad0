// Package refa builds and executes deterministic finite automata over
// regular expressions extended with anchors and lookaround.
//
// Patterns are algebraic trees of combinators (concatenation,
// alternation, repetition, complement, anchors, lookahead, lookbehind)
// compiled through a three-phase automaton (package threefa) into a DFA
// (package dfa). Because the result is a real DFA, matching is a single
// linear scan, two patterns can be decided equivalent, an automaton can be
// baked into a flat transition table, and any automaton can be converted
// back into a classical regex string.
//
// Basic usage:
//
//	p, err := refa.Compile(`^(?= a* b) aaa`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.MatchString("aaab") // true
//
// Equivalence over an alphabet:
//
//	a := refa.MustCompile(`(?= .* b $) a+`)
//	b := refa.MustCompile(`.* a .* b`)
//	witness, equal := refa.Equal(a, b, []byte("abx"))
//	// equal == true, witness == nil
//
// The pattern grammar is documented in package syntax. A pattern built
// only from regular operators is matched against the whole input; as soon
// as anchors or lookaround appear, matching goes through the three-phase
// determinization, which finds the pattern anywhere in the input unless ^
// and $ pin it down.
package refa

import (
	"github.com/pkg/errors"

	"github.com/coregx/refa/dfa"
	"github.com/coregx/refa/literal"
	"github.com/coregx/refa/syntax"
	"github.com/coregx/refa/threefa"
)

// Pattern is a compiled pattern.
//
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	expr string
	auto dfa.DFA
	pre  *literal.Prefilter
}

// Compile parses a pattern expression and compiles it into a DFA.
//
// When the pattern requires some literal to appear in any match, a
// prefilter is attached so that inputs which cannot match are rejected
// with a single multi-literal scan instead of a full automaton run.
func Compile(expr string) (*Pattern, error) {
	ast, err := syntax.Parse(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %q", expr)
	}
	return &Pattern{
		expr: expr,
		auto: lower(ast),
		pre:  literal.NewPrefilter(literal.Required(ast)),
	}, nil
}

// lower picks the automaton semantics the pattern calls for. A
// pure-regular pattern becomes a plain DFA deciding whole-input
// membership. A pattern with anchors or lookaround goes through the
// three-phase lowering, whose determinization matches anywhere in the
// input unless the pattern pins itself down with ^ and $.
func lower(ast *syntax.Node) dfa.DFA {
	if d, ok := ast.CompileDFA(); ok {
		return d
	}
	return threefa.ToDFA(ast.Compile())
}

// MustCompile is Compile for patterns known to be valid; it panics on
// error.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic("refa: " + err.Error())
	}
	return p
}

// Match reports whether input matches the pattern.
func (p *Pattern) Match(input []byte) bool {
	if !p.pre.Candidate(input) {
		return false
	}
	return dfa.Match(p.auto, input)
}

// MatchString reports whether s matches the pattern.
func (p *Pattern) MatchString(s string) bool {
	return p.Match([]byte(s))
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.expr
}

// DFA returns the compiled automaton. The prefilter is not part of it;
// automaton-level operations see the pattern's exact language.
func (p *Pattern) DFA() dfa.DFA {
	return p.auto
}

// Bake flattens the pattern into an explicit transition table over the
// given alphabet.
func (p *Pattern) Bake(alphabet []byte) *dfa.Baked {
	return dfa.Bake(p.auto, alphabet)
}

// ToRegex converts the pattern, restricted to the given alphabet, into a
// classical regular expression string.
func (p *Pattern) ToRegex(alphabet []byte) string {
	return dfa.ToRegex(p.auto, alphabet)
}

// Equal decides whether two patterns accept the same inputs over the given
// alphabet. When they differ, witness is a shortest input matched by
// exactly one of them.
func Equal(a, b *Pattern, alphabet []byte) (witness []byte, equal bool) {
	return dfa.Equal(a.auto, b.auto, alphabet)
}

// IsEmpty decides whether the pattern matches no input over the given
// alphabet; witness is a shortest matching input otherwise.
func IsEmpty(p *Pattern, alphabet []byte) (witness []byte, empty bool) {
	return dfa.IsEmpty(p.auto, alphabet)
}
