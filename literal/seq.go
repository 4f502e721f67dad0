// Package literal extracts required literals from pattern ASTs for
// prefilter optimization.
//
// A pattern like (?= a* b) aaa can only match inputs containing "aaa", so
// inputs without it can be rejected before the composite automaton runs at
// all. The extractor computes a set of alternative substrings at least one
// of which every match must contain; the prefilter turns that set into a
// multi-pattern scan.
package literal

import (
	"bytes"
	"sort"
)

// MaxLiterals bounds the number of alternatives a Seq may hold. Extraction
// that would exceed it is abandoned: a huge alternation scans slower than
// the automaton it is meant to shortcut.
const MaxLiterals = 64

// Literal is one required byte sequence.
type Literal struct {
	Bytes []byte
}

// Seq is a set of alternative required literals: every matching input
// contains at least one element as a substring. A nil *Seq means no
// requirement could be established.
type Seq struct {
	lits []Literal
}

// NewSeq returns a Seq over the given alternatives, deduplicated.
func NewSeq(lits ...Literal) *Seq {
	s := &Seq{lits: lits}
	s.dedup()
	return s
}

// Len returns the number of alternatives.
func (s *Seq) Len() int {
	return len(s.lits)
}

// Get returns the i-th alternative.
func (s *Seq) Get(i int) Literal {
	return s.lits[i]
}

// IsEmpty reports whether the Seq holds no alternatives.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.lits) == 0
}

// MinLen returns the length of the shortest alternative. A prefilter is
// only as selective as its shortest literal.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	min := len(s.lits[0].Bytes)
	for _, l := range s.lits[1:] {
		if len(l.Bytes) < min {
			min = len(l.Bytes)
		}
	}
	return min
}

// union merges two alternative sets. Returns nil when the result would
// exceed MaxLiterals.
func union(a, b *Seq) *Seq {
	merged := make([]Literal, 0, len(a.lits)+len(b.lits))
	merged = append(merged, a.lits...)
	merged = append(merged, b.lits...)
	s := NewSeq(merged...)
	if s.Len() > MaxLiterals {
		return nil
	}
	return s
}

func (s *Seq) dedup() {
	sort.Slice(s.lits, func(i, j int) bool {
		return bytes.Compare(s.lits[i].Bytes, s.lits[j].Bytes) < 0
	})
	out := s.lits[:0]
	for i, l := range s.lits {
		if i == 0 || !bytes.Equal(out[len(out)-1].Bytes, l.Bytes) {
			out = append(out, l)
		}
	}
	s.lits = out
}
