package literal

import (
	"github.com/coregx/ahocorasick"
)

// Prefilter rejects inputs that cannot match a pattern, by scanning for the
// pattern's required literals with an Aho-Corasick automaton. A single pass
// over the input replaces a full run of the composite automaton for the
// common non-matching case.
type Prefilter struct {
	auto *ahocorasick.Automaton
}

// NewPrefilter builds a prefilter from a requirement set. Returns nil when
// the set is empty or the automaton cannot be built; a nil Prefilter is
// valid and filters nothing.
func NewPrefilter(seq *Seq) *Prefilter {
	if seq.IsEmpty() {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &Prefilter{auto: auto}
}

// Candidate reports whether input could match: false means the input lacks
// every required literal and is certain not to match.
func (p *Prefilter) Candidate(input []byte) bool {
	if p == nil {
		return true
	}
	return p.auto.IsMatch(input)
}
