package refa

import (
	"os"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"
)

type corpus struct {
	Patterns []corpusEntry `yaml:"patterns"`
}

type corpusEntry struct {
	Pattern string   `yaml:"pattern"`
	Accepts []string `yaml:"accepts"`
	Rejects []string `yaml:"rejects"`
}

// TestCorpus runs the full pipeline (parse, compile, prefilter, match)
// over the YAML corpus in testdata.
func TestCorpus(t *testing.T) {
	bin, err := os.ReadFile("testdata/corpus.yaml")
	require.NoError(t, err)

	var c corpus
	require.NoError(t, yaml.Unmarshal(bin, &c))
	require.NotEmpty(t, c.Patterns)

	for _, entry := range c.Patterns {
		t.Run(entry.Pattern, func(t *testing.T) {
			p, err := Compile(entry.Pattern)
			require.NoError(t, err)

			for _, input := range entry.Accepts {
				if !p.MatchString(input) {
					t.Errorf("pattern %q should accept %q", entry.Pattern, input)
				}
			}
			for _, input := range entry.Rejects {
				if p.MatchString(input) {
					t.Errorf("pattern %q should reject %q", entry.Pattern, input)
				}
			}
		})
	}
}
