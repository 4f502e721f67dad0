package dfa

import (
	"testing"
)

func TestBake_PreservesLanguage(t *testing.T) {
	automata := []struct {
		name string
		d    DFA
	}{
		{"literal", lit("ab")},
		{"a*b", Concat(star(lit("a")), lit("b"))},
		{"complement", Not(Plus(lit("a")))},
		{"union", Or(lit("a"), Plus(lit("b")))},
	}
	for _, tt := range automata {
		t.Run(tt.name, func(t *testing.T) {
			baked := Bake(tt.d, alphabet)
			if witness, equal := Equal(tt.d, baked, alphabet); !equal {
				t.Errorf("baked automaton differs from source on %q", witness)
			}
		})
	}
}

func TestBake_Layout(t *testing.T) {
	baked := Bake(lit("ab"), alphabet)

	// Reachable states: 0 (start), 1 (after a), 2 (accept). The dead sink
	// is not materialised.
	if baked.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", baked.Len())
	}
	if baked.IsAccept(0) || baked.IsAccept(1) || !baked.IsAccept(2) {
		t.Error("only the final state should accept")
	}
	if next, ok := baked.Transition(0, 'a'); !ok || next != 1 {
		t.Errorf("Transition(0, a) = %d, %v; want 1, true", next, ok)
	}
	if _, ok := baked.Transition(0, 'b'); ok {
		t.Error("Transition(0, b) should be absent")
	}
	if _, ok := baked.Transition(2, 'a'); ok {
		t.Error("accepting state of a literal has no transitions")
	}
}

func TestBake_MatchesDirectly(t *testing.T) {
	baked := Bake(Concat(star(lit("a")), lit("b")), alphabet)
	tests := []struct {
		input string
		want  bool
	}{
		{"b", true},
		{"ab", true},
		{"aaab", true},
		{"", false},
		{"a", false},
		{"aba", false},
	}
	for _, tt := range tests {
		if got := Match(baked, []byte(tt.input)); got != tt.want {
			t.Errorf("Match(baked, %q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBake_RebakeIsStable(t *testing.T) {
	baked := Bake(Plus(lit("ab")), alphabet)
	again := Bake(baked, alphabet)
	if baked.Len() != again.Len() {
		t.Errorf("re-baking changed the state count: %d vs %d", baked.Len(), again.Len())
	}
	if witness, equal := Equal(baked, again, alphabet); !equal {
		t.Errorf("re-baked automaton differs on %q", witness)
	}
}
