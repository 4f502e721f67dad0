package dfa

import (
	"bytes"
	"testing"
)

var alphabet = []byte("ab")

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name        string
		d           DFA
		wantEmpty   bool
		wantWitness string
	}{
		{"literal is non-empty", lit("ab"), false, "ab"},
		{"empty language", And(lit("a"), lit("b")), true, ""},
		{"ε witness", Empty(), false, ""},
		{"shortest witness wins", Or(lit("aab"), lit("ba")), false, "ba"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			witness, empty := IsEmpty(tt.d, alphabet)
			if empty != tt.wantEmpty {
				t.Fatalf("IsEmpty() = %v, want %v", empty, tt.wantEmpty)
			}
			if !empty && !bytes.Equal(witness, []byte(tt.wantWitness)) {
				t.Errorf("witness = %q, want %q", witness, tt.wantWitness)
			}
			if empty && witness != nil {
				t.Errorf("empty language must have nil witness, got %q", witness)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name      string
		a, b      DFA
		wantEqual bool
	}{
		{"same literal", lit("ab"), lit("ab"), true},
		{"or is commutative", Or(lit("a"), lit("b")), Or(lit("b"), lit("a")), true},
		{"concat of stars", Concat(star(lit("a")), star(lit("a"))), star(lit("a")), true},
		{"plus vs star differ on ε", Plus(lit("a")), star(lit("a")), false},
		{"demorgan", Not(Or(lit("a"), lit("b"))), And(Not(lit("a")), Not(lit("b"))), true},
		{"iff identity", Iff(lit("a"), lit("a")), Anything(), true},
		{"anything vs not empty-lang", Anything(), Not(And(lit("a"), lit("b"))), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			witness, equal := Equal(tt.a, tt.b, alphabet)
			if equal != tt.wantEqual {
				t.Fatalf("Equal() = %v (witness %q), want %v", equal, witness, tt.wantEqual)
			}
			if !equal && Match(tt.a, witness) == Match(tt.b, witness) {
				t.Errorf("witness %q does not distinguish the automata", witness)
			}
		})
	}
}

func TestEqual_WitnessMinimal(t *testing.T) {
	// a+ and a* differ exactly on ε.
	witness, equal := Equal(Plus(lit("a")), star(lit("a")), alphabet)
	if equal {
		t.Fatal("a+ and a* must differ")
	}
	if len(witness) != 0 {
		t.Errorf("shortest distinguishing word is ε, got %q", witness)
	}

	// aa|ab vs aa differ first on a length-2 word.
	witness, equal = Equal(Or(lit("aa"), lit("ab")), lit("aa"), alphabet)
	if equal {
		t.Fatal("languages must differ")
	}
	if !bytes.Equal(witness, []byte("ab")) {
		t.Errorf("witness = %q, want %q", witness, "ab")
	}
}

func TestEqual_Deterministic(t *testing.T) {
	// aa|ab vs bb|ab: the distinguishing words aa and bb have the same
	// length; BFS expands the alphabet in order, so aa is found first,
	// on every run.
	a := Or(lit("aa"), lit("ab"))
	b := Or(lit("bb"), lit("ab"))
	w1, _ := Equal(a, b, alphabet)
	w2, _ := Equal(a, b, alphabet)
	if !bytes.Equal(w1, w2) {
		t.Errorf("equal runs must return the same witness: %q vs %q", w1, w2)
	}
	if !bytes.Equal(w1, []byte("aa")) {
		t.Errorf("witness = %q, want %q", w1, "aa")
	}
}
