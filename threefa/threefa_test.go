package threefa

import (
	"testing"

	"github.com/coregx/refa/dfa"
)

func lit(s string) ThreeFA {
	return FromDFA(dfa.Literal([]byte(s)))
}

func star(a ThreeFA) ThreeFA {
	return Or(FromDFA(dfa.Empty()), Plus(a))
}

func match(a ThreeFA, input string) bool {
	return dfa.Match(ToDFA(a), []byte(input))
}

// TestFromDFA_Unanchored checks the determinized semantics: without
// anchors, a pattern matches any input containing it.
func TestFromDFA_Unanchored(t *testing.T) {
	a := lit("ab")
	tests := []struct {
		input string
		want  bool
	}{
		{"ab", true},
		{"xab", true},
		{"abx", true},
		{"xxabxx", true},
		{"", false},
		{"a", false},
		{"axb", false},
		{"ba", false},
	}
	for _, tt := range tests {
		if got := match(a, tt.input); got != tt.want {
			t.Errorf("match(ab, %q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestStart(t *testing.T) {
	a := Concat(Start(), lit("ab"))
	tests := []struct {
		input string
		want  bool
	}{
		{"ab", true},
		{"abx", true},
		{"abab", true},
		{"xab", false},
		{"", false},
		{"b", false},
	}
	for _, tt := range tests {
		if got := match(a, tt.input); got != tt.want {
			t.Errorf("match(^ab, %q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEnd(t *testing.T) {
	a := Concat(lit("ab"), End())
	tests := []struct {
		input string
		want  bool
	}{
		{"ab", true},
		{"xab", true},
		{"abab", true},
		{"abx", false},
		{"", false},
		{"a", false},
	}
	for _, tt := range tests {
		if got := match(a, tt.input); got != tt.want {
			t.Errorf("match(ab$, %q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBothAnchors_ExactMatch(t *testing.T) {
	a := Concat(Start(), Concat(lit("ab"), End()))
	tests := []struct {
		input string
		want  bool
	}{
		{"ab", true},
		{"xab", false},
		{"abx", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := match(a, tt.input); got != tt.want {
			t.Errorf("match(^ab$, %q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestLookAhead covers ^(?= a* b) aaa: the assertion scans ahead for a*b
// while the literal consumes aaa.
func TestLookAhead(t *testing.T) {
	aStarB := Concat(star(lit("a")), lit("b"))
	a := Concat(Start(), Concat(LookAhead(aStarB), lit("aaa")))
	tests := []struct {
		input string
		want  bool
	}{
		{"aaab", true},
		{"aaaab", true},
		{"aaaabab", true},
		{"b", false},
		{"aab", false},
		{"aabaaab", false},
		{"aaa", false}, // assertion never satisfied: no b
	}
	for _, tt := range tests {
		if got := match(a, tt.input); got != tt.want {
			t.Errorf("match(^(?=a*b)aaa, %q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestLookBehind covers a (?<= a) b: the assertion re-examines the byte
// the main match just consumed.
func TestLookBehind(t *testing.T) {
	a := Concat(lit("a"), Concat(LookBehind(lit("a")), lit("b")))
	equalTo := lit("ab")

	alphabet := []byte("ab")
	if witness, equal := dfa.Equal(ToDFA(a), ToDFA(equalTo), alphabet); !equal {
		t.Errorf("a(?<=a)b should equal ab, differs on %q", witness)
	}

	b := Concat(lit("b"), Concat(LookBehind(lit("a")), lit("b")))
	if _, empty := dfa.IsEmpty(ToDFA(b), alphabet); !empty {
		t.Error("b(?<=a)b is unsatisfiable")
	}
}

func TestLookBehind_SpansIntoContext(t *testing.T) {
	// (?<= ab) x matches only where ab precedes the x, including bytes
	// consumed before the match started.
	a := Concat(LookBehind(lit("ab")), lit("x"))
	tests := []struct {
		input string
		want  bool
	}{
		{"abx", true},
		{"aabx", true},
		{"abxb", true},
		{"x", false},
		{"ax", false},
		{"bx", false},
		{"ab", false},
	}
	for _, tt := range tests {
		if got := match(a, tt.input); got != tt.want {
			t.Errorf("match((?<=ab)x, %q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPlus_Anchored(t *testing.T) {
	a := Concat(Start(), Concat(Plus(lit("ab")), End()))
	tests := []struct {
		input string
		want  bool
	}{
		{"ab", true},
		{"abab", true},
		{"ababab", true},
		{"", false},
		{"a", false},
		{"aba", false},
		{"abba", false},
	}
	for _, tt := range tests {
		if got := match(a, tt.input); got != tt.want {
			t.Errorf("match(^(ab)+$, %q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestPlus_IterationBoundaries checks that repetition boundaries inside a
// determinized pattern line up: (a|ab)+ anchored both ends must cover any
// segmentation.
func TestPlus_IterationBoundaries(t *testing.T) {
	a := Concat(Start(), Concat(Plus(Or(lit("a"), lit("ab"))), End()))
	accepts := []string{"a", "ab", "aab", "aba", "abab", "aaa"}
	rejects := []string{"", "b", "ba", "abb"}
	for _, input := range accepts {
		if !match(a, input) {
			t.Errorf("^(a|ab)+$ should accept %q", input)
		}
	}
	for _, input := range rejects {
		if match(a, input) {
			t.Errorf("^(a|ab)+$ should reject %q", input)
		}
	}
}

func TestAnd_IntersectsAssertions(t *testing.T) {
	// ^a.$ and ^.b$; both constraints apply to the same two bytes.
	left := Concat(Start(), Concat(lit("a"), Concat(FromDFA(dfa.Dot()), End())))
	right := Concat(Start(), Concat(FromDFA(dfa.Dot()), Concat(lit("b"), End())))
	a := And(left, right)
	tests := []struct {
		input string
		want  bool
	}{
		{"ab", true},
		{"aa", false},
		{"bb", false},
		{"a", false},
		{"abx", false},
	}
	for _, tt := range tests {
		if got := match(a, tt.input); got != tt.want {
			t.Errorf("match(^a.$ and ^.b$, %q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestToDFA_StateCanonicity(t *testing.T) {
	d := ToDFA(Concat(Start(), Plus(lit("a"))))
	s1 := d.Initial()
	s2 := d.Initial()
	var ok bool
	for _, c := range []byte("aa") {
		if s1, ok = d.Next(s1, c); !ok {
			t.Fatal("unexpected dead state")
		}
	}
	for _, c := range []byte("aaa") {
		if s2, ok = d.Next(s2, c); !ok {
			t.Fatal("unexpected dead state")
		}
	}
	if s1.Key() != s2.Key() {
		t.Errorf("^a+ states after aa and aaa should converge:\n%v\n%v", s1, s2)
	}
}
