package state

import (
	"testing"
)

func TestCompare_TotalOrder(t *testing.T) {
	// Ascending by kind, then by content.
	ordered := []Value{
		Unit(),
		Index(0),
		Index(1),
		Index(7),
		None(),
		Some(Unit()),
		Some(Index(3)),
		Pair(Unit(), Unit()),
		Pair(Unit(), Index(0)),
		Pair(Index(0), Unit()),
		NewSet(),
		NewSet(Unit()),
		NewSet(Unit(), Index(2)),
	}
	for i, a := range ordered {
		for j, b := range ordered {
			got := Compare(a, b)
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("Compare(%v, %v) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestNewSet_Canonical(t *testing.T) {
	a := NewSet(Index(3), Index(1), Index(2))
	b := NewSet(Index(2), Index(3), Index(1), Index(1))

	if !Equal(a, b) {
		t.Errorf("sets built in different orders differ: %v vs %v", a, b)
	}
	if a.Key() != b.Key() {
		t.Errorf("keys differ: %q vs %q", a.Key(), b.Key())
	}
	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (duplicates must merge)", a.Len())
	}
}

func TestWith_InsertsSorted(t *testing.T) {
	s := NewSet(Index(1), Index(5))
	s = s.With(Index(3))

	elems := s.Elems()
	want := []int{1, 3, 5}
	if len(elems) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(elems), len(want))
	}
	for i, w := range want {
		if elems[i].Int() != w {
			t.Errorf("elems[%d] = %v, want Index(%d)", i, elems[i], w)
		}
	}

	// Inserting an existing element changes nothing.
	if !Equal(s, s.With(Index(3))) {
		t.Error("inserting an existing element should be a no-op")
	}
}

func TestWith_DoesNotMutate(t *testing.T) {
	s := NewSet(Index(1))
	_ = s.With(Index(0))
	if s.Len() != 1 || s.Elems()[0].Int() != 1 {
		t.Errorf("With mutated its receiver: %v", s)
	}
}

func TestKey_Distinct(t *testing.T) {
	// Values with similar structure must have distinct keys.
	values := []Value{
		Unit(),
		Index(1),
		Index(12),
		None(),
		Some(Index(1)),
		Some(Some(Index(1))),
		Pair(Index(1), Index(2)),
		Pair(Index(12), Index(2)),
		NewSet(Index(1), Index(2)),
		NewSet(Pair(Index(1), Index(2))),
		Pair(NewSet(Index(1)), NewSet(Index(2))),
	}
	seen := make(map[string]Value)
	for _, v := range values {
		k := v.Key()
		if prev, ok := seen[k]; ok {
			t.Errorf("key collision %q: %v vs %v", k, prev, v)
		}
		seen[k] = v
	}
}

func TestNestedSets(t *testing.T) {
	inner1 := NewSet(Index(1), Index(2))
	inner2 := NewSet(Index(2), Index(1))
	outer := NewSet(inner1, inner2)

	if outer.Len() != 1 {
		t.Errorf("equal inner sets must merge in the outer set, got %v", outer)
	}
}
