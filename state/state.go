// Package state provides the structural state values used by the automata
// combinators.
//
// Composite automata derive their states from the states of their children:
// pairs for products, options for branches that may have died, sets for
// powerset tracking. Rather than a distinct Go type per composite, every
// state is a Value, a small immutable tree over five forms (unit, index,
// option, pair, set) with a total order and a canonical string key.
//
// Canonical ordering matters: sets are kept sorted and deduplicated on
// construction, so two states that differ only in the order their internal
// sets were built compare equal and produce identical keys.
package state

import (
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the structural form of a Value.
type Kind uint8

const (
	// KindUnit is the single-valued state of stateless automata.
	KindUnit Kind = iota

	// KindIndex is a non-negative integer state (literal positions, baked
	// state IDs).
	KindIndex

	// KindNone is the absent branch of an optional state.
	KindNone

	// KindSome wraps the state of a still-live branch.
	KindSome

	// KindPair is the product of two child states.
	KindPair

	// KindSet is a canonicalised set of child states.
	KindSet
)

// Value is an immutable structural state.
//
// The zero Value is Unit. Values are cheap to copy; the tree nodes behind a
// Value are never mutated after construction.
type Value struct {
	kind  Kind
	index int
	fst   *Value  // Some inner / Pair first
	snd   *Value  // Pair second
	elems []Value // Set elements, sorted ascending, unique
}

// Unit returns the unit state.
func Unit() Value {
	return Value{kind: KindUnit}
}

// Index returns an integer state.
func Index(i int) Value {
	return Value{kind: KindIndex, index: i}
}

// None returns the absent optional state.
func None() Value {
	return Value{kind: KindNone}
}

// Some wraps v as a present optional state.
func Some(v Value) Value {
	inner := v
	return Value{kind: KindSome, fst: &inner}
}

// Pair returns the product of a and b.
func Pair(a, b Value) Value {
	fst, snd := a, b
	return Value{kind: KindPair, fst: &fst, snd: &snd}
}

// NewSet returns the set of the given values, sorted and deduplicated.
// The argument slice is not retained.
func NewSet(vs ...Value) Value {
	elems := make([]Value, len(vs))
	copy(elems, vs)
	sort.Slice(elems, func(i, j int) bool { return Compare(elems[i], elems[j]) < 0 })
	out := elems[:0]
	for i, v := range elems {
		if i == 0 || Compare(out[len(out)-1], v) != 0 {
			out = append(out, v)
		}
	}
	return Value{kind: KindSet, elems: out}
}

// Kind returns the structural form of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the integer of a KindIndex value.
func (v Value) Int() int {
	return v.index
}

// IsSome reports whether v is a present optional state.
func (v Value) IsSome() bool {
	return v.kind == KindSome
}

// IsNone reports whether v is the absent optional state.
func (v Value) IsNone() bool {
	return v.kind == KindNone
}

// Inner returns the wrapped value of a KindSome state.
func (v Value) Inner() Value {
	return *v.fst
}

// First returns the first component of a KindPair state.
func (v Value) First() Value {
	return *v.fst
}

// Second returns the second component of a KindPair state.
func (v Value) Second() Value {
	return *v.snd
}

// Elems returns the elements of a KindSet state in ascending order.
// The returned slice must not be modified.
func (v Value) Elems() []Value {
	return v.elems
}

// Len returns the number of elements of a KindSet state.
func (v Value) Len() int {
	return len(v.elems)
}

// IsEmptySet reports whether v is a set with no elements.
func (v Value) IsEmptySet() bool {
	return v.kind == KindSet && len(v.elems) == 0
}

// With returns the set v with elem inserted. v must be a KindSet value.
func (v Value) With(elem Value) Value {
	i := sort.Search(len(v.elems), func(i int) bool { return Compare(v.elems[i], elem) >= 0 })
	if i < len(v.elems) && Compare(v.elems[i], elem) == 0 {
		return v
	}
	elems := make([]Value, 0, len(v.elems)+1)
	elems = append(elems, v.elems[:i]...)
	elems = append(elems, elem)
	elems = append(elems, v.elems[i:]...)
	return Value{kind: KindSet, elems: elems}
}

// Compare imposes a total order on values: first by kind, then structurally.
// Sets compare by their sorted element sequences.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindUnit, KindNone:
		return 0
	case KindIndex:
		switch {
		case a.index < b.index:
			return -1
		case a.index > b.index:
			return 1
		}
		return 0
	case KindSome:
		return Compare(*a.fst, *b.fst)
	case KindPair:
		if c := Compare(*a.fst, *b.fst); c != 0 {
			return c
		}
		return Compare(*a.snd, *b.snd)
	case KindSet:
		n := len(a.elems)
		if len(b.elems) < n {
			n = len(b.elems)
		}
		for i := 0; i < n; i++ {
			if c := Compare(a.elems[i], b.elems[i]); c != 0 {
				return c
			}
		}
		switch {
		case len(a.elems) < len(b.elems):
			return -1
		case len(a.elems) > len(b.elems):
			return 1
		}
		return 0
	}
	return 0
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

// Key returns a canonical string encoding of v, suitable as a map key.
// Equal values have equal keys and distinct values have distinct keys.
func (v Value) Key() string {
	var sb strings.Builder
	v.appendKey(&sb)
	return sb.String()
}

func (v Value) appendKey(sb *strings.Builder) {
	switch v.kind {
	case KindUnit:
		sb.WriteByte('u')
	case KindIndex:
		sb.WriteByte('i')
		sb.WriteString(strconv.Itoa(v.index))
		sb.WriteByte(';')
	case KindNone:
		sb.WriteByte('n')
	case KindSome:
		sb.WriteByte('s')
		v.fst.appendKey(sb)
	case KindPair:
		sb.WriteByte('(')
		v.fst.appendKey(sb)
		sb.WriteByte(',')
		v.snd.appendKey(sb)
		sb.WriteByte(')')
	case KindSet:
		sb.WriteByte('{')
		for i := range v.elems {
			if i > 0 {
				sb.WriteByte(',')
			}
			v.elems[i].appendKey(sb)
		}
		sb.WriteByte('}')
	}
}

// String returns a human-readable rendering of v for debugging.
func (v Value) String() string {
	switch v.kind {
	case KindUnit:
		return "()"
	case KindIndex:
		return strconv.Itoa(v.index)
	case KindNone:
		return "None"
	case KindSome:
		return "Some(" + v.fst.String() + ")"
	case KindPair:
		return "(" + v.fst.String() + ", " + v.snd.String() + ")"
	case KindSet:
		parts := make([]string, len(v.elems))
		for i := range v.elems {
			parts[i] = v.elems[i].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return "?"
}
