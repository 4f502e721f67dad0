package dfa

import (
	"github.com/coregx/refa/state"
)

// Empty returns the DFA accepting exactly the empty string.
func Empty() DFA {
	return emptyDFA{}
}

type emptyDFA struct{}

func (emptyDFA) Initial() state.Value {
	return state.Unit()
}

func (emptyDFA) Next(_ state.Value, _ byte) (state.Value, bool) {
	return state.Value{}, false
}

func (emptyDFA) Accept(_ state.Value) bool {
	return true
}

// Anything returns the DFA accepting every string.
func Anything() DFA {
	return anythingDFA{}
}

type anythingDFA struct{}

func (anythingDFA) Initial() state.Value {
	return state.Unit()
}

func (anythingDFA) Next(_ state.Value, _ byte) (state.Value, bool) {
	return state.Unit(), true
}

func (anythingDFA) Accept(_ state.Value) bool {
	return true
}

// Dot returns the DFA accepting every single-byte string.
func Dot() DFA {
	return dotDFA{}
}

// dotDFA tracks whether its one byte has been consumed: Index(0) before,
// Index(1) after.
type dotDFA struct{}

func (dotDFA) Initial() state.Value {
	return state.Index(0)
}

func (dotDFA) Next(s state.Value, _ byte) (state.Value, bool) {
	if s.Int() == 0 {
		return state.Index(1), true
	}
	return state.Value{}, false
}

func (dotDFA) Accept(s state.Value) bool {
	return s.Int() == 1
}

// Literal returns the DFA accepting exactly the byte sequence lit.
// The state is the number of bytes matched so far.
func Literal(lit []byte) DFA {
	return literalDFA{lit: lit}
}

// LiteralString is Literal for a string.
func LiteralString(lit string) DFA {
	return Literal([]byte(lit))
}

type literalDFA struct {
	lit []byte
}

func (d literalDFA) Initial() state.Value {
	return state.Index(0)
}

func (d literalDFA) Next(s state.Value, b byte) (state.Value, bool) {
	i := s.Int()
	if i < len(d.lit) && d.lit[i] == b {
		return state.Index(i + 1), true
	}
	return state.Value{}, false
}

func (d literalDFA) Accept(s state.Value) bool {
	return s.Int() == len(d.lit)
}
