package syntax

import (
	"strings"

	"github.com/pkg/errors"
)

// Parse parses a pattern expression into its AST.
func Parse(expr string) (*Node, error) {
	p := &parser{src: expr}
	n, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, errors.Errorf("unexpected %q at offset %d", p.src[p.pos], p.pos)
	}
	return n, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// parseAlt parses a '|'-separated alternation. Branches associate to the
// right; an absent branch is ε.
func (p *parser) parseAlt() (*Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.eof() || p.peek() != '|' {
		return left, nil
	}
	p.pos++
	right, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	return &Node{Op: OpAlternate, Sub: []*Node{left, right}}, nil
}

// parseConcat parses a juxtaposition of repeats. Zero atoms parse as ε.
func (p *parser) parseConcat() (*Node, error) {
	var atoms []*Node
	for {
		p.skipSpace()
		if p.eof() || p.peek() == '|' || p.peek() == ')' {
			break
		}
		atom, err := p.parseRepeat()
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, atom)
	}
	if len(atoms) == 0 {
		return &Node{Op: OpEmpty}, nil
	}
	n := atoms[len(atoms)-1]
	for i := len(atoms) - 2; i >= 0; i-- {
		n = &Node{Op: OpConcat, Sub: []*Node{atoms[i], n}}
	}
	return n, nil
}

// parseRepeat parses an atom followed by any number of postfix operators.
func (p *parser) parseRepeat() (*Node, error) {
	n, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if p.eof() {
			return n, nil
		}
		switch p.peek() {
		case '?':
			n = &Node{Op: OpOptional, Sub: []*Node{n}}
		case '*':
			n = &Node{Op: OpStar, Sub: []*Node{n}}
		case '+':
			n = &Node{Op: OpPlus, Sub: []*Node{n}}
		default:
			return n, nil
		}
		p.pos++
	}
}

func (p *parser) parseAtom() (*Node, error) {
	if p.eof() {
		return nil, errors.New("unexpected end of pattern")
	}
	switch c := p.peek(); {
	case c == '"':
		return p.parseQuoted()
	case isIdentByte(c):
		start := p.pos
		for !p.eof() && isIdentByte(p.peek()) {
			p.pos++
		}
		return &Node{Op: OpLiteral, Lit: []byte(p.src[start:p.pos])}, nil
	case c == '.':
		p.pos++
		return &Node{Op: OpDot}, nil
	case c == '^':
		p.pos++
		return &Node{Op: OpStart}, nil
	case c == '$':
		p.pos++
		return &Node{Op: OpEnd}, nil
	case c == '(':
		return p.parseGroup()
	default:
		return nil, errors.Errorf("unexpected %q at offset %d", c, p.pos)
	}
}

// parseGroup parses "(...)" and the lookaround forms "(?=...)", "(?!...)",
// "(?<=...)" and "(?<!...)".
func (p *parser) parseGroup() (*Node, error) {
	open := p.pos
	p.pos++ // '('

	op := Op(0)
	wrap := false
	switch {
	case strings.HasPrefix(p.src[p.pos:], "?<="):
		op, wrap = OpLookBehind, true
		p.pos += 3
	case strings.HasPrefix(p.src[p.pos:], "?<!"):
		op, wrap = OpNegLookBehind, true
		p.pos += 3
	case strings.HasPrefix(p.src[p.pos:], "?="):
		op, wrap = OpLookAhead, true
		p.pos += 2
	case strings.HasPrefix(p.src[p.pos:], "?!"):
		op, wrap = OpNegLookAhead, true
		p.pos += 2
	}

	inner, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.eof() || p.peek() != ')' {
		return nil, errors.Errorf("unclosed group at offset %d", open)
	}
	p.pos++

	if wrap {
		return &Node{Op: op, Sub: []*Node{inner}}, nil
	}
	return inner, nil
}

// parseQuoted parses a double-quoted literal with \\, \", \n, \t, \r and
// \xHH escapes.
func (p *parser) parseQuoted() (*Node, error) {
	open := p.pos
	p.pos++ // '"'
	var lit []byte
	for {
		if p.eof() {
			return nil, errors.Errorf("unclosed literal at offset %d", open)
		}
		c := p.peek()
		p.pos++
		switch c {
		case '"':
			return &Node{Op: OpLiteral, Lit: lit}, nil
		case '\\':
			b, err := p.parseEscape()
			if err != nil {
				return nil, err
			}
			lit = append(lit, b)
		default:
			lit = append(lit, c)
		}
	}
}

func (p *parser) parseEscape() (byte, error) {
	if p.eof() {
		return 0, errors.New("dangling escape at end of pattern")
	}
	c := p.peek()
	p.pos++
	switch c {
	case '\\', '"':
		return c, nil
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case 'x':
		if p.pos+2 > len(p.src) {
			return 0, errors.Errorf("truncated hex escape at offset %d", p.pos-2)
		}
		hi, okHi := hexDigit(p.src[p.pos])
		lo, okLo := hexDigit(p.src[p.pos+1])
		if !okHi || !okLo {
			return 0, errors.Errorf("invalid hex escape at offset %d", p.pos-2)
		}
		p.pos += 2
		return hi<<4 | lo, nil
	default:
		return 0, errors.Errorf("unknown escape %q at offset %d", c, p.pos-2)
	}
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
