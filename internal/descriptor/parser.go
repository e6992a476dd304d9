// Package descriptor parses textual type descriptors such as "I", "[[J" and
// "Lcom.example.Foo;" into a small AST.
package descriptor

import (
	"errors"
	"fmt"
	"strings"
)

// Errors
var (
	ErrUnexpectedEnd = errors.New("descriptor: unexpected end of input")
	ErrInvalidCode   = errors.New("descriptor: invalid type code")
	ErrUnterminated  = errors.New("descriptor: unterminated reference type")
	ErrEmptyName     = errors.New("descriptor: empty reference type name")
	ErrTrailingInput = errors.New("descriptor: trailing input")
)

// Primitive type codes.
const (
	CodeBoolean byte = 'Z'
	CodeByte    byte = 'B'
	CodeChar    byte = 'C'
	CodeShort   byte = 'S'
	CodeInt     byte = 'I'
	CodeLong    byte = 'J'
	CodeFloat   byte = 'F'
	CodeDouble  byte = 'D'
	CodeVoid    byte = 'V'
)

// IsPrimitiveCode reports whether c is a primitive type code.
func IsPrimitiveCode(c byte) bool {
	return strings.IndexByte("ZBCSIJFDV", c) >= 0
}

// ParseError identifies the descriptor that failed to parse.
type ParseError struct {
	Input  string // Whole input being parsed
	Offset int    // Position where parsing of the offending descriptor began
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d of %q", e.Err, e.Input[e.Offset:], e.Offset, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parser holds the cursor over a descriptor string.
type Parser struct {
	input string
	pos   int
}

// NewParser creates a parser positioned at the start of input.
func NewParser(input string) *Parser {
	return &Parser{input: input}
}

// Done reports whether the whole input has been consumed.
func (p *Parser) Done() bool {
	return p.pos >= len(p.input)
}

// Offset returns the cursor position.
func (p *Parser) Offset() int {
	return p.pos
}

// Next parses exactly one descriptor at the cursor and advances past it.
// On failure the cursor is left where the descriptor began.
func (p *Parser) Next() (Node, error) {
	start := p.pos
	n, err := p.parseOne()
	if err != nil {
		p.pos = start
		return nil, &ParseError{Input: p.input, Offset: start, Err: err}
	}
	return n, nil
}

func (p *Parser) parseOne() (Node, error) {
	if p.Done() {
		return nil, ErrUnexpectedEnd
	}

	c := p.consume()
	switch {
	case c == '[':
		elem, err := p.parseOne()
		if err != nil {
			return nil, err
		}
		return &Array{Elem: elem}, nil

	case c == 'L':
		end := strings.IndexByte(p.input[p.pos:], ';')
		if end < 0 {
			return nil, ErrUnterminated
		}
		if end == 0 {
			return nil, ErrEmptyName
		}
		name := p.input[p.pos : p.pos+end]
		p.pos += end + 1
		return &Reference{Name: name}, nil

	case IsPrimitiveCode(c):
		return &Primitive{Code: c}, nil

	default:
		return nil, ErrInvalidCode
	}
}

func (p *Parser) consume() byte {
	c := p.input[p.pos]
	p.pos++
	return c
}

// ParseOne parses input as exactly one descriptor.
func ParseOne(input string) (Node, error) {
	p := NewParser(input)
	n, err := p.Next()
	if err != nil {
		return nil, err
	}
	if !p.Done() {
		return nil, &ParseError{Input: input, Offset: p.pos, Err: ErrTrailingInput}
	}
	return n, nil
}

// ParseAll parses a concatenated descriptor list, consuming input to exhaustion.
// An empty input yields an empty list. Any failure aborts the whole list.
func ParseAll(input string) ([]Node, error) {
	var nodes []Node
	p := NewParser(input)
	for !p.Done() {
		n, err := p.Next()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
