// Package typeenc reads the runtime type encodings attached to live members,
// e.g. "v24@0:8i16", and extracts a call signature from them.
package typeenc

import (
	"errors"
	"strings"
)

// Errors
var (
	ErrUnobtainable    = errors.New("typeenc: no type encoding")
	ErrComposite       = errors.New("typeenc: composite types are not supported")
	ErrInvalidEncoding = errors.New("typeenc: invalid type encoding")
	ErrUnexpectedEnd   = errors.New("typeenc: unexpected end of encoding")
)

const (
	qualifiers  = "rnNoORV"
	simpleCodes = "cislqCISLQfdBv*#:?"
)

// Signature is the call shape of a member: one return element followed by
// the argument elements, each in its encoded form without frame offsets.
type Signature struct {
	Return string
	Args   []string
}

// NumArgs returns the number of argument elements.
func (s *Signature) NumArgs() int { return len(s.Args) }

// HasComposite reports whether enc contains a structure or union marker.
func HasComposite(enc string) bool {
	return strings.ContainsAny(enc, "{(")
}

// Parse extracts the signature from a member type encoding.
// Encodings containing composite markers are rejected before any parsing.
func Parse(enc string) (*Signature, error) {
	if enc == "" {
		return nil, ErrUnobtainable
	}
	if HasComposite(enc) {
		return nil, ErrComposite
	}

	r := &reader{input: enc}
	ret, err := r.element()
	if err != nil {
		return nil, err
	}

	sig := &Signature{Return: ret}
	for !r.done() {
		arg, err := r.element()
		if err != nil {
			return nil, err
		}
		sig.Args = append(sig.Args, arg)
	}
	return sig, nil
}

type reader struct {
	input string
	pos   int
}

func (r *reader) done() bool { return r.pos >= len(r.input) }

func (r *reader) peek() byte {
	if r.done() {
		return 0
	}
	return r.input[r.pos]
}

// element reads one type plus its trailing frame offset.
func (r *reader) element() (string, error) {
	for !r.done() && strings.IndexByte(qualifiers, r.peek()) >= 0 {
		r.pos++
	}
	start := r.pos
	if err := r.typ(); err != nil {
		return "", err
	}
	t := r.input[start:r.pos]
	r.digits()
	return t, nil
}

func (r *reader) typ() error {
	if r.done() {
		return ErrUnexpectedEnd
	}
	c := r.input[r.pos]
	r.pos++

	switch {
	case c == '^':
		return r.typ()

	case c == '@':
		switch r.peek() {
		case '?':
			r.pos++
		case '"':
			end := strings.IndexByte(r.input[r.pos+1:], '"')
			if end < 0 {
				return ErrUnexpectedEnd
			}
			r.pos += end + 2
		}
		return nil

	case c == '[':
		if r.digits() == 0 {
			return ErrInvalidEncoding
		}
		if err := r.typ(); err != nil {
			return err
		}
		if r.peek() != ']' {
			return ErrInvalidEncoding
		}
		r.pos++
		return nil

	case strings.IndexByte(simpleCodes, c) >= 0:
		return nil

	default:
		return ErrInvalidEncoding
	}
}

func (r *reader) digits() int {
	n := 0
	for !r.done() && r.peek() >= '0' && r.peek() <= '9' {
		r.pos++
		n++
	}
	return n
}
