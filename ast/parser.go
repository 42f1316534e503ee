// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jot"
)

// Parse parses a single JSON value from data. The top-level value must be an
// object or an array. Input after the first value is ignored. In case of
// error no value is returned, and syntax errors have concrete type
// [*jot.SyntaxError].
func Parse(data []byte) (*Value, error) {
	p := &parser{sc: jot.NewScanner(data)}
	if _, err := p.advance(jot.LBrace, jot.LSquare); err != nil {
		return nil, err
	}
	return p.parseValue(0)
}

// ParseString parses a single JSON value from s, as Parse.
func ParseString(s string) (*Value, error) { return Parse([]byte(s)) }

// ParseWithComments parses a single JSON value from data after blanking out
// C and C++ style comments. The input is not modified; stripping happens on
// a private copy, so error offsets refer to positions in the original input.
func ParseWithComments(data []byte) (*Value, error) {
	buf := append([]byte(nil), data...)
	jot.StripComments(buf)
	return Parse(buf)
}

// A parser consumes tokens from a scanner and builds a value tree. Nesting
// depth is tracked explicitly: any value whose depth exceeds maxNesting is
// rejected, bounding recursion on hostile input.
type parser struct {
	sc *jot.Scanner
}

// parseValue parses the value beginning at the current token.
func (p *parser) parseValue(depth int) (*Value, error) {
	if depth > maxNesting {
		return nil, p.failf("nesting exceeds %d levels", maxNesting)
	}
	switch tok := p.sc.Token(); tok {
	case jot.LBrace:
		return p.parseObject(depth + 1)
	case jot.LSquare:
		return p.parseArray(depth + 1)
	case jot.String:
		dec, err := jot.Unquote(p.sc.Text())
		if err != nil {
			return nil, p.failf("invalid string: %v", err)
		}
		return NewString(string(dec)), nil
	case jot.Number:
		num, err := strconv.ParseFloat(string(p.sc.Text()), 64)
		if err != nil {
			return nil, p.failf("invalid number %q", p.sc.Text())
		}
		return NewNumber(num), nil
	case jot.True:
		return NewBool(true), nil
	case jot.False:
		return NewBool(false), nil
	case jot.Null:
		return NewNull(), nil
	default:
		return nil, p.failf("unexpected %v", tok)
	}
}

// parseObject parses the members of an object.
// Precondition: token == LBrace.
func (p *parser) parseObject(depth int) (*Value, error) {
	out := NewObject()
	obj := out.Object()
	tok, err := p.advance(jot.RBrace, jot.String)
	if err != nil {
		return nil, err
	}
	if tok == jot.RBrace {
		return out, nil // empty object
	}
	for {
		// Parse a single member: "key": value
		key, err := jot.Unquote(p.sc.Text())
		if err != nil {
			return nil, p.failf("invalid member name: %v", err)
		}
		if _, err := p.advance(jot.Colon); err != nil {
			return nil, err
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		val, err := p.parseValue(depth)
		if err != nil {
			return nil, err
		}
		if err := obj.Add(string(key), val); err != nil {
			return nil, p.wrap(err)
		}

		// Check whether we have more members (",") or are done ("}").
		tok, err := p.advance(jot.RBrace, jot.Comma)
		if err != nil {
			return nil, err
		}
		if tok == jot.RBrace {
			break
		}
		if _, err := p.advance(jot.String); err != nil {
			return nil, err
		}
	}
	obj.clip()
	return out, nil
}

// parseArray parses the elements of an array.
// Precondition: token == LSquare.
func (p *parser) parseArray(depth int) (*Value, error) {
	out := NewArray()
	arr := out.Array()
	if tok, err := p.advance(); err != nil {
		return nil, err
	} else if tok == jot.RSquare {
		return out, nil // empty array
	}
	for {
		elt, err := p.parseValue(depth)
		if err != nil {
			return nil, err
		}
		if err := arr.Append(elt); err != nil {
			return nil, p.wrap(err)
		}

		tok, err := p.advance(jot.RSquare, jot.Comma)
		if err != nil {
			return nil, err
		}
		if tok == jot.RSquare {
			break
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
	}
	arr.clip()
	return out, nil
}

// advance moves the scanner to the next token. If expected tokens are given,
// a token not among them is an error. The end of input is always an error.
func (p *parser) advance(tokens ...jot.Token) (jot.Token, error) {
	if err := p.sc.Next(); err == io.EOF {
		return jot.Invalid, p.failf("%s", tokLabel(tokens, "end of input"))
	} else if err != nil {
		return jot.Invalid, err
	}
	tok := p.sc.Token()
	if len(tokens) != 0 && !slices.Contains(tokens, tok) {
		return tok, p.failf("%s", tokLabel(tokens, tok))
	}
	return tok, nil
}

func (p *parser) failf(msg string, args ...any) error {
	return &jot.SyntaxError{Offset: p.sc.Span().Pos, Message: fmt.Sprintf(msg, args...)}
}

func (p *parser) wrap(err error) error {
	return fmt.Errorf("at offset %d: %w", p.sc.Span().Pos, err)
}

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []jot.Token, got any) string {
	if len(tokens) == 0 {
		return fmt.Sprintf("unexpected %v", got)
	}
	var exp string
	if len(tokens) == 1 {
		exp = tokens[0].String()
	} else {
		last := len(tokens) - 1
		ss := make([]string, len(tokens)-1)
		for i, tok := range tokens[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + tokens[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
