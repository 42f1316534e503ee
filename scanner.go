// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jot

import (
	"errors"
	"fmt"
	"io"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Number               // number
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Scanner reads lexical tokens from a complete in-memory input.  Each call
// to Next advances the scanner to the next token, or reports an error.
type Scanner struct {
	in  []byte
	pos int // start offset of the current token
	cur int // scan offset, one past the end of the current token
	tok Token
}

// NewScanner constructs a new lexical scanner that consumes input from data.
// The scanner does not modify or retain ownership of data, but the slices
// returned by Text alias its storage.
func NewScanner(data []byte) *Scanner { return &Scanner{in: data} }

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF. Any other error has concrete
// type [*SyntaxError].
func (s *Scanner) Next() error {
	s.tok = Invalid
	for s.cur < len(s.in) && isSpace(s.in[s.cur]) {
		s.cur++
	}
	s.pos = s.cur
	if s.cur >= len(s.in) {
		return io.EOF
	}

	ch := s.in[s.cur]

	// Handle punctuation.
	if t, ok := selfDelim(ch); ok {
		s.cur++
		s.tok = t
		return nil
	}

	// Handle numbers.
	if ch == '-' || isDigit(ch) {
		return s.scanNumber()
	}

	// Handle string values.
	if ch == '"' {
		return s.scanString()
	}

	// Handle constants: true, false, null.
	var want mem.RO
	switch ch {
	case 't':
		s.tok = True
		want = mem.S("true")
	case 'f':
		s.tok = False
		want = mem.S("false")
	case 'n':
		s.tok = Null
		want = mem.S("null")
	default:
		return s.failf("unexpected %q", ch)
	}
	s.scanName()
	if got := mem.B(s.Text()); !got.Equal(want) {
		return s.failf("unknown constant %q", got.StringCopy())
	}
	return nil
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Text returns the undecoded text of the current token. The returned slice
// aliases the input buffer; the caller must not modify its contents.
func (s *Scanner) Text() []byte { return s.in[s.pos:s.cur] }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.cur} }

func (s *Scanner) scanString() error {
	s.cur++ // consume open quote
	for s.cur < len(s.in) {
		ch := s.in[s.cur]
		switch {
		case ch == '"':
			s.cur++
			s.tok = String
			return nil
		case ch == '\\':
			s.cur++
			if s.cur >= len(s.in) {
				return s.failf("incomplete escape sequence")
			}
			switch s.in[s.cur] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.cur++
			case 'u':
				s.cur++
				if err := s.readHex4(); err != nil {
					return s.failf("invalid Unicode escape: %w", err)
				}
			default:
				return s.failf("invalid %q after escape", s.in[s.cur])
			}
		case ch < ' ':
			return s.failf("unescaped control %q", ch)
		default:
			s.cur++
		}
	}
	return s.failf("unterminated string")
}

func (s *Scanner) scanNumber() error {
	start := s.cur
	if s.in[s.cur] == '-' {
		s.cur++
	}

	// Consume the integer part, which must not be empty.
	if s.digits() == 0 {
		return s.failf("want digit, got %s", s.describe())
	}

	// Check for extra leading zeroes, which are disallowed by the JSON spec.
	// That is: 0.12 is OK, 01.2 is not.
	if hasExtraLeadingZeroes(s.in[start:s.cur]) {
		return s.failf("extra leading zeroes")
	}

	// If a decimal point follows, consume a fractional part.
	if s.peek() == '.' {
		s.cur++
		if s.digits() == 0 {
			return s.failf("no digits after decimal point")
		}
	}

	// If an exponent follows, consume it.
	if ch := s.peek(); ch == 'e' || ch == 'E' {
		s.cur++
		if ch := s.peek(); ch == '-' || ch == '+' {
			s.cur++
		}
		if s.digits() == 0 {
			return s.failf("missing exponent digits")
		}
	}
	s.tok = Number
	return nil
}

// scanName consumes a run of lowercase letters for a constant token.
func (s *Scanner) scanName() {
	for s.cur < len(s.in) && isNameByte(s.in[s.cur]) {
		s.cur++
	}
}

// digits consumes a run of decimal digits and reports how many were seen.
func (s *Scanner) digits() (n int) {
	for s.cur < len(s.in) && isDigit(s.in[s.cur]) {
		s.cur++
		n++
	}
	return
}

// peek returns the next unconsumed input byte, or 0 at the end of input.
func (s *Scanner) peek() byte {
	if s.cur < len(s.in) {
		return s.in[s.cur]
	}
	return 0
}

// describe renders the next unconsumed input byte for an error message.
func (s *Scanner) describe() string {
	if s.cur < len(s.in) {
		return fmt.Sprintf("%q", s.in[s.cur])
	}
	return "end of input"
}

// readHex4 consumes exactly 4 hexadecimal digits from the input.
func (s *Scanner) readHex4() error {
	for i := 0; i < 4; i++ {
		if s.cur >= len(s.in) {
			return fmt.Errorf("want 4 hex digits, got %d", i)
		} else if !isHexDigit(s.in[s.cur]) {
			return fmt.Errorf("not a hex digit: %q", s.in[s.cur])
		}
		s.cur++
	}
	return nil
}

func (s *Scanner) failf(msg string, args ...any) error {
	err := fmt.Errorf(msg, args...)
	return &SyntaxError{Offset: s.cur, Message: err.Error(), err: errors.Unwrap(err)}
}

// SyntaxError is the concrete type of lexical and parse errors.
type SyntaxError struct {
	Offset  int    // byte offset in the input where the error occurred
	Message string // a human-readable description of the error

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

// isSpace reports whether ch is one of the whitespace bytes the grammar
// discards between tokens: space, TAB, LF, VT, FF, CR.
func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\v' || ch == '\f' || ch == '\r'
}

func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNameByte(ch byte) bool { return ch >= 'a' && ch <= 'z' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// hasExtraLeadingZeroes reports whether buf, the optional sign and integer
// digits of a number, has redundant leading zeroes, disallowed by the spec.
//
// OK: 0, -0, 1, -10 (the integer parts of 0, 0.1, -1.0, -0.1).
// Bad: 01, -01, 00 (the integer parts of 01.2, -01.0, 00.1).
func hasExtraLeadingZeroes(buf []byte) bool {
	if buf[0] == '-' {
		buf = buf[1:] // skip leading sign
	}
	if buf[0] == '0' {
		// A leading zero is OK if it's the only digit.
		return len(buf) > 1
	}
	return false
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Token, bool) {
	switch ch {
	case '{':
		return self[0], true
	case '}':
		return self[1], true
	case '[':
		return self[2], true
	case ']':
		return self[3], true
	case ',':
		return self[4], true
	case ':':
		return self[5], true
	}
	return Invalid, false
}
