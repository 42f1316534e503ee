// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A \uXXXX
// escape naming a high surrogate must be followed immediately by a \uYYYY
// escape naming a low surrogate; the pair decodes to a single supplementary
// code point. Unquote reports an error for an invalid or incomplete escape,
// a lone or misordered surrogate, an unescaped control byte, and the \u0000
// escape (string contents must be NUL-free).
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			if err := checkVerbatim(src); err != nil {
				return nil, err
			}
			return mem.Append(dec, src), nil
		}
		if err := checkVerbatim(src.SliceTo(i)); err != nil {
			return nil, err
		}
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		ch := src.At(0)
		src = src.SliceFrom(1)
		switch ch {
		case '"', '\\', '/':
			dec = append(dec, ch)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, rest, err := decodeRune(src)
			if err != nil {
				return nil, err
			}
			var rbuf [4]byte
			n := utf8.EncodeRune(rbuf[:], r)
			dec = append(dec, rbuf[:n]...)
			src = rest
		default:
			return nil, fmt.Errorf("invalid %q after escape", ch)
		}
	}
	return dec, nil
}

// decodeRune decodes the code point of a \u escape whose leading backslash
// and "u" have already been consumed, combining surrogate pairs. It returns
// the rune and the unconsumed remainder of src.
func decodeRune(src mem.RO) (rune, mem.RO, error) {
	cp, err := parseHex4(src)
	if err != nil {
		return 0, src, err
	}
	src = src.SliceFrom(4)
	switch {
	case cp == 0:
		return 0, src, errors.New("string contains NUL")
	case cp >= 0xDC00 && cp <= 0xDFFF:
		return 0, src, fmt.Errorf("unpaired low surrogate %04X", cp)
	case cp >= 0xD800 && cp <= 0xDBFF:
		// A high surrogate must be followed by \uYYYY encoding a low
		// surrogate; the pair encodes a single supplementary code point.
		if src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
			return 0, src, fmt.Errorf("unpaired high surrogate %04X", cp)
		}
		low, err := parseHex4(src.SliceFrom(2))
		if err != nil {
			return 0, src, err
		}
		if low < 0xDC00 || low > 0xDFFF {
			return 0, src, fmt.Errorf("invalid low surrogate %04X", low)
		}
		r := 0x10000 + (((cp - 0xD800) << 10) | (low - 0xDC00))
		return rune(r), src.SliceFrom(6), nil
	default:
		return rune(cp), src, nil
	}
}

// parseHex4 decodes exactly four hexadecimal digits from the front of data.
func parseHex4(data mem.RO) (int64, error) {
	if data.Len() < 4 {
		return 0, errors.New("incomplete Unicode escape")
	}
	var v int64
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}

// checkVerbatim reports an error if src contains a byte that may not appear
// unescaped in a JSON string.
func checkVerbatim(src mem.RO) error {
	for i := 0; i < src.Len(); i++ {
		if b := src.At(i); b < 0x20 {
			return fmt.Errorf("unescaped control %q", b)
		}
	}
	return nil
}
