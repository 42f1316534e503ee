// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/creachadair/jot/internal/escape"

	"go4.org/mem"
)

// Serialization is two-pass: a size pass computes the exact number of bytes
// compact output will occupy, then an emit pass writes into storage of that
// size. The reported size always includes one byte for a NUL terminator, so
// that a buffer of SerializeSize bytes can be handed to callers expecting a
// terminated C-style string; the terminator is not part of the JSON text.

// errNotFinite is reported when a tree contains a NaN or infinite number,
// neither of which has a JSON representation.
var errNotFinite = errors.New("number is not finite")

// Serialize renders v as compact JSON text in newly allocated storage.
func Serialize(v *Value) ([]byte, error) {
	size, err := SerializeSize(v)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if err := SerializeInto(v, buf); err != nil {
		return nil, err
	}
	return buf[:size-1], nil
}

// SerializeString renders v as compact JSON text in a string.
func SerializeString(v *Value) (string, error) {
	text, err := Serialize(v)
	return string(text), err
}

// SerializeSize reports the number of bytes of storage required to serialize
// v, including one byte for a terminator. The serialized text is exactly
// SerializeSize(v)-1 bytes.
func SerializeSize(v *Value) (int, error) {
	size, err := sizeValue(v)
	return size + 1, err
}

// SerializeInto renders v as compact JSON text into buf, which must have
// room for at least SerializeSize(v) bytes. On failure an error is reported
// and the contents of buf are unspecified.
func SerializeInto(v *Value, buf []byte) error {
	size, err := SerializeSize(v)
	if err != nil {
		return err
	}
	if len(buf) < size {
		return fmt.Errorf("buffer too small: have %d bytes, need %d", len(buf), size)
	}
	out, err := appendValue(buf[:0], v)
	if err != nil {
		return err
	}
	buf[len(out)] = 0 // terminator
	return nil
}

// sizeValue computes the serialized size of v in bytes, not counting the
// terminator.
func sizeValue(v *Value) (int, error) {
	switch v.Kind() {
	case KindArray:
		size := 2 // "[" and "]"
		if n := v.arr.Len(); n > 0 {
			size += n - 1 // "," between elements
		}
		for _, elt := range v.arr.items {
			n, err := sizeValue(elt)
			if err != nil {
				return 0, err
			}
			size += n
		}
		return size, nil
	case KindObject:
		size := 2 // "{" and "}"
		if n := v.obj.Len(); n > 0 {
			size += 2*n - 1 // ":" after each name, "," between members
		}
		for i, name := range v.obj.names {
			size += escape.Len(mem.S(name)) + 2 // name and quotes
			n, err := sizeValue(v.obj.values[i])
			if err != nil {
				return 0, err
			}
			size += n
		}
		return size, nil
	case KindString:
		return escape.Len(mem.S(v.str)) + 2, nil // string and quotes
	case KindBool:
		if v.b {
			return 4, nil // len("true")
		}
		return 5, nil // len("false")
	case KindNumber:
		var scratch [32]byte
		text, err := appendNumber(scratch[:0], v.num)
		if err != nil {
			return 0, err
		}
		return len(text), nil
	case KindNull:
		return 4, nil // len("null")
	default:
		return 0, errors.New("cannot serialize an invalid value")
	}
}

// appendValue appends the compact serialization of v to buf using the same
// decision rules as sizeValue.
func appendValue(buf []byte, v *Value) ([]byte, error) {
	switch v.Kind() {
	case KindArray:
		buf = append(buf, '[')
		for i, elt := range v.arr.items {
			if i > 0 {
				buf = append(buf, ',')
			}
			var err error
			buf, err = appendValue(buf, elt)
			if err != nil {
				return nil, err
			}
		}
		return append(buf, ']'), nil
	case KindObject:
		buf = append(buf, '{')
		for i, name := range v.obj.names {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendString(buf, name)
			buf = append(buf, ':')
			var err error
			buf, err = appendValue(buf, v.obj.values[i])
			if err != nil {
				return nil, err
			}
		}
		return append(buf, '}'), nil
	case KindString:
		return appendString(buf, v.str), nil
	case KindBool:
		if v.b {
			return append(buf, "true"...), nil
		}
		return append(buf, "false"...), nil
	case KindNumber:
		return appendNumber(buf, v.num)
	case KindNull:
		return append(buf, "null"...), nil
	default:
		return nil, errors.New("cannot serialize an invalid value")
	}
}

// appendString appends the quoted and escaped form of s to buf.
func appendString(buf []byte, s string) []byte {
	buf = append(buf, '"')
	buf = escape.Append(buf, mem.S(s))
	return append(buf, '"')
}

// appendNumber appends the serialized form of num to buf. A number equal to
// its truncation to a signed 32-bit integer is written in integer form; all
// other finite numbers use fixed-point form with six fractional digits.
//
// The 32-bit integer domain matches the library's historical output format.
// Whole numbers outside it, such as 1e10, take the fixed-point form even
// though an integer rendering exists.
func appendNumber(buf []byte, num float64) ([]byte, error) {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return nil, errNotFinite
	}
	if num == math.Trunc(num) && num >= math.MinInt32 && num <= math.MaxInt32 {
		return strconv.AppendInt(buf, int64(num), 10), nil
	}
	return strconv.AppendFloat(buf, num, 'f', 6, 64), nil
}
