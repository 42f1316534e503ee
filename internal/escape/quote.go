// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

// escByte maps each byte that must be escaped in a JSON string to the letter
// that follows the backslash in its escaped form. Bytes that map to zero are
// written verbatim.
var escByte = [...]byte{
	'"':  '"',
	'\\': '\\',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

// Append appends the escaped content of src to dst and returns the updated
// slice. Quotation marks are not added. Only the characters in escByte are
// escaped; all other bytes, including non-ASCII, are copied verbatim on the
// assumption that src is already valid UTF-8.
func Append(dst []byte, src mem.RO) []byte {
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if int(b) < len(escByte) && escByte[b] != 0 {
			dst = append(dst, '\\', escByte[b])
		} else {
			dst = append(dst, b)
		}
	}
	return dst
}

// Len reports the number of bytes Append would write for src, not counting
// quotation marks.
func Len(src mem.RO) int {
	n := src.Len()
	for i := 0; i < src.Len(); i++ {
		if b := src.At(i); int(b) < len(escByte) && escByte[b] != 0 {
			n++
		}
	}
	return n
}
