// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jot

import "bytes"

// StripComments replaces the text of /* block */ and // line comments in data
// with spaces, in place. Line comments extend through the newline that ends
// them; a block comment with no terminator leaves the rest of the buffer
// unmodified. Comment openers inside string literals are not treated as
// comments.
//
// Because every blanked byte is replaced by exactly one space, the offsets of
// all surrounding input are preserved.
func StripComments(data []byte) {
	stripComment(data, "/*", "*/")
	stripComment(data, "//", "\n")
}

// stripComment blanks spans of data delimited by the start and end tokens.
// It tracks string literals so that delimiters inside strings are left alone.
// An unescaped backslash keeps the byte that follows it from opening or
// closing a string; it does not keep that byte from starting a comment.
func stripComment(data []byte, start, end string) {
	var inString, escaped bool
	for i := 0; i < len(data); i++ {
		ch := data[i]
		if ch == '\\' && !escaped {
			escaped = true
			continue
		} else if ch == '"' && !escaped {
			inString = !inString
		} else if !inString && hasPrefix(data[i:], start) {
			blank(data[i : i+len(start)])
			rest := data[i+len(start):]
			n := bytes.Index(rest, []byte(end))
			if n < 0 {
				return // no terminator: leave the remainder unchanged
			}
			blank(rest[:n+len(end)])
			i += len(start) + n + len(end) - 1
		}
		escaped = false
	}
}

func blank(data []byte) {
	for i := range data {
		data[i] = ' '
	}
}

func hasPrefix(data []byte, s string) bool {
	return len(data) >= len(s) && string(data[:len(s)]) == s
}
