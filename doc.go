// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jot implements the lexical layer of a small JSON library.
//
// # Scanning
//
// The Scanner type implements a lexical scanner over a complete in-memory
// JSON input. Construct a scanner from a byte slice and call its Next method
// to iterate over the input. Next advances to the next input token and
// returns nil, or reports an error:
//
//	s := jot.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other
// error indicates a lexical error in the input, and has concrete type
// [*SyntaxError].
//
// # Strings
//
// The Quote and Unquote functions convert between plain text and the JSON
// string encoding. Unquote decodes the full escape grammar, including
// surrogate pairs in \uXXXX escapes; Quote escapes exactly the characters
// the serializer escapes, and no others.
//
// # Comments
//
// JSON does not have comments, but configuration files often do.
// StripComments blanks C and C++ style comments out of a buffer in place,
// replacing their text with spaces so that the offsets of the surrounding
// input do not change. The syntax tree layer in the ast subpackage uses
// this to implement its "with comments" entry points; the strict parser
// never sees comment text.
//
// Parsing, serialization, and the value tree live in the ast subpackage.
package jot
