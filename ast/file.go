// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"os"

	"github.com/creachadair/jot"
)

// File adapters. The parser and serializer operate on in-memory buffers;
// these wrappers only move bytes between those buffers and the filesystem.

// ParseFile parses a single JSON value from the contents of path.
func ParseFile(path string) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ParseFileWithComments parses a single JSON value from the contents of
// path, allowing C and C++ style comments.
func ParseFileWithComments(path string) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// The buffer is already a private copy; strip it in place.
	jot.StripComments(data)
	return Parse(data)
}

// WriteFile serializes v and writes the compact JSON text to path, creating
// or truncating the file.
func WriteFile(v *Value, path string) error {
	text, err := Serialize(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, text, 0644)
}
