// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/jot/ast"
)

func TestFileRoundTrip(t *testing.T) {
	v, err := ast.ParseString(`{"config":{"retries":3,"verbose":true},"tags":["a","b"]}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := ast.WriteFile(v, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	back, err := ast.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if !ast.Equal(v, back) {
		t.Error("File round trip changed the tree")
	}

	// The file contains the compact serialization with no terminator byte.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text, err := ast.Serialize(v)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if string(data) != string(text) {
		t.Errorf("File contents: got %q, want %q", data, text)
	}
}

func TestParseFileWithComments(t *testing.T) {
	const input = `{
	  // retry budget
	  "retries": 3, /* inline */
	  "verbose": true
	}`
	path := filepath.Join(t.TempDir(), "config.jsonc")
	if err := os.WriteFile(path, []byte(input), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := ast.ParseFile(path); err == nil {
		t.Error("ParseFile: want error for commented input, got success")
	}

	v, err := ast.ParseFileWithComments(path)
	if err != nil {
		t.Fatalf("ParseFileWithComments: %v", err)
	}
	if got := v.Object().GetNumber("retries"); got != 3 {
		t.Errorf(`Member "retries": got %v, want 3`, got)
	}
}

func TestFileErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nonesuch.json")
	if _, err := ast.ParseFile(missing); err == nil {
		t.Error("ParseFile missing: want error, got success")
	}
	if _, err := ast.ParseFileWithComments(missing); err == nil {
		t.Error("ParseFileWithComments missing: want error, got success")
	}

	// A tree that cannot be serialized is not written.
	bad := wrapArray(t, ast.NewNumber(math.NaN()))
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := ast.WriteFile(bad, path); err == nil {
		t.Error("WriteFile non-finite: want error, got success")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("WriteFile non-finite: file was created")
	}
}
