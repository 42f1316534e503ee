// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/jot/ast"
)

func TestDotSetGetRemove(t *testing.T) {
	root := ast.NewObject().Object()

	// Setting a dotted path creates the missing intermediate objects.
	if err := root.DotSetNumber("a.b.c", 7); err != nil {
		t.Fatalf("DotSet a.b.c: %v", err)
	}
	if got := root.DotGetNumber("a.b.c"); got != 7 {
		t.Errorf("DotGet a.b.c: got %v, want 7", got)
	}
	if got := root.GetObject("a"); got == nil {
		t.Fatal(`Member "a": want object, got absent`)
	}
	if got := root.GetObject("a").GetObject("b"); got == nil {
		t.Fatal(`Member "a.b": want object, got absent`)
	}

	// A dotted set through existing intermediates reuses them.
	if err := root.DotSetString("a.b.d", "x"); err != nil {
		t.Fatalf("DotSet a.b.d: %v", err)
	}
	if got := root.GetObject("a").GetObject("b").Len(); got != 2 {
		t.Errorf(`Members of "a.b": got %d, want 2`, got)
	}

	// Replacing through a dotted path behaves like Set.
	if err := root.DotSetNumber("a.b.c", 9); err != nil {
		t.Fatalf("DotSet a.b.c again: %v", err)
	}
	if got := root.DotGetNumber("a.b.c"); got != 9 {
		t.Errorf("DotGet a.b.c: got %v, want 9", got)
	}

	// Removal leaves the emptied intermediates in place.
	if err := root.DotRemove("a.b.c"); err != nil {
		t.Fatalf("DotRemove a.b.c: %v", err)
	}
	if err := root.DotRemove("a.b.d"); err != nil {
		t.Fatalf("DotRemove a.b.d: %v", err)
	}
	b := root.DotGetObject("a.b")
	if b == nil {
		t.Fatal(`Member "a.b": want (empty) object, got absent`)
	}
	if got := b.Len(); got != 0 {
		t.Errorf(`Members of "a.b": got %d, want 0`, got)
	}
}

func TestDotGetMissing(t *testing.T) {
	v, err := ast.ParseString(`{"a": {"b": {"c": true}}, "n": 3}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	root := v.Object()

	if !root.DotGetBool("a.b.c") {
		t.Error("DotGet a.b.c: got false, want true")
	}

	// Any missing or non-object step makes the whole lookup absent.
	for _, path := range []string{"a.x.c", "x.b.c", "a.b.c.d", "n.x", "a.b.x"} {
		if got := root.DotGet(path); got != nil {
			t.Errorf("DotGet %q: got %v, want absent", path, got.Kind())
		}
	}

	// Typed dotted getters return neutral defaults for absent paths.
	if got := root.DotGetString("a.x"); got != "" {
		t.Errorf("DotGetString a.x: got %q", got)
	}
	if got := root.DotGetNumber("a.x"); got != 0 {
		t.Errorf("DotGetNumber a.x: got %v", got)
	}
	if root.DotGetArray("a.x") != nil || root.DotGetObject("a.x") != nil {
		t.Error("DotGet containers a.x: want nil")
	}
}

func TestDotSetThroughNonObject(t *testing.T) {
	v, err := ast.ParseString(`{"a": 5}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	root := v.Object()

	// "a" exists but is a number, so no intermediate can be created.
	if err := root.DotSetNumber("a.b", 1); err == nil {
		t.Error("DotSet a.b: want error, got success")
	}
	if got := root.GetNumber("a"); got != 5 {
		t.Errorf(`Member "a": got %v, want 5 (unchanged)`, got)
	}
}

func TestDotRemoveMissing(t *testing.T) {
	v, err := ast.ParseString(`{"a": {"b": 1}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	root := v.Object()

	for _, path := range []string{"a.x", "x.b", "a.b.c"} {
		if err := root.DotRemove(path); err == nil {
			t.Errorf("DotRemove %q: want error, got success", path)
		}
	}
	if got := root.DotGetNumber("a.b"); got != 1 {
		t.Errorf("DotGet a.b: got %v, want 1 (unchanged)", got)
	}
}

func TestDotSetBoolNull(t *testing.T) {
	root := ast.NewObject().Object()
	if err := root.DotSetBool("x.flag", true); err != nil {
		t.Fatalf("DotSetBool: %v", err)
	}
	if err := root.DotSetNull("x.nothing"); err != nil {
		t.Fatalf("DotSetNull: %v", err)
	}
	if !root.DotGetBool("x.flag") {
		t.Error("DotGet x.flag: got false, want true")
	}
	if got := root.DotGet("x.nothing").Kind(); got != ast.KindNull {
		t.Errorf("DotGet x.nothing: got %v, want null", got)
	}
}
