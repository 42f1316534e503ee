// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/jot/ast"
	"github.com/creachadair/mds/mtest"
)

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  ast.Kind
	}{
		{nil, ast.KindNull},
		{true, ast.KindBool},
		{false, ast.KindBool},
		{3, ast.KindNumber},
		{int64(-5), ast.KindNumber},
		{2.25, ast.KindNumber},
		{"hello", ast.KindString},
		{ast.NewArray(), ast.KindArray},
	}
	for _, test := range tests {
		if got := ast.ToValue(test.input).Kind(); got != test.want {
			t.Errorf("ToValue %v: got %v, want %v", test.input, got, test.want)
		}
	}

	mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
	mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
	mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
}

func TestClone(t *testing.T) {
	v, err := ast.ParseString(`{"a": [1, {"b": "text"}, null], "c": true, "d": 2.5}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cp := v.Clone()
	if !ast.Equal(v, cp) {
		t.Fatal("Clone is not equal to the original")
	}

	// Mutating the copy must not affect the original, at any depth.
	if err := cp.Object().SetNumber("c", 17); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := cp.Object().GetArray("a").GetObject(1).SetString("b", "changed"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := cp.Object().GetArray("a").ReplaceNumber(0, 99); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if !v.Object().GetBool("c") {
		t.Error(`Original "c" changed by mutating the copy`)
	}
	if got := v.Object().GetArray("a").GetObject(1).GetString("b"); got != "text" {
		t.Errorf(`Original "a[1].b": got %q, want "text"`, got)
	}
	if got := v.Object().GetArray("a").GetNumber(0); got != 1 {
		t.Errorf(`Original "a[0]": got %v, want 1`, got)
	}

	// Cloning nil is nil.
	var nv *ast.Value
	if got := nv.Clone(); got != nil {
		t.Errorf("Clone of nil: got %v, want nil", got.Kind())
	}
}

func TestEqual(t *testing.T) {
	mustParse := func(s string) *ast.Value {
		t.Helper()
		v, err := ast.ParseString(s)
		if err != nil {
			t.Fatalf("Parse %#q: %v", s, err)
		}
		return v
	}

	samples := []*ast.Value{
		mustParse(`{}`),
		mustParse(`[]`),
		mustParse(`{"a": 1, "b": [true, null]}`),
		mustParse(`[1, "two", false, {"three": 3}]`),
		ast.NewString("x"),
		ast.NewNumber(0.5),
		ast.NewBool(true),
		ast.NewNull(),
		nil,
	}

	// Equality is reflexive, and distinct samples are unequal.
	for i, a := range samples {
		if !ast.Equal(a, a) {
			t.Errorf("Sample %d: not equal to itself", i)
		}
		for j, b := range samples {
			if i == j {
				continue
			}
			if ast.Equal(a, b) {
				t.Errorf("Samples %d and %d: unexpectedly equal", i, j)
			}
			// Symmetry on the negative side too.
			if ast.Equal(b, a) {
				t.Errorf("Samples %d and %d: unexpectedly equal (reversed)", j, i)
			}
		}
	}

	// Structurally identical trees built separately are equal.
	if !ast.Equal(mustParse(`{"x":[1,2]}`), mustParse(`{"x":[1,2]}`)) {
		t.Error("Identical trees: want equal")
	}

	// Objects compare by name binding, not member position.
	if !ast.Equal(mustParse(`{"a":1,"b":2}`), mustParse(`{"b":2,"a":1}`)) {
		t.Error("Reordered objects: want equal")
	}

	// Arrays compare positionally.
	if ast.Equal(mustParse(`[1,2]`), mustParse(`[2,1]`)) {
		t.Error("Reordered arrays: want unequal")
	}
}

func TestEqualNumbers(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{1, 1, true},
		{1, 1 + 5e-7, true}, // within epsilon
		{1, 1.000002, false},
		{-2.5, -2.5, true},
		{0, 1e-7, true},
		{100, 101, false},
	}
	for _, test := range tests {
		got := ast.Equal(ast.NewNumber(test.a), ast.NewNumber(test.b))
		if got != test.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", test.a, test.b, got, test.want)
		}
		// Symmetry.
		if rev := ast.Equal(ast.NewNumber(test.b), ast.NewNumber(test.a)); rev != got {
			t.Errorf("Equal(%v, %v): got %v, want %v (symmetry)", test.b, test.a, rev, got)
		}
	}
}

func TestValidate(t *testing.T) {
	mustParse := func(s string) *ast.Value {
		t.Helper()
		v, err := ast.ParseString(s)
		if err != nil {
			t.Fatalf("Parse %#q: %v", s, err)
		}
		return v
	}

	schema := mustParse(`{"name": null, "age": 0}`)
	tests := []struct {
		schema, value *ast.Value
		want          bool
	}{
		// A null schema accepts anything, including mismatched variants.
		{ast.NewNull(), mustParse(`{"x": 1}`), true},
		{ast.NewNull(), ast.NewString("s"), true},
		{ast.NewNull(), ast.NewNull(), true},

		// Scalar schemas check the variant only, not the content.
		{ast.NewString("pattern"), ast.NewString("anything"), true},
		{ast.NewNumber(0), ast.NewNumber(42), true},
		{ast.NewBool(false), ast.NewBool(true), true},
		{ast.NewString(""), ast.NewNumber(1), false},

		// Objects: all schema members must be present and conforming;
		// extras in the value are fine.
		{schema, mustParse(`{"name": "x", "age": 30, "extra": true}`), true},
		{schema, mustParse(`{"name": "x"}`), false},
		{schema, mustParse(`{"name": 3, "age": 30}`), true}, // name: null accepts a number
		{schema, mustParse(`{"age": 30, "also": 1}`), false},
		{mustParse(`{}`), mustParse(`{"anything": [1]}`), true},
		{schema, mustParse(`[1]`), false},

		// Arrays: the first schema element constrains every value element.
		{mustParse(`[null]`), mustParse(`[1, "x", true]`), true},
		{mustParse(`[]`), mustParse(`[1, "x"]`), true},
		{mustParse(`[0]`), mustParse(`[1, 2, 3]`), true},
		{mustParse(`[0]`), mustParse(`[1, "x"]`), false},
		{mustParse(`[{"id": 0}]`), mustParse(`[{"id": 1, "n": "a"}, {"id": 2}]`), true},
		{mustParse(`[{"id": 0}]`), mustParse(`[{"id": 1}, {"n": "a"}]`), false},

		// Nil arguments conform to nothing.
		{nil, ast.NewNull(), false},
		{ast.NewNull(), nil, false},
		{nil, nil, false},
	}
	for i, test := range tests {
		if got := ast.Validate(test.schema, test.value); got != test.want {
			t.Errorf("Case %d: Validate: got %v, want %v", i, got, test.want)
		}
	}
}
