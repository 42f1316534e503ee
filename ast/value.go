// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a mutable document tree for JSON values, a parser that
// constructs trees from JSON source, and a serializer that renders a tree
// back to compact JSON text.
//
// A tree is built out of Value nodes. Each Value holds exactly one of the six
// JSON variants: null, Boolean, number, string, array, or object. Values are
// created by the New* constructors or by Parse, and are mutated through the
// methods of Object and Array. A Value exclusively owns its children; use
// Clone to copy a subtree into an independent tree.
//
// The read API is tolerant: typed accessors called on a nil or wrong-variant
// value return the neutral value of the requested type (zero, false, the
// empty string, or a nil container) so that lookup chains need not check
// every step. Writers report errors instead.
package ast

import (
	"fmt"
	"math"
)

// A Kind identifies the variant of value stored in a Value.
type Kind int8

// Constants defining the valid Kind values. KindInvalid is the kind of the
// nil Value, reported for absent members and failed lookups.
const (
	KindInvalid Kind = iota // no value
	KindNull                // the null constant
	KindBool                // a Boolean constant
	KindNumber              // a binary64 floating-point number
	KindString              // a UTF-8 string
	KindArray               // an ordered sequence of values
	KindObject              // an ordered collection of key-value members
)

var kindStr = [...]string{
	KindInvalid: "invalid",
	KindNull:    "null",
	KindBool:    "boolean",
	KindNumber:  "number",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
}

func (k Kind) String() string {
	v := int(k)
	if v < 0 || v >= len(kindStr) {
		return kindStr[KindInvalid]
	}
	return kindStr[v]
}

// A Value is a single JSON value of any variant. The zero value of *Value
// (nil) is a valid receiver for all read methods, and reports KindInvalid.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  *Array
	obj  *Object
}

// NewNull constructs a null value.
func NewNull() *Value { return &Value{kind: KindNull} }

// NewBool constructs a Boolean value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// NewNumber constructs a number value.
func NewNumber(num float64) *Value { return &Value{kind: KindNumber, num: num} }

// NewString constructs a string value.
func NewString(s string) *Value { return &Value{kind: KindString, str: s} }

// NewArray constructs an empty array value.
func NewArray() *Value { return &Value{kind: KindArray, arr: new(Array)} }

// NewObject constructs an empty object value.
func NewObject() *Value { return &Value{kind: KindObject, obj: new(Object)} }

// ToValue converts a string, int, int64, float64, bool, nil, or *Value into
// a *Value. It panics if v does not have one of those types.
func ToValue(v any) *Value {
	switch t := v.(type) {
	case *Value:
		return t
	case nil:
		return NewNull()
	case bool:
		return NewBool(t)
	case int:
		return NewNumber(float64(t))
	case int64:
		return NewNumber(float64(t))
	case float64:
		return NewNumber(t)
	case string:
		return NewString(t)
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}

// Kind reports the variant of v. A nil Value reports KindInvalid.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindInvalid
	}
	return v.kind
}

// Bool reports the truth value of v, or false if v is not a Boolean.
func (v *Value) Bool() bool { return v.Kind() == KindBool && v.b }

// Number reports the numeric value of v, or 0 if v is not a number.
func (v *Value) Number() float64 {
	if v.Kind() == KindNumber {
		return v.num
	}
	return 0
}

// String reports the string content of v, or "" if v is not a string.
func (v *Value) String() string {
	if v.Kind() == KindString {
		return v.str
	}
	return ""
}

// Array reports the array content of v, or nil if v is not an array.
func (v *Value) Array() *Array {
	if v.Kind() == KindArray {
		return v.arr
	}
	return nil
}

// Object reports the object content of v, or nil if v is not an object.
func (v *Value) Object() *Object {
	if v.Kind() == KindObject {
		return v.obj
	}
	return nil
}

// Clone returns a deep copy of v that shares no mutable storage with the
// original. Cloning a nil Value returns nil.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	out := &Value{kind: v.kind, b: v.b, num: v.num, str: v.str}
	switch v.kind {
	case KindArray:
		out.arr = new(Array)
		for _, elt := range v.arr.items {
			if err := out.arr.Append(elt.Clone()); err != nil {
				panic(fmt.Sprintf("clone: %v", err))
			}
		}
	case KindObject:
		out.obj = new(Object)
		for i, name := range v.obj.names {
			// Re-adding through Add keeps insertion order and re-checks the
			// unique-name invariant on the copy.
			if err := out.obj.Add(name, v.obj.values[i].Clone()); err != nil {
				panic(fmt.Sprintf("clone: %v", err))
			}
		}
	}
	return out
}

// Equal reports whether a and b are structurally equal: the same variant
// with equal contents. Arrays must agree in order; objects must contain the
// same names bound to equal values, regardless of order. Numbers are equal
// when they differ by less than numberEpsilon. Two nil values are equal.
func Equal(a, b *Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindArray:
		aa, ba := a.arr, b.arr
		if len(aa.items) != len(ba.items) {
			return false
		}
		for i, elt := range aa.items {
			if !Equal(elt, ba.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		ao, bo := a.obj, b.obj
		if len(ao.names) != len(bo.names) {
			return false
		}
		for i, name := range ao.names {
			if !Equal(ao.values[i], bo.Get(name)) {
				return false
			}
		}
		return true
	case KindString:
		return a.str == b.str
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return math.Abs(a.num-b.num) < numberEpsilon
	default:
		// Two nulls, or two absent values.
		return true
	}
}
