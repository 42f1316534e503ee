// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"strings"
)

// Dotted paths address members of nested objects. A path of the form "a.b.c"
// names member "c" of the object at member "b" of the object at member "a"
// of the receiver. Path components cannot themselves contain dots, and only
// objects can appear at intermediate steps.

// DotGet returns the value at the given dotted path, or nil if any step of
// the path is missing or is not an object.
func (o *Object) DotGet(path string) *Value {
	head, rest, ok := strings.Cut(path, ".")
	if !ok {
		return o.Get(path)
	}
	return o.GetObject(head).DotGet(rest)
}

// DotGetString returns the string value at the given dotted path, or "".
func (o *Object) DotGetString(path string) string { return o.DotGet(path).String() }

// DotGetNumber returns the numeric value at the given dotted path, or 0.
func (o *Object) DotGetNumber(path string) float64 { return o.DotGet(path).Number() }

// DotGetBool returns the truth value at the given dotted path, or false.
func (o *Object) DotGetBool(path string) bool { return o.DotGet(path).Bool() }

// DotGetObject returns the object value at the given dotted path, or nil.
func (o *Object) DotGetObject(path string) *Object { return o.DotGet(path).Object() }

// DotGetArray returns the array value at the given dotted path, or nil.
func (o *Object) DotGetArray(path string) *Array { return o.DotGet(path).Array() }

// DotSet binds the given dotted path to value. Missing intermediate objects
// are created along the way; an intermediate that exists but is not an
// object is an error.
func (o *Object) DotSet(path string, value *Value) error {
	if o == nil || value == nil {
		return errors.New("nil object or value")
	}
	head, rest, ok := strings.Cut(path, ".")
	if !ok {
		return o.Set(path, value)
	}
	next := o.GetObject(head)
	if next == nil {
		nv := NewObject()
		// Add rather than Set: if the name is bound to a non-object, the
		// duplicate check fails and the existing value is left alone.
		if err := o.Add(head, nv); err != nil {
			return err
		}
		next = nv.Object()
	}
	return next.DotSet(rest, value)
}

// DotSetString binds the given dotted path to a string value.
func (o *Object) DotSetString(path, s string) error { return o.DotSet(path, NewString(s)) }

// DotSetNumber binds the given dotted path to a number value.
func (o *Object) DotSetNumber(path string, num float64) error { return o.DotSet(path, NewNumber(num)) }

// DotSetBool binds the given dotted path to a Boolean value.
func (o *Object) DotSetBool(path string, b bool) error { return o.DotSet(path, NewBool(b)) }

// DotSetNull binds the given dotted path to a null value.
func (o *Object) DotSetNull(path string) error { return o.DotSet(path, NewNull()) }

// DotRemove removes the member at the given dotted path. It reports an error
// if any step of the path is missing or is not an object. Intermediate
// objects emptied by the removal are left in place.
func (o *Object) DotRemove(path string) error {
	head, rest, ok := strings.Cut(path, ".")
	if !ok {
		return o.Remove(path)
	}
	next := o.GetObject(head)
	if next == nil {
		return errors.New("no such member")
	}
	return next.DotRemove(rest)
}
