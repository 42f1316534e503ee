// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import "errors"

// An Object is an ordered collection of key-value members with unique names.
// Iteration order is insertion order until a member is removed; Remove moves
// the final member into the vacated slot, so removal does not preserve the
// positions of later members.
//
// The zero Object is empty and ready for use. A nil *Object is a valid
// receiver for all read methods.
type Object struct {
	names  []string
	values []*Value
}

// Len reports the number of members in o.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.names)
}

// Name reports the name of the member at index i, or "" if i is out of
// range.
func (o *Object) Name(i int) string {
	if o == nil || i < 0 || i >= len(o.names) {
		return ""
	}
	return o.names[i]
}

// Get returns the value of the member with the given name, or nil if no such
// member exists.
func (o *Object) Get(name string) *Value {
	if o == nil {
		return nil
	}
	for i, n := range o.names {
		if n == name {
			return o.values[i]
		}
	}
	return nil
}

// GetString returns the string value of the named member, or "".
func (o *Object) GetString(name string) string { return o.Get(name).String() }

// GetNumber returns the numeric value of the named member, or 0.
func (o *Object) GetNumber(name string) float64 { return o.Get(name).Number() }

// GetBool returns the truth value of the named member, or false.
func (o *Object) GetBool(name string) bool { return o.Get(name).Bool() }

// GetObject returns the object value of the named member, or nil.
func (o *Object) GetObject(name string) *Object { return o.Get(name).Object() }

// GetArray returns the array value of the named member, or nil.
func (o *Object) GetArray(name string) *Array { return o.Get(name).Array() }

// Add appends a new member to o. It reports ErrDuplicateMember without
// modifying o if a member with this name already exists, and ErrCapacity if
// the object is at its maximum size.
func (o *Object) Add(name string, value *Value) error {
	if o == nil || value == nil {
		return errors.New("nil object or value")
	}
	if o.Get(name) != nil {
		return ErrDuplicateMember
	}
	if len(o.names) == cap(o.names) {
		nc, ok := grownCapacity(cap(o.names), objectMaxCapacity)
		if !ok {
			return ErrCapacity
		}
		o.resize(nc)
	}
	o.names = append(o.names, name)
	o.values = append(o.values, value)
	return nil
}

// Set binds name to value, replacing the existing value of the member if one
// exists and appending a new member otherwise.
func (o *Object) Set(name string, value *Value) error {
	if o == nil || value == nil {
		return errors.New("nil object or value")
	}
	for i, n := range o.names {
		if n == name {
			o.values[i] = value
			return nil
		}
	}
	return o.Add(name, value)
}

// SetString binds name to a string value.
func (o *Object) SetString(name, s string) error { return o.Set(name, NewString(s)) }

// SetNumber binds name to a number value.
func (o *Object) SetNumber(name string, num float64) error { return o.Set(name, NewNumber(num)) }

// SetBool binds name to a Boolean value.
func (o *Object) SetBool(name string, b bool) error { return o.Set(name, NewBool(b)) }

// SetNull binds name to a null value.
func (o *Object) SetNull(name string) error { return o.Set(name, NewNull()) }

// Remove removes the member with the given name. To keep removal O(1) the
// final member is moved into the vacated slot, so the relative order of the
// remaining members is not preserved. It reports an error if no member with
// this name exists.
func (o *Object) Remove(name string) error {
	if o == nil {
		return errors.New("nil object")
	}
	last := len(o.names) - 1
	for i, n := range o.names {
		if n == name {
			if i != last {
				o.names[i] = o.names[last]
				o.values[i] = o.values[last]
			}
			o.names[last] = ""
			o.values[last] = nil
			o.names = o.names[:last]
			o.values = o.values[:last]
			return nil
		}
	}
	return errors.New("no such member")
}

// Clear removes all members from o, retaining its storage.
func (o *Object) Clear() {
	if o == nil {
		return
	}
	clear(o.names)
	clear(o.values)
	o.names = o.names[:0]
	o.values = o.values[:0]
}

// resize moves the members of o into storage with the given capacity.
func (o *Object) resize(capacity int) {
	names := make([]string, len(o.names), capacity)
	values := make([]*Value, len(o.values), capacity)
	copy(names, o.names)
	copy(values, o.values)
	o.names, o.values = names, values
}

// clip trims the storage of o to exactly its current length. The parser
// calls this once construction of an object is complete.
func (o *Object) clip() {
	if len(o.names) < cap(o.names) {
		o.resize(len(o.names))
	}
}
