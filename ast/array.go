// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import "errors"

// An Array is an ordered sequence of values. Elements are addressed by
// position; Remove moves the final element into the vacated slot, so removal
// does not preserve the positions of later elements.
//
// The zero Array is empty and ready for use. A nil *Array is a valid
// receiver for all read methods.
type Array struct {
	items []*Value
}

// Len reports the number of elements in a.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// At returns the element at index i, or nil if i is out of range.
func (a *Array) At(i int) *Value {
	if a == nil || i < 0 || i >= len(a.items) {
		return nil
	}
	return a.items[i]
}

// GetString returns the string value of the element at index i, or "".
func (a *Array) GetString(i int) string { return a.At(i).String() }

// GetNumber returns the numeric value of the element at index i, or 0.
func (a *Array) GetNumber(i int) float64 { return a.At(i).Number() }

// GetBool returns the truth value of the element at index i, or false.
func (a *Array) GetBool(i int) bool { return a.At(i).Bool() }

// GetObject returns the object value of the element at index i, or nil.
func (a *Array) GetObject(i int) *Object { return a.At(i).Object() }

// GetArray returns the array value of the element at index i, or nil.
func (a *Array) GetArray(i int) *Array { return a.At(i).Array() }

// Append adds value at the end of a. It reports ErrCapacity if the array is
// at its maximum size.
func (a *Array) Append(value *Value) error {
	if a == nil || value == nil {
		return errors.New("nil array or value")
	}
	if len(a.items) == cap(a.items) {
		nc, ok := grownCapacity(cap(a.items), arrayMaxCapacity)
		if !ok {
			return ErrCapacity
		}
		a.resize(nc)
	}
	a.items = append(a.items, value)
	return nil
}

// AppendString adds a string value at the end of a.
func (a *Array) AppendString(s string) error { return a.Append(NewString(s)) }

// AppendNumber adds a number value at the end of a.
func (a *Array) AppendNumber(num float64) error { return a.Append(NewNumber(num)) }

// AppendBool adds a Boolean value at the end of a.
func (a *Array) AppendBool(b bool) error { return a.Append(NewBool(b)) }

// AppendNull adds a null value at the end of a.
func (a *Array) AppendNull() error { return a.Append(NewNull()) }

// Replace sets the element at index i to value, discarding its previous
// contents. It reports an error if i is out of range.
func (a *Array) Replace(i int, value *Value) error {
	if a == nil || value == nil {
		return errors.New("nil array or value")
	} else if i < 0 || i >= len(a.items) {
		return errors.New("index out of range")
	}
	a.items[i] = value
	return nil
}

// ReplaceString sets the element at index i to a string value.
func (a *Array) ReplaceString(i int, s string) error { return a.Replace(i, NewString(s)) }

// ReplaceNumber sets the element at index i to a number value.
func (a *Array) ReplaceNumber(i int, num float64) error { return a.Replace(i, NewNumber(num)) }

// ReplaceBool sets the element at index i to a Boolean value.
func (a *Array) ReplaceBool(i int, b bool) error { return a.Replace(i, NewBool(b)) }

// ReplaceNull sets the element at index i to a null value.
func (a *Array) ReplaceNull(i int) error { return a.Replace(i, NewNull()) }

// Remove removes the element at index i. To keep removal O(1) the final
// element is moved into the vacated slot, so the positions of the remaining
// elements are not preserved. It reports an error if i is out of range.
func (a *Array) Remove(i int) error {
	if a == nil || i < 0 || i >= len(a.items) {
		return errors.New("index out of range")
	}
	last := len(a.items) - 1
	if i != last {
		a.items[i] = a.items[last]
	}
	a.items[last] = nil
	a.items = a.items[:last]
	return nil
}

// Clear removes all elements from a, retaining its storage.
func (a *Array) Clear() {
	if a == nil {
		return
	}
	clear(a.items)
	a.items = a.items[:0]
}

// resize moves the elements of a into storage with the given capacity.
func (a *Array) resize(capacity int) {
	items := make([]*Value, len(a.items), capacity)
	copy(items, a.items)
	a.items = items
}

// clip trims the storage of a to exactly its current length. The parser
// calls this once construction of an array is complete.
func (a *Array) clip() {
	if len(a.items) < cap(a.items) {
		a.resize(len(a.items))
	}
}
