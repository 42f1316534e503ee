// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import "errors"

const (
	// maxNesting is the greatest container nesting depth the parser accepts.
	maxNesting = 19

	// startingCapacity is the initial storage capacity of a container the
	// first time a child is added. Storage doubles on overflow up to the
	// per-variant maximum.
	startingCapacity = 15

	arrayMaxCapacity  = 122880 // 15*(2^13)
	objectMaxCapacity = 960    // 15*(2^6)

	// numberEpsilon is the tolerance within which Equal treats two numbers
	// as equal.
	numberEpsilon = 1e-6
)

// ErrDuplicateMember is reported by Add when the member name is already
// present in the object.
var ErrDuplicateMember = errors.New("duplicate member name")

// ErrCapacity is reported when growing a container would exceed its maximum
// capacity.
var ErrCapacity = errors.New("container capacity exceeded")

// grownCapacity reports the new capacity for a container that has filled cur
// slots: double cur (at least startingCapacity), limited to max. It reports
// false if no growth is possible because cur is already max.
func grownCapacity(cur, max int) (int, bool) {
	nc := 2 * cur
	if nc < startingCapacity {
		nc = startingCapacity
	}
	if nc > max {
		nc = max
	}
	return nc, nc > cur
}
