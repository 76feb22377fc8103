// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"cogentcore.org/hsluv/base/num"
	"github.com/stretchr/testify/assert"
)

// DefaultTolerance is the tolerance used by [Equal].
const DefaultTolerance = 0.001

// Equal asserts that the given two numbers are about equal to each other,
// using a default tolerance of 0.001.
func Equal[T num.Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, DefaultTolerance, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value.
func EqualTol[T num.Float](t assert.TestingT, expected T, actual, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if num.Abs(actual-expected) > tolerance || num.IsNaN(actual) {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	return true
}

// EqualTriple asserts that the components of the two given triples are
// each about equal, using the given tolerance value.
func EqualTriple[T num.Float](t assert.TestingT, expected, actual [3]T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	for i := range expected {
		d := num.Abs(actual[i] - expected[i])
		if d > tolerance || num.IsNaN(actual[i]) {
			return assert.Equal(t, expected, actual, msgAndArgs...)
		}
	}
	return true
}
