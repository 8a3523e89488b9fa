// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search implements linear, binary and jump search over slices.
//
// Every function reports its result as (index, true) when the value is
// found and (-1, false) when it is not. Binary and jump search require the
// slice to be sorted in ascending order; on unsorted input they return
// without panicking but the result is meaningless.
package search

import (
	"github.com/itsManjeet/searchsort/internal/order"
	"golang.org/x/exp/constraints"
)

// Linear looks for v by scanning s from the start and returns the position
// of the first equal element.
func Linear[E comparable](s []E, v E) (int, bool) {
	for i := range s {
		if s[i] == v {
			return i, true
		}
	}
	return -1, false
}

// LinearFunc returns the position of the first element satisfying f.
func LinearFunc[E any](s []E, f func(E) bool) (int, bool) {
	for i := range s {
		if f(s[i]) {
			return i, true
		}
	}
	return -1, false
}

// Binary searches for v in a sorted slice by repeatedly comparing v with
// the center of the remaining range and discarding the half that cannot
// hold it.
//
// The returned position is the first match encountered, which need not be
// the first equal element of the slice. Use BinaryFirst for that.
func Binary[E constraints.Ordered](s []E, v E) (int, bool) {
	return BinaryFunc(s, v, order.Compare[E])
}

// BinaryFunc works like Binary, comparing elements to target with cmp.
// cmp(e, target) must return a negative number when e sorts before target,
// zero when they are equal and a positive number otherwise.
func BinaryFunc[E, T any](s []E, target T, cmp func(E, T) int) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := lo + (hi-lo)/2
		c := cmp(s[mid], target)
		switch {
		case c == 0:
			return mid, true
		case c > 0:
			if mid == lo {
				return -1, false
			}
			hi = mid
		default:
			if mid == hi-1 {
				return -1, false
			}
			lo = mid + 1
		}
	}
	return -1, false
}

// BinaryFirst is like Binary but returns the position of the first element
// equal to v. It walks back from the match found by Binary, so a long run
// of duplicates costs linear time.
func BinaryFirst[E constraints.Ordered](s []E, v E) (int, bool) {
	return BinaryFirstFunc(s, v, order.Compare[E])
}

// BinaryFirstFunc works like BinaryFirst, comparing elements with cmp.
func BinaryFirstFunc[E, T any](s []E, target T, cmp func(E, T) int) (int, bool) {
	pos, ok := BinaryFunc(s, target, cmp)
	if !ok {
		return -1, false
	}
	for i := pos - 1; i >= 0; i-- {
		if cmp(s[i], target) < 0 {
			return i + 1, true
		}
	}
	return 0, true
}
