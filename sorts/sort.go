// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sorts implements bubble sort, quicksort and merge sort on slices.
//
// All sorts work in place and leave the slice in ascending order. Each has
// a variant for ordered element types and a ...Func variant taking a
// three-way comparison function: cmp(a, b) is negative when a sorts before
// b, zero when they are equal and positive otherwise.
package sorts

import (
	"github.com/itsManjeet/searchsort/internal/order"
	"golang.org/x/exp/constraints"
)

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[E constraints.Ordered](x []E) bool {
	for i := len(x) - 1; i > 0; i-- {
		if x[i] < x[i-1] {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether x is sorted, with cmp as the comparison
// function.
func IsSortedFunc[E any](x []E, cmp func(a, b E) int) bool {
	for i := len(x) - 1; i > 0; i-- {
		if cmp(x[i], x[i-1]) < 0 {
			return false
		}
	}
	return true
}

// Bubble sorts x by swapping adjacent out-of-order elements. After each
// pass everything past the last swap is in its final place, so the next
// pass stops there. The sort is stable and takes a single pass over sorted
// input.
func Bubble[E constraints.Ordered](x []E) {
	BubbleFunc(x, order.Compare[E])
}

// BubbleFunc sorts x like Bubble, with cmp as the comparison function.
func BubbleFunc[E any](x []E, cmp func(a, b E) int) {
	n := len(x)
	for n > 1 {
		last := 0
		for i := 1; i < n; i++ {
			if cmp(x[i-1], x[i]) > 0 {
				x[i-1], x[i] = x[i], x[i-1]
				last = i
			}
		}
		n = last
	}
}
