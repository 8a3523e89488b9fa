// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math"

	"github.com/itsManjeet/searchsort/internal/order"
	"golang.org/x/exp/constraints"
)

// JumpStep searches a sorted slice by jumping over it step elements at a
// time until it passes v, then scanning the block it jumped over.
//
// A step of 1 is a linear search. A step of 0 never advances, so only the
// first element is checked. The cost is about len(s)/step + step
// comparisons; see Jump for the step that minimizes it.
func JumpStep[E constraints.Ordered](s []E, v E, step int) (int, bool) {
	return JumpStepFunc(s, v, step, order.Compare[E])
}

// JumpStepFunc works like JumpStep, comparing elements to target with cmp.
func JumpStepFunc[E, T any](s []E, target T, step int, cmp func(E, T) int) (int, bool) {
	switch {
	case step == 1:
		return LinearFunc(s, func(e E) bool { return cmp(e, target) == 0 })
	case len(s) == 0:
		return -1, false
	case step <= 0:
		if cmp(s[0], target) == 0 {
			return 0, true
		}
		return -1, false
	}

	// [start, end) is the block left to scan. start is the last jump point
	// known to be smaller than target, or -1 when no jump was made.
	start, end := -1, len(s)
	for i := 0; i < len(s)/step; i++ {
		p := i * step
		c := cmp(s[p], target)
		if c == 0 {
			return p, true
		}
		if c > 0 {
			if i == 0 {
				// smaller than every element
				return -1, false
			}
			end = p
			break
		}
		start = p
	}

	for i := start + 1; i < end; i++ {
		if cmp(s[i], target) == 0 {
			return i, true
		}
	}
	return -1, false
}

// Jump is JumpStep with a step of floor(sqrt(len(s))), which balances the
// number of jumps against the size of the scanned block for O(√n)
// comparisons.
func Jump[E constraints.Ordered](s []E, v E) (int, bool) {
	return JumpStep(s, v, OptimalStep(len(s)))
}

// JumpFunc works like Jump, comparing elements to target with cmp.
func JumpFunc[E, T any](s []E, target T, cmp func(E, T) int) (int, bool) {
	return JumpStepFunc(s, target, OptimalStep(len(s)), cmp)
}

// OptimalStep returns the jump step Jump uses for a slice of length n.
func OptimalStep(n int) int {
	return int(math.Sqrt(float64(n)))
}
