// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorts

import (
	"github.com/itsManjeet/searchsort/internal/order"
	"golang.org/x/exp/constraints"
)

// Merge sorts x with top-down merge sort. Only the left half of each range
// is copied out, so the extra space is len(x)/2 at the top level. The sort
// is stable.
func Merge[E constraints.Ordered](x []E) {
	MergeFunc(x, order.Compare[E])
}

// MergeFunc sorts x like Merge, with cmp as the comparison function.
func MergeFunc[E any](x []E, cmp func(a, b E) int) {
	mergeSortFunc(x, 0, len(x), cmp)
}

func mergeSortFunc[E any](x []E, a, b int, cmp func(a, b E) int) {
	n := b - a
	if n <= 1 {
		return
	}
	m := a + n/2

	left := make([]E, m-a)
	copy(left, x[a:m])
	mergeSortFunc(left, 0, len(left), cmp)
	mergeSortFunc(x, m, b, cmp)

	// x[m+j:b] is the unmerged suffix of the right half. Writes to x[a+i+j]
	// never overtake it.
	i, j := 0, 0
	for i < len(left) {
		if m+j == b {
			copy(x[a+i+j:], left[i:])
			return
		}
		if cmp(x[m+j], left[i]) < 0 {
			x[a+i+j] = x[m+j]
			j++
		} else {
			// ties take the left element first
			x[a+i+j] = left[i]
			i++
		}
	}
}
