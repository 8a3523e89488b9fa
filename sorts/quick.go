// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorts

import (
	"github.com/itsManjeet/searchsort/internal/order"
	"golang.org/x/exp/constraints"
)

// Quick sorts x with quicksort, partitioning around the last element. The
// sort is not stable. Sorted and reverse-sorted input take quadratic time.
func Quick[E constraints.Ordered](x []E) {
	QuickFunc(x, order.Compare[E])
}

// QuickFunc sorts x like Quick, with cmp as the comparison function.
func QuickFunc[E any](x []E, cmp func(a, b E) int) {
	quickSortFunc(x, 0, len(x), cmp)
}

// QuickPartition moves the last element of x to its sorted position p, with
// no greater element before p and no smaller element after it, and returns
// p. It panics if x is empty.
func QuickPartition[E constraints.Ordered](x []E) int {
	return QuickPartitionFunc(x, order.Compare[E])
}

// QuickPartitionFunc partitions x like QuickPartition, with cmp as the
// comparison function.
func QuickPartitionFunc[E any](x []E, cmp func(a, b E) int) int {
	if len(x) == 0 {
		panic("sorts: QuickPartition of empty slice")
	}
	return partitionFunc(x, 0, len(x), cmp)
}

func quickSortFunc[E any](x []E, a, b int, cmp func(a, b E) int) {
	if b-a > 1 {
		p := partitionFunc(x, a, b, cmp)
		quickSortFunc(x, a, p, cmp)
		quickSortFunc(x, p+1, b, cmp)
	}
}

// partitionFunc partitions x[a:b] around x[b-1] and returns the pivot's
// final index.
//
// The pivot is not held aside: it takes part in the swaps, and pivot always
// names the index currently holding it.
func partitionFunc[E any](x []E, a, b int, cmp func(a, b E) int) int {
	lo, hi := a, b-1
	pivot := b - 1

	equal := false
	for {
		if equal {
			// x[lo] == x[hi]; step over instead of swapping equal elements
			lo++
			equal = false
		}
		for cmp(x[lo], x[pivot]) < 0 {
			lo++
		}
		for hi > a && cmp(x[hi], x[pivot]) > 0 {
			hi--
		}

		if lo >= hi {
			break
		}
		if cmp(x[lo], x[hi]) == 0 {
			equal = true
			continue
		}
		switch pivot {
		case lo:
			pivot = hi
		case hi:
			pivot = lo
		}
		x[lo], x[hi] = x[hi], x[lo]
	}

	x[lo], x[pivot] = x[pivot], x[lo]
	return lo
}
