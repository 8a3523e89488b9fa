// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package order provides the three-way comparison used by the ordered
// variants of the search and sort functions.
package order

import "golang.org/x/exp/constraints"

// Compare returns -1 if a < b, +1 if a > b and 0 otherwise.
// NaN compares equal to everything.
func Compare[E constraints.Ordered](a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
