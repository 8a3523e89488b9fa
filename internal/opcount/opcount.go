// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opcount counts the comparisons an algorithm performs by wrapping
// the comparison function handed to it.
package opcount

// Counter counts calls made through the functions it wraps.
// The zero value is ready to use. A Counter is not safe for concurrent use.
type Counter struct {
	n int
}

// Count returns the number of calls counted so far.
func (c *Counter) Count() int { return c.n }

// Reset sets the count back to zero.
func (c *Counter) Reset() { c.n = 0 }

// Compare returns a comparison function that behaves like cmp and counts
// each call in c.
func Compare[E, T any](c *Counter, cmp func(E, T) int) func(E, T) int {
	return func(a E, b T) int {
		c.n++
		return cmp(a, b)
	}
}

// Predicate returns a predicate that behaves like f and counts each call
// in c.
func Predicate[E any](c *Counter, f func(E) bool) func(E) bool {
	return func(e E) bool {
		c.n++
		return f(e)
	}
}
