// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package multiset provides a counted set, used to check that a sort
// only reorders its input.
package multiset

import "golang.org/x/exp/maps"

// Multiset counts how often each value occurs.
type Multiset[T comparable] struct {
	counts map[T]int
}

// Of returns a multiset holding values, repeats included.
func Of[T comparable](values ...T) Multiset[T] {
	m := Multiset[T]{
		counts: make(map[T]int, len(values)),
	}
	for _, v := range values {
		m.counts[v]++
	}
	return m
}

// Add adds one occurrence of v.
func (m Multiset[T]) Add(v T) {
	m.counts[v]++
}

// Remove drops one occurrence of v and reports whether there was one.
func (m Multiset[T]) Remove(v T) bool {
	n, ok := m.counts[v]
	if !ok {
		return false
	}
	if n == 1 {
		delete(m.counts, v)
	} else {
		m.counts[v] = n - 1
	}
	return true
}

// Count returns how often v occurs.
func (m Multiset[T]) Count(v T) int {
	return m.counts[v]
}

// Len returns the number of elements, counting repeats.
func (m Multiset[T]) Len() int {
	n := 0
	for _, c := range m.counts {
		n += c
	}
	return n
}

// Equal reports whether m and o hold the same values with the same counts.
func (m Multiset[T]) Equal(o Multiset[T]) bool {
	if len(m.counts) != len(o.counts) {
		return false
	}
	for v, n := range m.counts {
		if o.counts[v] != n {
			return false
		}
	}
	return true
}

// Distinct returns each element once, in no particular order.
func (m Multiset[T]) Distinct() []T {
	return maps.Keys(m.counts)
}
