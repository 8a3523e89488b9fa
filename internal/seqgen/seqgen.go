// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqgen generates reproducible input sequences for tests and
// benchmarks of the search and sort packages.
package seqgen

import (
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Keyed is an element ordered by Key alone. Index records the element's
// position in the generated sequence, so a stable sort keeps Index
// ascending within each run of equal keys.
type Keyed struct {
	Key   int
	Index int
}

// CompareKeyed orders Keyed values by Key.
func CompareKeyed(a, b Keyed) int {
	switch {
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	}
	return 0
}

// Gen produces sequences from a PCG generator. Its single word of state
// makes every sequence reproducible from the seed alone.
type Gen struct {
	r *rand.Rand
}

// New returns a generator seeded with seed. Two generators with the same
// seed produce the same sequences.
func New(seed uint64) *Gen {
	src := &rand.PCGSource{}
	src.Seed(seed)
	return &Gen{r: rand.New(src)}
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (g *Gen) Intn(n int) int { return g.r.Intn(n) }

// Ints returns n values drawn from [-max, max]. A small max yields many
// duplicates.
func (g *Gen) Ints(n, max int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = g.r.Intn(2*max+1) - max
	}
	return s
}

// SortedInts is like Ints but returns the values in ascending order.
func (g *Gen) SortedInts(n, max int) []int {
	s := g.Ints(n, max)
	slices.Sort(s)
	return s
}

// Keyed returns n elements with keys drawn from [0, keys) and Index set to
// the element's position.
func (g *Gen) Keyed(n, keys int) []Keyed {
	s := make([]Keyed, n)
	for i := range s {
		s[i] = Keyed{Key: g.r.Intn(keys), Index: i}
	}
	return s
}

const letters = "abcdefghijklmnopqrstuvwxyz"

// Strings returns n lowercase strings of length up to maxLen.
func (g *Gen) Strings(n, maxLen int) []string {
	s := make([]string, n)
	b := make([]byte, 0, maxLen)
	for i := range s {
		b = b[:0]
		for j := g.r.Intn(maxLen + 1); j > 0; j-- {
			b = append(b, letters[g.r.Intn(len(letters))])
		}
		s[i] = string(b)
	}
	return s
}

// Sorted returns n ascending values 0..n-1.
func Sorted(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// Reversed returns n descending values n..1.
func Reversed(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = n - i
	}
	return s
}
