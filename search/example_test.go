// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search_test

import (
	"fmt"

	"github.com/itsManjeet/searchsort/search"
)

func ExampleLinear() {
	s := []int{1, 85, 23, -4, 8}
	fmt.Println(search.Linear(s, 23))
	fmt.Println(search.Linear(s, -77))
	// Output:
	// 2 true
	// -1 false
}

func ExampleBinaryFirst() {
	fib := []int{1, 1, 2, 3}
	// Binary stops at the first match it meets, which is not the leftmost.
	fmt.Println(search.Binary(fib, 1))
	fmt.Println(search.BinaryFirst(fib, 1))
	// Output:
	// 1 true
	// 0 true
}

func ExampleJump() {
	s := []int{1, 5, 7, 15, 31, 32, 45}
	fmt.Println(search.Jump(s, 15))
	// Output:
	// 3 true
}
