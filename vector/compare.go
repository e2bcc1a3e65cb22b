// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vector

import (
	"github.com/Willie169/Cpp-STL-DSA-Learning/memory"
	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, x := range a.Data() {
		if !eq(x, b.Value(i)) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically and returns -1, 0 or +1.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
}

// CompareFunc is like Compare but compares elements with cmp.
func CompareFunc[T, U any](a *Vector[T], b *Vector[U], cmp func(T, U) int) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := cmp(a.Value(i), b.Value(i)); c != 0 {
			return c
		}
	}
	switch {
	case a.Len() < b.Len():
		return -1
	case a.Len() > b.Len():
		return 1
	}
	return 0
}

// Remove erases every element equal to val and returns how many were removed.
func Remove[T comparable](v *Vector[T], val T) int {
	return RemoveFunc(v, func(x T) bool { return x == val })
}

// RemoveFunc erases every element for which pred returns true, keeping the
// order of the others, and returns how many were removed.
func RemoveFunc[T any](v *Vector[T], pred func(T) bool) int {
	s := v.slots()
	w := compact(v.mem(), s[:v.size], pred)
	n := v.size - w
	v.size = w
	return n
}

// compact destroys the elements of s matching pred, moves the survivors to
// the front and returns their count.
func compact[T any](mem memory.Allocator[T], s []T, pred func(T) bool) int {
	var zero T
	w := 0
	for r := range s {
		if pred(s[r]) {
			mem.Destroy(&s[r])
			continue
		}
		if w != r {
			s[w] = s[r]
			s[r] = zero
		}
		w++
	}
	return w
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *Vector[T]) error { return a.Swap(b) }
