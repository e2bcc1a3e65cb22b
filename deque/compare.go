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

package deque

import (
	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Deque[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a *Deque[T], b *Deque[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, x := range a.All() {
		if !eq(x, b.Value(i)) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically and returns -1, 0 or +1.
func Compare[T constraints.Ordered](a, b *Deque[T]) int {
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
func CompareFunc[T, U any](a *Deque[T], b *Deque[U], cmp func(T, U) int) int {
	for i := range min(a.Len(), b.Len()) {
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
func Remove[T comparable](d *Deque[T], val T) int {
	return RemoveFunc(d, func(x T) bool { return x == val })
}

// RemoveFunc erases every element for which pred returns true, keeping the
// order of the others, and returns how many were removed. Survivors are
// compacted toward the front and the vacated tail is dropped.
func RemoveFunc[T any](d *Deque[T], pred func(T) bool) int {
	var zero T
	w := 0
	for r := 0; r < d.size; r++ {
		p := d.ref(r)
		if pred(*p) {
			d.mem.Destroy(p)
			continue
		}
		if w != r {
			*d.ref(w) = *p
			*p = zero
		}
		w++
	}
	n := d.size - w
	d.size = w
	return n
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *Deque[T]) error { return a.Swap(b) }
