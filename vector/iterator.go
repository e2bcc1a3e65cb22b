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
	"unsafe"

	"github.com/Willie169/Cpp-STL-DSA-Learning/internal/debug"
)

// Iterator is a position in a vector's buffer. It does not own the buffer
// and becomes stale when the vector reallocates.
type Iterator[T any] struct {
	buf []T
	pos int
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] { return Iterator[T]{buf: v.slots()} }

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] { return Iterator[T]{buf: v.slots(), pos: v.size} }

// IteratorAt returns an iterator to position i.
func (v *Vector[T]) IteratorAt(i int) Iterator[T] { return Iterator[T]{buf: v.slots(), pos: i} }

func (it Iterator[T]) Next() Iterator[T]      { return Iterator[T]{buf: it.buf, pos: it.pos + 1} }
func (it Iterator[T]) Prev() Iterator[T]      { return Iterator[T]{buf: it.buf, pos: it.pos - 1} }
func (it Iterator[T]) Add(n int) Iterator[T]  { return Iterator[T]{buf: it.buf, pos: it.pos + n} }
func (it Iterator[T]) Sub(n int) Iterator[T]  { return Iterator[T]{buf: it.buf, pos: it.pos - n} }
func (it Iterator[T]) Diff(o Iterator[T]) int { return it.pos - o.pos }

// Pos returns the index the iterator refers to.
func (it Iterator[T]) Pos() int { return it.pos }

func (it Iterator[T]) Value() T  { return it.buf[it.pos] }
func (it Iterator[T]) Ptr() *T   { return &it.buf[it.pos] }
func (it Iterator[T]) Set(val T) { it.buf[it.pos] = val }

// Less reports whether it precedes o.
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.pos < o.pos }

// Equal reports whether both iterators refer to the same position of the
// same buffer.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.pos == o.pos && unsafe.SliceData(it.buf) == unsafe.SliceData(o.buf)
}

func (v *Vector[T]) checkIterator(it Iterator[T]) {
	debug.Assert(unsafe.SliceData(it.buf) == unsafe.SliceData(v.slots()), "vector: iterator does not belong to the current buffer")
}

// InsertAt inserts val before it and returns an iterator to the new element.
func (v *Vector[T]) InsertAt(it Iterator[T], val T) (Iterator[T], error) {
	v.checkIterator(it)
	if err := v.Insert(it.pos, val); err != nil {
		return it, err
	}
	return v.IteratorAt(it.pos), nil
}

// EraseAt removes the element at it and returns an iterator to the element
// that followed it.
func (v *Vector[T]) EraseAt(it Iterator[T]) (Iterator[T], error) {
	v.checkIterator(it)
	if err := v.Erase(it.pos); err != nil {
		return it, err
	}
	return v.IteratorAt(it.pos), nil
}

// EraseRangeAt removes the elements in [first, last) and returns an iterator
// to the element that followed them.
func (v *Vector[T]) EraseRangeAt(first, last Iterator[T]) (Iterator[T], error) {
	v.checkIterator(first)
	v.checkIterator(last)
	if err := v.EraseRange(first.pos, last.pos); err != nil {
		return first, err
	}
	return v.IteratorAt(first.pos), nil
}
