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
	"unsafe"

	"github.com/Willie169/Cpp-STL-DSA-Learning/internal/debug"
)

// Iterator is a position in a deque: a block of the map and an index within
// it. It stays valid across insertions at either end as long as the map is
// not reallocated or recentered, and across erasure at the opposite end.
type Iterator[T any] struct {
	blocks [][]T
	bcap   int
	block  int
	index  int
}

func (d *Deque[T]) iter(c cursor) Iterator[T] {
	return Iterator[T]{blocks: d.blocks, bcap: d.bcap, block: c.block, index: c.index}
}

// Begin returns an iterator to the first element.
func (d *Deque[T]) Begin() Iterator[T] { return d.iter(d.start) }

// End returns an iterator one past the last element.
func (d *Deque[T]) End() Iterator[T] { return d.iter(d.finish()) }

// IteratorAt returns an iterator to logical index i.
func (d *Deque[T]) IteratorAt(i int) Iterator[T] {
	p := d.head() + i
	return d.iter(cursor{block: p / d.bcap, index: p % d.bcap})
}

func (it Iterator[T]) flat() int { return it.block*it.bcap + it.index }

// Next returns the iterator to the following element.
func (it Iterator[T]) Next() Iterator[T] {
	it.index++
	if it.index == it.bcap {
		it.block++
		it.index = 0
	}
	return it
}

// Prev returns the iterator to the preceding element.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.index == 0 {
		it.block--
		it.index = it.bcap
	}
	it.index--
	return it
}

// Add returns the iterator n elements further, n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] {
	p := it.flat() + n
	it.block, it.index = p/it.bcap, p%it.bcap
	return it
}

func (it Iterator[T]) Sub(n int) Iterator[T] { return it.Add(-n) }

// Diff returns the number of elements from o to it.
func (it Iterator[T]) Diff(o Iterator[T]) int { return it.flat() - o.flat() }

func (it Iterator[T]) Ptr() *T   { return &it.blocks[it.block][it.index] }
func (it Iterator[T]) Value() T  { return *it.Ptr() }
func (it Iterator[T]) Set(val T) { *it.Ptr() = val }

func (it Iterator[T]) Less(o Iterator[T]) bool { return it.flat() < o.flat() }

// Equal reports whether both iterators refer to the same position of the
// same map.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.flat() == o.flat() && unsafe.SliceData(it.blocks) == unsafe.SliceData(o.blocks)
}

// indexOf converts it to a logical index of d.
func (d *Deque[T]) indexOf(it Iterator[T]) int {
	debug.Assert(unsafe.SliceData(it.blocks) == unsafe.SliceData(d.blocks) && it.bcap == d.bcap,
		"deque: iterator does not belong to the current map")
	return it.flat() - d.head()
}

// InsertAt inserts val before it and returns an iterator to the new element.
func (d *Deque[T]) InsertAt(it Iterator[T], val T) (Iterator[T], error) {
	i := d.indexOf(it)
	if err := d.Insert(i, val); err != nil {
		return it, err
	}
	return d.IteratorAt(i), nil
}

// EraseAt removes the element at it and returns an iterator to the element
// that followed it.
func (d *Deque[T]) EraseAt(it Iterator[T]) (Iterator[T], error) {
	i := d.indexOf(it)
	if err := d.Erase(i); err != nil {
		return it, err
	}
	return d.IteratorAt(i), nil
}

// EraseRangeAt removes the elements in [first, last) and returns an iterator
// to the element that followed them.
func (d *Deque[T]) EraseRangeAt(first, last Iterator[T]) (Iterator[T], error) {
	i, j := d.indexOf(first), d.indexOf(last)
	if err := d.EraseRange(i, j); err != nil {
		return first, err
	}
	return d.IteratorAt(i), nil
}
