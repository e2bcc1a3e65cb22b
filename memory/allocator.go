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

package memory

import (
	"math"
	"unsafe"
)

// Traits are the policy flags consulted by containers when they are copied,
// moved or swapped.
type Traits struct {
	// PropagateOnCopyAssign makes the destination of a copy assignment adopt
	// the source's allocator.
	PropagateOnCopyAssign bool
	// PropagateOnMoveAssign makes the destination of a move assignment adopt
	// the source's allocator, which always allows an O(1) buffer transfer.
	PropagateOnMoveAssign bool
	// PropagateOnSwap exchanges allocators together with the contents.
	PropagateOnSwap bool
	// IsAlwaysEqual reports that any two instances can free each other's storage.
	IsAlwaysEqual bool
}

// Allocator is the capability used by containers to obtain storage for
// elements of type T and to construct and destroy elements in it.
//
// Slots returned by Allocate hold the zero value. Construct must only be
// called on a zero slot and Destroy leaves the slot zeroed again.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(p []T)
	Construct(p *T, v T) error
	Destroy(p *T)
	MaxSize() int
	Traits() Traits
	// SelectOnCopy returns the allocator a copy of a container using this
	// allocator should use.
	SelectOnCopy() Allocator[T]
}

// Equaler is implemented by stateful allocators that define their own equality.
type Equaler[T any] interface {
	Equal(other Allocator[T]) bool
}

// Equal reports whether storage allocated by a can be deallocated by b.
func Equal[T any](a, b Allocator[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Traits().IsAlwaysEqual && b.Traits().IsAlwaysEqual {
		return true
	}
	if eq, ok := a.(Equaler[T]); ok {
		return eq.Equal(b)
	}
	return a == b
}

// Rebind returns an allocator for elements of type U drawing from the same
// source as a. Rebound checked allocators share a's ledger and compare equal
// to each other; allocators of unknown types rebind to a GoAllocator.
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	if c, ok := a.(*CheckedAllocator[T]); ok {
		return rebindChecked[U](c)
	}
	return NewGoAllocator[U]()
}

// the Go runtime refuses single allocations above 1<<48 bytes on 64-bit
// platforms; stay well below it.
const maxBytes = math.MaxInt >> (16 * (^uint(0) >> 63))

// MaxSizeOf returns the largest element count of T that a heap allocation can hold.
func MaxSizeOf[T any]() int {
	sz := sizeOf[T]()
	if sz == 0 {
		return math.MaxInt
	}
	return maxBytes / sz
}

func sizeOf[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// Default returns the default allocator for T.
func Default[T any]() Allocator[T] { return NewGoAllocator[T]() }
