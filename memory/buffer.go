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

// Buffer owns a single allocation of T slots obtained from an Allocator.
//
// The owner is responsible for destroying any elements it constructed in the
// slots before calling Release.
type Buffer[T any] struct {
	mem Allocator[T]
	buf []T
}

// NewBuffer returns an empty buffer that will allocate from mem.
func NewBuffer[T any](mem Allocator[T]) Buffer[T] {
	if mem == nil {
		mem = NewGoAllocator[T]()
	}
	return Buffer[T]{mem: mem}
}

// Allocate acquires n slots. The buffer must be empty.
func (b *Buffer[T]) Allocate(n int) error {
	buf, err := b.mem.Allocate(n)
	if err != nil {
		return err
	}
	b.buf = buf
	return nil
}

// Release returns the slots to the allocator, leaving the buffer empty.
func (b *Buffer[T]) Release() {
	if b.buf != nil {
		b.mem.Deallocate(b.buf)
		b.buf = nil
	}
}

// Slots returns every slot of the buffer, live or not.
func (b *Buffer[T]) Slots() []T { return b.buf }

// Cap returns the number of slots.
func (b *Buffer[T]) Cap() int { return len(b.buf) }

func (b *Buffer[T]) Allocator() Allocator[T] { return b.mem }

// Swap exchanges the contents and allocators of two buffers.
func (b *Buffer[T]) Swap(o *Buffer[T]) { *b, *o = *o, *b }

// SwapSlots exchanges the slots of two buffers. Each buffer keeps its own
// allocator, so the allocators must compare equal.
func (b *Buffer[T]) SwapSlots(o *Buffer[T]) { b.buf, o.buf = o.buf, b.buf }

// Reset releases the slots and switches the buffer to mem.
func (b *Buffer[T]) Reset(mem Allocator[T]) {
	b.Release()
	b.mem = mem
}

// Relocate moves the elements of src into dst and zeroes src. Moving an
// element never fails, so relocation is all or nothing.
func Relocate[T any](dst, src []T) int {
	n := copy(dst, src)
	clear(src[:n])
	return n
}

// DestroyAll destroys every element of s through mem.
func DestroyAll[T any](mem Allocator[T], s []T) {
	for i := range s {
		mem.Destroy(&s[i])
	}
}
