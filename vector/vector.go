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
	"fmt"
	"iter"
	"slices"
	"unsafe"

	stl "github.com/Willie169/Cpp-STL-DSA-Learning"
	"github.com/Willie169/Cpp-STL-DSA-Learning/internal/debug"
	"github.com/Willie169/Cpp-STL-DSA-Learning/memory"
	"github.com/JohnCGriffin/overflow"
)

// GrowthFactor is the factor by which the capacity of a full vector grows.
const GrowthFactor = 2

// Option configures a Vector.
type Option[T any] func(*config[T])

type config[T any] struct {
	mem memory.Allocator[T]
}

// WithAllocator sets the allocator used for the buffer and its elements.
func WithAllocator[T any](mem memory.Allocator[T]) Option[T] {
	return func(c *config[T]) { c.mem = mem }
}

// Vector is a growable contiguous array.
type Vector[T any] struct {
	buf  memory.Buffer[T]
	size int
}

// New returns an empty vector. No storage is allocated until the first
// insertion.
func New[T any](opts ...Option[T]) *Vector[T] {
	var cfg config[T]
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.mem == nil {
		cfg.mem = memory.Default[T]()
	}
	return &Vector[T]{buf: memory.NewBuffer(cfg.mem)}
}

// NewSize returns a vector of n zero values.
func NewSize[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	var zero T
	return NewFill(n, zero, opts...)
}

// NewFill returns a vector of n copies of val.
func NewFill[T any](n int, val T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.InsertN(0, n, val); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// FromSlice returns a vector holding a copy of vs, allocated in one step.
func FromSlice[T any](vs []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.InsertSlice(0, vs); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// FromSeq returns a vector holding the values yielded by seq. The length is
// not known in advance, so the vector grows as values arrive.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	for val := range seq {
		if err := v.PushBack(val); err != nil {
			v.Release()
			return nil, err
		}
	}
	return v, nil
}

// Take returns a vector that owns other's buffer and allocator. other is left
// empty. This never allocates.
func Take[T any](other *Vector[T]) *Vector[T] {
	v := &Vector[T]{buf: other.buf, size: other.size}
	other.buf = memory.NewBuffer(other.Allocator())
	other.size = 0
	return v
}

// MoveWith returns a vector using mem that holds other's elements. When mem
// and other's allocator are equal the buffer is transferred; otherwise the
// elements are rebuilt with mem and other is cleared.
func MoveWith[T any](other *Vector[T], mem memory.Allocator[T]) (*Vector[T], error) {
	if memory.Equal(mem, other.Allocator()) {
		v := &Vector[T]{buf: memory.NewBuffer(mem)}
		v.steal(other)
		return v, nil
	}
	v, err := other.CloneWith(mem)
	if err != nil {
		return nil, err
	}
	other.Clear()
	return v, nil
}

// steal takes other's slots and elements, leaving other empty. v must hold
// no storage and its allocator must equal other's.
func (v *Vector[T]) steal(other *Vector[T]) {
	v.buf.SwapSlots(&other.buf)
	v.size, other.size = other.size, 0
}

func (v *Vector[T]) mem() memory.Allocator[T] { return v.buf.Allocator() }
func (v *Vector[T]) slots() []T               { return v.buf.Slots() }

func (v *Vector[T]) check() {
	debug.Assert(v.size >= 0 && v.size <= v.buf.Cap(), "vector: size exceeds capacity")
}

// Allocator returns the allocator of v.
func (v *Vector[T]) Allocator() memory.Allocator[T] { return v.mem() }

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of slots in the buffer.
func (v *Vector[T]) Cap() int { return v.buf.Cap() }

func (v *Vector[T]) Empty() bool { return v.size == 0 }

// MaxSize returns the largest number of elements the vector can hold.
func (v *Vector[T]) MaxSize() int { return v.mem().MaxSize() }

// Data returns the live elements. The slice aliases the buffer.
func (v *Vector[T]) Data() []T { return v.slots()[:v.size:v.size] }

func (v *Vector[T]) indexError(i int) error {
	return fmt.Errorf("%w: vector index %d with length %d", stl.ErrIndex, i, v.size)
}

// At returns the element at i, or an error wrapping stl.ErrIndex when i is
// not in [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if uint(i) >= uint(v.size) {
		var zero T
		return zero, v.indexError(i)
	}
	return v.slots()[i], nil
}

// AtRef returns a pointer to the element at i after checking the bounds.
func (v *Vector[T]) AtRef(i int) (*T, error) {
	if uint(i) >= uint(v.size) {
		return nil, v.indexError(i)
	}
	return &v.slots()[i], nil
}

// SetAt replaces the element at i after checking the bounds.
func (v *Vector[T]) SetAt(i int, val T) error {
	p, err := v.AtRef(i)
	if err != nil {
		return err
	}
	*p = val
	return nil
}

// Value returns the element at i. The index is not checked against Len;
// reading past the end returns a zero slot or panics.
func (v *Vector[T]) Value(i int) T { return v.slots()[i] }

// Set replaces the element at i without a bounds check against Len.
func (v *Vector[T]) Set(i int, val T) { v.slots()[i] = val }

// Ref returns a pointer to the element at i without a bounds check against Len.
func (v *Vector[T]) Ref(i int) *T { return &v.slots()[i] }

// Front returns the first element. It panics on an empty vector.
func (v *Vector[T]) Front() T { return v.Data()[0] }

// Back returns the last element. It panics on an empty vector.
func (v *Vector[T]) Back() T { return v.Data()[v.size-1] }

// growCap returns the capacity to allocate when need slots do not fit.
func (v *Vector[T]) growCap(need int) int {
	limit := v.MaxSize()
	c, ok := overflow.Mul(v.size, GrowthFactor)
	if !ok || c > limit {
		c = limit
	}
	return max(c, need, 1)
}

// reallocate moves the live elements into a new buffer of n slots. The old
// buffer is released only once the allocation succeeded.
func (v *Vector[T]) reallocate(n int) error {
	nb := memory.NewBuffer(v.mem())
	if err := nb.Allocate(n); err != nil {
		return err
	}
	memory.Relocate(nb.Slots(), v.slots()[:v.size])
	v.buf.Release()
	v.buf = nb
	debug.Log("vector: reallocated", "size", v.size, "cap", n)
	return nil
}

// Reserve grows the capacity to exactly n when n exceeds it.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	if n > v.MaxSize() {
		return fmt.Errorf("%w: reserve %d exceeds max size %d", stl.ErrLength, n, v.MaxSize())
	}
	return v.reallocate(n)
}

// ShrinkToFit releases unused capacity. An empty vector releases its buffer
// entirely. If the smaller buffer cannot be allocated, the vector is left as is.
func (v *Vector[T]) ShrinkToFit() {
	switch {
	case v.size == v.Cap():
		return
	case v.size == 0:
		v.buf.Release()
		return
	}
	if err := v.reallocate(v.size); err != nil {
		debug.Log("vector: shrink skipped", "err", err)
	}
}

func constructValue[T any](mem memory.Allocator[T], val T) func([]T) error {
	return func(dst []T) error {
		for i := range dst {
			if err := mem.Construct(&dst[i], val); err != nil {
				memory.DestroyAll(mem, dst[:i])
				return err
			}
		}
		return nil
	}
}

func constructSlice[T any](mem memory.Allocator[T], vs []T) func([]T) error {
	return func(dst []T) error {
		for i := range dst {
			if err := mem.Construct(&dst[i], vs[i]); err != nil {
				memory.DestroyAll(mem, dst[:i])
				return err
			}
		}
		return nil
	}
}

// insert opens a gap of n slots at i and lets fill construct the new
// elements in it. fill must destroy whatever it built before failing.
func (v *Vector[T]) insert(i, n int, fill func([]T) error) error {
	switch {
	case i < 0 || i > v.size:
		return fmt.Errorf("%w: insert position %d with length %d", stl.ErrIndex, i, v.size)
	case n < 0:
		return fmt.Errorf("%w: negative count %d", stl.ErrInvalid, n)
	case n == 0:
		return nil
	}
	need, ok := overflow.Add(v.size, n)
	if !ok || need > v.MaxSize() {
		return fmt.Errorf("%w: %d elements exceed max size %d", stl.ErrLength, v.size+n, v.MaxSize())
	}
	defer v.check()

	if need > v.Cap() {
		nb := memory.NewBuffer(v.mem())
		if err := nb.Allocate(v.growCap(need)); err != nil {
			return err
		}
		ns := nb.Slots()
		if err := fill(ns[i : i+n]); err != nil {
			nb.Release()
			return err
		}
		s := v.slots()
		memory.Relocate(ns[:i], s[:i])
		memory.Relocate(ns[i+n:need], s[i:v.size])
		v.buf.Release()
		v.buf = nb
		v.size = need
		debug.Log("vector: grew", "size", need, "cap", nb.Cap())
		return nil
	}

	s := v.slots()
	copy(s[i+n:need], s[i:v.size])
	clear(s[i : i+n])
	if err := fill(s[i : i+n]); err != nil {
		copy(s[i:v.size], s[i+n:need])
		clear(s[v.size:need])
		return err
	}
	v.size = need
	return nil
}

// overlaps reports whether vs shares memory with the buffer of v.
func (v *Vector[T]) overlaps(vs []T) bool {
	s := v.slots()
	if len(vs) == 0 || len(s) == 0 {
		return false
	}
	sz := unsafe.Sizeof(s[0])
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	hi := lo + uintptr(len(s))*sz
	p := uintptr(unsafe.Pointer(unsafe.SliceData(vs)))
	return p+uintptr(len(vs))*sz > lo && p < hi
}

// Insert inserts val before the element at i.
func (v *Vector[T]) Insert(i int, val T) error {
	return v.insert(i, 1, constructValue(v.mem(), val))
}

// InsertN inserts n copies of val before the element at i.
func (v *Vector[T]) InsertN(i, n int, val T) error {
	return v.insert(i, n, constructValue(v.mem(), val))
}

// InsertSlice inserts copies of vs before the element at i. vs may alias v.
func (v *Vector[T]) InsertSlice(i int, vs []T) error {
	if v.overlaps(vs) {
		vs = slices.Clone(vs)
	}
	return v.insert(i, len(vs), constructSlice(v.mem(), vs))
}

// InsertSeq inserts the values yielded by seq before the element at i. The
// values are appended as they arrive and then rotated into place; on failure
// the appended values are removed again, though the capacity may have grown.
func (v *Vector[T]) InsertSeq(i int, seq iter.Seq[T]) error {
	if i < 0 || i > v.size {
		return fmt.Errorf("%w: insert position %d with length %d", stl.ErrIndex, i, v.size)
	}
	old := v.size
	for val := range seq {
		if err := v.PushBack(val); err != nil {
			memory.DestroyAll(v.mem(), v.slots()[old:v.size])
			v.size = old
			return err
		}
	}
	s := v.slots()
	slices.Reverse(s[i:old])
	slices.Reverse(s[old:v.size])
	slices.Reverse(s[i:v.size])
	return nil
}

// Emplace constructs val before the element at i and returns a pointer to it.
func (v *Vector[T]) Emplace(i int, val T) (*T, error) {
	if err := v.Insert(i, val); err != nil {
		return nil, err
	}
	return &v.slots()[i], nil
}

// PushBack appends val.
func (v *Vector[T]) PushBack(val T) error {
	return v.insert(v.size, 1, constructValue(v.mem(), val))
}

// EmplaceBack appends val and returns a pointer to the new element.
func (v *Vector[T]) EmplaceBack(val T) (*T, error) {
	if err := v.PushBack(val); err != nil {
		return nil, err
	}
	return &v.slots()[v.size-1], nil
}

// PopBack removes and returns the last element. It reports false on an
// empty vector. The capacity is unchanged.
func (v *Vector[T]) PopBack() (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	p := &v.slots()[v.size-1]
	out := *p
	v.mem().Destroy(p)
	v.size--
	return out, true
}

// Erase removes the element at i.
func (v *Vector[T]) Erase(i int) error {
	if uint(i) >= uint(v.size) {
		return v.indexError(i)
	}
	return v.EraseRange(i, i+1)
}

// EraseRange removes the elements in [first, last).
func (v *Vector[T]) EraseRange(first, last int) error {
	switch {
	case first < 0 || last > v.size:
		return fmt.Errorf("%w: erase range [%d, %d) with length %d", stl.ErrIndex, first, last, v.size)
	case first > last:
		return fmt.Errorf("%w: erase range [%d, %d) is reversed", stl.ErrInvalid, first, last)
	case first == last:
		return nil
	}
	s := v.slots()
	memory.DestroyAll(v.mem(), s[first:last])
	n := last - first
	copy(s[first:], s[last:v.size])
	clear(s[v.size-n : v.size])
	v.size -= n
	return nil
}

// Resize changes the length to n, appending zero values or destroying
// trailing elements.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeFill(n, zero)
}

// ResizeFill changes the length to n, appending copies of val or destroying
// trailing elements.
func (v *Vector[T]) ResizeFill(n int, val T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", stl.ErrInvalid, n)
	}
	if n > v.size {
		return v.InsertN(v.size, n-v.size, val)
	}
	memory.DestroyAll(v.mem(), v.slots()[n:v.size])
	v.size = n
	return nil
}

// Clear destroys every element. The capacity is unchanged.
func (v *Vector[T]) Clear() {
	memory.DestroyAll(v.mem(), v.slots()[:v.size])
	v.size = 0
}

// Release destroys every element and returns the buffer to the allocator.
// The vector stays usable and empty.
func (v *Vector[T]) Release() {
	v.Clear()
	v.buf.Release()
}

// assign replaces the contents with n elements built by fill. When n does
// not fit, the new buffer is filled before anything is destroyed.
func (v *Vector[T]) assign(n int, fill func([]T) error) error {
	if n > v.MaxSize() {
		return fmt.Errorf("%w: assign %d exceeds max size %d", stl.ErrLength, n, v.MaxSize())
	}
	if n > v.Cap() {
		nb := memory.NewBuffer(v.mem())
		if err := nb.Allocate(n); err != nil {
			return err
		}
		if err := fill(nb.Slots()); err != nil {
			nb.Release()
			return err
		}
		v.Release()
		v.buf = nb
		v.size = n
		return nil
	}
	v.Clear()
	if err := fill(v.slots()[:n]); err != nil {
		return err
	}
	v.size = n
	return nil
}

// Assign replaces the contents with n copies of val.
func (v *Vector[T]) Assign(n int, val T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", stl.ErrInvalid, n)
	}
	return v.assign(n, constructValue(v.mem(), val))
}

// AssignSlice replaces the contents with copies of vs. vs may alias v.
func (v *Vector[T]) AssignSlice(vs []T) error {
	if v.overlaps(vs) {
		vs = slices.Clone(vs)
	}
	return v.assign(len(vs), constructSlice(v.mem(), vs))
}

// AssignSeq replaces the contents with the values yielded by seq.
func (v *Vector[T]) AssignSeq(seq iter.Seq[T]) error {
	v.Clear()
	return v.InsertSeq(0, seq)
}

// Clone returns a copy of v using the allocator selected by v's allocator
// for copies.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.CloneWith(v.mem().SelectOnCopy())
}

// CloneWith returns a copy of v using mem.
func (v *Vector[T]) CloneWith(mem memory.Allocator[T]) (*Vector[T], error) {
	return FromSlice(v.Data(), WithAllocator(mem))
}

// CopyFrom replaces the contents of v with copies of other's elements. When
// v's allocator propagates on copy assignment and differs from other's, v
// releases its storage and adopts other's allocator.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	if v.mem().Traits().PropagateOnCopyAssign && !memory.Equal(v.mem(), other.mem()) {
		w, err := other.CloneWith(other.mem())
		if err != nil {
			return err
		}
		v.Release()
		*v = *w
		return nil
	}
	return v.AssignSlice(other.Data())
}

// MoveFrom replaces the contents of v with other's elements and leaves
// other empty. The buffer itself is transferred when v's allocator
// propagates on move assignment or equals other's; otherwise the elements
// are rebuilt with v's allocator. v adopts other's allocator only when it
// propagates on move assignment.
func (v *Vector[T]) MoveFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	switch {
	case v.mem().Traits().PropagateOnMoveAssign:
		v.Clear()
		v.buf.Reset(other.mem())
		v.steal(other)
		return nil
	case memory.Equal(v.mem(), other.mem()):
		v.Release()
		v.steal(other)
		return nil
	}
	if err := v.AssignSlice(other.Data()); err != nil {
		return err
	}
	other.Clear()
	return nil
}

// Swap exchanges the contents of v and other. Buffers are exchanged when the
// allocators propagate on swap or are equal; otherwise each side is rebuilt
// with its own allocator, which can fail. The allocators themselves are only
// exchanged when they propagate on swap.
func (v *Vector[T]) Swap(other *Vector[T]) error {
	if v == other {
		return nil
	}
	switch {
	case v.mem().Traits().PropagateOnSwap:
		v.buf.Swap(&other.buf)
		v.size, other.size = other.size, v.size
		return nil
	case memory.Equal(v.mem(), other.mem()):
		v.buf.SwapSlots(&other.buf)
		v.size, other.size = other.size, v.size
		return nil
	}
	mine, err := other.CloneWith(v.mem())
	if err != nil {
		return err
	}
	theirs, err := v.CloneWith(other.mem())
	if err != nil {
		mine.Release()
		return err
	}
	v.Release()
	other.Release()
	*v, *other = *mine, *theirs
	return nil
}

// All returns an iterator over the indices and values of v.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.slots()[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of v.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.slots()[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over the indices and values of v from the back.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.slots()[i]) {
				return
			}
		}
	}
}
