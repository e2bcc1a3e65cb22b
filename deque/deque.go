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
	"fmt"
	"iter"
	"slices"
	"unsafe"

	stl "github.com/Willie169/Cpp-STL-DSA-Learning"
	"github.com/Willie169/Cpp-STL-DSA-Learning/internal/debug"
	"github.com/Willie169/Cpp-STL-DSA-Learning/memory"
	"github.com/JohnCGriffin/overflow"
)

const (
	// blockBytes is the target size in bytes of one block.
	blockBytes = 512
	// initialMapSize is the number of block slots in a freshly allocated map.
	initialMapSize = 8
)

// Option configures a Deque.
type Option[T any] func(*config[T])

type config[T any] struct {
	mem    memory.Allocator[T]
	mapMem memory.Allocator[[]T]
	bcap   int
}

// WithAllocator sets the allocator used for blocks and elements.
func WithAllocator[T any](mem memory.Allocator[T]) Option[T] {
	return func(c *config[T]) { c.mem = mem }
}

// WithMapAllocator sets the allocator used for the map of blocks.
func WithMapAllocator[T any](mem memory.Allocator[[]T]) Option[T] {
	return func(c *config[T]) { c.mapMem = mem }
}

// WithBlockCapacity sets the number of elements per block. Values below one
// are ignored.
func WithBlockCapacity[T any](n int) Option[T] {
	return func(c *config[T]) {
		if n > 0 {
			c.bcap = n
		}
	}
}

// BlockCapacityOf returns the default number of elements per block for T.
func BlockCapacityOf[T any]() int {
	var v T
	sz := int(unsafe.Sizeof(v))
	if sz == 0 {
		return blockBytes
	}
	return max(blockBytes/sz, 1)
}

type cursor struct {
	block, index int
}

// Deque is a double-ended queue of T.
//
// The live elements occupy size consecutive slots starting at the start
// cursor, counting across block boundaries. Map slots outside the live range
// either hold nil or a spare block kept for reuse.
type Deque[T any] struct {
	mem    memory.Allocator[T]
	mapMem memory.Allocator[[]T]
	blocks [][]T
	bcap   int
	start  cursor
	size   int

	reallocs int
}

// New returns an empty deque. The map is allocated on the first insertion.
func New[T any](opts ...Option[T]) *Deque[T] {
	cfg := config[T]{bcap: BlockCapacityOf[T]()}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.mem == nil {
		cfg.mem = memory.Default[T]()
	}
	if cfg.mapMem == nil {
		cfg.mapMem = memory.Rebind[[]T](cfg.mem)
	}
	return &Deque[T]{mem: cfg.mem, mapMem: cfg.mapMem, bcap: cfg.bcap}
}

// NewSize returns a deque of n zero values.
func NewSize[T any](n int, opts ...Option[T]) (*Deque[T], error) {
	var zero T
	return NewFill(n, zero, opts...)
}

// NewFill returns a deque of n copies of val.
func NewFill[T any](n int, val T, opts ...Option[T]) (*Deque[T], error) {
	d := New(opts...)
	if err := d.InsertN(0, n, val); err != nil {
		d.Release()
		return nil, err
	}
	return d, nil
}

// FromSlice returns a deque holding a copy of vs.
func FromSlice[T any](vs []T, opts ...Option[T]) (*Deque[T], error) {
	d := New(opts...)
	if err := d.InsertSlice(0, vs); err != nil {
		d.Release()
		return nil, err
	}
	return d, nil
}

// FromSeq returns a deque holding the values yielded by seq.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) (*Deque[T], error) {
	d := New(opts...)
	for val := range seq {
		if err := d.PushBack(val); err != nil {
			d.Release()
			return nil, err
		}
	}
	return d, nil
}

// Take returns a deque that owns other's storage and allocators. other is
// left empty. This never allocates.
func Take[T any](other *Deque[T]) *Deque[T] {
	d := *other
	*other = Deque[T]{mem: d.mem, mapMem: d.mapMem, bcap: d.bcap}
	return &d
}

// Allocator returns the element allocator of d.
func (d *Deque[T]) Allocator() memory.Allocator[T] { return d.mem }

func (d *Deque[T]) Len() int    { return d.size }
func (d *Deque[T]) Empty() bool { return d.size == 0 }

// MaxSize returns the largest number of elements the deque can hold.
func (d *Deque[T]) MaxSize() int { return d.mem.MaxSize() }

// MapSize returns the number of block slots in the map.
func (d *Deque[T]) MapSize() int { return len(d.blocks) }

// MapReallocs returns how many times the map has been reallocated to grow.
func (d *Deque[T]) MapReallocs() int { return d.reallocs }

// BlockCapacity returns the number of elements per block.
func (d *Deque[T]) BlockCapacity() int { return d.bcap }

func (d *Deque[T]) head() int { return d.start.block*d.bcap + d.start.index }

func (d *Deque[T]) setHead(p int) { d.start = cursor{block: p / d.bcap, index: p % d.bcap} }

func (d *Deque[T]) finish() cursor {
	p := d.head() + d.size
	return cursor{block: p / d.bcap, index: p % d.bcap}
}

// ref returns the slot of logical index i, which may lie outside [0, size)
// as long as its block has been reserved.
func (d *Deque[T]) ref(i int) *T {
	p := d.head() + i
	return &d.blocks[p/d.bcap][p%d.bcap]
}

func (d *Deque[T]) indexError(i int) error {
	return fmt.Errorf("%w: deque index %d with length %d", stl.ErrIndex, i, d.size)
}

// At returns the element at i, or an error wrapping stl.ErrIndex.
func (d *Deque[T]) At(i int) (T, error) {
	if uint(i) >= uint(d.size) {
		var zero T
		return zero, d.indexError(i)
	}
	return *d.ref(i), nil
}

// AtRef returns a pointer to the element at i after checking the bounds.
func (d *Deque[T]) AtRef(i int) (*T, error) {
	if uint(i) >= uint(d.size) {
		return nil, d.indexError(i)
	}
	return d.ref(i), nil
}

// SetAt replaces the element at i after checking the bounds.
func (d *Deque[T]) SetAt(i int, val T) error {
	p, err := d.AtRef(i)
	if err != nil {
		return err
	}
	*p = val
	return nil
}

// Value returns the element at i. Out of range indices panic or return a
// zero slot.
func (d *Deque[T]) Value(i int) T { return *d.ref(i) }

// Set replaces the element at i without checking it against Len.
func (d *Deque[T]) Set(i int, val T) { *d.ref(i) = val }

// Ref returns a pointer to the element at i. The pointer stays valid until
// the element is erased or moved by a middle insertion or erasure.
func (d *Deque[T]) Ref(i int) *T { return d.ref(i) }

// Front returns the first element. It panics on an empty deque.
func (d *Deque[T]) Front() T { return d.Value(0) }

// Back returns the last element. It panics on an empty deque.
func (d *Deque[T]) Back() T { return d.Value(d.size - 1) }

// PushBack appends val.
func (d *Deque[T]) PushBack(val T) error {
	_, err := d.EmplaceBack(val)
	return err
}

// EmplaceBack appends val and returns a pointer to the new element.
func (d *Deque[T]) EmplaceBack(val T) (*T, error) {
	if err := d.reserveBack(1); err != nil {
		return nil, err
	}
	p := d.ref(d.size)
	if err := d.mem.Construct(p, val); err != nil {
		return nil, err
	}
	d.size++
	return p, nil
}

// PushFront prepends val.
func (d *Deque[T]) PushFront(val T) error {
	_, err := d.EmplaceFront(val)
	return err
}

// EmplaceFront prepends val and returns a pointer to the new element.
func (d *Deque[T]) EmplaceFront(val T) (*T, error) {
	if err := d.reserveFront(1); err != nil {
		return nil, err
	}
	p := d.ref(-1)
	if err := d.mem.Construct(p, val); err != nil {
		return nil, err
	}
	d.setHead(d.head() - 1)
	d.size++
	return p, nil
}

// PopBack removes and returns the last element. It reports false on an
// empty deque. The block that held the element is kept for reuse.
func (d *Deque[T]) PopBack() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	p := d.ref(d.size - 1)
	out := *p
	d.mem.Destroy(p)
	d.size--
	return out, true
}

// PopFront removes and returns the first element. It reports false on an
// empty deque. The block that held the element is kept for reuse.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	p := d.ref(0)
	out := *p
	d.mem.Destroy(p)
	d.setHead(d.head() + 1)
	d.size--
	return out, true
}

// moveRange relocates cnt elements from logical index src to dst. The
// vacated source slots are zeroed.
func (d *Deque[T]) moveRange(dst, src, cnt int) {
	var zero T
	if dst < src {
		for k := 0; k < cnt; k++ {
			p := d.ref(src + k)
			*d.ref(dst + k) = *p
			*p = zero
		}
		return
	}
	for k := cnt - 1; k >= 0; k-- {
		p := d.ref(src + k)
		*d.ref(dst + k) = *p
		*p = zero
	}
}

type fillFunc[T any] func(k int, p *T) error

func constructValue[T any](mem memory.Allocator[T], val T) fillFunc[T] {
	return func(_ int, p *T) error { return mem.Construct(p, val) }
}

func constructSlice[T any](mem memory.Allocator[T], vs []T) fillFunc[T] {
	return func(k int, p *T) error { return mem.Construct(p, vs[k]) }
}

// fillGap constructs n elements starting at logical index i, destroying the
// ones already built if fill fails.
func (d *Deque[T]) fillGap(i, n int, fill fillFunc[T]) error {
	for k := 0; k < n; k++ {
		if err := fill(k, d.ref(i+k)); err != nil {
			for j := 0; j < k; j++ {
				d.mem.Destroy(d.ref(i + j))
			}
			return err
		}
	}
	return nil
}

// insert opens a gap of n elements before index i by shifting the shorter
// side and lets fill construct the new elements. A failed fill shifts the
// elements back, leaving the contents unchanged.
func (d *Deque[T]) insert(i, n int, fill fillFunc[T]) error {
	switch {
	case i < 0 || i > d.size:
		return fmt.Errorf("%w: insert position %d with length %d", stl.ErrIndex, i, d.size)
	case n < 0:
		return fmt.Errorf("%w: negative count %d", stl.ErrInvalid, n)
	case n == 0:
		return nil
	}
	defer d.check()

	if i < d.size-i {
		if err := d.reserveFront(n); err != nil {
			return err
		}
		d.moveRange(-n, 0, i)
		d.setHead(d.head() - n)
		d.size += n
		if err := d.fillGap(i, n, fill); err != nil {
			d.moveRange(n, 0, i)
			d.setHead(d.head() + n)
			d.size -= n
			return err
		}
		return nil
	}

	if err := d.reserveBack(n); err != nil {
		return err
	}
	tail := d.size - i
	d.moveRange(i+n, i, tail)
	d.size += n
	if err := d.fillGap(i, n, fill); err != nil {
		d.moveRange(i, i+n, tail)
		d.size -= n
		return err
	}
	return nil
}

// overlaps reports whether vs shares memory with any block of d.
func (d *Deque[T]) overlaps(vs []T) bool {
	if len(vs) == 0 {
		return false
	}
	sz := unsafe.Sizeof(vs[0])
	p := uintptr(unsafe.Pointer(unsafe.SliceData(vs)))
	q := p + uintptr(len(vs))*sz
	for _, blk := range d.blocks {
		if len(blk) == 0 {
			continue
		}
		lo := uintptr(unsafe.Pointer(unsafe.SliceData(blk)))
		if q > lo && p < lo+uintptr(len(blk))*sz {
			return true
		}
	}
	return false
}

// Insert inserts val before the element at i.
func (d *Deque[T]) Insert(i int, val T) error {
	return d.insert(i, 1, constructValue(d.mem, val))
}

// InsertN inserts n copies of val before the element at i.
func (d *Deque[T]) InsertN(i, n int, val T) error {
	return d.insert(i, n, constructValue(d.mem, val))
}

// InsertSlice inserts copies of vs before the element at i. vs may alias
// the deque's storage.
func (d *Deque[T]) InsertSlice(i int, vs []T) error {
	if d.overlaps(vs) {
		vs = slices.Clone(vs)
	}
	return d.insert(i, len(vs), constructSlice(d.mem, vs))
}

// Erase removes the element at i.
func (d *Deque[T]) Erase(i int) error {
	if uint(i) >= uint(d.size) {
		return d.indexError(i)
	}
	return d.EraseRange(i, i+1)
}

// EraseRange removes the elements in [first, last), closing the gap from
// whichever side holds fewer elements.
func (d *Deque[T]) EraseRange(first, last int) error {
	switch {
	case first < 0 || last > d.size:
		return fmt.Errorf("%w: erase range [%d, %d) with length %d", stl.ErrIndex, first, last, d.size)
	case first > last:
		return fmt.Errorf("%w: erase range [%d, %d) is reversed", stl.ErrInvalid, first, last)
	case first == last:
		return nil
	}
	defer d.check()
	n := last - first
	for k := first; k < last; k++ {
		d.mem.Destroy(d.ref(k))
	}
	if first < d.size-last {
		d.moveRange(n, 0, first)
		d.setHead(d.head() + n)
	} else {
		d.moveRange(first, last, d.size-last)
	}
	d.size -= n
	return nil
}

// Resize changes the length to n, appending zero values or destroying
// trailing elements.
func (d *Deque[T]) Resize(n int) error {
	var zero T
	return d.ResizeFill(n, zero)
}

// ResizeFill changes the length to n, appending copies of val or destroying
// trailing elements.
func (d *Deque[T]) ResizeFill(n int, val T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", stl.ErrInvalid, n)
	}
	if n > d.size {
		return d.InsertN(d.size, n-d.size, val)
	}
	return d.EraseRange(n, d.size)
}

func (d *Deque[T]) destroyAll() {
	for i := 0; i < d.size; i++ {
		d.mem.Destroy(d.ref(i))
	}
	d.size = 0
}

// Clear destroys every element and releases the blocks. The map is kept.
func (d *Deque[T]) Clear() {
	d.destroyAll()
	d.releaseBlocks(0, 0)
	if d.blocks != nil {
		d.start = cursor{block: len(d.blocks) / 2}
	}
}

// Release destroys every element and returns all storage to the allocators.
// The deque stays usable and empty.
func (d *Deque[T]) Release() {
	d.Clear()
	if d.blocks != nil {
		d.mapMem.Deallocate(d.blocks)
		d.blocks = nil
	}
	d.start = cursor{}
}

func (d *Deque[T]) cloneWith(mem memory.Allocator[T], mapMem memory.Allocator[[]T], bcap int) (*Deque[T], error) {
	c := New(WithAllocator(mem), WithMapAllocator(mapMem), WithBlockCapacity[T](bcap))
	err := c.insert(0, d.size, func(k int, p *T) error { return mem.Construct(p, d.Value(k)) })
	if err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

// Clone returns a copy of d using the allocator selected by d's allocator
// for copies.
func (d *Deque[T]) Clone() (*Deque[T], error) {
	return d.CloneWith(d.mem.SelectOnCopy())
}

// CloneWith returns a copy of d using mem for its blocks and elements.
func (d *Deque[T]) CloneWith(mem memory.Allocator[T]) (*Deque[T], error) {
	return d.cloneWith(mem, memory.Rebind[[]T](mem), d.bcap)
}

// CopyFrom replaces the contents of d with copies of other's elements. The
// copy is built before d is cleared, so d is unchanged on failure. When d's
// allocator propagates on copy assignment and differs from other's, d adopts
// other's allocators.
func (d *Deque[T]) CopyFrom(other *Deque[T]) error {
	if d == other {
		return nil
	}
	mem, mapMem := d.mem, d.mapMem
	if d.mem.Traits().PropagateOnCopyAssign && !memory.Equal(d.mem, other.mem) {
		mem, mapMem = other.mem, other.mapMem
	}
	c, err := other.cloneWith(mem, mapMem, d.bcap)
	if err != nil {
		return err
	}
	d.Release()
	*d = *c
	return nil
}

// MoveFrom replaces the contents of d with other's elements and leaves other
// empty. The storage is transferred when d's allocator propagates on move
// assignment or equals other's; otherwise the elements are rebuilt with d's
// allocators. d adopts other's allocators only when they propagate on move
// assignment.
func (d *Deque[T]) MoveFrom(other *Deque[T]) error {
	if d == other {
		return nil
	}
	switch {
	case d.mem.Traits().PropagateOnMoveAssign:
		d.Release()
		*d = *Take(other)
		return nil
	case d.equalAllocators(other):
		d.Release()
		d.swapStorage(other)
		other.bcap, other.reallocs = d.bcap, 0
		return nil
	}
	c, err := other.cloneWith(d.mem, d.mapMem, d.bcap)
	if err != nil {
		return err
	}
	d.Release()
	*d = *c
	other.Clear()
	return nil
}

func (d *Deque[T]) equalAllocators(other *Deque[T]) bool {
	return memory.Equal(d.mem, other.mem) && memory.Equal(d.mapMem, other.mapMem)
}

// swapStorage exchanges the maps, blocks and cursors of d and other. Each
// side keeps its allocators.
func (d *Deque[T]) swapStorage(other *Deque[T]) {
	d.blocks, other.blocks = other.blocks, d.blocks
	d.start, other.start = other.start, d.start
	d.size, other.size = other.size, d.size
	d.bcap, other.bcap = other.bcap, d.bcap
	d.reallocs, other.reallocs = other.reallocs, d.reallocs
}

// Swap exchanges the contents of d and other. The storage is exchanged when
// the allocators propagate on swap or are equal; otherwise each side is
// rebuilt with its own allocators, which can fail. The allocators themselves
// are only exchanged when they propagate on swap.
func (d *Deque[T]) Swap(other *Deque[T]) error {
	if d == other {
		return nil
	}
	switch {
	case d.mem.Traits().PropagateOnSwap:
		*d, *other = *other, *d
		return nil
	case d.equalAllocators(other):
		d.swapStorage(other)
		return nil
	}
	mine, err := other.cloneWith(d.mem, d.mapMem, d.bcap)
	if err != nil {
		return err
	}
	theirs, err := d.cloneWith(other.mem, other.mapMem, other.bcap)
	if err != nil {
		mine.Release()
		return err
	}
	d.Release()
	other.Release()
	*d, *other = *mine, *theirs
	return nil
}

// All returns an iterator over the indices and values of d.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(i, *d.ref(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of d.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(*d.ref(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the indices and values of d from the back.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.size - 1; i >= 0; i-- {
			if !yield(i, *d.ref(i)) {
				return
			}
		}
	}
}

func (d *Deque[T]) checkLen(n int) error {
	need, ok := overflow.Add(d.size, n)
	if !ok || need > d.MaxSize() {
		return fmt.Errorf("%w: %d elements exceed max size %d", stl.ErrLength, need, d.MaxSize())
	}
	return nil
}

func (d *Deque[T]) check() {
	debug.Assert(d.head()+d.size <= len(d.blocks)*d.bcap, "deque: finish cursor past the map")
}
