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
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"unsafe"

	stl "github.com/Willie169/Cpp-STL-DSA-Learning"
	"github.com/JohnCGriffin/overflow"
	"golang.org/x/xerrors"
)

// CheckedAllocator wraps an allocator and records every outstanding
// allocation and the number of live elements. Rebound and forked checked
// allocators share the same ledger, so a single AssertSize covers a container
// and all of its internal structures.
type CheckedAllocator[T any] struct {
	mem    Allocator[T]
	l      *ledger
	id     *identity
	traits Traits
	fork   bool
}

type identity struct{ _ byte }

type ledger struct {
	sz         atomic.Int64
	peak       atomic.Int64
	live       atomic.Int64
	nalloc     atomic.Int64
	nfree      atomic.Int64
	nconstruct atomic.Int64
	ndestroy   atomic.Int64

	allocs sync.Map

	mu              sync.Mutex
	limit           int64
	allocBudget     int64
	constructBudget int64
}

// CheckedOption configures a CheckedAllocator.
type CheckedOption func(*checkedConfig)

type checkedConfig struct {
	traits Traits
	fork   bool
}

// WithTraits sets the propagation traits reported by the allocator.
func WithTraits(t Traits) CheckedOption {
	return func(c *checkedConfig) { c.traits = t }
}

// WithForkOnCopy makes SelectOnCopy return a fork of the allocator, so
// copies of a container get an allocator that does not compare equal.
func WithForkOnCopy() CheckedOption {
	return func(c *checkedConfig) { c.fork = true }
}

// NewCheckedAllocator returns a checked allocator over mem. A nil mem uses a GoAllocator.
// The returned allocator has no propagation traits and is only equal to
// itself and to allocators rebound from it.
func NewCheckedAllocator[T any](mem Allocator[T], opts ...CheckedOption) *CheckedAllocator[T] {
	if mem == nil {
		mem = NewGoAllocator[T]()
	}
	var cfg checkedConfig
	for _, o := range opts {
		o(&cfg)
	}
	l := &ledger{allocBudget: -1, constructBudget: -1}
	return &CheckedAllocator[T]{mem: mem, l: l, id: new(identity), traits: cfg.traits, fork: cfg.fork}
}

func rebindChecked[U, T any](a *CheckedAllocator[T]) *CheckedAllocator[U] {
	return &CheckedAllocator[U]{
		mem:    Rebind[U](a.mem),
		l:      a.l,
		id:     a.id,
		traits: a.traits,
		fork:   a.fork,
	}
}

// Fork returns an allocator sharing a's ledger that does not compare equal to a.
func (a *CheckedAllocator[T]) Fork() *CheckedAllocator[T] {
	return &CheckedAllocator[T]{mem: a.mem, l: a.l, id: new(identity), traits: a.traits, fork: a.fork}
}

func (a *CheckedAllocator[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if n > a.MaxSize() {
		return nil, xerrors.Errorf("memory: allocate %d elements: %w", n, stl.ErrLength)
	}
	sz, ok := overflow.Mul(n, sizeOf[T]())
	if !ok {
		return nil, xerrors.Errorf("memory: allocate %d elements: %w", n, stl.ErrLength)
	}
	if err := a.l.admit(int64(sz)); err != nil {
		return nil, xerrors.Errorf("memory: allocate %d elements (%d bytes): %w", n, sz, err)
	}

	out, err := a.mem.Allocate(n)
	if err != nil {
		return nil, err
	}
	a.l.nalloc.Add(1)
	cur := a.l.sz.Add(int64(sz))
	for {
		peak := a.l.peak.Load()
		if cur <= peak || a.l.peak.CompareAndSwap(peak, cur) {
			break
		}
	}
	if len(out) == 0 || sz == 0 {
		return out, nil
	}

	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(out)))
	for skip := allocFrames; skip > 0; skip-- {
		if pc, _, line, ok := runtime.Caller(skip); ok {
			a.l.allocs.Store(ptr, &dalloc{pc: pc, line: line, sz: sz})
			break
		}
	}
	return out, nil
}

func (a *CheckedAllocator[T]) Deallocate(p []T) {
	if p == nil {
		return
	}
	sz := len(p) * sizeOf[T]()
	a.l.sz.Add(int64(-sz))
	a.l.nfree.Add(1)
	defer a.mem.Deallocate(p)

	if len(p) == 0 || sz == 0 {
		return
	}
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	a.l.allocs.Delete(ptr)
}

func (a *CheckedAllocator[T]) Construct(p *T, v T) error {
	if !a.l.consume(&a.l.constructBudget) {
		return xerrors.Errorf("memory: construct %T: %w", v, stl.ErrConstruct)
	}
	if err := a.mem.Construct(p, v); err != nil {
		return err
	}
	a.l.nconstruct.Add(1)
	a.l.live.Add(1)
	return nil
}

func (a *CheckedAllocator[T]) Destroy(p *T) {
	a.mem.Destroy(p)
	a.l.ndestroy.Add(1)
	a.l.live.Add(-1)
}

func (a *CheckedAllocator[T]) MaxSize() int   { return a.mem.MaxSize() }
func (a *CheckedAllocator[T]) Traits() Traits { return a.traits }

func (a *CheckedAllocator[T]) SelectOnCopy() Allocator[T] {
	if a.fork {
		return a.Fork()
	}
	return a
}

func (a *CheckedAllocator[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*CheckedAllocator[T])
	return ok && o.id == a.id
}

// CurrentAlloc returns the number of bytes currently allocated through the ledger.
func (a *CheckedAllocator[T]) CurrentAlloc() int { return int(a.l.sz.Load()) }

// Live returns the number of constructed elements that have not been destroyed.
func (a *CheckedAllocator[T]) Live() int { return int(a.l.live.Load()) }

// Stats are the counters kept by a CheckedAllocator ledger.
type Stats struct {
	Allocs     int64 `json:"allocs"`
	Frees      int64 `json:"frees"`
	Bytes      int64 `json:"bytes"`
	PeakBytes  int64 `json:"peak_bytes"`
	Constructs int64 `json:"constructs"`
	Destroys   int64 `json:"destroys"`
	Live       int64 `json:"live"`
}

func (a *CheckedAllocator[T]) Stats() Stats {
	return Stats{
		Allocs:     a.l.nalloc.Load(),
		Frees:      a.l.nfree.Load(),
		Bytes:      a.l.sz.Load(),
		PeakBytes:  a.l.peak.Load(),
		Constructs: a.l.nconstruct.Load(),
		Destroys:   a.l.ndestroy.Load(),
		Live:       a.l.live.Load(),
	}
}

// SetLimit makes allocations fail once the ledger would hold more than
// limit bytes. A limit of zero or less removes it.
func (a *CheckedAllocator[T]) SetLimit(limit int) {
	a.l.mu.Lock()
	defer a.l.mu.Unlock()
	a.l.limit = int64(limit)
}

// FailAllocAfter lets the next n allocations succeed and fails every
// allocation after that until Disarm is called.
func (a *CheckedAllocator[T]) FailAllocAfter(n int) {
	a.l.mu.Lock()
	defer a.l.mu.Unlock()
	a.l.allocBudget = int64(n)
}

// FailConstructAfter lets the next n constructions succeed and fails every
// construction after that until Disarm is called.
func (a *CheckedAllocator[T]) FailConstructAfter(n int) {
	a.l.mu.Lock()
	defer a.l.mu.Unlock()
	a.l.constructBudget = int64(n)
}

// Disarm clears the limit and all armed failures.
func (a *CheckedAllocator[T]) Disarm() {
	a.l.mu.Lock()
	defer a.l.mu.Unlock()
	a.l.limit = 0
	a.l.allocBudget = -1
	a.l.constructBudget = -1
}

func (l *ledger) admit(sz int64) error {
	if !l.consume(&l.allocBudget) {
		return stl.ErrOutOfMemory
	}
	l.mu.Lock()
	limit := l.limit
	l.mu.Unlock()
	if limit > 0 && l.sz.Load()+sz > limit {
		return stl.ErrOutOfMemory
	}
	return nil
}

// consume takes one unit from an armed budget, reporting false when it is exhausted.
func (l *ledger) consume(budget *int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch {
	case *budget < 0:
		return true
	case *budget == 0:
		return false
	}
	*budget--
	return true
}

// allocations usually happen inside the containers' growth paths rather than
// in the code under test, so skip the frames of Allocate and the container
// internals to report the call that triggered the growth.
const defAllocFrames = 4

// Use the environment variable STL_CHECKED_ALLOC_FRAMES to control how many
// frames up the stack the recorded call site is taken from.
var allocFrames = defAllocFrames

func init() {
	if val, ok := os.LookupEnv("STL_CHECKED_ALLOC_FRAMES"); ok {
		if f, err := strconv.Atoi(val); err == nil {
			allocFrames = f
		}
	}
}

type dalloc struct {
	pc   uintptr
	line int
	sz   int
}

type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

// AssertSize reports every outstanding allocation as a leak and fails when
// the ledger does not hold exactly sz bytes.
func (a *CheckedAllocator[T]) AssertSize(t TestingT, sz int) {
	t.Helper()
	if sz == 0 {
		a.l.allocs.Range(func(_, value interface{}) bool {
			info := value.(*dalloc)
			f := runtime.FuncForPC(info.pc)
			t.Errorf("LEAK of %d bytes FROM %s line %d\n", info.sz, f.Name(), info.line)
			return true
		})
	}

	if got := a.l.sz.Load(); int(got) != sz {
		t.Errorf("invalid memory size exp=%d, got=%d", sz, got)
	}
}

// AssertLive fails when the number of live elements is not n.
func (a *CheckedAllocator[T]) AssertLive(t TestingT, n int) {
	if got := a.l.live.Load(); int(got) != n {
		t.Helper()
		t.Errorf("invalid live element count exp=%d, got=%d", n, got)
	}
}

type CheckedAllocatorScope struct {
	l  *ledger
	sz int64
}

func NewCheckedAllocatorScope[T any](alloc *CheckedAllocator[T]) *CheckedAllocatorScope {
	return &CheckedAllocatorScope{l: alloc.l, sz: alloc.l.sz.Load()}
}

func (c *CheckedAllocatorScope) CheckSize(t TestingT) {
	sz := c.l.sz.Load()
	if c.sz != sz {
		t.Helper()
		t.Errorf("invalid memory size exp=%d, got=%d", c.sz, sz)
	}
}

var (
	_ Allocator[int] = (*CheckedAllocator[int])(nil)
	_ Equaler[int]   = (*CheckedAllocator[int])(nil)
)
