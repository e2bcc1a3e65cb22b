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
	"github.com/Willie169/Cpp-STL-DSA-Learning/internal/debug"
)

// span returns the range of map slots holding live elements. An empty deque
// spans the block of its start cursor.
func (d *Deque[T]) span() (lo, hi int) {
	lo = d.start.block
	if d.size == 0 {
		return lo, lo + 1
	}
	return lo, (d.head()+d.size-1)/d.bcap + 1
}

// ensureMap allocates the initial map and moves the start cursor of an
// empty deque back inside the map when pops left it at the far end.
func (d *Deque[T]) ensureMap() error {
	if d.blocks != nil {
		if d.size == 0 && d.start.block >= len(d.blocks) {
			d.start = cursor{block: len(d.blocks) / 2}
		}
		return nil
	}
	m, err := d.mapMem.Allocate(initialMapSize)
	if err != nil {
		return err
	}
	d.blocks = m
	d.start = cursor{block: initialMapSize / 2}
	return nil
}

// reserveBack makes sure the n slots after the last element belong to
// allocated blocks.
func (d *Deque[T]) reserveBack(n int) error {
	if err := d.checkLen(n); err != nil {
		return err
	}
	if err := d.ensureMap(); err != nil {
		return err
	}
	end := d.head() + d.size
	last := (end + n - 1) / d.bcap
	if last >= len(d.blocks) {
		_, hi := d.span()
		if err := d.growMap(0, last+1-hi); err != nil {
			return err
		}
		end = d.head() + d.size
		last = (end + n - 1) / d.bcap
	}
	return d.allocBlocks(end/d.bcap, last+1)
}

// reserveFront makes sure the n slots before the first element belong to
// allocated blocks.
func (d *Deque[T]) reserveFront(n int) error {
	if err := d.checkLen(n); err != nil {
		return err
	}
	if err := d.ensureMap(); err != nil {
		return err
	}
	first := d.head() - n
	if first < 0 {
		lo, _ := d.span()
		missing := (-first + d.bcap - 1) / d.bcap
		if err := d.growMap(lo+missing, 0); err != nil {
			return err
		}
		first = d.head() - n
	}
	return d.allocBlocks(first/d.bcap, (d.head()-1)/d.bcap+1)
}

// allocBlocks allocates every missing block in map slots [from, to). Blocks
// allocated before a failure stay in the map as spares.
func (d *Deque[T]) allocBlocks(from, to int) error {
	for b := from; b < to; b++ {
		if d.blocks[b] != nil {
			continue
		}
		blk, err := d.mem.Allocate(d.bcap)
		if err != nil {
			return err
		}
		d.blocks[b] = blk
	}
	return nil
}

// releaseBlocks returns every block outside map slots [lo, hi) to the allocator.
func (d *Deque[T]) releaseBlocks(lo, hi int) {
	for b, blk := range d.blocks {
		if blk != nil && (b < lo || b >= hi) {
			d.mem.Deallocate(blk)
			d.blocks[b] = nil
		}
	}
}

// growMap makes room for front block slots before the live span and back
// slots after it. A map with more than twice the needed slots is recentered
// in place; otherwise a larger map is allocated and the block pointers are
// copied into its middle, leaving at least one spare slot at each end. The
// map is only replaced once the new one has been allocated.
func (d *Deque[T]) growMap(front, back int) error {
	lo, hi := d.span()
	used := hi - lo
	need := used + front + back

	if len(d.blocks) > 2*need {
		newLo := (len(d.blocks)-need)/2 + front
		d.releaseBlocks(lo, hi)
		copy(d.blocks[newLo:newLo+used], d.blocks[lo:hi])
		for b := lo; b < hi; b++ {
			if b < newLo || b >= newLo+used {
				d.blocks[b] = nil
			}
		}
		d.start.block += newLo - lo
		debug.Log("deque: recentered map", "slots", len(d.blocks), "used", used, "shift", newLo-lo)
		return nil
	}

	n := max(len(d.blocks)+max(len(d.blocks), front+back)+2, need+2)
	m, err := d.mapMem.Allocate(n)
	if err != nil {
		return err
	}
	newLo := (n-need)/2 + front
	d.releaseBlocks(lo, hi)
	copy(m[newLo:], d.blocks[lo:hi])
	clear(d.blocks)
	d.mapMem.Deallocate(d.blocks)
	d.blocks = m
	d.start.block += newLo - lo
	d.reallocs++
	debug.Log("deque: reallocated map", "slots", n, "used", used)
	return nil
}

// ShrinkToFit releases the spare blocks and shrinks the map to the slots
// holding live elements plus one empty slot at each end. An empty deque
// releases all of its storage. If the smaller map cannot be allocated the
// current one is kept.
func (d *Deque[T]) ShrinkToFit() {
	if d.size == 0 {
		d.Release()
		return
	}
	lo, hi := d.span()
	d.releaseBlocks(lo, hi)
	n := hi - lo + 2
	if n >= len(d.blocks) {
		return
	}
	m, err := d.mapMem.Allocate(n)
	if err != nil {
		debug.Log("deque: shrink skipped", "err", err)
		return
	}
	copy(m[1:], d.blocks[lo:hi])
	clear(d.blocks)
	d.mapMem.Deallocate(d.blocks)
	d.blocks = m
	d.start.block += 1 - lo
}
