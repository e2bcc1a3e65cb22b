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
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"slices"

	stl "github.com/Willie169/Cpp-STL-DSA-Learning"
	"github.com/Willie169/Cpp-STL-DSA-Learning/bitutil"
	"github.com/JohnCGriffin/overflow"
	"github.com/zeebo/xxh3"
)

const wordBits = 64

// BitVector is a vector of booleans packed 64 to a word. The words live in a
// Vector[uint64], so growth follows the same protocol as any other vector.
// Bits at or past Len() are always zero.
type BitVector struct {
	words *Vector[uint64]
	n     int
}

// NewBitVector returns an empty bit vector.
func NewBitVector(opts ...Option[uint64]) *BitVector {
	return &BitVector{words: New(opts...)}
}

// NewBitVectorFill returns a bit vector of n copies of val.
func NewBitVectorFill(n int, val bool, opts ...Option[uint64]) (*BitVector, error) {
	b := NewBitVector(opts...)
	if err := b.InsertN(0, n, val); err != nil {
		b.Release()
		return nil, err
	}
	return b, nil
}

// BitVectorFromBools returns a bit vector holding bs.
func BitVectorFromBools(bs []bool, opts ...Option[uint64]) (*BitVector, error) {
	b := NewBitVector(opts...)
	if err := b.words.Reserve(bitutil.WordsForBits[uint64](len(bs))); err != nil {
		b.Release()
		return nil, err
	}
	for _, v := range bs {
		if err := b.PushBack(v); err != nil {
			b.Release()
			return nil, err
		}
	}
	return b, nil
}

func (b *BitVector) Len() int    { return b.n }
func (b *BitVector) Empty() bool { return b.n == 0 }

// Cap returns the number of bits that fit without growing the word storage.
func (b *BitVector) Cap() int { return b.words.Cap() * wordBits }

// MaxSize returns the largest number of bits the vector can hold.
func (b *BitVector) MaxSize() int {
	n, ok := overflow.Mul(b.words.MaxSize(), wordBits)
	if !ok {
		return math.MaxInt
	}
	return n
}

// Words returns the packed words. The slice aliases the storage.
func (b *BitVector) Words() []uint64 { return b.words.Data() }

func (b *BitVector) indexError(i int) error {
	return fmt.Errorf("%w: bit index %d with length %d", stl.ErrIndex, i, b.n)
}

// Value returns bit i without checking it against Len.
func (b *BitVector) Value(i int) bool { return bitutil.BitIsSet(b.words.Data(), i) }

// At returns bit i, or an error wrapping stl.ErrIndex.
func (b *BitVector) At(i int) (bool, error) {
	if uint(i) >= uint(b.n) {
		return false, b.indexError(i)
	}
	return b.Value(i), nil
}

// Set sets bit i to val without checking it against Len.
func (b *BitVector) Set(i int, val bool) { bitutil.SetBitTo(b.words.Data(), i, val) }

// SetAt sets bit i to val after checking the bounds.
func (b *BitVector) SetAt(i int, val bool) error {
	if uint(i) >= uint(b.n) {
		return b.indexError(i)
	}
	b.Set(i, val)
	return nil
}

// Flip inverts bit i.
func (b *BitVector) Flip(i int) { bitutil.FlipBit(b.words.Data(), i) }

// FlipAll inverts every bit.
func (b *BitVector) FlipAll() {
	ws := b.words.Data()
	for i := range ws {
		ws[i] = ^ws[i]
	}
	b.clearTail()
}

func (b *BitVector) clearTail() {
	if tail := b.n % wordBits; tail != 0 {
		ws := b.words.Data()
		ws[len(ws)-1] &= bitutil.LowMask[uint64](tail)
	}
}

// Front returns the first bit. It panics on an empty vector.
func (b *BitVector) Front() bool { return b.Value(0) }

// Back returns the last bit. It panics on an empty vector.
func (b *BitVector) Back() bool { return b.Value(b.n - 1) }

// Count returns the number of set bits.
func (b *BitVector) Count() int { return bitutil.CountSetBits(b.words.Data(), b.n) }

// resizeWords makes the word storage hold exactly enough words for n bits.
func (b *BitVector) resizeWords(n int) error {
	return b.words.Resize(bitutil.WordsForBits[uint64](n))
}

// PushBack appends val.
func (b *BitVector) PushBack(val bool) error {
	if b.n == b.words.Len()*wordBits {
		if err := b.words.PushBack(0); err != nil {
			return err
		}
	}
	b.Set(b.n, val)
	b.n++
	return nil
}

// PopBack removes and returns the last bit. It reports false on an empty vector.
func (b *BitVector) PopBack() (bool, bool) {
	if b.n == 0 {
		return false, false
	}
	b.n--
	out := b.Value(b.n)
	bitutil.ClearBit(b.words.Data(), b.n)
	if b.n%wordBits == 0 {
		b.words.PopBack()
	}
	return out, true
}

// moveBits copies cnt bits from src to dst, handling overlap.
func (b *BitVector) moveBits(dst, src, cnt int) {
	ws := b.words.Data()
	if dst > src {
		for k := cnt - 1; k >= 0; k-- {
			bitutil.SetBitTo(ws, dst+k, bitutil.BitIsSet(ws, src+k))
		}
		return
	}
	for k := 0; k < cnt; k++ {
		bitutil.SetBitTo(ws, dst+k, bitutil.BitIsSet(ws, src+k))
	}
}

// Insert inserts val before bit i.
func (b *BitVector) Insert(i int, val bool) error { return b.InsertN(i, 1, val) }

// InsertN inserts cnt copies of val before bit i.
func (b *BitVector) InsertN(i, cnt int, val bool) error {
	switch {
	case i < 0 || i > b.n:
		return fmt.Errorf("%w: insert position %d with length %d", stl.ErrIndex, i, b.n)
	case cnt < 0:
		return fmt.Errorf("%w: negative count %d", stl.ErrInvalid, cnt)
	case cnt == 0:
		return nil
	}
	need, ok := overflow.Add(b.n, cnt)
	if !ok || need > b.MaxSize() {
		return fmt.Errorf("%w: %d bits exceed max size", stl.ErrLength, need)
	}
	if err := b.resizeWords(need); err != nil {
		return err
	}
	b.moveBits(i+cnt, i, b.n-i)
	ws := b.words.Data()
	for k := i; k < i+cnt; k++ {
		bitutil.SetBitTo(ws, k, val)
	}
	b.n = need
	return nil
}

// InsertBools inserts bs before bit i.
func (b *BitVector) InsertBools(i int, bs []bool) error {
	if err := b.InsertN(i, len(bs), false); err != nil {
		return err
	}
	for k, v := range bs {
		b.Set(i+k, v)
	}
	return nil
}

// Erase removes bit i.
func (b *BitVector) Erase(i int) error {
	if uint(i) >= uint(b.n) {
		return b.indexError(i)
	}
	return b.EraseRange(i, i+1)
}

// EraseRange removes the bits in [first, last).
func (b *BitVector) EraseRange(first, last int) error {
	switch {
	case first < 0 || last > b.n:
		return fmt.Errorf("%w: erase range [%d, %d) with length %d", stl.ErrIndex, first, last, b.n)
	case first > last:
		return fmt.Errorf("%w: erase range [%d, %d) is reversed", stl.ErrInvalid, first, last)
	case first == last:
		return nil
	}
	cnt := last - first
	b.moveBits(first, last, b.n-last)
	ws := b.words.Data()
	for k := b.n - cnt; k < b.n; k++ {
		bitutil.ClearBit(ws, k)
	}
	b.n -= cnt
	return b.resizeWords(b.n)
}

// Resize changes the length to n, appending copies of val when growing.
func (b *BitVector) Resize(n int, val bool) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", stl.ErrInvalid, n)
	}
	if n > b.n {
		return b.InsertN(b.n, n-b.n, val)
	}
	return b.EraseRange(n, b.n)
}

// Reserve makes room for n bits.
func (b *BitVector) Reserve(n int) error {
	if n > b.MaxSize() {
		return fmt.Errorf("%w: reserve %d bits exceeds max size", stl.ErrLength, n)
	}
	return b.words.Reserve(bitutil.WordsForBits[uint64](n))
}

func (b *BitVector) ShrinkToFit() { b.words.ShrinkToFit() }

func (b *BitVector) Clear() {
	b.words.Clear()
	b.n = 0
}

// Release returns the word storage to the allocator.
func (b *BitVector) Release() {
	b.words.Release()
	b.n = 0
}

// Clone returns a copy of b.
func (b *BitVector) Clone() (*BitVector, error) {
	ws, err := b.words.Clone()
	if err != nil {
		return nil, err
	}
	return &BitVector{words: ws, n: b.n}, nil
}

// Swap exchanges the contents of b and o.
func (b *BitVector) Swap(o *BitVector) error {
	if err := b.words.Swap(o.words); err != nil {
		return err
	}
	b.n, o.n = o.n, b.n
	return nil
}

// Equal reports whether b and o hold the same bits.
func (b *BitVector) Equal(o *BitVector) bool {
	return b.n == o.n && slices.Equal(b.words.Data(), o.words.Data())
}

// Hash returns an XXH3 digest of the length and the packed bits.
func (b *BitVector) Hash() uint64 {
	buf := make([]byte, 0, 8*(b.words.Len()+1))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(b.n))
	for _, w := range b.words.Data() {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return xxh3.Hash(buf)
}

// Bools returns the bits as a slice of booleans.
func (b *BitVector) Bools() []bool {
	out := make([]bool, b.n)
	for i := range out {
		out[i] = b.Value(i)
	}
	return out
}

// All returns an iterator over the positions and values of the bits.
func (b *BitVector) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < b.n; i++ {
			if !yield(i, b.Value(i)) {
				return
			}
		}
	}
}

// BitRef is a reference to a single bit of a BitVector. It becomes stale
// when the vector reallocates its words.
type BitRef struct {
	words []uint64
	i     int
}

// Ref returns a reference to bit i.
func (b *BitVector) Ref(i int) BitRef { return BitRef{words: b.words.Data(), i: i} }

func (r BitRef) Get() bool    { return bitutil.BitIsSet(r.words, r.i) }
func (r BitRef) Set(val bool) { bitutil.SetBitTo(r.words, r.i, val) }
func (r BitRef) Flip()        { bitutil.FlipBit(r.words, r.i) }

// SwapBits exchanges the values of two referenced bits.
func SwapBits(x, y BitRef) {
	xv, yv := x.Get(), y.Get()
	x.Set(yv)
	y.Set(xv)
}
