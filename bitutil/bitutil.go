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

// Package bitutil contains helpers for bitmaps stored in unsigned words, bit
// 0 of word 0 being the first bit.
package bitutil

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// WordBits returns the number of bits in a word of type W.
func WordBits[W constraints.Unsigned]() int {
	var w W
	return int(unsafe.Sizeof(w)) * 8
}

// WordsForBits returns the number of words of type W needed to hold n bits.
func WordsForBits[W constraints.Unsigned](n int) int {
	wb := WordBits[W]()
	return (n + wb - 1) / wb
}

func mask[W constraints.Unsigned](i int) W {
	return W(1) << (uint(i) % uint(WordBits[W]()))
}

// BitIsSet returns true if the bit at index i in buf is set (1).
func BitIsSet[W constraints.Unsigned](buf []W, i int) bool {
	return buf[uint(i)/uint(WordBits[W]())]&mask[W](i) != 0
}

// BitIsNotSet returns true if the bit at index i in buf is not set (0).
func BitIsNotSet[W constraints.Unsigned](buf []W, i int) bool { return !BitIsSet(buf, i) }

// SetBit sets the bit at index i in buf to 1.
func SetBit[W constraints.Unsigned](buf []W, i int) {
	buf[uint(i)/uint(WordBits[W]())] |= mask[W](i)
}

// ClearBit sets the bit at index i in buf to 0.
func ClearBit[W constraints.Unsigned](buf []W, i int) {
	buf[uint(i)/uint(WordBits[W]())] &^= mask[W](i)
}

// FlipBit inverts the bit at index i in buf.
func FlipBit[W constraints.Unsigned](buf []W, i int) {
	buf[uint(i)/uint(WordBits[W]())] ^= mask[W](i)
}

// SetBitTo sets the bit at index i in buf to val.
func SetBitTo[W constraints.Unsigned](buf []W, i int, val bool) {
	if val {
		SetBit(buf, i)
	} else {
		ClearBit(buf, i)
	}
}

// LowMask returns a word with the n lowest bits set.
func LowMask[W constraints.Unsigned](n int) W {
	if n >= WordBits[W]() {
		return ^W(0)
	}
	return W(1)<<uint(n) - 1
}

// CountSetBits counts the number of 1's in buf up to n bits.
func CountSetBits(buf []uint64, n int) int {
	count := 0
	full := n / 64
	for _, v := range buf[:full] {
		count += bits.OnesCount64(v)
	}
	if tail := n % 64; tail != 0 {
		count += bits.OnesCount64(buf[full] & LowMask[uint64](tail))
	}
	return count
}
