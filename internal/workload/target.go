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

package workload

import (
	"github.com/Willie169/Cpp-STL-DSA-Learning/deque"
	"github.com/Willie169/Cpp-STL-DSA-Learning/vector"
)

// Target is a container that can replay a trace.
type Target interface {
	Apply(op Op) error
	Len() int
	Values() []int64
	// Release returns the container's storage to its allocator.
	Release()
}

// VectorTarget replays traces against a vector.Vector.
type VectorTarget struct {
	V *vector.Vector[int64]
}

func NewVectorTarget(opts ...vector.Option[int64]) *VectorTarget {
	return &VectorTarget{V: vector.New(opts...)}
}

func (t *VectorTarget) Apply(op Op) error {
	switch op.Code {
	case PushBack:
		return t.V.PushBack(op.Val)
	case PopBack:
		if _, ok := t.V.PopBack(); !ok {
			return emptyError(op)
		}
	case Insert:
		return t.V.InsertN(op.Pos, op.N, op.Val)
	case Erase:
		return t.V.EraseRange(op.Pos, op.Pos+op.N)
	case Resize:
		return t.V.ResizeFill(op.N, op.Val)
	case Clear:
		t.V.Clear()
	case ShrinkToFit:
		t.V.ShrinkToFit()
	case Reserve:
		return t.V.Reserve(op.N)
	default:
		return unsupportedError(op)
	}
	return nil
}

func (t *VectorTarget) Len() int        { return t.V.Len() }
func (t *VectorTarget) Values() []int64 { return append([]int64(nil), t.V.Data()...) }
func (t *VectorTarget) Release()        { t.V.Release() }

// DequeTarget replays traces against a deque.Deque.
type DequeTarget struct {
	D *deque.Deque[int64]
}

func NewDequeTarget(opts ...deque.Option[int64]) *DequeTarget {
	return &DequeTarget{D: deque.New(opts...)}
}

func (t *DequeTarget) Apply(op Op) error {
	switch op.Code {
	case PushBack:
		return t.D.PushBack(op.Val)
	case PushFront:
		return t.D.PushFront(op.Val)
	case PopBack:
		if _, ok := t.D.PopBack(); !ok {
			return emptyError(op)
		}
	case PopFront:
		if _, ok := t.D.PopFront(); !ok {
			return emptyError(op)
		}
	case Insert:
		return t.D.InsertN(op.Pos, op.N, op.Val)
	case Erase:
		return t.D.EraseRange(op.Pos, op.Pos+op.N)
	case Resize:
		return t.D.ResizeFill(op.N, op.Val)
	case Clear:
		t.D.Clear()
	case ShrinkToFit:
		t.D.ShrinkToFit()
	default:
		return unsupportedError(op)
	}
	return nil
}

func (t *DequeTarget) Len() int { return t.D.Len() }

func (t *DequeTarget) Values() []int64 {
	out := make([]int64, 0, t.D.Len())
	for v := range t.D.Values() {
		out = append(out, v)
	}
	return out
}

func (t *DequeTarget) Release() { t.D.Release() }

// BitsTarget replays traces against a vector.BitVector. Values are stored as
// their lowest bit.
type BitsTarget struct {
	B *vector.BitVector
}

func NewBitsTarget(opts ...vector.Option[uint64]) *BitsTarget {
	return &BitsTarget{B: vector.NewBitVector(opts...)}
}

func (t *BitsTarget) Apply(op Op) error {
	bit := op.Val&1 == 1
	switch op.Code {
	case PushBack:
		return t.B.PushBack(bit)
	case PopBack:
		if _, ok := t.B.PopBack(); !ok {
			return emptyError(op)
		}
	case Insert:
		return t.B.InsertN(op.Pos, op.N, bit)
	case Erase:
		return t.B.EraseRange(op.Pos, op.Pos+op.N)
	case Resize:
		return t.B.Resize(op.N, bit)
	case Clear:
		t.B.Clear()
	case ShrinkToFit:
		t.B.ShrinkToFit()
	case Reserve:
		return t.B.Reserve(op.N)
	default:
		return unsupportedError(op)
	}
	return nil
}

func (t *BitsTarget) Len() int { return t.B.Len() }

func (t *BitsTarget) Values() []int64 {
	out := make([]int64, t.B.Len())
	for i, b := range t.B.All() {
		if b {
			out[i] = 1
		}
	}
	return out
}

func (t *BitsTarget) Release() { t.B.Release() }

var (
	_ Target = (*VectorTarget)(nil)
	_ Target = (*DequeTarget)(nil)
	_ Target = (*BitsTarget)(nil)
)
