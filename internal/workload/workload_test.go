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

package workload_test

import (
	"testing"

	"github.com/Willie169/Cpp-STL-DSA-Learning/deque"
	"github.com/Willie169/Cpp-STL-DSA-Learning/internal/workload"
	"github.com/Willie169/Cpp-STL-DSA-Learning/memory"
	"github.com/Willie169/Cpp-STL-DSA-Learning/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a := workload.Generate(workload.Deque, 500, 42)
	b := workload.Generate(workload.Deque, 500, 42)
	c := workload.Generate(workload.Deque, 500, 43)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 500)
}

func TestGenerateRespectsKind(t *testing.T) {
	for _, op := range workload.Generate(workload.Vector, 2000, 1) {
		assert.NotEqual(t, workload.PushFront, op.Code)
		assert.NotEqual(t, workload.PopFront, op.Code)
	}
	for _, op := range workload.Generate(workload.Deque, 2000, 1) {
		assert.NotEqual(t, workload.Reserve, op.Code)
	}
	for _, op := range workload.Generate(workload.Bits, 2000, 1) {
		assert.Contains(t, []int64{0, 1}, op.Val)
	}
}

func TestParseKinds(t *testing.T) {
	ks, err := workload.ParseKinds("vector, Deque,bits,")
	require.NoError(t, err)
	assert.Equal(t, []workload.Kind{workload.Vector, workload.Deque, workload.Bits}, ks)
	assert.Equal(t, "deque", workload.Deque.String())

	_, err = workload.ParseKinds("vector,list")
	assert.ErrorContains(t, err, `"list"`)
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   workload.Op
		want string
	}{
		{workload.Op{Code: workload.PushFront, Val: 3}, "push_front(3)"},
		{workload.Op{Code: workload.Insert, Pos: 1, N: 2, Val: 5}, "insert(1, 2 x 5)"},
		{workload.Op{Code: workload.Erase, Pos: 4, N: 3}, "erase[4, 7)"},
		{workload.Op{Code: workload.Resize, N: 9}, "resize(9)"},
		{workload.Op{Code: workload.ShrinkToFit}, "shrink_to_fit"},
		{workload.Op{Code: workload.OpCode(200)}, "OpCode(200)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.String())
	}
}

func TestModel(t *testing.T) {
	var m workload.Model
	ops := []workload.Op{
		{Code: workload.PushBack, Val: 1},
		{Code: workload.PushFront, Val: 2},
		{Code: workload.Insert, Pos: 1, N: 2, Val: 7},
		{Code: workload.Erase, Pos: 0, N: 1},
		{Code: workload.Resize, N: 5, Val: 9},
	}
	for _, op := range ops {
		require.NoError(t, m.Apply(op))
	}
	assert.Equal(t, []int64{7, 7, 1, 9, 9}, m.Values())

	require.NoError(t, m.Apply(workload.Op{Code: workload.Clear}))
	assert.Error(t, m.Apply(workload.Op{Code: workload.PopFront}))
}

func TestReplay(t *testing.T) {
	const ops = 3000
	for _, seed := range []uint64{1, 2, 3} {
		t.Run("vector", func(t *testing.T) {
			mem := memory.NewCheckedAllocator[int64](nil)
			defer mem.AssertSize(t, 0)
			tgt := workload.NewVectorTarget(vector.WithAllocator[int64](mem))
			defer tgt.Release()
			require.NoError(t, workload.Replay(tgt, workload.Generate(workload.Vector, ops, seed), 50))
			mem.AssertLive(t, tgt.Len())
		})
		t.Run("deque", func(t *testing.T) {
			mem := memory.NewCheckedAllocator[int64](nil)
			defer mem.AssertSize(t, 0)
			tgt := workload.NewDequeTarget(deque.WithAllocator[int64](mem), deque.WithBlockCapacity[int64](5))
			defer tgt.Release()
			require.NoError(t, workload.Replay(tgt, workload.Generate(workload.Deque, ops, seed), 50))
			mem.AssertLive(t, tgt.Len())
		})
		t.Run("bits", func(t *testing.T) {
			mem := memory.NewCheckedAllocator[uint64](nil)
			defer mem.AssertSize(t, 0)
			tgt := workload.NewBitsTarget(vector.WithAllocator[uint64](mem))
			defer tgt.Release()
			require.NoError(t, workload.Replay(tgt, workload.Generate(workload.Bits, ops, seed), 50))
		})
	}
}

type brokenTarget struct {
	*workload.VectorTarget
}

// Apply drops pushes of multiples of three.
func (b brokenTarget) Apply(op workload.Op) error {
	if op.Code == workload.PushBack && op.Val%3 == 0 {
		return nil
	}
	return b.VectorTarget.Apply(op)
}

func TestReplayDetectsDivergence(t *testing.T) {
	tgt := brokenTarget{workload.NewVectorTarget()}
	ops := []workload.Op{
		{Code: workload.PushBack, Val: 1},
		{Code: workload.PushBack, Val: 3},
	}
	err := workload.Replay(tgt, ops, 0)
	var div *workload.DivergenceError
	require.ErrorAs(t, err, &div)
	assert.Equal(t, 1, div.Step)
	assert.Contains(t, err.Error(), "length 1, want 2")
}

func TestUnsupportedOp(t *testing.T) {
	tgt := workload.NewVectorTarget()
	assert.Error(t, tgt.Apply(workload.Op{Code: workload.PushFront}))
	assert.Error(t, tgt.Apply(workload.Op{Code: workload.PopBack}))
}
