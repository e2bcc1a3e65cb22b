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

package deque_test

import (
	"strconv"
	"testing"

	"github.com/Willie169/Cpp-STL-DSA-Learning/deque"
	"github.com/Willie169/Cpp-STL-DSA-Learning/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualAndCompare(t *testing.T) {
	mem := memory.NewCheckedAllocator[int](nil)
	defer mem.AssertSize(t, 0)
	opt := deque.WithAllocator[int](mem)

	build := func(vs ...int) *deque.Deque[int] {
		d, err := deque.FromSlice(vs, opt, deque.WithBlockCapacity[int](2))
		require.NoError(t, err)
		return d
	}

	for _, tc := range []struct {
		name string
		a, b []int
		cmp  int
	}{
		{"both empty", nil, nil, 0},
		{"empty first", nil, []int{1}, -1},
		{"equal", []int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}, 0},
		{"prefix", []int{1, 2, 3}, []int{1, 2, 3, 4}, -1},
		{"greater element", []int{1, 3}, []int{1, 2, 9}, 1},
		{"less element across blocks", []int{1, 2, 3, 4, 0}, []int{1, 2, 3, 4, 5}, -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a, b := build(tc.a...), build(tc.b...)
			defer a.Release()
			defer b.Release()

			assert.Equal(t, tc.cmp, deque.Compare(a, b))
			assert.Equal(t, -tc.cmp, deque.Compare(b, a))
			assert.Equal(t, tc.cmp == 0, deque.Equal(a, b))
		})
	}
}

func TestEqualIgnoresLayout(t *testing.T) {
	mem := memory.NewCheckedAllocator[int](nil)
	defer mem.AssertSize(t, 0)

	a, err := deque.FromSlice([]int{1, 2, 3, 4}, deque.WithAllocator[int](mem), deque.WithBlockCapacity[int](3))
	require.NoError(t, err)
	defer a.Release()

	b := deque.New(deque.WithAllocator[int](mem), deque.WithBlockCapacity[int](3))
	defer b.Release()
	for _, v := range []int{4, 3, 2, 1} {
		require.NoError(t, b.PushFront(v))
	}
	assert.True(t, deque.Equal(a, b))
}

func TestEqualFuncCompareFunc(t *testing.T) {
	a, err := deque.FromSlice([]int{1, 2, 3})
	require.NoError(t, err)
	defer a.Release()
	b, err := deque.FromSlice([]string{"1", "2", "3"})
	require.NoError(t, err)
	defer b.Release()

	assert.True(t, deque.EqualFunc(a, b, func(x int, s string) bool { return strconv.Itoa(x) == s }))
	assert.Zero(t, deque.CompareFunc(a, b, func(x int, s string) int {
		y, _ := strconv.Atoi(s)
		return x - y
	}))

	b.Set(2, "9")
	assert.False(t, deque.EqualFunc(a, b, func(x int, s string) bool { return strconv.Itoa(x) == s }))
}

func TestRemove(t *testing.T) {
	mem, d := newChecked[int](t, deque.WithBlockCapacity[int](3))
	defer mem.AssertSize(t, 0)
	defer d.Release()

	for _, v := range []int{1, 2, 1, 3, 1, 1, 4} {
		require.NoError(t, d.PushBack(v))
	}
	require.NoError(t, d.PushFront(1))

	assert.Equal(t, 5, deque.Remove(d, 1))
	assert.Equal(t, []int{2, 3, 4}, contents(d))
	mem.AssertLive(t, 3)

	assert.Zero(t, deque.Remove(d, 7))
	assert.Equal(t, 1, deque.RemoveFunc(d, func(v int) bool { return v%2 == 1 }))
	assert.Equal(t, []int{2, 4}, contents(d))
	mem.AssertLive(t, 2)

	require.NoError(t, d.PushBack(6))
	assert.Equal(t, []int{2, 4, 6}, contents(d))

	assert.Equal(t, 3, deque.RemoveFunc(d, func(int) bool { return true }))
	assert.True(t, d.Empty())
	mem.AssertLive(t, 0)
}

func TestSwapFunction(t *testing.T) {
	mem := memory.NewCheckedAllocator[int](nil)
	defer mem.AssertSize(t, 0)

	a := fromRange(t, 5, deque.WithAllocator[int](mem))
	defer a.Release()
	b := fromRange(t, 2, deque.WithAllocator[int](mem))
	defer b.Release()

	require.NoError(t, deque.Swap(a, b))
	assert.Equal(t, []int{0, 1}, contents(a))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, contents(b))
}
