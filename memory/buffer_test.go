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

package memory_test

import (
	"testing"

	"github.com/Willie169/Cpp-STL-DSA-Learning/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferAllocateRelease(t *testing.T) {
	mem := memory.NewCheckedAllocator[int32](nil)
	defer mem.AssertSize(t, 0)

	buf := memory.NewBuffer[int32](mem)
	require.NoError(t, buf.Allocate(16))
	assert.Equal(t, 16, buf.Cap())
	assert.Len(t, buf.Slots(), 16)
	assert.Equal(t, 64, mem.CurrentAlloc())

	buf.Release()
	assert.Zero(t, buf.Cap())
	assert.Nil(t, buf.Slots())
	buf.Release()
}

func TestBufferSwap(t *testing.T) {
	m1 := memory.NewCheckedAllocator[int](nil)
	m2 := memory.NewCheckedAllocator[int](nil)
	defer m1.AssertSize(t, 0)
	defer m2.AssertSize(t, 0)

	a := memory.NewBuffer[int](m1)
	b := memory.NewBuffer[int](m2)
	require.NoError(t, a.Allocate(2))
	a.Swap(&b)

	assert.Zero(t, a.Cap())
	assert.Equal(t, 2, b.Cap())
	assert.Same(t, m2, a.Allocator())
	assert.Same(t, m1, b.Allocator())
	b.Release()
}

func TestBufferSwapSlots(t *testing.T) {
	m1 := memory.NewCheckedAllocator[int](nil)
	defer m1.AssertSize(t, 0)
	m2 := memory.Rebind[int, int](m1)
	require.True(t, memory.Equal[int](m1, m2))

	a := memory.NewBuffer[int](m1)
	b := memory.NewBuffer(m2)
	require.NoError(t, a.Allocate(3))
	slots := a.Slots()
	a.SwapSlots(&b)

	assert.Zero(t, a.Cap())
	assert.Equal(t, 3, b.Cap())
	assert.Same(t, &slots[0], &b.Slots()[0])
	assert.Same(t, m1, a.Allocator())
	assert.Same(t, m2, b.Allocator())
	b.Release()
}

func TestBufferReset(t *testing.T) {
	m1 := memory.NewCheckedAllocator[int](nil)
	m2 := memory.NewCheckedAllocator[int](nil)
	defer m1.AssertSize(t, 0)
	defer m2.AssertSize(t, 0)

	buf := memory.NewBuffer[int](m1)
	require.NoError(t, buf.Allocate(4))
	buf.Reset(m2)
	assert.Zero(t, buf.Cap())
	assert.Zero(t, m1.CurrentAlloc())
	assert.Same(t, m2, buf.Allocator())

	require.NoError(t, buf.Allocate(2))
	assert.Positive(t, m2.CurrentAlloc())
	buf.Release()
}

func TestRelocate(t *testing.T) {
	src := []string{"a", "b", "c"}
	dst := make([]string, 4)
	n := memory.Relocate(dst, src)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"a", "b", "c", ""}, dst)
	assert.Equal(t, []string{"", "", ""}, src)
}
