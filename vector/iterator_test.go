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

package vector_test

import (
	"testing"

	"github.com/Willie169/Cpp-STL-DSA-Learning/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorArithmetic(t *testing.T) {
	v, err := vector.FromSlice([]int{10, 20, 30, 40})
	require.NoError(t, err)

	b, e := v.Begin(), v.End()
	assert.Equal(t, 4, e.Diff(b))
	assert.True(t, b.Less(e))
	assert.False(t, e.Less(b))

	it := b.Add(3)
	assert.Equal(t, 40, it.Value())
	assert.Equal(t, 30, it.Prev().Value())
	assert.Equal(t, 20, it.Sub(2).Value())
	assert.True(t, it.Next().Equal(e))
	assert.Equal(t, 3, it.Pos())

	it.Set(41)
	*b.Ptr() = 11
	assert.Equal(t, []int{11, 20, 30, 41}, v.Data())

	var got []int
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, v.Data(), got)
}

func TestIteratorErase(t *testing.T) {
	mem, opt := newChecked[int](t)
	defer mem.AssertSize(t, 0)

	v, err := vector.FromSlice([]int{1, 2, 3, 4, 5}, opt)
	require.NoError(t, err)
	defer v.Release()

	it, err := v.EraseRangeAt(v.Begin().Next(), v.Begin().Add(3))
	require.NoError(t, err)
	assert.Equal(t, 4, it.Value())
	assert.Equal(t, []int{1, 4, 5}, v.Data())

	it, err = v.EraseAt(v.End().Prev())
	require.NoError(t, err)
	assert.True(t, it.Equal(v.End()))
	mem.AssertLive(t, 2)
}

func TestIteratorsDifferAcrossBuffers(t *testing.T) {
	a, err := vector.FromSlice([]int{1})
	require.NoError(t, err)
	b, err := vector.FromSlice([]int{1})
	require.NoError(t, err)
	assert.False(t, a.Begin().Equal(b.Begin()))
}
