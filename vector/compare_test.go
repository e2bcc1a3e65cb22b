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
	"strings"
	"testing"

	"github.com/Willie169/Cpp-STL-DSA-Learning/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromSlice[T any](t *testing.T, vs []T) *vector.Vector[T] {
	t.Helper()
	v, err := vector.FromSlice(vs)
	require.NoError(t, err)
	return v
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"empty", nil, nil, 0},
		{"equal", []int{1, 2}, []int{1, 2}, 0},
		{"prefix", []int{1, 2}, []int{1, 2, 0}, -1},
		{"longer", []int{1, 2, 0}, []int{1, 2}, 1},
		{"less", []int{1, 2, 3}, []int{1, 3}, -1},
		{"greater", []int{2}, []int{1, 9, 9}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustFromSlice(t, tt.a), mustFromSlice(t, tt.b)
			assert.Equal(t, tt.want, vector.Compare(a, b))
			assert.Equal(t, -tt.want, vector.Compare(b, a))
			assert.Equal(t, tt.want == 0, vector.Equal(a, b))
		})
	}
}

func TestEqualFunc(t *testing.T) {
	a := mustFromSlice(t, []string{"A", "b"})
	b := mustFromSlice(t, []string{"a", "B"})
	assert.False(t, vector.Equal(a, b))
	assert.True(t, vector.EqualFunc(a, b, strings.EqualFold))
	assert.Equal(t, 0, vector.CompareFunc(a, b, func(x, y string) int {
		return strings.Compare(strings.ToLower(x), strings.ToLower(y))
	}))
}

func TestRemove(t *testing.T) {
	mem, opt := newChecked[int](t)
	defer mem.AssertSize(t, 0)

	v, err := vector.FromSlice([]int{1, 2, 1, 3, 1}, opt)
	require.NoError(t, err)
	defer v.Release()

	assert.Equal(t, 3, vector.Remove(v, 1))
	assert.Equal(t, []int{2, 3}, v.Data())
	assert.Equal(t, 1, vector.RemoveFunc(v, func(x int) bool { return x > 2 }))
	assert.Equal(t, []int{2}, v.Data())
	assert.Equal(t, 5, v.Cap())
	mem.AssertLive(t, 1)
}
