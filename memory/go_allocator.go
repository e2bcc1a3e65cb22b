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
	"fmt"

	stl "github.com/Willie169/Cpp-STL-DSA-Learning"
	"golang.org/x/xerrors"
)

// GoAllocator allocates from the Go heap. It is stateless: every instance is
// equal to every other and it follows a container on move assignment only.
//
// GoAllocator is safe to use from multiple goroutines.
type GoAllocator[T any] struct{}

func NewGoAllocator[T any]() *GoAllocator[T] { return &GoAllocator[T]{} }

func (a *GoAllocator[T]) Allocate(n int) ([]T, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: negative allocation size %d", stl.ErrInvalid, n)
	case n > a.MaxSize():
		return nil, xerrors.Errorf("memory: allocate %d elements: %w", n, stl.ErrLength)
	case n == 0:
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate drops the reference to p; the garbage collector reclaims it.
func (a *GoAllocator[T]) Deallocate(p []T) {}

func (a *GoAllocator[T]) Construct(p *T, v T) error {
	*p = v
	return nil
}

func (a *GoAllocator[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

func (a *GoAllocator[T]) MaxSize() int { return MaxSizeOf[T]() }

func (a *GoAllocator[T]) Traits() Traits {
	return Traits{PropagateOnMoveAssign: true, IsAlwaysEqual: true}
}

func (a *GoAllocator[T]) SelectOnCopy() Allocator[T] { return a }

var (
	_ Allocator[int] = (*GoAllocator[int])(nil)
)
