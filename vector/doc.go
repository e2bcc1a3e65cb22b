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

/*
Package vector provides Vector, a growable contiguous array whose storage and
elements are managed through a memory.Allocator, and BitVector, a bit-packed
vector of booleans built on top of it.

A Vector owns one buffer. Elements [0, Len()) are live; the remaining
Cap()-Len() slots hold zero values. When an insertion does not fit, the vector
allocates a new buffer of max(1, 2*Len()) slots (or exactly what is needed,
when more), builds the new elements there, moves the existing ones across and
only then releases the old buffer. A failed allocation or element
construction therefore leaves the vector exactly as it was.

Pointers returned by Ref, AtRef and EmplaceBack, slices returned by Data and
iterators are invalidated by any operation that reallocates the buffer, and
by insertions and erasures at or before their position.
*/
package vector
