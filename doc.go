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
Package stl provides generic sequence containers for Go built on an explicit
allocator capability.

Containers

The vector package implements a growable contiguous array, Vector, together
with a bit-packed boolean variant, BitVector. The deque package implements a
double-ended queue, Deque, that stores its elements in fixed-size blocks
reached through an indirection table (the map), giving amortized constant time
insertion at both ends and constant time random access.

Allocators

Both containers obtain storage and construct elements through a
memory.Allocator. The allocator also carries the propagation policy consulted
when containers are copied, moved or swapped. memory.CheckedAllocator tracks
every allocation and can inject failures, which is how the tests verify that a
failed growth leaves a container untouched.

Containers are not safe for concurrent use.
*/
package stl
