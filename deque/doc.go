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

// Package deque implements Deque, a double-ended queue stored as a map of
// fixed-size blocks.
//
// Elements never move when the deque grows at either end, so pointers
// obtained from Ref stay valid across PushFront and PushBack. Only the map of
// block pointers is reallocated, and it grows geometrically, giving amortized
// constant time insertion at both ends. Inserting or erasing in the middle
// shifts whichever side of the position holds fewer elements.
//
// A deque allocates its blocks and constructs its elements through a
// memory.Allocator. The map is allocated through the same allocator rebound
// to the block type, unless WithMapAllocator supplies one.
package deque
