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
Package memory provides the allocator capability consumed by the containers.

An Allocator[T] hands out slots for elements of type T, constructs and
destroys elements in those slots, reports the largest request it can satisfy
and describes, through Traits, whether its instances follow a container when
the container is copied, moved or swapped.

GoAllocator is the stateless default backed by the Go heap.

CheckedAllocator wraps another allocator and keeps a ledger of outstanding
allocations and live elements. Tests create one per test and finish with

	defer mem.AssertSize(t, 0)

to detect leaked storage. The ledger can also be armed to fail allocations or
element construction after a number of calls.
*/
package memory
