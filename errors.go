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

package stl

import "errors"

var (
	// ErrIndex is returned by checked accessors when the index is not in [0, size).
	ErrIndex = errors.New("index out of range")
	// ErrLength is returned when a requested size or capacity exceeds the
	// maximum an allocator can represent.
	ErrLength = errors.New("length exceeds maximum size")
	// ErrOutOfMemory is returned when an allocator cannot satisfy a request.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrConstruct is returned when an allocator fails to construct an element.
	ErrConstruct = errors.New("element construction failed")
	// ErrInvalid is returned for invalid arguments such as reversed ranges.
	ErrInvalid = errors.New("invalid")
)
