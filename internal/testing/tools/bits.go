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

package tools

// Words packs the bits of v into 64-bit words, least significant bit first.
// Every non-zero value of v is a set bit.
func Words(v ...int) []uint64 {
	res := make([]uint64, (len(v)+63)/64)
	for i, b := range v {
		if b != 0 {
			res[i/64] |= 1 << uint(i%64)
		}
	}
	return res
}
