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

// Package workload generates deterministic operation traces for the
// sequence containers and replays them against a plain slice model, so that
// tests and benchmarks can check a container differentially.
package workload

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Kind selects the container a trace is generated for.
type Kind int

const (
	Vector Kind = iota
	Deque
	Bits
)

var kindNames = [...]string{Vector: "vector", Deque: "deque", Bits: "bits"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind named s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("workload: unknown container kind %q", s)
}

// ParseKinds parses a comma separated list of kinds.
func ParseKinds(s string) ([]Kind, error) {
	var out []Kind
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		k, err := ParseKind(f)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

//go:generate go run golang.org/x/tools/cmd/stringer -type=OpCode -linecomment

// OpCode is a container operation.
type OpCode uint8

const (
	PushBack    OpCode = iota // push_back
	PushFront                 // push_front
	PopBack                   // pop_back
	PopFront                  // pop_front
	Insert                    // insert
	Erase                     // erase
	Resize                    // resize
	Clear                     // clear
	ShrinkToFit               // shrink_to_fit
	Reserve                   // reserve
)

// Op is one step of a trace. Pos is the position of an insertion or the
// first erased element, N the count of inserted or erased elements, the new
// length for Resize or the capacity for Reserve.
type Op struct {
	Code OpCode
	Pos  int
	N    int
	Val  int64
}

func (o Op) String() string {
	switch o.Code {
	case PushBack, PushFront:
		return fmt.Sprintf("%s(%d)", o.Code, o.Val)
	case Insert:
		return fmt.Sprintf("%s(%d, %d x %d)", o.Code, o.Pos, o.N, o.Val)
	case Erase:
		return fmt.Sprintf("%s[%d, %d)", o.Code, o.Pos, o.Pos+o.N)
	case Resize, Reserve:
		return fmt.Sprintf("%s(%d)", o.Code, o.N)
	}
	return o.Code.String()
}

type weight struct {
	code OpCode
	w    int
}

var weights = map[Kind][]weight{
	Vector: {{PushBack, 40}, {PopBack, 12}, {Insert, 16}, {Erase, 14}, {Resize, 6}, {Clear, 1}, {ShrinkToFit, 2}, {Reserve, 2}},
	Deque:  {{PushBack, 22}, {PushFront, 22}, {PopBack, 8}, {PopFront, 8}, {Insert, 14}, {Erase, 14}, {Resize, 6}, {Clear, 1}, {ShrinkToFit, 2}},
	Bits:   {{PushBack, 40}, {PopBack, 12}, {Insert, 16}, {Erase, 14}, {Resize, 6}, {Clear, 1}, {ShrinkToFit, 2}, {Reserve, 2}},
}

// maxBurst bounds the count of a single Insert or Erase.
const maxBurst = 8

// Generate returns a trace of n operations for kind. The same seed always
// yields the same trace. Every operation is valid for the length the
// container has when it is applied.
func Generate(kind Kind, n int, seed uint64) []Op {
	r := rand.New(rand.NewPCG(seed, uint64(kind)))
	ws := weights[kind]
	total := 0
	for _, w := range ws {
		total += w.w
	}
	val := func() int64 {
		if kind == Bits {
			return r.Int64N(2)
		}
		return r.Int64N(1 << 20)
	}

	ops := make([]Op, 0, n)
	length := 0
	for len(ops) < n {
		pick := r.IntN(total)
		var code OpCode
		for _, w := range ws {
			if pick < w.w {
				code = w.code
				break
			}
			pick -= w.w
		}

		op := Op{Code: code}
		switch code {
		case PushBack, PushFront:
			op.Val = val()
			length++
		case PopBack, PopFront:
			if length == 0 {
				continue
			}
			length--
		case Insert:
			op.Pos = r.IntN(length + 1)
			op.N = 1 + r.IntN(maxBurst)
			op.Val = val()
			length += op.N
		case Erase:
			if length == 0 {
				continue
			}
			op.Pos = r.IntN(length)
			op.N = 1 + r.IntN(min(length-op.Pos, maxBurst))
			length -= op.N
		case Resize:
			op.N = max(0, length+r.IntN(2*maxBurst+1)-maxBurst)
			op.Val = val()
			length = op.N
		case Clear:
			length = 0
		case Reserve:
			op.N = length + r.IntN(4*maxBurst)
		}
		ops = append(ops, op)
	}
	return ops
}
