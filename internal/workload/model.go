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

package workload

import (
	"fmt"
	"slices"
)

// Model is the reference implementation of the operations: a plain slice.
type Model struct {
	vals []int64
}

// Apply performs op on the model.
func (m *Model) Apply(op Op) error {
	switch op.Code {
	case PushBack:
		m.vals = append(m.vals, op.Val)
	case PushFront:
		m.vals = slices.Insert(m.vals, 0, op.Val)
	case PopBack:
		if len(m.vals) == 0 {
			return emptyError(op)
		}
		m.vals = m.vals[:len(m.vals)-1]
	case PopFront:
		if len(m.vals) == 0 {
			return emptyError(op)
		}
		m.vals = slices.Delete(m.vals, 0, 1)
	case Insert:
		m.vals = slices.Insert(m.vals, op.Pos, slices.Repeat([]int64{op.Val}, op.N)...)
	case Erase:
		m.vals = slices.Delete(m.vals, op.Pos, op.Pos+op.N)
	case Resize:
		if op.N < len(m.vals) {
			m.vals = m.vals[:op.N]
		} else {
			m.vals = append(m.vals, slices.Repeat([]int64{op.Val}, op.N-len(m.vals))...)
		}
	case Clear:
		m.vals = m.vals[:0]
	case ShrinkToFit, Reserve:
	default:
		return unsupportedError(op)
	}
	return nil
}

func (m *Model) Len() int { return len(m.vals) }

// Values returns the model's contents. The slice aliases the model.
func (m *Model) Values() []int64 { return m.vals }

func emptyError(op Op) error {
	return fmt.Errorf("workload: %s on an empty container", op.Code)
}

func unsupportedError(op Op) error {
	return fmt.Errorf("workload: %s is not supported by this container", op.Code)
}

// DivergenceError reports the first step at which a container and the model
// disagree.
type DivergenceError struct {
	Step int
	Op   Op
	Want []int64
	Got  []int64
}

func (e *DivergenceError) Error() string {
	if len(e.Want) != len(e.Got) {
		return fmt.Sprintf("workload: step %d (%s): length %d, want %d", e.Step, e.Op, len(e.Got), len(e.Want))
	}
	for i := range e.Want {
		if e.Want[i] != e.Got[i] {
			return fmt.Sprintf("workload: step %d (%s): element %d is %d, want %d", e.Step, e.Op, i, e.Got[i], e.Want[i])
		}
	}
	return fmt.Sprintf("workload: step %d (%s): contents differ", e.Step, e.Op)
}

// Compare checks target against m. step and op only label the error.
func Compare(target Target, m *Model, step int, op Op) error {
	if target.Len() != m.Len() {
		return &DivergenceError{Step: step, Op: op, Want: slices.Clone(m.vals), Got: target.Values()}
	}
	if got := target.Values(); !slices.Equal(got, m.vals) {
		return &DivergenceError{Step: step, Op: op, Want: slices.Clone(m.vals), Got: got}
	}
	return nil
}

// Replay applies ops to target and to a fresh model. Lengths are compared
// after every step and the full contents every `every` steps and at the end.
func Replay(target Target, ops []Op, every int) error {
	var m Model
	for i, op := range ops {
		if err := target.Apply(op); err != nil {
			return fmt.Errorf("workload: step %d (%s): %w", i, op, err)
		}
		if err := m.Apply(op); err != nil {
			return err
		}
		if target.Len() != m.Len() || (every > 0 && i%every == 0) {
			if err := Compare(target, &m, i, op); err != nil {
				return err
			}
		}
	}
	if len(ops) == 0 {
		return nil
	}
	return Compare(target, &m, len(ops)-1, ops[len(ops)-1])
}
