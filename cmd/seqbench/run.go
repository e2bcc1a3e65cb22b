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

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Willie169/Cpp-STL-DSA-Learning/deque"
	"github.com/Willie169/Cpp-STL-DSA-Learning/internal/workload"
	"github.com/Willie169/Cpp-STL-DSA-Learning/memory"
	"github.com/Willie169/Cpp-STL-DSA-Learning/vector"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// run replays one trace per selected container, each in its own goroutine.
func run(ctx context.Context, cfg config, log *zap.SugaredLogger) (*report, error) {
	kinds, err := workload.ParseKinds(cfg.Containers)
	switch {
	case err != nil:
		return nil, err
	case len(kinds) == 0:
		return nil, fmt.Errorf("seqbench: no containers selected")
	case cfg.Ops < 0:
		return nil, fmt.Errorf("seqbench: negative operation count %d", cfg.Ops)
	case cfg.Block < 0:
		return nil, fmt.Errorf("seqbench: negative block capacity %d", cfg.Block)
	}

	rep := newReport(cfg)
	rep.Results = make([]result, len(kinds))
	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			res, err := runKind(ctx, kind, cfg, log)
			if err != nil {
				return err
			}
			rep.Results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rep, nil
}

// newTarget builds the container for kind over a fresh checked allocator and
// returns a function reading the allocator's counters.
func newTarget(kind workload.Kind, block int) (workload.Target, func() memory.Stats) {
	switch kind {
	case workload.Deque:
		mem := memory.NewCheckedAllocator[int64](nil)
		return workload.NewDequeTarget(deque.WithAllocator[int64](mem), deque.WithBlockCapacity[int64](block)), mem.Stats
	case workload.Bits:
		mem := memory.NewCheckedAllocator[uint64](nil)
		return workload.NewBitsTarget(vector.WithAllocator[uint64](mem)), mem.Stats
	default:
		mem := memory.NewCheckedAllocator[int64](nil)
		return workload.NewVectorTarget(vector.WithAllocator[int64](mem)), mem.Stats
	}
}

func runKind(ctx context.Context, kind workload.Kind, cfg config, log *zap.SugaredLogger) (result, error) {
	ops := workload.Generate(kind, cfg.Ops, uint64(cfg.Seed))
	target, stats := newTarget(kind, cfg.Block)
	defer target.Release()

	log.Infow("replaying trace", "container", kind, "ops", len(ops), "seed", cfg.Seed)
	res := result{Container: kind.String(), Ops: len(ops)}
	lat := make([]float64, 0, len(ops))
	var model workload.Model

	start := time.Now()
	for i, op := range ops {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		t0 := time.Now()
		err := target.Apply(op)
		lat = append(lat, float64(time.Since(t0).Nanoseconds()))
		if err != nil {
			return res, fmt.Errorf("seqbench: %s step %d (%s): %w", kind, i, op, err)
		}
		if err := model.Apply(op); err != nil {
			return res, err
		}
		if err := workload.Compare(target, &model, i, op); err != nil {
			res.Divergence = err.Error()
			log.Errorw("container diverged from the model", "container", kind, "step", i, "err", err)
			break
		}
	}
	res.Elapsed = time.Since(start)
	res.Len = target.Len()
	res.Latency = summarize(lat)
	res.Alloc = stats()
	if dt, ok := target.(*workload.DequeTarget); ok {
		res.MapReallocs = dt.D.MapReallocs()
		res.MapSize = dt.D.MapSize()
	}
	log.Infow("trace done", "container", kind, "len", res.Len, "elapsed", res.Elapsed, "peak_bytes", res.Alloc.PeakBytes)
	return res, nil
}
