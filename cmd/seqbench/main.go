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

// Command seqbench replays random operation traces against the sequence
// containers, checks every step against a plain slice and reports latency
// and allocation statistics.
//
// Examples:
//
//	$> seqbench --ops=20000 --containers=deque --block=8
//	run 0c1f6a2e-...  seed=1  ops=20000
//	cpu: Intel(R) Core(TM) i7-8650U CPU @ 1.90GHz (4 cores)
//	container  len   elapsed  mean(ns)  p50(ns)  p99(ns)  allocs  peak bytes  map reallocs  status
//	deque      4127  41ms     1021      612      9305     1370    40768       6             ok
//
// The process exits with status 1 when a container diverges from the model.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"go.uber.org/zap"
)

const usage = `Sequence container workload runner.
Usage:
  seqbench -h | --help
  seqbench [--ops=N] [--seed=SEED] [--containers=LIST] [--block=N] [--json] [--verbose]
Options:
  -h --help           Show this screen.
  --ops=N             Number of operations replayed per container [default: 10000].
  --seed=SEED         Seed of the generated traces [default: 1].
  --containers=LIST   Comma delimited containers to run: vector, deque, bits [default: vector,deque,bits].
  --block=N           Deque block capacity, 0 for the default [default: 0].
  --json              Format the report as JSON instead of text.
  --verbose           Log the progress of every container.`

type config struct {
	Ops        int
	Seed       int
	Containers string
	Block      int
	JSON       bool `docopt:"--json"`
	Verbose    bool
}

func main() {
	opts, _ := docopt.ParseDoc(usage)
	var cfg config
	if err := opts.Bind(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error creating logger:", err)
		os.Exit(2)
	}
	defer logger.Sync()

	rep, err := run(context.Background(), cfg, logger.Sugar())
	if err != nil {
		logger.Sugar().Errorw("run failed", "err", err)
		os.Exit(1)
	}
	if err := rep.write(os.Stdout, cfg.JSON); err != nil {
		logger.Sugar().Errorw("could not write report", "err", err)
		os.Exit(1)
	}
	if rep.failed() {
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
