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
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/Willie169/Cpp-STL-DSA-Learning/memory"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/klauspost/cpuid/v2"
	"gonum.org/v1/gonum/stat"
)

type host struct {
	CPU    string `json:"cpu"`
	Cores  int    `json:"physical_cores"`
	GOOS   string `json:"goos"`
	GOARCH string `json:"goarch"`
}

type latency struct {
	MeanNs   float64 `json:"mean_ns"`
	StdDevNs float64 `json:"stddev_ns"`
	P50Ns    float64 `json:"p50_ns"`
	P99Ns    float64 `json:"p99_ns"`
	MaxNs    float64 `json:"max_ns"`
}

type result struct {
	Container   string        `json:"container"`
	Ops         int           `json:"ops"`
	Len         int           `json:"final_len"`
	Elapsed     time.Duration `json:"elapsed_ns"`
	Latency     latency       `json:"latency"`
	Alloc       memory.Stats  `json:"alloc"`
	MapReallocs int           `json:"map_reallocs,omitempty"`
	MapSize     int           `json:"map_size,omitempty"`
	Divergence  string        `json:"divergence,omitempty"`
}

type report struct {
	RunID   string   `json:"run_id"`
	Host    host     `json:"host"`
	Seed    int      `json:"seed"`
	Ops     int      `json:"ops"`
	Results []result `json:"results"`
}

func newReport(cfg config) *report {
	return &report{
		RunID: uuid.NewString(),
		Host: host{
			CPU:    cpuid.CPU.BrandName,
			Cores:  cpuid.CPU.PhysicalCores,
			GOOS:   runtime.GOOS,
			GOARCH: runtime.GOARCH,
		},
		Seed: cfg.Seed,
		Ops:  cfg.Ops,
	}
}

// summarize computes latency statistics over ns, which it sorts in place.
func summarize(ns []float64) latency {
	if len(ns) == 0 {
		return latency{}
	}
	slices.Sort(ns)
	l := latency{
		MeanNs: stat.Mean(ns, nil),
		P50Ns:  stat.Quantile(0.5, stat.Empirical, ns, nil),
		P99Ns:  stat.Quantile(0.99, stat.Empirical, ns, nil),
		MaxNs:  ns[len(ns)-1],
	}
	if len(ns) > 1 {
		l.StdDevNs = stat.StdDev(ns, nil)
	}
	return l
}

func (r *report) failed() bool {
	for _, res := range r.Results {
		if res.Divergence != "" {
			return true
		}
	}
	return false
}

func (r *report) write(w io.Writer, asJSON bool) error {
	if asJSON {
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}

	fmt.Fprintf(w, "run %s  seed=%d  ops=%d\n", r.RunID, r.Seed, r.Ops)
	fmt.Fprintf(w, "cpu: %s (%d cores)\n", r.Host.CPU, r.Host.Cores)
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "container\tlen\telapsed\tmean(ns)\tp50(ns)\tp99(ns)\tallocs\tpeak bytes\tmap reallocs\tstatus")
	for _, res := range r.Results {
		status := "ok"
		if res.Divergence != "" {
			status = "DIVERGED: " + res.Divergence
		}
		reallocs := "-"
		if res.Container == "deque" {
			reallocs = fmt.Sprint(res.MapReallocs)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.0f\t%.0f\t%.0f\t%d\t%d\t%s\t%s\n",
			res.Container, res.Len, res.Elapsed.Round(time.Millisecond), res.Latency.MeanNs,
			res.Latency.P50Ns, res.Latency.P99Ns, res.Alloc.Allocs, res.Alloc.PeakBytes, reallocs, status)
	}
	return tw.Flush()
}
