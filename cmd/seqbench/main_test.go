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
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		name       string
		containers string
		block      int
		want       []string
	}{
		{"all", "vector,deque,bits", 0, []string{"vector", "deque", "bits"}},
		{"deque small blocks", "deque", 3, []string{"deque"}},
		{"mixed case", " Bits , VECTOR", 0, []string{"bits", "vector"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config{Ops: 3000, Seed: 7, Containers: tc.containers, Block: tc.block}
			rep, err := run(context.Background(), cfg, zap.NewNop().Sugar())
			require.NoError(t, err)
			require.Len(t, rep.Results, len(tc.want))
			assert.False(t, rep.failed())
			assert.NotEmpty(t, rep.RunID)

			for i, res := range rep.Results {
				assert.Equal(t, tc.want[i], res.Container)
				assert.Equal(t, 3000, res.Ops)
				assert.Empty(t, res.Divergence)
				assert.Positive(t, res.Alloc.Allocs)
				if res.Container != "bits" {
					assert.EqualValues(t, res.Len, res.Alloc.Live, "live elements of %s", res.Container)
				}
				assert.LessOrEqual(t, res.Latency.P50Ns, res.Latency.P99Ns)
				assert.LessOrEqual(t, res.Latency.P99Ns, res.Latency.MaxNs)
				if res.Container == "deque" {
					assert.Positive(t, res.MapReallocs)
				}
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  config
	}{
		{"unknown container", config{Ops: 10, Containers: "list"}},
		{"empty list", config{Ops: 10, Containers: " , "}},
		{"negative ops", config{Ops: -1, Containers: "vector"}},
		{"negative block", config{Ops: 10, Containers: "deque", Block: -2}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(context.Background(), tc.cfg, zap.NewNop().Sugar())
			assert.Error(t, err)
		})
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := run(ctx, config{Ops: 100, Containers: "vector"}, zap.NewNop().Sugar())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReportJSON(t *testing.T) {
	rep, err := run(context.Background(), config{Ops: 500, Seed: 3, Containers: "deque,bits"}, zap.NewNop().Sugar())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.write(&buf, true))

	var got struct {
		RunID   string `json:"run_id"`
		Seed    int    `json:"seed"`
		Results []struct {
			Container   string `json:"container"`
			MapReallocs int    `json:"map_reallocs"`
			Alloc       struct {
				Allocs int64 `json:"allocs"`
			} `json:"alloc"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, rep.RunID, got.RunID)
	assert.Equal(t, 3, got.Seed)
	require.Len(t, got.Results, 2)
	assert.Equal(t, "deque", got.Results[0].Container)
	assert.Equal(t, rep.Results[0].MapReallocs, got.Results[0].MapReallocs)
	assert.Equal(t, "bits", got.Results[1].Container)
	assert.Zero(t, got.Results[1].MapReallocs)
	assert.Positive(t, got.Results[1].Alloc.Allocs)
}

func TestReportText(t *testing.T) {
	rep := &report{
		RunID: "run-id",
		Seed:  9,
		Ops:   4,
		Results: []result{
			{Container: "vector", Len: 2},
			{Container: "deque", Len: 1, MapReallocs: 2, Divergence: "step 3: mismatch"},
		},
	}
	assert.True(t, rep.failed())

	var buf bytes.Buffer
	require.NoError(t, rep.write(&buf, false))
	out := buf.String()
	assert.Contains(t, out, "run run-id  seed=9  ops=4")
	assert.Contains(t, out, "map reallocs")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "DIVERGED: step 3: mismatch")
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, latency{}, summarize(nil))

	one := summarize([]float64{42})
	assert.Equal(t, latency{MeanNs: 42, P50Ns: 42, P99Ns: 42, MaxNs: 42}, one)

	l := summarize([]float64{5, 1, 4, 2, 3})
	assert.Equal(t, 3.0, l.MeanNs)
	assert.Equal(t, 3.0, l.P50Ns)
	assert.Equal(t, 5.0, l.P99Ns)
	assert.Equal(t, 5.0, l.MaxNs)
	assert.InDelta(t, 1.5811, l.StdDevNs, 1e-4)
}
