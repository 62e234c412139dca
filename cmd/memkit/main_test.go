package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ajitpratap0/memkit/pkg/config"
	"github.com/ajitpratap0/memkit/pkg/json"
	"github.com/ajitpratap0/memkit/pkg/logger"
	"github.com/ajitpratap0/memkit/pkg/segment"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "memkit v"+version)
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "ring_capacity: 64")
	assert.Contains(t, out, "level: info")

	path := filepath.Join(t.TempDir(), "memkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pool:\n  max_retained: 7\n"), 0o600))
	out, err = execute(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "max_retained: 7")

	_, err = execute(t, "config", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSegmentCommand(t *testing.T) {
	out, err := execute(t, "segment", "--values", "10,20,30,40", "--offset", "1", "--count", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "segment: offset=1 count=2 [20 30]")
	assert.Contains(t, out, "head:    offset=1 count=1 [20]")
	assert.Contains(t, out, "tail:    offset=2 count=1 [30]")

	_, err = execute(t, "segment", "--values", "1,2", "--offset", "1", "--count", "2")
	assert.ErrorIs(t, err, segment.ErrOutOfRange)
}

func TestSegmentCommand_JSON(t *testing.T) {
	out, err := execute(t, "segment", "--values", "1,2,3,4,5", "--offset", "1", "--json")
	require.NoError(t, err)

	var views map[string]SegmentView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	assert.Equal(t, []int{2, 3, 4, 5}, views["segment"].Items)
	assert.Equal(t, []int{2, 3}, views["head"].Items)
	assert.Equal(t, 3, views["tail"].Offset)
}

func TestBenchCommand_JSON(t *testing.T) {
	out, err := execute(t, "bench", "--iterations", "200", "--size", "8", "--concurrent", "--workers", "3", "--json")
	require.NoError(t, err)

	var report BenchReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 200, report.Iterations)
	assert.Equal(t, 3, report.Workers)
	assert.True(t, report.Concurrent)
	assert.NotEmpty(t, report.RunID)
	// Each iteration sums 4+5+6+7.
	assert.Equal(t, int64(200*22), report.Checksum)

	require.Len(t, report.Pools, 2)
	for _, p := range report.Pools {
		assert.Equal(t, int64(200), p.Gets)
		assert.Equal(t, int64(200), p.Returns)
	}
}

func TestBenchCommand_Text(t *testing.T) {
	out, err := execute(t, "bench", "--iterations", "10", "--size", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "list")
	assert.Contains(t, out, "array")
}

func TestRunBench_Metrics(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Namespace = "bench_test"

	report, err := runBench(context.Background(), cfg, benchOptions{iterations: 50, size: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Workers)
	assert.False(t, report.Concurrent)
	require.NotEmpty(t, report.Metrics)

	var gets float64
	for _, m := range report.Metrics {
		if m.Name == "bench_test_pool_gets_total" && m.Labels["kind"] == "list" {
			gets += m.Value
		}
	}
	assert.Equal(t, 50.0, gets)
}

func TestRunBench_LogsWithComponent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })

	_, err := runBench(context.Background(), nil, benchOptions{iterations: 4, size: 2})
	require.NoError(t, err)

	finished := logs.FilterMessage("bench finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, "bench", finished[0].ContextMap()["component"])

	created := logs.FilterMessage("pool created").All()
	require.NotEmpty(t, created)
	for _, e := range created {
		fields := e.ContextMap()
		assert.Equal(t, "bench", fields["component"])
		assert.Equal(t, "bench", fields["registry"])
	}
}

func TestRunBench_Validation(t *testing.T) {
	_, err := runBench(context.Background(), nil, benchOptions{iterations: 0, size: 1})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runBench(ctx, nil, benchOptions{iterations: 10, size: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteReport(t *testing.T) {
	var out strings.Builder
	require.NoError(t, writeReport(&out, &BenchReport{
		RunID: "run",
		Pools: []PoolReport{{Kind: "list", Type: "int", Gets: 3}},
	}))
	assert.Contains(t, out.String(), "run")
	assert.Contains(t, out.String(), "list")
}

func TestViewCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\nfour\n"), 0o600))

	out, err := execute(t, "view", path, "--skip", "1", "--take", "2")
	require.NoError(t, err)
	assert.Equal(t, "       4  two\n       8  three\n", out)

	_, err = execute(t, "view", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
