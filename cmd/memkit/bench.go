package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ajitpratap0/memkit/pkg/collections"
	"github.com/ajitpratap0/memkit/pkg/config"
	"github.com/ajitpratap0/memkit/pkg/json"
	"github.com/ajitpratap0/memkit/pkg/logger"
	"github.com/ajitpratap0/memkit/pkg/metrics"
	"github.com/ajitpratap0/memkit/pkg/pool"
	"github.com/ajitpratap0/memkit/pkg/segment"
)

type benchOptions struct {
	iterations int
	size       int
	workers    int
	concurrent bool
	jsonOutput bool
}

// BenchResult times one workload variant.
type BenchResult struct {
	Duration  time.Duration `json:"duration_ns"`
	OpsPerSec float64       `json:"ops_per_sec"`
}

// PoolReport is one row of registry statistics.
type PoolReport struct {
	Kind       string  `json:"kind"`
	Type       string  `json:"type"`
	Concurrent bool    `json:"concurrent"`
	Gets       int64   `json:"gets"`
	Hits       int64   `json:"hits"`
	Misses     int64   `json:"misses"`
	Returns    int64   `json:"returns"`
	Dropped    int64   `json:"dropped"`
	Idle       int64   `json:"idle"`
	HitRate    float64 `json:"hit_rate"`
}

// MetricSample is a gathered Prometheus series.
type MetricSample struct {
	Name   string            `json:"name"`
	Labels map[string]string `json:"labels"`
	Value  float64           `json:"value"`
}

// BenchReport is the output of the bench command.
type BenchReport struct {
	RunID      string         `json:"run_id"`
	Iterations int            `json:"iterations"`
	Size       int            `json:"size"`
	Workers    int            `json:"workers"`
	Concurrent bool           `json:"concurrent"`
	Pooled     BenchResult    `json:"pooled"`
	Unpooled   BenchResult    `json:"unpooled"`
	Pools      []PoolReport   `json:"pools"`
	Metrics    []MetricSample `json:"metrics,omitempty"`
	RSSBytes   uint64         `json:"rss_bytes"`
	Checksum   int64          `json:"checksum"`
}

func newBenchCmd(a *app) *cobra.Command {
	opts := benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare a pooled and an unpooled collection workload",
		Long: heredoc.Doc(`
			Runs the same list/array workload twice: once renting every
			collection from a pool registry and once allocating fresh ones.
			Each iteration fills a list, sums its second half through a
			segment and touches a byte array of --size elements.

			Example:
			  memkit bench --iterations 100000 --size 64 --concurrent --workers 8 --json`),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runBench(cmd.Context(), a.cfg, opts)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return json.Encode(cmd.OutOrStdout(), report, "  ")
			}
			return writeReport(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 10000, "Total workload iterations")
	cmd.Flags().IntVar(&opts.size, "size", 64, "Elements per list and array")
	cmd.Flags().IntVar(&opts.workers, "workers", 4, "Goroutines; forced to 1 unless --concurrent")
	cmd.Flags().BoolVar(&opts.concurrent, "concurrent", false, "Use the thread-safe pools")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the report as JSON")

	return cmd
}

func runBench(ctx context.Context, cfg *config.Config, opts benchOptions) (*BenchReport, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.iterations <= 0 || opts.size <= 0 {
		return nil, fmt.Errorf("iterations and size must be positive")
	}
	if !opts.concurrent || opts.workers < 1 {
		opts.workers = 1
	}
	log := logger.WithContext(context.WithValue(ctx, logger.ComponentKey, "bench"))

	poolOpts := cfg.Pool.Options()
	poolOpts.Concurrent = opts.concurrent || poolOpts.Concurrent
	registryOpts := []pool.Option{
		pool.WithOptions(poolOpts),
		pool.WithName("bench"),
		pool.WithLogger(log),
	}

	var promReg *prometheus.Registry
	if cfg.Metrics.Enabled {
		promReg = prometheus.NewRegistry()
		registryOpts = append(registryOpts, pool.WithObserver(metrics.NewPoolCollector(promReg, cfg.Metrics.Namespace)))
	}
	registry := pool.NewRegistry(registryOpts...)
	if promReg != nil {
		rc, err := metrics.NewRegistryCollector(registry, cfg.Metrics.Namespace)
		if err != nil {
			return nil, err
		}
		promReg.MustRegister(rc)
	}

	report := &BenchReport{
		RunID:      uuid.NewString(),
		Iterations: opts.iterations,
		Size:       opts.size,
		Workers:    opts.workers,
		Concurrent: poolOpts.Concurrent,
	}

	pooled := func() int64 {
		l := pool.GetList[int](registry)
		sum := fillAndSum(l, opts.size)
		pool.ReturnList(registry, l)

		buf := pool.GetArray[byte](registry, opts.size)
		buf[0]++
		pool.ReturnArray(registry, buf)
		return sum
	}
	unpooled := func() int64 {
		l := collections.NewList[int](0)
		sum := fillAndSum(l, opts.size)

		buf := make([]byte, opts.size)
		buf[0]++
		return sum
	}

	var err error
	var pooledSum, unpooledSum int64
	if report.Pooled, pooledSum, err = timeWorkload(ctx, opts, pooled); err != nil {
		return nil, err
	}
	if report.Unpooled, unpooledSum, err = timeWorkload(ctx, opts, unpooled); err != nil {
		return nil, err
	}
	if pooledSum != unpooledSum {
		return nil, fmt.Errorf("checksum mismatch: pooled %d, unpooled %d", pooledSum, unpooledSum)
	}
	report.Checksum = pooledSum

	for _, ps := range registry.Stats() {
		report.Pools = append(report.Pools, PoolReport{
			Kind:       ps.Info.Kind.String(),
			Type:       ps.Info.Type,
			Concurrent: ps.Info.Concurrent,
			Gets:       ps.Stats.Gets,
			Hits:       ps.Stats.Hits,
			Misses:     ps.Stats.Misses,
			Returns:    ps.Stats.Returns,
			Dropped:    ps.Stats.Dropped,
			Idle:       ps.Stats.Idle,
			HitRate:    ps.Stats.HitRate(),
		})
	}
	if promReg != nil {
		if report.Metrics, err = gatherSamples(promReg); err != nil {
			return nil, err
		}
	}
	report.RSSBytes = residentSetSize(log)

	log.Info("bench finished",
		zap.String("run_id", report.RunID),
		zap.Duration("pooled", report.Pooled.Duration),
		zap.Duration("unpooled", report.Unpooled.Duration),
	)
	return report, nil
}

// fillAndSum fills l with 0..size-1 and sums its second half through a
// segment.
func fillAndSum(l *collections.List[int], size int) int64 {
	for i := 0; i < size; i++ {
		l.Add(i)
	}
	tail, err := segment.FromList(l).Skip(size / 2)
	if err != nil {
		panic(err)
	}
	var sum int64
	for v := range tail.All() {
		sum += int64(v)
	}
	return sum
}

func timeWorkload(ctx context.Context, opts benchOptions, op func() int64) (BenchResult, int64, error) {
	sums := make([]int64, opts.workers)
	g, ctx := errgroup.WithContext(ctx)

	start := time.Now()
	for w := 0; w < opts.workers; w++ {
		n := opts.iterations / opts.workers
		if w < opts.iterations%opts.workers {
			n++
		}
		g.Go(func() error {
			for i := 0; i < n; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				sums[w] += op()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BenchResult{}, 0, err
	}
	elapsed := time.Since(start)

	var total int64
	for _, s := range sums {
		total += s
	}
	return BenchResult{
		Duration:  elapsed,
		OpsPerSec: float64(opts.iterations) / elapsed.Seconds(),
	}, total, nil
}

func gatherSamples(reg *prometheus.Registry) ([]MetricSample, error) {
	families, err := reg.Gather()
	if err != nil {
		return nil, err
	}
	var samples []MetricSample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			value := m.GetCounter().GetValue()
			if m.GetGauge() != nil {
				value = m.GetGauge().GetValue()
			}
			samples = append(samples, MetricSample{Name: mf.GetName(), Labels: labels, Value: value})
		}
	}
	return samples, nil
}

func residentSetSize(log *zap.Logger) uint64 {
	proc, err := process.NewProcess(int32(os.Getpid())) //nolint:gosec
	if err != nil {
		log.Warn("process lookup failed", zap.Error(err))
		return 0
	}
	info, err := proc.MemoryInfo()
	if err != nil {
		log.Warn("memory info unavailable", zap.Error(err))
		return 0
	}
	return info.RSS
}

func writeReport(out io.Writer, r *BenchReport) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run\t%s\n", r.RunID)
	fmt.Fprintf(tw, "iterations\t%d (size %d, workers %d, concurrent %v)\n", r.Iterations, r.Size, r.Workers, r.Concurrent)
	fmt.Fprintf(tw, "pooled\t%s\t%.0f ops/s\n", r.Pooled.Duration, r.Pooled.OpsPerSec)
	fmt.Fprintf(tw, "unpooled\t%s\t%.0f ops/s\n", r.Unpooled.Duration, r.Unpooled.OpsPerSec)
	fmt.Fprintf(tw, "rss\t%d bytes\n", r.RSSBytes)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "KIND\tTYPE\tCONCURRENT\tGETS\tHITS\tMISSES\tRETURNS\tDROPPED\tIDLE\tHIT RATE")
	for _, p := range r.Pools {
		fmt.Fprintf(tw, "%s\t%s\t%v\t%d\t%d\t%d\t%d\t%d\t%d\t%.2f\n",
			p.Kind, p.Type, p.Concurrent, p.Gets, p.Hits, p.Misses, p.Returns, p.Dropped, p.Idle, p.HitRate)
	}
	return tw.Flush()
}
