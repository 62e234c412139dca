// Package metrics exports pool activity to Prometheus.
//
// # Overview
//
// Two collectors cover the two kinds of pool data:
//   - PoolCollector is a pool.Observer. It counts gets (hit or miss) and
//     returns (retained or dropped) as they happen.
//   - RegistryCollector reads Registry.Stats at scrape time and reports the
//     idle, in-use and allocated gauges of every pool.
//
// # Basic Usage
//
//	reg := prometheus.NewRegistry()
//	observer := metrics.NewPoolCollector(reg, "memkit")
//	pools := pool.NewRegistry(pool.WithObserver(observer))
//
//	rc, err := metrics.NewRegistryCollector(pools, "memkit")
//	if err != nil {
//	    return err
//	}
//	reg.MustRegister(rc)
//
// All series carry the labels kind, type and concurrent.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ajitpratap0/memkit/pkg/errors"
	"github.com/ajitpratap0/memkit/pkg/pool"
)

var poolLabels = []string{"kind", "type", "concurrent"}

func labelValues(info pool.Info) []string {
	return []string{info.Kind.String(), info.Type, strconv.FormatBool(info.Concurrent)}
}

// PoolCollector counts pool traffic. It implements pool.Observer.
type PoolCollector struct {
	gets    *prometheus.CounterVec // labelled by result: hit or miss
	returns *prometheus.CounterVec // labelled by result: retained or dropped
}

// NewPoolCollector creates the counters and registers them with reg. A nil reg
// leaves them unregistered. Registering twice with the same reg and namespace
// panics.
func NewPoolCollector(reg prometheus.Registerer, namespace string) *PoolCollector {
	factory := promauto.With(reg)
	return &PoolCollector{
		gets: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pool",
				Name:      "gets_total",
				Help:      "Instances handed out by pools, by cache result",
			},
			append(poolLabels, "result"),
		),
		returns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pool",
				Name:      "returns_total",
				Help:      "Instances handed back to pools, by whether they were kept",
			},
			append(poolLabels, "result"),
		),
	}
}

// ObserveGet implements pool.Observer.
func (c *PoolCollector) ObserveGet(info pool.Info, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.gets.WithLabelValues(append(labelValues(info), result)...).Inc()
}

// ObserveReturn implements pool.Observer.
func (c *PoolCollector) ObserveReturn(info pool.Info, retained bool) {
	result := "dropped"
	if retained {
		result = "retained"
	}
	c.returns.WithLabelValues(append(labelValues(info), result)...).Inc()
}

// RegistryCollector reports per-pool gauges from a pool.Registry at scrape
// time.
type RegistryCollector struct {
	registry  *pool.Registry
	idle      *prometheus.Desc
	inUse     *prometheus.Desc
	allocated *prometheus.Desc
}

// NewRegistryCollector returns a collector over registry. It is not registered;
// pass it to a prometheus.Registerer.
func NewRegistryCollector(registry *pool.Registry, namespace string) (*RegistryCollector, error) {
	if registry == nil {
		return nil, errors.New(errors.ErrorTypeNullArgument, "registry is required").
			WithDetail("argument", "registry")
	}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "pool", name), help, poolLabels, nil)
	}
	return &RegistryCollector{
		registry:  registry,
		idle:      desc("idle", "Instances cached and ready for reuse"),
		inUse:     desc("in_use", "Instances handed out and not yet returned"),
		allocated: desc("allocated_total", "Instances created because the cache was empty"),
	}, nil
}

// Describe implements prometheus.Collector.
func (c *RegistryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.idle
	ch <- c.inUse
	ch <- c.allocated
}

// Collect implements prometheus.Collector.
func (c *RegistryCollector) Collect(ch chan<- prometheus.Metric) {
	for _, ps := range c.registry.Stats() {
		lv := labelValues(ps.Info)
		ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(ps.Stats.Idle), lv...)
		ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(ps.Stats.InUse()), lv...)
		ch <- prometheus.MustNewConstMetric(c.allocated, prometheus.CounterValue, float64(ps.Stats.Allocated), lv...)
	}
}

var (
	_ pool.Observer        = (*PoolCollector)(nil)
	_ prometheus.Collector = (*RegistryCollector)(nil)
)
