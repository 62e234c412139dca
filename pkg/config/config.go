package config

import (
	"slices"

	"go.uber.org/zap/zapcore"

	"github.com/ajitpratap0/memkit/pkg/errors"
	"github.com/ajitpratap0/memkit/pkg/logger"
	"github.com/ajitpratap0/memkit/pkg/pool"
)

// Config is the complete memkit configuration.
type Config struct {
	// Pool controls registry behaviour
	Pool PoolConfig `yaml:"pool" json:"pool" mapstructure:"pool"`

	// Logging configures the global zap logger
	Logging LogConfig `yaml:"logging" json:"logging" mapstructure:"logging"`

	// Metrics controls the Prometheus pool collector
	Metrics MetricsConfig `yaml:"metrics" json:"metrics" mapstructure:"metrics"`
}

// PoolConfig mirrors pool.Options.
type PoolConfig struct {
	// Concurrent selects thread-safe pools for the Get*/Return* helpers
	Concurrent bool `yaml:"concurrent" json:"concurrent" mapstructure:"concurrent"`
	// MaxRetained caps idle instances per pool (0 = unbounded)
	MaxRetained int `yaml:"max_retained" json:"max_retained" mapstructure:"max_retained"`
	// RingCapacity sizes the lock-free ring of concurrent pools
	RingCapacity int `yaml:"ring_capacity" json:"ring_capacity" mapstructure:"ring_capacity"`
	// SkipClearUnmanaged skips clearing pointer-free arrays on return
	SkipClearUnmanaged bool `yaml:"skip_clear_unmanaged" json:"skip_clear_unmanaged" mapstructure:"skip_clear_unmanaged"`
}

// LogConfig mirrors logger.Config.
type LogConfig struct {
	Level       string   `yaml:"level" json:"level" mapstructure:"level"`
	Development bool     `yaml:"development" json:"development" mapstructure:"development"`
	Encoding    string   `yaml:"encoding" json:"encoding" mapstructure:"encoding"`
	OutputPaths []string `yaml:"output_paths" json:"output_paths" mapstructure:"output_paths"`
}

// MetricsConfig controls pool metrics export.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	Namespace string `yaml:"namespace" json:"namespace" mapstructure:"namespace"`
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	opts := pool.DefaultOptions()
	return &Config{
		Pool: PoolConfig{
			Concurrent:         opts.Concurrent,
			MaxRetained:        opts.MaxRetained,
			RingCapacity:       opts.RingCapacity,
			SkipClearUnmanaged: opts.SkipClearUnmanaged,
		},
		Logging: LogConfig{
			Level:       "info",
			Encoding:    "json",
			OutputPaths: []string{"stderr"},
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "memkit",
		},
	}
}

var encodings = []string{"json", "console"}

// Validate checks value ranges. The returned error has type
// errors.ErrorTypeValidation and names the offending field in its "field"
// detail.
func (c *Config) Validate() error {
	if c.Pool.MaxRetained < 0 {
		return invalid("pool.max_retained", "max_retained cannot be negative")
	}
	if c.Pool.RingCapacity <= 0 {
		return invalid("pool.ring_capacity", "ring_capacity must be positive")
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, errors.ErrorTypeValidation, "invalid log level").
			WithDetail("field", "logging.level")
	}
	if !slices.Contains(encodings, c.Logging.Encoding) {
		return invalid("logging.encoding", "encoding must be json or console")
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return invalid("metrics.namespace", "namespace is required when metrics are enabled")
	}
	return nil
}

func invalid(field, message string) error {
	return errors.New(errors.ErrorTypeValidation, message).WithDetail("field", field)
}

// Options converts to registry options.
func (p PoolConfig) Options() pool.Options {
	return pool.Options{
		Concurrent:         p.Concurrent,
		MaxRetained:        p.MaxRetained,
		RingCapacity:       p.RingCapacity,
		SkipClearUnmanaged: p.SkipClearUnmanaged,
	}
}

// Logger converts to the logger package configuration.
func (l LogConfig) Logger() logger.Config {
	return logger.Config{
		Level:       l.Level,
		Development: l.Development,
		Encoding:    l.Encoding,
		OutputPaths: slices.Clone(l.OutputPaths),
	}
}
