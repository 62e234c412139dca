package pool

import (
	"go.uber.org/zap"

	"github.com/ajitpratap0/memkit/pkg/logger"
)

// Kind identifies the container shape a pool recycles.
type Kind int

const (
	// KindCustom is a pool built directly with New.
	KindCustom Kind = iota
	// KindArray recycles fixed-length slices bucketed by length.
	KindArray
	// KindList recycles *collections.List.
	KindList
	// KindSet recycles collections.Set.
	KindSet
	// KindDictionary recycles map[K]V.
	KindDictionary
	// KindStack recycles *collections.Stack.
	KindStack
	// KindQueue recycles *collections.Queue.
	KindQueue
)

// String returns the lowercase kind name used in logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindDictionary:
		return "dictionary"
	case KindStack:
		return "stack"
	case KindQueue:
		return "queue"
	default:
		return "custom"
	}
}

// Info describes a pool for statistics, logging and metrics.
type Info struct {
	Kind       Kind
	Type       string // element (or map) type name
	Concurrent bool
	Size       int // bucket length for array pools, -1 otherwise
}

// Observer receives pool events. Implementations must be safe for concurrent
// use; metrics.PoolCollector is the standard one.
type Observer interface {
	ObserveGet(info Info, hit bool)
	ObserveReturn(info Info, retained bool)
}

// Options tunes pool behaviour.
type Options struct {
	// Concurrent selects the thread-safe pools in the registry's Get*/Return*
	// helpers.
	Concurrent bool
	// MaxRetained caps idle instances per pool (per bucket for arrays).
	// 0 means unbounded.
	MaxRetained int
	// RingCapacity sizes the lock-free ring of a concurrent pool store.
	// Returns beyond it spill into a locked overflow queue.
	RingCapacity int
	// SkipClearUnmanaged leaves returned arrays of pointer-free element types
	// uncleared.
	SkipClearUnmanaged bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Concurrent:   false,
		MaxRetained:  0,
		RingCapacity: 64,
	}
}

// Option configures a Registry or a standalone pool.
type Option func(*settings)

type settings struct {
	opts       Options
	name       string
	concurrent bool
	logger     *zap.Logger
	observer   Observer
}

func newSettings(opts []Option) settings {
	s := settings{opts: DefaultOptions()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.opts.RingCapacity <= 0 {
		s.opts.RingCapacity = DefaultOptions().RingCapacity
	}
	return s
}

// WithOptions replaces the pool options.
func WithOptions(o Options) Option {
	return func(s *settings) {
		s.opts = o
	}
}

// WithConcurrent makes a standalone pool thread-safe.
func WithConcurrent(concurrent bool) Option {
	return func(s *settings) {
		s.concurrent = concurrent
	}
}

// WithLogger sets the logger used for pool lifecycle events. Without it the
// global logger is looked up on every event, so pools built before
// logger.Init still log through the configured logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// WithObserver attaches an observer such as a metrics collector.
func WithObserver(o Observer) Option {
	return func(s *settings) {
		s.observer = o
	}
}

// WithName labels a registry in logs.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// log returns the configured logger, or the current global one.
func (s settings) log() *zap.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logger.Get()
}
