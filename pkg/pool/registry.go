package pool

import (
	"cmp"
	"reflect"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/ajitpratap0/memkit/pkg/collections"
	"github.com/ajitpratap0/memkit/pkg/logger"
)

// managed is the type-erased view of a pool the registry keeps.
type managed interface {
	Info() Info
	Stats() Stats
	Idle() int
}

type registryKey struct {
	kind       Kind
	concurrent bool
	typ        reflect.Type
}

// Registry owns every container pool of an application. Pools are created
// lazily the first time a (kind, type, concurrency) combination is requested
// and then live as long as the registry, or until Reset.
//
// Pool lookup is always safe for concurrent use. Whether the pools themselves
// are depends on the concurrent flag they were requested with.
type Registry struct {
	settings settings

	mu    sync.RWMutex
	pools map[registryKey]managed
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		settings: newSettings(opts),
		pools:    make(map[registryKey]managed),
	}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(WithName("default"))
})

// Default returns the process-wide registry. It is built on first use with
// DefaultOptions and is never replaced; tests that need isolation should build
// their own Registry or call Reset. It logs through whatever global logger is
// installed when an event happens.
func Default() *Registry {
	return defaultRegistry()
}

// Options returns the registry options.
func (r *Registry) Options() Options {
	return r.settings.opts
}

// PoolStats pairs a pool description with its counters.
type PoolStats struct {
	Info  Info
	Stats Stats
}

// Stats returns a snapshot for every pool, ordered by kind then type.
func (r *Registry) Stats() []PoolStats {
	r.mu.RLock()
	out := make([]PoolStats, 0, len(r.pools))
	for _, p := range r.pools {
		out = append(out, PoolStats{Info: p.Info(), Stats: p.Stats()})
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b PoolStats) int {
		if c := cmp.Compare(a.Info.Kind, b.Info.Kind); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Info.Type, b.Info.Type); c != 0 {
			return c
		}
		if a.Info.Concurrent == b.Info.Concurrent {
			return 0
		}
		if !a.Info.Concurrent {
			return -1
		}
		return 1
	})
	return out
}

// Len returns the number of pools created so far.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pools)
}

// Reset forgets every pool and its cached instances. Pools obtained before the
// reset keep working but are no longer reachable from the registry.
func (r *Registry) Reset() {
	r.mu.Lock()
	n := len(r.pools)
	r.pools = make(map[registryKey]managed)
	r.mu.Unlock()

	r.log().Info("pool registry reset", zap.Int("pools", n))
}

// lookup returns the pool stored under k, creating it with create on first use.
func lookup[P managed](r *Registry, k registryKey, create func(s settings) P) P {
	r.mu.RLock()
	existing, ok := r.pools[k]
	r.mu.RUnlock()
	if ok {
		return existing.(P)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok = r.pools[k]; ok {
		return existing.(P)
	}

	p := create(r.settings)
	r.pools[k] = p

	r.log().Debug("pool created",
		zap.Stringer("kind", k.kind),
		zap.String("type", p.Info().Type),
		zap.Bool("concurrent", k.concurrent),
	)
	return p
}

// log tags the logger with the registry name under logger.RegistryKey.
func (r *Registry) log() *zap.Logger {
	return r.settings.log().With(zap.String(string(logger.RegistryKey), r.settings.name))
}

func keyFor[T any](kind Kind, concurrent bool) registryKey {
	return registryKey{kind: kind, concurrent: concurrent, typ: reflect.TypeFor[T]()}
}

func infoFor[T any](kind Kind, concurrent bool) Info {
	return Info{Kind: kind, Type: reflect.TypeFor[T]().String(), Concurrent: concurrent, Size: -1}
}

// Arrays returns the fixed-length array pool for element type T.
func Arrays[T any](r *Registry, concurrent bool) *SizedPool[T] {
	return lookup(r, keyFor[T](KindArray, concurrent), func(s settings) *SizedPool[T] {
		return newSizedPool[T](concurrent, s)
	})
}

// Lists returns the list pool for element type T.
func Lists[T any](r *Registry, concurrent bool) *Pool[*collections.List[T]] {
	return lookup(r, keyFor[T](KindList, concurrent), func(s settings) *Pool[*collections.List[T]] {
		return newPool(infoFor[T](KindList, concurrent),
			func() *collections.List[T] { return collections.NewList[T](0) },
			(*collections.List[T]).Clear,
			func(l *collections.List[T]) bool { return l == nil },
			s,
		)
	})
}

// Sets returns the set pool for element type T.
func Sets[T comparable](r *Registry, concurrent bool) *Pool[collections.Set[T]] {
	return lookup(r, keyFor[T](KindSet, concurrent), func(s settings) *Pool[collections.Set[T]] {
		return newPool(infoFor[T](KindSet, concurrent),
			func() collections.Set[T] { return collections.NewSet[T](0) },
			collections.Set[T].Clear,
			func(set collections.Set[T]) bool { return set == nil },
			s,
		)
	})
}

// Dictionaries returns the map pool for map[K]V.
func Dictionaries[K comparable, V any](r *Registry, concurrent bool) *Pool[map[K]V] {
	return lookup(r, keyFor[map[K]V](KindDictionary, concurrent), func(s settings) *Pool[map[K]V] {
		return newPool(infoFor[map[K]V](KindDictionary, concurrent),
			func() map[K]V { return make(map[K]V) },
			func(m map[K]V) { clear(m) },
			func(m map[K]V) bool { return m == nil },
			s,
		)
	})
}

// Stacks returns the stack pool for element type T.
func Stacks[T any](r *Registry, concurrent bool) *Pool[*collections.Stack[T]] {
	return lookup(r, keyFor[T](KindStack, concurrent), func(s settings) *Pool[*collections.Stack[T]] {
		return newPool(infoFor[T](KindStack, concurrent),
			func() *collections.Stack[T] { return collections.NewStack[T](0) },
			(*collections.Stack[T]).Clear,
			func(st *collections.Stack[T]) bool { return st == nil },
			s,
		)
	})
}

// Queues returns the queue pool for element type T.
func Queues[T any](r *Registry, concurrent bool) *Pool[*collections.Queue[T]] {
	return lookup(r, keyFor[T](KindQueue, concurrent), func(s settings) *Pool[*collections.Queue[T]] {
		return newPool(infoFor[T](KindQueue, concurrent),
			func() *collections.Queue[T] { return collections.NewQueue[T](0) },
			(*collections.Queue[T]).Clear,
			func(q *collections.Queue[T]) bool { return q == nil },
			s,
		)
	})
}
