package pool

import (
	"iter"
	"reflect"
	"sync/atomic"

	"go.uber.org/zap"
)

// ObjectPool is the minimal Get/Return contract shared by every pool.
type ObjectPool[T any] interface {
	Get() T
	Return(item T)
}

// Stats is a snapshot of pool counters.
type Stats struct {
	Allocated int64 // instances created on a miss
	Gets      int64
	Hits      int64 // Gets served from the cache
	Misses    int64 // Gets that allocated
	Returns   int64 // non-nil items handed back
	Dropped   int64 // returns rejected by MaxRetained
	Idle      int64 // instances currently cached
}

// InUse estimates instances checked out and not yet returned.
func (s Stats) InUse() int64 {
	return s.Gets - s.Returns
}

// HitRate returns Hits/Gets, or 0 before the first Get.
func (s Stats) HitRate() float64 {
	if s.Gets == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Gets)
}

func (s Stats) add(o Stats) Stats {
	return Stats{
		Allocated: s.Allocated + o.Allocated,
		Gets:      s.Gets + o.Gets,
		Hits:      s.Hits + o.Hits,
		Misses:    s.Misses + o.Misses,
		Returns:   s.Returns + o.Returns,
		Dropped:   s.Dropped + o.Dropped,
		Idle:      s.Idle + o.Idle,
	}
}

// Pool is a cache of cleared, reusable instances of T.
//
// Get hands out a cached instance when one is available and otherwise calls
// the factory. Return resets the item and caches it. Unlike sync.Pool, cached
// instances are never dropped behind the caller's back, so an item returned to
// an otherwise empty pool is exactly the one the next Get yields.
//
// A Pool built without WithConcurrent must be confined to one goroutine (or
// externally synchronized). A concurrent Pool makes each Get and Return atomic;
// nothing is promised across a Get and later work on the item.
type Pool[T any] struct {
	info     Info
	newFn    func() T
	reset    func(T)
	isNil    func(T) bool
	store    store[T]
	observer Observer
	log      func() *zap.Logger

	stats struct {
		allocated atomic.Int64
		gets      atomic.Int64
		hits      atomic.Int64
		misses    atomic.Int64
		returns   atomic.Int64
		dropped   atomic.Int64
	}
}

// New creates a pool with a factory and an optional reset function.
// The factory runs on a cache miss. Reset runs on every non-nil item passed to
// Return, before it is cached.
//
// Example:
//
//	p := pool.New(
//	    func() *bytes.Buffer { return new(bytes.Buffer) },
//	    func(b *bytes.Buffer) { b.Reset() },
//	    pool.WithConcurrent(true),
//	)
//	buf := p.Get()
//	defer p.Return(buf)
func New[T any](newFn func() T, reset func(T), opts ...Option) *Pool[T] {
	s := newSettings(opts)
	info := Info{
		Kind:       KindCustom,
		Type:       reflect.TypeFor[T]().String(),
		Concurrent: s.concurrent,
		Size:       -1,
	}
	return newPool(info, newFn, reset, nilCheck[T](), s)
}

func newPool[T any](info Info, newFn func() T, reset func(T), isNil func(T) bool, s settings) *Pool[T] {
	return &Pool[T]{
		info:     info,
		newFn:    newFn,
		reset:    reset,
		isNil:    isNil,
		store:    newStore[T](info.Concurrent, s.opts),
		observer: s.observer,
		log:      s.log,
	}
}

// Get returns a cached instance, or a new one when the cache is empty.
// It never fails.
func (p *Pool[T]) Get() T {
	p.stats.gets.Add(1)
	if item, ok := p.store.pop(); ok {
		p.stats.hits.Add(1)
		if p.observer != nil {
			p.observer.ObserveGet(p.info, true)
		}
		return item
	}

	p.stats.misses.Add(1)
	p.stats.allocated.Add(1)
	if p.observer != nil {
		p.observer.ObserveGet(p.info, false)
	}
	return p.newFn()
}

// Return resets item and caches it for a later Get. Nil items are ignored.
func (p *Pool[T]) Return(item T) {
	if p.isNil(item) {
		return
	}
	if p.reset != nil {
		p.reset(item)
	}
	p.stats.returns.Add(1)

	retained := p.store.push(item)
	if !retained {
		p.stats.dropped.Add(1)
		if ce := p.log().Check(zap.DebugLevel, "pool at retention limit, dropping item"); ce != nil {
			ce.Write(
				zap.Stringer("kind", p.info.Kind),
				zap.String("type", p.info.Type),
				zap.Int("size", p.info.Size),
			)
		}
	}
	if p.observer != nil {
		p.observer.ObserveReturn(p.info, retained)
	}
}

// ReturnAll returns each item in turn. Nil items are skipped.
func (p *Pool[T]) ReturnAll(items ...T) {
	for _, item := range items {
		p.Return(item)
	}
}

// ReturnSeq returns every item produced by seq. Nil items are skipped.
func (p *Pool[T]) ReturnSeq(seq iter.Seq[T]) {
	if seq == nil {
		return
	}
	for item := range seq {
		p.Return(item)
	}
}

// Idle returns the number of cached instances.
func (p *Pool[T]) Idle() int {
	return p.store.len()
}

// Info describes the pool.
func (p *Pool[T]) Info() Info {
	return p.info
}

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Allocated: p.stats.allocated.Load(),
		Gets:      p.stats.gets.Load(),
		Hits:      p.stats.hits.Load(),
		Misses:    p.stats.misses.Load(),
		Returns:   p.stats.returns.Load(),
		Dropped:   p.stats.dropped.Load(),
		Idle:      int64(p.store.len()),
	}
}

// nilCheck builds a nil test for T once, so Return does not inspect the type
// on every call.
func nilCheck[T any]() func(T) bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return func(v T) bool {
			return reflect.ValueOf(&v).Elem().IsNil()
		}
	default:
		return func(T) bool { return false }
	}
}
