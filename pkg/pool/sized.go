package pool

import (
	"iter"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"

	"github.com/ajitpratap0/memkit/pkg/errors"
)

// SizedPool recycles fixed-length slices. Slices cannot change length without
// reallocating, so the pool keeps one bucket per length. The bucket is always
// chosen from len(array), never from a caller-supplied size, which keeps every
// bucket homogeneous.
type SizedPool[T any] struct {
	elem       string
	concurrent bool
	clearOnPut bool
	settings   settings

	mu      sync.RWMutex // guards buckets when concurrent
	buckets map[int]*Pool[[]T]
}

// NewSizedPool creates an array pool.
func NewSizedPool[T any](opts ...Option) *SizedPool[T] {
	s := newSettings(opts)
	return newSizedPool[T](s.concurrent, s)
}

func newSizedPool[T any](concurrent bool, s settings) *SizedPool[T] {
	return &SizedPool[T]{
		elem:       reflect.TypeFor[T]().String(),
		concurrent: concurrent,
		clearOnPut: !(s.opts.SkipClearUnmanaged && IsUnmanaged[T]()),
		settings:   s,
		buckets:    make(map[int]*Pool[[]T]),
	}
}

// Get returns an array of exactly size elements. A fresh array is zeroed; a
// recycled one was zeroed on return unless SkipClearUnmanaged applies.
// Get panics when size is negative, as make does.
func (p *SizedPool[T]) Get(size int) []T {
	if size < 0 {
		panic(errors.New(errors.ErrorTypeOutOfRange, "array size must not be negative").
			WithDetail("argument", "size").
			WithDetail("value", size))
	}
	return p.bucket(size).Get()
}

// Return caches array in the bucket for len(array). Nil arrays are ignored.
func (p *SizedPool[T]) Return(array []T) {
	if array == nil {
		return
	}
	p.bucket(len(array)).Return(array)
}

// ReturnAll returns each array in turn. Nil arrays are skipped.
func (p *SizedPool[T]) ReturnAll(arrays ...[]T) {
	for _, a := range arrays {
		p.Return(a)
	}
}

// ReturnSeq returns every array produced by seq. Nil arrays are skipped.
func (p *SizedPool[T]) ReturnSeq(seq iter.Seq[[]T]) {
	if seq == nil {
		return
	}
	for a := range seq {
		p.Return(a)
	}
}

// Rent wraps an array of exactly size elements in a Lease that hands it back
// on Release.
func (p *SizedPool[T]) Rent(size int) *Lease[T] {
	return &Lease[T]{pool: p, items: p.Get(size)}
}

// Sizes lists the bucket lengths created so far, ascending.
func (p *SizedPool[T]) Sizes() []int {
	p.rlock()
	sizes := make([]int, 0, len(p.buckets))
	for size := range p.buckets {
		sizes = append(sizes, size)
	}
	p.runlock()
	slices.Sort(sizes)
	return sizes
}

// BucketStats returns the counters for one bucket, and false if the bucket has
// not been created.
func (p *SizedPool[T]) BucketStats(size int) (Stats, bool) {
	p.rlock()
	b, ok := p.buckets[size]
	p.runlock()
	if !ok {
		return Stats{}, false
	}
	return b.Stats(), true
}

// Stats sums the counters of every bucket.
func (p *SizedPool[T]) Stats() Stats {
	var total Stats
	p.rlock()
	defer p.runlock()
	for _, b := range p.buckets {
		total = total.add(b.Stats())
	}
	return total
}

// Idle returns the number of cached arrays across all buckets.
func (p *SizedPool[T]) Idle() int {
	return int(p.Stats().Idle)
}

// Info describes the pool. Size is -1 because the pool spans every length.
func (p *SizedPool[T]) Info() Info {
	return Info{Kind: KindArray, Type: p.elem, Concurrent: p.concurrent, Size: -1}
}

func (p *SizedPool[T]) bucket(size int) *Pool[[]T] {
	p.rlock()
	b, ok := p.buckets[size]
	p.runlock()
	if ok {
		return b
	}

	if p.concurrent {
		p.mu.Lock()
		defer p.mu.Unlock()
		if b, ok = p.buckets[size]; ok {
			return b
		}
	}

	info := Info{Kind: KindArray, Type: p.elem, Concurrent: p.concurrent, Size: size}
	var reset func([]T)
	if p.clearOnPut {
		reset = func(a []T) { clear(a) }
	}
	b = newPool(info,
		func() []T { return make([]T, size) },
		reset,
		func(a []T) bool { return a == nil },
		p.settings,
	)
	p.buckets[size] = b

	p.settings.log().Debug("array bucket created",
		zap.String("type", p.elem),
		zap.Int("size", size),
		zap.Bool("concurrent", p.concurrent),
	)
	return b
}

func (p *SizedPool[T]) rlock() {
	if p.concurrent {
		p.mu.RLock()
	}
}

func (p *SizedPool[T]) runlock() {
	if p.concurrent {
		p.mu.RUnlock()
	}
}

// Lease is an array rented from a SizedPool. It is a read-only array view and
// a segment source. After Release the array belongs to the pool again; views
// still referring to it must not be used.
type Lease[T any] struct {
	pool     *SizedPool[T]
	items    []T
	released atomic.Bool
}

// Items returns the rented array for writing. It is nil after Release.
func (l *Lease[T]) Items() []T {
	if l == nil || l.released.Load() {
		return nil
	}
	return l.items
}

// Len returns the array length, or 0 after Release.
func (l *Lease[T]) Len() int {
	return len(l.Items())
}

// At returns element i. It panics when i is out of range or the lease was
// released.
func (l *Lease[T]) At(i int) T {
	return l.Items()[i]
}

// CopyTo copies the array into dst and returns the number of elements copied.
func (l *Lease[T]) CopyTo(dst []T) int {
	return copy(dst, l.Items())
}

// All iterates over the array.
func (l *Lease[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.Items() {
			if !yield(v) {
				return
			}
		}
	}
}

// Identity reports the address of the lease, so views over the same lease
// compare equal.
func (l *Lease[T]) Identity() uintptr {
	return uintptr(unsafe.Pointer(l))
}

// Released reports whether Release has been called.
func (l *Lease[T]) Released() bool {
	return l.released.Load()
}

// Release hands the array back to its pool. Calling it again is a no-op.
func (l *Lease[T]) Release() {
	if l == nil || !l.released.CompareAndSwap(false, true) {
		return
	}
	l.pool.Return(l.items)
}
