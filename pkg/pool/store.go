package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/ajitpratap0/memkit/pkg/lockfree"
)

// store caches idle instances for a Pool.
type store[T any] interface {
	// push caches item and reports false when the retention cap rejects it.
	push(item T) bool
	pop() (T, bool)
	len() int
}

func newStore[T any](concurrent bool, opts Options) store[T] {
	if concurrent {
		return &concurrentStore[T]{
			ring:     lockfree.NewMPMCQueue[T](opts.RingCapacity),
			overflow: queue.New(),
			max:      int64(opts.MaxRetained),
		}
	}
	return &fifoStore[T]{
		q:   queue.New(),
		max: opts.MaxRetained,
	}
}

// fifoStore is the single-threaded cache store.
type fifoStore[T any] struct {
	q   *queue.Queue
	max int
}

func (s *fifoStore[T]) push(item T) bool {
	if s.max > 0 && s.q.Length() >= s.max {
		return false
	}
	s.q.Add(item)
	return true
}

func (s *fifoStore[T]) pop() (T, bool) {
	if s.q.Length() == 0 {
		var zero T
		return zero, false
	}
	return s.q.Remove().(T), true
}

func (s *fifoStore[T]) len() int {
	return s.q.Length()
}

// concurrentStore serves most traffic from a lock-free ring and spills into a
// mutex-guarded queue once the ring is full, so it never refuses an item
// unless MaxRetained says so.
type concurrentStore[T any] struct {
	ring     *lockfree.MPMCQueue[T]
	mu       sync.Mutex
	overflow *queue.Queue
	size     atomic.Int64
	max      int64
}

func (s *concurrentStore[T]) push(item T) bool {
	if s.max > 0 {
		if s.size.Add(1) > s.max {
			s.size.Add(-1)
			return false
		}
	} else {
		s.size.Add(1)
	}

	if s.ring.Enqueue(item) {
		return true
	}

	s.mu.Lock()
	s.overflow.Add(item)
	s.mu.Unlock()
	return true
}

func (s *concurrentStore[T]) pop() (T, bool) {
	if item, ok := s.ring.Dequeue(); ok {
		s.size.Add(-1)
		return item, true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overflow.Length() == 0 {
		var zero T
		return zero, false
	}
	s.size.Add(-1)
	return s.overflow.Remove().(T), true
}

func (s *concurrentStore[T]) len() int {
	return int(s.size.Load())
}
