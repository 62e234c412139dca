// Package lockfree provides lock-free data structures used as thread-safe
// cache stores by the concurrent pools.
package lockfree

import (
	"runtime"
	"sync/atomic"
)

// MPMCQueue is a bounded lock-free multi-producer multi-consumer FIFO queue.
// Each slot carries a sequence number that orders producers and consumers, and
// the enqueue/dequeue cursors live on separate cache lines.
type MPMCQueue[T any] struct {
	buffer   []slot[T]
	capacity uint64
	mask     uint64

	enqueuePos atomic.Uint64
	_padding1  [7]uint64 //nolint:unused

	dequeuePos atomic.Uint64
	_padding2  [7]uint64 //nolint:unused
}

type slot[T any] struct {
	sequence atomic.Uint64
	data     T
}

// NewMPMCQueue creates a queue holding at least capacity items.
// Capacity is rounded up to the next power of 2 for efficient masking.
func NewMPMCQueue[T any](capacity int) *MPMCQueue[T] {
	size := uint64(1)
	for size < uint64(capacity) {
		size <<= 1
	}

	q := &MPMCQueue[T]{
		buffer:   make([]slot[T], size),
		capacity: size,
		mask:     size - 1,
	}
	for i := uint64(0); i < size; i++ {
		q.buffer[i].sequence.Store(i)
	}
	return q
}

// Enqueue adds an item. It returns false when the queue is full.
func (q *MPMCQueue[T]) Enqueue(item T) bool {
	for {
		pos := q.enqueuePos.Load()
		s := &q.buffer[pos&q.mask]
		seq := s.sequence.Load()

		diff := int64(seq) - int64(pos)
		if diff == 0 {
			if q.enqueuePos.CompareAndSwap(pos, pos+1) {
				s.data = item
				s.sequence.Store(pos + 1)
				return true
			}
		} else if diff < 0 {
			return false
		}

		runtime.Gosched()
	}
}

// Dequeue removes the oldest item. It returns false when the queue is empty.
func (q *MPMCQueue[T]) Dequeue() (T, bool) {
	var zero T
	for {
		pos := q.dequeuePos.Load()
		s := &q.buffer[pos&q.mask]
		seq := s.sequence.Load()

		diff := int64(seq) - int64(pos+1)
		if diff == 0 {
			if q.dequeuePos.CompareAndSwap(pos, pos+1) {
				item := s.data
				s.data = zero
				s.sequence.Store(pos + q.capacity)
				return item, true
			}
		} else if diff < 0 {
			return zero, false
		}

		runtime.Gosched()
	}
}

// Len returns the approximate number of queued items. It may be stale under
// concurrent use.
func (q *MPMCQueue[T]) Len() int {
	enq := q.enqueuePos.Load()
	deq := q.dequeuePos.Load()
	if enq <= deq {
		return 0
	}
	return int(enq - deq)
}

// Cap returns the fixed capacity of the queue.
func (q *MPMCQueue[T]) Cap() int {
	return int(q.capacity)
}
