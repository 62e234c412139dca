package collections

import "iter"

const minQueueLen = 16

// Queue is a FIFO container backed by a growable power-of-two ring buffer.
// The zero value is ready to use.
type Queue[T any] struct {
	buf   []T
	head  int
	tail  int
	count int
}

// NewQueue creates an empty queue able to hold capacity elements before it
// needs to grow.
func NewQueue[T any](capacity int) *Queue[T] {
	size := minQueueLen
	for size < capacity {
		size <<= 1
	}
	return &Queue[T]{buf: make([]T, size)}
}

// Len returns the number of queued elements. A nil queue has length 0.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return q.count
}

// Cap returns the size of the ring buffer.
func (q *Queue[T]) Cap() int {
	if q == nil {
		return 0
	}
	return len(q.buf)
}

// Enqueue appends v at the tail.
func (q *Queue[T]) Enqueue(v T) {
	if q.count == len(q.buf) {
		q.resize()
	}
	q.buf[q.tail] = v
	q.tail = (q.tail + 1) & (len(q.buf) - 1)
	q.count++
}

// Dequeue removes and returns the head element, or false when empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) & (len(q.buf) - 1)
	q.count--
	return v, true
}

// Peek returns the head element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

// At returns the i-th element counted from the head. It panics when i is out
// of range.
func (q *Queue[T]) At(i int) T {
	if i < 0 || i >= q.count {
		panic("collections: queue index out of range")
	}
	return q.buf[(q.head+i)&(len(q.buf)-1)]
}

// Clear removes every element and keeps the ring buffer.
func (q *Queue[T]) Clear() {
	clear(q.buf)
	q.head, q.tail, q.count = 0, 0, 0
}

// All iterates from head to tail.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.Len(); i++ {
			if !yield(q.At(i)) {
				return
			}
		}
	}
}

func (q *Queue[T]) resize() {
	size := len(q.buf) << 1
	if size == 0 {
		size = minQueueLen
	}
	buf := make([]T, size)
	if q.tail > q.head {
		copy(buf, q.buf[q.head:q.tail])
	} else if q.count > 0 {
		n := copy(buf, q.buf[q.head:])
		copy(buf[n:], q.buf[:q.tail])
	}
	q.head = 0
	q.tail = q.count
	q.buf = buf
}
