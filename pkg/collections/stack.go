package collections

import "iter"

// Stack is a LIFO container backed by a slice.
type Stack[T any] struct {
	items []T
}

// NewStack creates an empty stack with the given capacity.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push adds v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element, or false when empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of elements. A nil stack has length 0.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Cap returns the allocated capacity.
func (s *Stack[T]) Cap() int {
	if s == nil {
		return 0
	}
	return cap(s.items)
}

// Clear removes every element while keeping capacity.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// All iterates from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.Len() - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}
