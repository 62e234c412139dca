package collections

import "iter"

// Set is an unordered collection of distinct values. Being a map, it has
// reference semantics: copies share the same elements.
type Set[T comparable] map[T]struct{}

// NewSet creates an empty set sized for capacity elements.
func NewSet[T comparable](capacity int) Set[T] {
	if capacity < 0 {
		capacity = 0
	}
	return make(Set[T], capacity)
}

// SetOf creates a set holding items.
func SetOf[T comparable](items ...T) Set[T] {
	s := NewSet[T](len(items))
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s Set[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Remove deletes v and reports whether it was present.
func (s Set[T]) Remove(v T) bool {
	if _, ok := s[v]; !ok {
		return false
	}
	delete(s, v)
	return true
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return len(s)
}

// Clear removes every element. Go keeps the map's buckets allocated.
func (s Set[T]) Clear() {
	clear(s)
}

// All iterates over the elements in unspecified order.
func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !yield(v) {
				return
			}
		}
	}
}
