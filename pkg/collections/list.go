// Package collections provides the owned containers recycled by the pool
// registry (List, Stack, Queue, Set) and the read-only facades that views and
// pools expose to consumers without copying.
package collections

import (
	"iter"
	"slices"
)

// List is a growable, index-addressable sequence. Unlike a bare slice it has
// pointer identity, so a pooled List handed out by Get is the same instance
// that was handed back to Return.
type List[T any] struct {
	items []T
}

// NewList creates an empty list with the given capacity.
func NewList[T any](capacity int) *List[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &List[T]{items: make([]T, 0, capacity)}
}

// ListOf creates a list holding a copy of items.
func ListOf[T any](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// Len returns the number of elements. A nil list has length 0.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Cap returns the allocated capacity.
func (l *List[T]) Cap() int {
	if l == nil {
		return 0
	}
	return cap(l.items)
}

// At returns the element at index i. It panics when i is out of range, like
// slice indexing.
func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, v T) {
	l.items[i] = v
}

// Add appends v.
func (l *List[T]) Add(v T) {
	l.items = append(l.items, v)
}

// AddRange appends every value in vs.
func (l *List[T]) AddRange(vs ...T) {
	l.items = append(l.items, vs...)
}

// Insert places v at index i, shifting later elements right.
func (l *List[T]) Insert(i int, v T) {
	l.items = slices.Insert(l.items, i, v)
}

// RemoveAt deletes the element at index i.
func (l *List[T]) RemoveAt(i int) {
	l.items = slices.Delete(l.items, i, i+1)
}

// Clear removes every element while keeping the allocated capacity. Removed
// slots are zeroed so the list does not pin garbage.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// Items returns the live backing slice. It is invalidated by the next append.
func (l *List[T]) Items() []T {
	if l == nil {
		return nil
	}
	return l.items
}

// All iterates over the elements in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.Items() {
			if !yield(v) {
				return
			}
		}
	}
}

// AsReadOnly returns a read-only view over the list. The view observes later
// mutations of the list.
func (l *List[T]) AsReadOnly() ReadList[T] {
	return readOnlyList[T]{l: l}
}

type readOnlyList[T any] struct {
	l *List[T]
}

func (r readOnlyList[T]) Len() int { return r.l.Len() }

func (r readOnlyList[T]) At(i int) T { return r.l.At(i) }

func (r readOnlyList[T]) All() iter.Seq[T] { return r.l.All() }
