package collections

import (
	"iter"
	"unsafe"
)

// ReadCollection is a sized, iterable collection that cannot be mutated
// through this interface.
type ReadCollection[T any] interface {
	Len() int
	All() iter.Seq[T]
}

// ReadList is a ReadCollection with indexed access.
type ReadList[T any] interface {
	ReadCollection[T]
	At(i int) T
}

// ReadArray is a ReadList over a fixed-length array.
type ReadArray[T any] interface {
	ReadList[T]
	// CopyTo copies the elements into dst and returns the number copied.
	CopyTo(dst []T) int
}

// ReadDictionary is a read-only key/value lookup.
type ReadDictionary[K comparable, V any] interface {
	Len() int
	Get(key K) (V, bool)
	ContainsKey(key K) bool
	All() iter.Seq2[K, V]
}

// Identifier is implemented by read-only views that can report the identity of
// the storage they wrap. Views over the same storage return the same value.
type Identifier interface {
	Identity() uintptr
}

// ReadOnlyArray wraps a slice as a ReadArray without copying it.
func ReadOnlyArray[T any](items []T) ReadArray[T] {
	return readOnlyArray[T]{items: items}
}

type readOnlyArray[T any] struct {
	items []T
}

func (a readOnlyArray[T]) Len() int { return len(a.items) }

func (a readOnlyArray[T]) At(i int) T { return a.items[i] }

func (a readOnlyArray[T]) CopyTo(dst []T) int { return copy(dst, a.items) }

func (a readOnlyArray[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.items {
			if !yield(v) {
				return
			}
		}
	}
}

func (a readOnlyArray[T]) Identity() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.items)))
}

// Identity reports the address of the underlying List.
func (r readOnlyList[T]) Identity() uintptr {
	return uintptr(unsafe.Pointer(r.l))
}

// ReadOnlyMap wraps a map as a ReadDictionary without copying it.
func ReadOnlyMap[K comparable, V any](m map[K]V) ReadDictionary[K, V] {
	return readOnlyMap[K, V](m)
}

type readOnlyMap[K comparable, V any] map[K]V

func (m readOnlyMap[K, V]) Len() int { return len(m) }

func (m readOnlyMap[K, V]) Get(key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

func (m readOnlyMap[K, V]) ContainsKey(key K) bool {
	_, ok := m[key]
	return ok
}

func (m readOnlyMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
}
