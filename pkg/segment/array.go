package segment

import (
	"iter"
	"slices"
	"unsafe"
)

// Array is a Segment specialised to a slice. Element access goes straight to
// the slice instead of through a Source, and Items exposes the window without
// copying.
type Array[T any] struct {
	arr    []T
	offset int
	count  int
}

// ArrayOf views the whole slice. A nil slice yields the unset array segment.
func ArrayOf[T any](a []T) Array[T] {
	return Array[T]{arr: a, count: len(a)}
}

// ArrayRange views a[offset : offset+count].
func ArrayRange[T any](a []T, offset, count int) (Array[T], error) {
	if err := checkRange("offset", offset, count, len(a)); err != nil {
		return Array[T]{}, err
	}
	return Array[T]{arr: a, offset: offset, count: count}, nil
}

// HasSource reports whether the segment is bound to a slice.
func (a Array[T]) HasSource() bool { return a.arr != nil }

// Offset is the start of the window in the slice.
func (a Array[T]) Offset() int { return a.offset }

// Count is the number of elements in the window.
func (a Array[T]) Count() int { return a.count }

// Len is Count.
func (a Array[T]) Len() int { return a.count }

// Items returns the window as a sub-slice of the viewed slice. Its capacity is
// clipped so appends cannot write past the window.
func (a Array[T]) Items() []T {
	if a.arr == nil {
		return nil
	}
	end := a.offset + a.count
	return a.arr[a.offset:end:end]
}

// At returns element i, panicking with an ErrOutOfRange error when i is
// outside [0, Count).
func (a Array[T]) At(i int) T {
	if err := checkIndex(i, a.count); err != nil {
		panic(err)
	}
	return a.arr[a.offset+i]
}

// TryAt is At with an error instead of a panic.
func (a Array[T]) TryAt(i int) (T, error) {
	if err := checkIndex(i, a.count); err != nil {
		var zero T
		return zero, err
	}
	return a.arr[a.offset+i], nil
}

// Slice views the elements from index to the end.
func (a Array[T]) Slice(index int) (Array[T], error) {
	if uint(index) > uint(a.count) {
		return Array[T]{}, outOfRange("index", index, "index must be within [0, count]")
	}
	return a.SliceN(index, a.count-index)
}

// SliceN views count elements starting at index. Both are relative to the
// current window.
func (a Array[T]) SliceN(index, count int) (Array[T], error) {
	if err := checkRange("index", index, count, a.count); err != nil {
		return Array[T]{}, err
	}
	return Array[T]{arr: a.arr, offset: a.offset + index, count: count}, nil
}

// Skip drops the first n elements.
func (a Array[T]) Skip(n int) (Array[T], error) { return a.Slice(n) }

// Take keeps the first n elements.
func (a Array[T]) Take(n int) (Array[T], error) { return a.SliceN(0, n) }

// TakeLast keeps the last n elements.
func (a Array[T]) TakeLast(n int) (Array[T], error) {
	if err := checkTail(n, a.count); err != nil {
		return Array[T]{}, err
	}
	return a.Slice(a.count - n)
}

// SkipLast drops the last n elements.
func (a Array[T]) SkipLast(n int) (Array[T], error) {
	if err := checkTail(n, a.count); err != nil {
		return Array[T]{}, err
	}
	return a.SliceN(0, a.count-n)
}

// IndexFunc returns the first index satisfying f, or -1.
func (a Array[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(a.Items(), f)
}

// ContainsFunc reports whether any element satisfies f.
func (a Array[T]) ContainsFunc(f func(T) bool) bool {
	return slices.ContainsFunc(a.Items(), f)
}

// CopyTo copies the window into dst and returns the number of elements
// copied.
func (a Array[T]) CopyTo(dst []T) int {
	return copy(dst, a.Items())
}

// ToArray copies the window into a new, never nil, slice.
func (a Array[T]) ToArray() []T {
	out := make([]T, a.count)
	copy(out, a.Items())
	return out
}

// All iterates over the window.
func (a Array[T]) All() iter.Seq[T] {
	return slices.Values(a.Items())
}

// Indexed iterates over the window with indices relative to Offset.
func (a Array[T]) Indexed() iter.Seq2[int, T] {
	return slices.All(a.Items())
}

// Enumerator returns a cursor positioned before the first element.
func (a Array[T]) Enumerator() *ArrayEnumerator[T] {
	return &ArrayEnumerator[T]{arr: a, cursor: newCursor(a.count)}
}

// Segment converts to the general form.
func (a Array[T]) Segment() Segment[T] {
	if a.arr == nil {
		return Segment[T]{}
	}
	return Segment[T]{src: sliceSource[T]{data: a.arr}, offset: a.offset, count: a.count}
}

func (a Array[T]) window() (Source[T], int, int) { return a.Segment().window() }

// Equal reports whether both view the same slice with the same offset and
// count.
func (a Array[T]) Equal(other Array[T]) bool {
	return a.offset == other.offset && a.count == other.count &&
		len(a.arr) == len(other.arr) &&
		(a.arr == nil) == (other.arr == nil) &&
		unsafe.SliceData(a.arr) == unsafe.SliceData(other.arr)
}

// Hash is consistent with Equal and with Segment.Hash for the same window.
func (a Array[T]) Hash() uint64 {
	return hashWindow(uintptr(unsafe.Pointer(unsafe.SliceData(a.arr))), a.offset, a.count)
}

// ArrayEnumerator walks an Array with an explicit cursor.
type ArrayEnumerator[T any] struct {
	arr Array[T]
	cursor
}

// MoveNext advances the cursor and reports whether it is on an element.
func (e *ArrayEnumerator[T]) MoveNext() bool { return e.moveNext() }

// Current returns the element under the cursor. It fails before the first
// MoveNext and after the last element.
func (e *ArrayEnumerator[T]) Current() (T, error) {
	if err := e.check(); err != nil {
		var zero T
		return zero, err
	}
	return e.arr.arr[e.arr.offset+e.index], nil
}

// Reset rewinds to before the first element.
func (e *ArrayEnumerator[T]) Reset() { e.reset() }

// ArrayIndexOf returns the first window-relative index of item, or -1.
func ArrayIndexOf[T comparable](a Array[T], item T) int {
	return slices.Index(a.Items(), item)
}

// ArrayContains reports whether item occurs in the window.
func ArrayContains[T comparable](a Array[T], item T) bool {
	return slices.Contains(a.Items(), item)
}
