package segment

import (
	"encoding/binary"
	"iter"

	"github.com/cespare/xxhash/v2"

	"github.com/ajitpratap0/memkit/pkg/collections"
	"github.com/ajitpratap0/memkit/pkg/pool"
)

// Segment is a read-only window of Count elements starting at Offset in a
// Source. It never copies or mutates the source. The zero value is the unset
// segment: it has no source and behaves as an empty list.
//
// Segments are values; compare them with Equal, not ==.
type Segment[T any] struct {
	src    Source[T]
	offset int
	count  int
}

// Of views the whole of src. A nil source yields the unset segment.
func Of[T any](src Source[T]) Segment[T] {
	if src == nil {
		return Segment[T]{}
	}
	return Segment[T]{src: src, count: src.Len()}
}

// New views count elements of src starting at offset. The window must satisfy
// 0 <= offset <= src.Len() and 0 <= count <= src.Len()-offset; a nil source has
// length zero.
func New[T any](src Source[T], offset, count int) (Segment[T], error) {
	length := 0
	if src != nil {
		length = src.Len()
	}
	if err := checkRange("offset", offset, count, length); err != nil {
		return Segment[T]{}, err
	}
	if src == nil {
		return Segment[T]{}, nil
	}
	return Segment[T]{src: src, offset: offset, count: count}, nil
}

// FromSlice views the whole slice. A nil slice yields the unset segment.
func FromSlice[T any](s []T) Segment[T] {
	return Of(SliceSource(s))
}

// FromSliceRange views s[offset : offset+count].
func FromSliceRange[T any](s []T, offset, count int) (Segment[T], error) {
	return New(SliceSource(s), offset, count)
}

// FromList views the whole list.
func FromList[T any](l *collections.List[T]) Segment[T] {
	return Of(ListSource(l))
}

// FromListRange views count list elements starting at offset.
func FromListRange[T any](l *collections.List[T], offset, count int) (Segment[T], error) {
	return New(ListSource(l), offset, count)
}

// FromReadList views the whole read-only list.
func FromReadList[T any](rl collections.ReadList[T]) Segment[T] {
	return Of(ReadListSource(rl))
}

// FromReadListRange views count elements of rl starting at offset.
func FromReadListRange[T any](rl collections.ReadList[T], offset, count int) (Segment[T], error) {
	return New(ReadListSource(rl), offset, count)
}

// FromLease views a rented array. The segment must not outlive the lease.
func FromLease[T any](l *pool.Lease[T]) Segment[T] {
	if l == nil {
		return Segment[T]{}
	}
	return FromReadList[T](l)
}

// FromLeaseRange views count elements of a rented array starting at offset.
func FromLeaseRange[T any](l *pool.Lease[T], offset, count int) (Segment[T], error) {
	if l == nil {
		return New[T](nil, offset, count)
	}
	return FromReadListRange[T](l, offset, count)
}

// HasSource reports whether the segment is bound to a source.
func (s Segment[T]) HasSource() bool { return s.src != nil }

// Source returns the viewed source, or nil for the unset segment.
func (s Segment[T]) Source() Source[T] { return s.src }

// Offset is the start of the window in the source.
func (s Segment[T]) Offset() int { return s.offset }

// Count is the number of elements in the window.
func (s Segment[T]) Count() int { return s.count }

// Len is Count; it lets a Segment serve as a collections.ReadList.
func (s Segment[T]) Len() int { return s.count }

// At returns element i of the window. It panics with an ErrOutOfRange error
// when i is outside [0, Count).
func (s Segment[T]) At(i int) T {
	if err := checkIndex(i, s.count); err != nil {
		panic(err)
	}
	return s.src.At(s.offset + i)
}

// TryAt is At with an error instead of a panic.
func (s Segment[T]) TryAt(i int) (T, error) {
	if err := checkIndex(i, s.count); err != nil {
		var zero T
		return zero, err
	}
	return s.src.At(s.offset + i), nil
}

// Slice returns the sub-segment from index to the end of the window.
func (s Segment[T]) Slice(index int) (Segment[T], error) {
	if uint(index) > uint(s.count) {
		return Segment[T]{}, outOfRange("index", index, "index must be within [0, count]")
	}
	return s.SliceN(index, s.count-index)
}

// SliceN returns count elements starting at index, relative to this segment.
func (s Segment[T]) SliceN(index, count int) (Segment[T], error) {
	if err := checkRange("index", index, count, s.count); err != nil {
		return Segment[T]{}, err
	}
	return Segment[T]{src: s.src, offset: s.offset + index, count: count}, nil
}

// Skip drops the first n elements.
func (s Segment[T]) Skip(n int) (Segment[T], error) { return s.Slice(n) }

// Take keeps the first n elements.
func (s Segment[T]) Take(n int) (Segment[T], error) { return s.SliceN(0, n) }

// TakeLast keeps the last n elements.
func (s Segment[T]) TakeLast(n int) (Segment[T], error) {
	if err := checkTail(n, s.count); err != nil {
		return Segment[T]{}, err
	}
	return s.Slice(s.count - n)
}

// SkipLast drops the last n elements.
func (s Segment[T]) SkipLast(n int) (Segment[T], error) {
	if err := checkTail(n, s.count); err != nil {
		return Segment[T]{}, err
	}
	return s.SliceN(0, s.count-n)
}

// IndexFunc returns the first window-relative index whose element satisfies
// f, or -1.
func (s Segment[T]) IndexFunc(f func(T) bool) int {
	for i := 0; i < s.count; i++ {
		if f(s.src.At(s.offset + i)) {
			return i
		}
	}
	return -1
}

// ContainsFunc reports whether any element satisfies f.
func (s Segment[T]) ContainsFunc(f func(T) bool) bool {
	return s.IndexFunc(f) >= 0
}

// CopyTo copies the window into dst and returns the number of elements copied,
// which is min(Count, len(dst)).
func (s Segment[T]) CopyTo(dst []T) int {
	n := min(s.count, len(dst))
	for i := 0; i < n; i++ {
		dst[i] = s.src.At(s.offset + i)
	}
	return n
}

// ToArray copies the window into a new slice. The result is never nil.
func (s Segment[T]) ToArray() []T {
	out := make([]T, s.count)
	s.CopyTo(out)
	return out
}

// All yields the elements in order.
func (s Segment[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(s.src.At(s.offset + i)) {
				return
			}
		}
	}
}

// Indexed yields window-relative indexes with their elements.
func (s Segment[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(i, s.src.At(s.offset+i)) {
				return
			}
		}
	}
}

// Enumerator returns a cursor positioned before the first element.
func (s Segment[T]) Enumerator() *Enumerator[T] {
	return &Enumerator[T]{seg: s, cursor: newCursor(s.count)}
}

// Equal reports whether both segments view the same source with the same
// offset and count. Element values are not compared.
func (s Segment[T]) Equal(other Segment[T]) bool {
	if s.offset != other.offset || s.count != other.count {
		return false
	}
	if s.src == nil || other.src == nil {
		return s.src == nil && other.src == nil
	}
	return s.src.Same(other.src)
}

func (s Segment[T]) window() (Source[T], int, int) { return s.src, s.offset, s.count }

// Hash combines the source identity with offset and count. Equal segments
// hash equally.
func (s Segment[T]) Hash() uint64 {
	var id uintptr
	if s.src != nil {
		id = s.src.ID()
	}
	return hashWindow(id, s.offset, s.count)
}

func hashWindow(id uintptr, offset, count int) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(id))
	binary.LittleEndian.PutUint64(buf[8:], uint64(offset))
	binary.LittleEndian.PutUint64(buf[16:], uint64(count))
	return xxhash.Sum64(buf[:])
}

// Enumerator walks a Segment with an explicit cursor.
type Enumerator[T any] struct {
	seg Segment[T]
	cursor
}

// MoveNext advances the cursor and reports whether it is on an element.
func (e *Enumerator[T]) MoveNext() bool { return e.moveNext() }

// Current returns the element under the cursor. It fails with
// ErrInvalidOperation before the first MoveNext and after the last element.
func (e *Enumerator[T]) Current() (T, error) {
	if err := e.check(); err != nil {
		var zero T
		return zero, err
	}
	return e.seg.src.At(e.seg.offset + e.index), nil
}

// Reset moves the cursor back before the first element.
func (e *Enumerator[T]) Reset() { e.reset() }

// IndexOf returns the first window-relative index of item, or -1.
func IndexOf[T comparable](s Segment[T], item T) int {
	return s.IndexFunc(func(v T) bool { return v == item })
}

// Contains reports whether item occurs in the window.
func Contains[T comparable](s Segment[T], item T) bool {
	return IndexOf(s, item) >= 0
}
