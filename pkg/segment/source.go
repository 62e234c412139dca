package segment

import (
	"reflect"
	"unsafe"

	"github.com/ajitpratap0/memkit/pkg/collections"
)

// Source is the capability a backing container needs to be viewed by a
// Segment: a length, indexed access and an identity.
type Source[T any] interface {
	Len() int
	At(i int) T
	// ID identifies the storage for hashing. Sources over the same storage
	// return the same ID.
	ID() uintptr
	// Same reports whether other views the same storage.
	Same(other Source[T]) bool
}

// SliceSource adapts a slice. Two adapters are the same source when they share
// the backing array start and length.
func SliceSource[T any](s []T) Source[T] {
	if s == nil {
		return nil
	}
	return sliceSource[T]{data: s}
}

type sliceSource[T any] struct {
	data []T
}

func (s sliceSource[T]) Len() int { return len(s.data) }

func (s sliceSource[T]) At(i int) T { return s.data[i] }

func (s sliceSource[T]) ID() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s.data)))
}

func (s sliceSource[T]) Same(other Source[T]) bool {
	o, ok := other.(sliceSource[T])
	return ok && len(o.data) == len(s.data) &&
		unsafe.SliceData(o.data) == unsafe.SliceData(s.data)
}

// ListSource adapts a *collections.List. Identity is the list itself, so the
// source follows the list as it grows.
func ListSource[T any](l *collections.List[T]) Source[T] {
	if l == nil {
		return nil
	}
	return listSource[T]{l: l}
}

type listSource[T any] struct {
	l *collections.List[T]
}

func (s listSource[T]) Len() int { return s.l.Len() }

func (s listSource[T]) At(i int) T { return s.l.At(i) }

func (s listSource[T]) ID() uintptr { return uintptr(unsafe.Pointer(s.l)) }

func (s listSource[T]) Same(other Source[T]) bool {
	o, ok := other.(listSource[T])
	return ok && o.l == s.l
}

// ReadListSource adapts any collections.ReadList, including pool leases and
// other views. A wrapped Segment or Array resolves its identity through the
// storage underneath it, so two sources over the same window are the same.
// Otherwise identity comes from collections.Identifier when the list
// implements it, from comparing the list values when they are comparable, and
// from the wrapped value itself as a last resort.
//
// Identity includes the adapter kind: FromSlice(a) and
// FromReadList(collections.ReadOnlyArray(a)) view the same elements but are
// not Equal.
func ReadListSource[T any](rl collections.ReadList[T]) Source[T] {
	if rl == nil {
		return nil
	}
	return readListSource[T]{rl: rl}
}

// windowed is implemented by the view types of this package.
type windowed[T any] interface {
	window() (src Source[T], offset, count int)
}

type readListSource[T any] struct {
	rl collections.ReadList[T]
}

func (s readListSource[T]) Len() int { return s.rl.Len() }

func (s readListSource[T]) At(i int) T { return s.rl.At(i) }

func (s readListSource[T]) ID() uintptr {
	if w, ok := s.rl.(windowed[T]); ok {
		src, offset, count := w.window()
		var id uintptr
		if src != nil {
			id = src.ID()
		}
		return uintptr(hashWindow(id, offset, count))
	}
	if id, ok := s.rl.(collections.Identifier); ok {
		return id.Identity()
	}
	v := reflect.ValueOf(s.rl)
	if v.Kind() == reflect.Pointer {
		return v.Pointer()
	}
	if !v.Comparable() {
		return uintptr(boxOf(s.rl))
	}
	return 0
}

func (s readListSource[T]) Same(other Source[T]) bool {
	o, ok := other.(readListSource[T])
	if !ok {
		return false
	}
	if w, ok := s.rl.(windowed[T]); ok {
		ow, ok := o.rl.(windowed[T])
		if !ok {
			return false
		}
		src, offset, count := w.window()
		osrc, ooffset, ocount := ow.window()
		if offset != ooffset || count != ocount {
			return false
		}
		if src == nil || osrc == nil {
			return src == nil && osrc == nil
		}
		return src.Same(osrc)
	}
	if reflect.TypeOf(o.rl) != reflect.TypeOf(s.rl) {
		return false
	}
	if id, ok := s.rl.(collections.Identifier); ok {
		return id.Identity() == o.rl.(collections.Identifier).Identity()
	}
	if !reflect.ValueOf(s.rl).Comparable() {
		return boxOf(s.rl) == boxOf(o.rl)
	}
	return s.rl == o.rl
}

// boxOf returns the data word of an interface value. Copies of one interface
// value share it; separately boxed values do not.
func boxOf[T any](rl collections.ReadList[T]) unsafe.Pointer {
	return (*[2]unsafe.Pointer)(unsafe.Pointer(&rl))[1]
}
