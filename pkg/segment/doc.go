// Package segment provides read-only, allocation-free windows over existing
// storage.
//
// A Segment[T] views Count elements starting at Offset in a Source: a slice,
// a *collections.List, any collections.ReadList or a rented pool.Lease. Array[T]
// and String are the specialised forms for slices and strings, with direct
// indexing and zero-copy Items / String accessors.
//
// # Bounds
//
// Every constructor and every narrowing operation (Slice, SliceN, Skip, Take,
// TakeLast, SkipLast) returns an error matching ErrOutOfRange unless
//
//	0 <= offset <= length && 0 <= count <= length-offset
//
// At panics with the same error, the way slice indexing panics; TryAt returns
// it instead.
//
// # Unset segments
//
// The zero value has no source. It behaves as an empty list: ToArray returns an
// empty non-nil slice, enumeration yields nothing, and Slice(0), Skip(0) and
// Take(0) succeed. Constructors given a nil source return it.
//
// # Identity
//
// Segments compare by source identity, offset and count, never by element
// values. Use Equal and Hash; == is not supported because sources may hold
// slices.
package segment
