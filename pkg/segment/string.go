package segment

import (
	"iter"
	"strings"
	"unsafe"
)

// String is a byte-indexed segment of a string. The zero value is unset;
// StringOf always binds, including to "".
type String struct {
	s      string
	offset int
	count  int
	bound  bool
}

// StringOf views the whole string.
func StringOf(s string) String {
	return String{s: s, count: len(s), bound: true}
}

// StringRange views s[offset : offset+count].
func StringRange(s string, offset, count int) (String, error) {
	if err := checkRange("offset", offset, count, len(s)); err != nil {
		return String{}, err
	}
	return String{s: s, offset: offset, count: count, bound: true}, nil
}

// HasSource reports whether the view is bound to a string.
func (s String) HasSource() bool { return s.bound }

// Offset is the start of the window in the source string.
func (s String) Offset() int { return s.offset }

// Count is the number of bytes in the window.
func (s String) Count() int { return s.count }

// Len is Count.
func (s String) Len() int { return s.count }

// String returns the window as a substring. No bytes are copied.
func (s String) String() string {
	return s.s[s.offset : s.offset+s.count]
}

// Source returns the whole viewed string.
func (s String) Source() string { return s.s }

// At returns byte i of the window. It panics with an out-of-range error when
// i is not within [0, Count).
func (s String) At(i int) byte {
	if err := checkIndex(i, s.count); err != nil {
		panic(err)
	}
	return s.s[s.offset+i]
}

// TryAt is At returning the error instead of panicking.
func (s String) TryAt(i int) (byte, error) {
	if err := checkIndex(i, s.count); err != nil {
		return 0, err
	}
	return s.s[s.offset+i], nil
}

// Slice views the bytes from index to the end.
func (s String) Slice(index int) (String, error) {
	if uint(index) > uint(s.count) {
		return String{}, outOfRange("index", index, "index must be within [0, count]")
	}
	return s.SliceN(index, s.count-index)
}

// SliceN views count bytes starting at index.
func (s String) SliceN(index, count int) (String, error) {
	if err := checkRange("index", index, count, s.count); err != nil {
		return String{}, err
	}
	return String{s: s.s, offset: s.offset + index, count: count, bound: s.bound}, nil
}

// Skip drops the first n bytes.
func (s String) Skip(n int) (String, error) { return s.Slice(n) }

// Take keeps the first n bytes.
func (s String) Take(n int) (String, error) { return s.SliceN(0, n) }

// TakeLast keeps the last n bytes.
func (s String) TakeLast(n int) (String, error) {
	if err := checkTail(n, s.count); err != nil {
		return String{}, err
	}
	return s.Slice(s.count - n)
}

// SkipLast drops the last n bytes.
func (s String) SkipLast(n int) (String, error) {
	if err := checkTail(n, s.count); err != nil {
		return String{}, err
	}
	return s.SliceN(0, s.count-n)
}

// IndexByte returns the first window-relative index of c, or -1.
func (s String) IndexByte(c byte) int {
	return strings.IndexByte(s.String(), c)
}

// ContainsByte reports whether c occurs in the window.
func (s String) ContainsByte(c byte) bool {
	return s.IndexByte(c) >= 0
}

// Index returns the first window-relative index of substr, or -1.
func (s String) Index(substr string) int {
	return strings.Index(s.String(), substr)
}

// Contains reports whether substr occurs entirely inside the window.
func (s String) Contains(substr string) bool {
	return strings.Contains(s.String(), substr)
}

// IndexFunc returns the first index whose byte satisfies f, or -1.
func (s String) IndexFunc(f func(byte) bool) int {
	for i := 0; i < s.count; i++ {
		if f(s.s[s.offset+i]) {
			return i
		}
	}
	return -1
}

// ContainsFunc reports whether any byte satisfies f.
func (s String) ContainsFunc(f func(byte) bool) bool {
	return s.IndexFunc(f) >= 0
}

// CopyTo copies the window into dst and returns the number of bytes copied.
func (s String) CopyTo(dst []byte) int {
	return copy(dst, s.String())
}

// Bytes copies the window into a new, never nil, slice.
func (s String) Bytes() []byte {
	out := make([]byte, s.count)
	copy(out, s.String())
	return out
}

// ToArray is Bytes.
func (s String) ToArray() []byte { return s.Bytes() }

// All iterates over the bytes of the window.
func (s String) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(s.s[s.offset+i]) {
				return
			}
		}
	}
}

// Indexed iterates over the window with indices relative to Offset.
func (s String) Indexed() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(i, s.s[s.offset+i]) {
				return
			}
		}
	}
}

// Enumerator returns a cursor positioned before the first byte.
func (s String) Enumerator() *StringEnumerator {
	return &StringEnumerator{str: s, cursor: newCursor(s.count)}
}

// Equal reports whether both view the same string data with the same offset
// and count. Equal strings at different addresses are not Equal.
func (s String) Equal(other String) bool {
	return s.bound == other.bound && s.offset == other.offset && s.count == other.count &&
		len(s.s) == len(other.s) && unsafe.StringData(s.s) == unsafe.StringData(other.s)
}

// Hash is consistent with Equal.
func (s String) Hash() uint64 {
	return hashWindow(uintptr(unsafe.Pointer(unsafe.StringData(s.s))), s.offset, s.count)
}

// StringEnumerator walks a String with an explicit cursor.
type StringEnumerator struct {
	str String
	cursor
}

// MoveNext advances the cursor and reports whether it is on a byte.
func (e *StringEnumerator) MoveNext() bool { return e.moveNext() }

// Current returns the byte under the cursor, or an invalid-operation error
// outside the window.
func (e *StringEnumerator) Current() (byte, error) {
	if err := e.check(); err != nil {
		return 0, err
	}
	return e.str.s[e.str.offset+e.index], nil
}

// Reset rewinds to before the first byte.
func (e *StringEnumerator) Reset() { e.reset() }
