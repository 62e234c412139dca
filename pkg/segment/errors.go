package segment

import (
	"github.com/ajitpratap0/memkit/pkg/errors"
)

var (
	// ErrOutOfRange matches every offset, count or index violation via errors.Is.
	ErrOutOfRange = errors.Sentinel(errors.ErrorTypeOutOfRange, "argument out of range")
	// ErrInvalidOperation matches enumerator misuse via errors.Is.
	ErrInvalidOperation = errors.Sentinel(errors.ErrorTypeInvalidOperation, "invalid operation")
)

func outOfRange(argument string, value int, message string) error {
	return errors.New(errors.ErrorTypeOutOfRange, message).
		WithDetail("argument", argument).
		WithDetail("value", value)
}

// checkRange validates a window [offset, offset+count) against length.
// Converting to uint folds the negative case into the upper-bound check, so
// one comparison per argument rejects both.
func checkRange(offsetArg string, offset, count, length int) error {
	if uint(offset) > uint(length) {
		return outOfRange(offsetArg, offset, offsetArg+" must be within [0, length]")
	}
	if uint(count) > uint(length-offset) {
		return outOfRange("count", count, "count exceeds the elements available after "+offsetArg)
	}
	return nil
}

func checkIndex(index, count int) error {
	if uint(index) >= uint(count) {
		return outOfRange("index", index, "index must be within [0, count)")
	}
	return nil
}

func checkTail(n, count int) error {
	if uint(n) > uint(count) {
		return outOfRange("count", n, "count exceeds the segment length")
	}
	return nil
}

// cursor is the position logic shared by every enumerator: it starts one
// before the first element and never wraps around.
type cursor struct {
	index int
	count int
}

func newCursor(count int) cursor {
	return cursor{index: -1, count: count}
}

func (c *cursor) moveNext() bool {
	if c.index < c.count {
		c.index++
	}
	return c.index < c.count
}

func (c *cursor) reset() {
	c.index = -1
}

func (c *cursor) check() error {
	if c.index < 0 {
		return errors.New(errors.ErrorTypeInvalidOperation, "enumeration has not started; call MoveNext first")
	}
	if c.index >= c.count {
		return errors.New(errors.ErrorTypeInvalidOperation, "enumeration already finished")
	}
	return nil
}
