// Package mmap maps files read-only and exposes their contents as zero-copy
// byte segments.
package mmap

import (
	"bytes"
	"iter"
	"os"
	"sync"

	"github.com/ajitpratap0/memkit/pkg/errors"
	"github.com/ajitpratap0/memkit/pkg/segment"
)

// Reader is a read-only memory-mapped file. Segments obtained from it are
// valid until Close.
type Reader struct {
	file *os.File
	data []byte

	mu     sync.RWMutex
	closed bool
}

// Open maps filename. An empty file yields a Reader with no data.
func Open(filename string) (*Reader, error) {
	file, err := os.Open(filename) //nolint:gosec // G304: path is chosen by the caller
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open file").
			WithDetail("path", filename)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to stat file").
			WithDetail("path", filename)
	}

	r := &Reader{file: file, data: []byte{}}
	if size := stat.Size(); size > 0 {
		if r.data, err = mapFile(file, int(size)); err != nil {
			file.Close()
			return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to mmap file").
				WithDetail("path", filename)
		}
	}
	return r, nil
}

// Len is the mapped size in bytes.
func (r *Reader) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

// Bytes views the whole file.
func (r *Reader) Bytes() (segment.Array[byte], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return segment.Array[byte]{}, errClosed()
	}
	return segment.ArrayOf(r.data), nil
}

// Range views count bytes starting at offset.
func (r *Reader) Range(offset, count int) (segment.Array[byte], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return segment.Array[byte]{}, errClosed()
	}
	return segment.ArrayRange(r.data, offset, count)
}

// Lines yields each line without its terminator ("\n" or "\r\n"). A final line
// without a terminator is yielded too. Lines yields nothing after Close, and
// stops early when the reader is closed during iteration.
func (r *Reader) Lines() iter.Seq[segment.Array[byte]] {
	return func(yield func(segment.Array[byte]) bool) {
		r.mu.RLock()
		data, closed := r.data, r.closed
		r.mu.RUnlock()
		if closed {
			return
		}

		for start := 0; start < len(data); {
			end := bytes.IndexByte(data[start:], '\n')
			next := start + end + 1
			if end < 0 {
				end = len(data) - start
				next = len(data)
			}
			n := end
			if n > 0 && data[start+n-1] == '\r' {
				n--
			}
			line, err := segment.ArrayRange(data, start, n)
			if err != nil || !yield(line) || r.isClosed() {
				return
			}
			start = next
		}
	}
}

func (r *Reader) isClosed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closed
}

// Close unmaps the file. It is safe to call more than once.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	var unmapErr error
	if len(r.data) > 0 {
		unmapErr = unmapFile(r.data)
	}
	r.data = nil
	closeErr := r.file.Close()

	if unmapErr != nil {
		return errors.Wrap(unmapErr, errors.ErrorTypeFile, "failed to unmap file")
	}
	if closeErr != nil {
		return errors.Wrap(closeErr, errors.ErrorTypeFile, "failed to close file")
	}
	return nil
}

func errClosed() error {
	return errors.New(errors.ErrorTypeInvalidOperation, "reader is closed")
}
