// Package json provides JSON serialization on goccy/go-json with pooled
// buffers.
package json

import (
	"bytes"
	"io"
	"iter"

	gojson "github.com/goccy/go-json"

	"github.com/ajitpratap0/memkit/pkg/pool"
)

// maxPooledBuffer keeps very large buffers out of the pool.
const maxPooledBuffer = 1 << 20

var buffers = pool.New(
	func() *bytes.Buffer { return bytes.NewBuffer(make([]byte, 0, 4096)) },
	(*bytes.Buffer).Reset,
	pool.WithConcurrent(true),
	pool.WithName("json"),
)

// GetBuffer gets an empty pooled bytes.Buffer.
func GetBuffer() *bytes.Buffer {
	return buffers.Get()
}

// PutBuffer returns a buffer to the pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBuffer {
		return
	}
	buffers.Return(buf)
}

// BufferStats reports the buffer pool counters.
func BufferStats() pool.Stats {
	return buffers.Stats()
}

// Marshal is a drop-in replacement for encoding/json.Marshal.
func Marshal(v interface{}) ([]byte, error) {
	return gojson.Marshal(v)
}

// Unmarshal is a drop-in replacement for encoding/json.Unmarshal.
func Unmarshal(data []byte, v interface{}) error {
	return gojson.Unmarshal(data, v)
}

// MarshalIndent is a drop-in replacement for encoding/json.MarshalIndent.
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(v, prefix, indent)
}

// Encode writes v to w followed by a newline. HTML characters are not
// escaped.
func Encode(w io.Writer, v interface{}, indent string) error {
	buf := GetBuffer()
	defer PutBuffer(buf)

	enc := gojson.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// MarshalSeq marshals the values of seq as a JSON array. An empty sequence
// yields [].
func MarshalSeq[T any](seq iter.Seq[T]) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	buf.WriteByte('[')
	first := true
	for v := range seq {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		data, err := gojson.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')

	// Copy out: buf goes back to the pool.
	return bytes.Clone(buf.Bytes()), nil
}
