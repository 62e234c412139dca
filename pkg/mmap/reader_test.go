package mmap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/memkit/pkg/errors"
	"github.com/ajitpratap0/memkit/pkg/segment"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReader_Views(t *testing.T) {
	r, err := Open(writeTemp(t, "hello, mapped world"))
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, 19, r.Len())

	all, err := r.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "hello, mapped world", string(all.ToArray()))

	word, err := r.Range(7, 6)
	require.NoError(t, err)
	assert.Equal(t, "mapped", string(word.ToArray()))
	assert.Equal(t, 7, word.Offset())

	_, err = r.Range(10, 20)
	assert.ErrorIs(t, err, segment.ErrOutOfRange)
}

func TestReader_Lines(t *testing.T) {
	r, err := Open(writeTemp(t, "alpha\r\nbeta\n\ngamma"))
	require.NoError(t, err)
	defer r.Close()

	var lines []string
	var offsets []int
	for line := range r.Lines() {
		lines = append(lines, string(line.Items()))
		offsets = append(offsets, line.Offset())
	}
	assert.Equal(t, []string{"alpha", "beta", "", "gamma"}, lines)
	assert.Equal(t, []int{0, 7, 12, 13}, offsets)

	var first []string
	for line := range r.Lines() {
		first = append(first, string(line.Items()))
		break
	}
	assert.Equal(t, []string{"alpha"}, first)
}

func TestReader_EmptyFile(t *testing.T) {
	r, err := Open(writeTemp(t, ""))
	require.NoError(t, err)

	all, err := r.Bytes()
	require.NoError(t, err)
	assert.True(t, all.HasSource())
	assert.Equal(t, 0, all.Count())

	count := 0
	for range r.Lines() {
		count++
	}
	assert.Zero(t, count)
	assert.NoError(t, r.Close())
}

func TestReader_Close(t *testing.T) {
	r, err := Open(writeTemp(t, "x\ny\n"))
	require.NoError(t, err)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	_, err = r.Bytes()
	assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidOperation))
	_, err = r.Range(0, 1)
	assert.Error(t, err)
	assert.Equal(t, 0, r.Len())
}

func TestReader_CloseDuringLines(t *testing.T) {
	r, err := Open(writeTemp(t, "one\ntwo\nthree\n"))
	require.NoError(t, err)

	done := make(chan []string, 1)
	go func() {
		var seen []string
		for line := range r.Lines() {
			seen = append(seen, string(line.Items()))
			assert.NoError(t, r.Close())
		}
		done <- seen
	}()

	select {
	case seen := <-done:
		assert.Equal(t, []string{"one"}, seen)
	case <-time.After(5 * time.Second):
		t.Fatal("Close inside Lines did not return")
	}

	for range r.Lines() {
		t.Fatal("Lines yielded after Close")
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFile))
}
