package pool

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y float64
}

type named struct {
	ID   int
	Name string
}

func TestIsUnmanaged(t *testing.T) {
	assert.True(t, IsUnmanaged[int]())
	assert.True(t, IsUnmanaged[byte]())
	assert.True(t, IsUnmanaged[complex128]())
	assert.True(t, IsUnmanaged[point]())
	assert.True(t, IsUnmanaged[[4]point]())
	assert.True(t, IsUnmanaged[[0]*int]())
	assert.True(t, IsUnmanaged[struct{}]())

	assert.False(t, IsUnmanaged[string]())
	assert.False(t, IsUnmanaged[*int]())
	assert.False(t, IsUnmanaged[[]int]())
	assert.False(t, IsUnmanaged[map[int]int]())
	assert.False(t, IsUnmanaged[named]())
	assert.False(t, IsUnmanaged[error]())
	assert.False(t, IsUnmanaged[[2]string]())
}

func TestIsUnmanagedMemoized(t *testing.T) {
	assert.True(t, IsUnmanaged[point]())
	_, ok := unmanagedCache.Load(reflect.TypeFor[point]())
	assert.True(t, ok)
}
