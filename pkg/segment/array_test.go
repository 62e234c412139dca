package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_Items(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}
	a, err := ArrayRange(data, 1, 2)
	require.NoError(t, err)

	items := a.Items()
	assert.Equal(t, []int{2, 3}, items)
	assert.Equal(t, 2, cap(items))

	// Appending reallocates instead of overwriting data[3].
	_ = append(items, 99)
	assert.Equal(t, 4, data[3])

	items[0] = 20
	assert.Equal(t, 20, data[1])

	assert.Nil(t, Array[int]{}.Items())
}

func TestArray_Operations(t *testing.T) {
	a := ArrayOf([]string{"a", "b", "c", "d"})

	mid, err := a.SliceN(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, mid.ToArray())
	assert.Equal(t, "c", mid.At(1))

	_, err = mid.TryAt(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Panics(t, func() { mid.At(2) })

	last, err := a.TakeLast(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, last.ToArray())

	first, err := a.SkipLast(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, first.ToArray())

	_, err = a.Skip(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = a.Take(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.Equal(t, 1, ArrayIndexOf(mid, "c"))
	assert.False(t, ArrayContains(mid, "a"))
	assert.Equal(t, 0, mid.IndexFunc(func(s string) bool { return s == "b" }))
	assert.True(t, mid.ContainsFunc(func(s string) bool { return s == "c" }))
}

func TestArray_Unset(t *testing.T) {
	a := ArrayOf[int](nil)
	assert.False(t, a.HasSource())
	assert.NotNil(t, a.ToArray())
	assert.False(t, a.Segment().HasSource())

	z, err := a.Take(0)
	require.NoError(t, err)
	assert.True(t, z.Equal(Array[int]{}))

	_, err = ArrayRange[int](nil, 0, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// An empty non-nil slice is bound.
	assert.True(t, ArrayOf([]int{}).HasSource())
}

func TestArray_EnumeratorAndIterators(t *testing.T) {
	a, err := ArrayRange([]int{1, 2, 3, 4}, 1, 2)
	require.NoError(t, err)

	e := a.Enumerator()
	_, err = e.Current()
	assert.ErrorIs(t, err, ErrInvalidOperation)

	var got []int
	for e.MoveNext() {
		v, err := e.Current()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 3}, got)
	e.Reset()
	assert.True(t, e.MoveNext())

	var values []int
	for v := range a.All() {
		values = append(values, v)
	}
	assert.Equal(t, []int{2, 3}, values)

	for i, v := range a.Indexed() {
		assert.Equal(t, a.At(i), v)
	}
}

func TestArray_Equality(t *testing.T) {
	data := []int{1, 2, 3}
	a, _ := ArrayRange(data, 0, 2)
	b, _ := ArrayRange(data, 0, 2)
	c, _ := ArrayRange(data[:2], 0, 2)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	// Same start, different viewed length.
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Array[int]{}))
}
