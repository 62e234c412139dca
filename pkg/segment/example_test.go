package segment_test

import (
	"errors"
	"fmt"

	"github.com/ajitpratap0/memkit/pkg/pool"
	"github.com/ajitpratap0/memkit/pkg/segment"
)

// Example narrows a window step by step without copying.
func Example() {
	data := []int{10, 20, 30, 40}

	s, _ := segment.FromSliceRange(data, 1, 2)
	fmt.Println(s.ToArray())

	tail, _ := s.Slice(1)
	fmt.Println(tail.ToArray(), tail.Offset())

	_, err := s.Take(3)
	fmt.Println(errors.Is(err, segment.ErrOutOfRange))

	// Output:
	// [20 30]
	// [30] 2
	// true
}

func ExampleString() {
	line := "GET /index.html HTTP/1.1"
	s := segment.StringOf(line)

	sp := s.IndexByte(' ')
	rest, _ := s.Skip(sp + 1)
	path, _ := rest.Take(rest.IndexByte(' '))
	fmt.Println(path.String(), path.Offset())

	// Output:
	// /index.html 4
}

func ExampleSegment_Enumerator() {
	e := segment.FromSlice([]string{"a", "b"}).Enumerator()
	for e.MoveNext() {
		v, _ := e.Current()
		fmt.Print(v, " ")
	}
	_, err := e.Current()
	fmt.Println(errors.Is(err, segment.ErrInvalidOperation))

	// Output:
	// a b true
}

// ExampleFromLease views part of a rented array.
func ExampleFromLease() {
	arrays := pool.NewSizedPool[byte]()
	lease := arrays.Rent(8)
	defer lease.Release()

	n := copy(lease.Items(), "payload!")
	body, _ := segment.FromLeaseRange(lease, 0, n-1)
	fmt.Println(string(body.ToArray()))

	// Output:
	// payload
}
