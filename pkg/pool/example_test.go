package pool_test

import (
	"bytes"
	"fmt"

	"github.com/ajitpratap0/memkit/pkg/pool"
)

// Example shows the get/use/return cycle for a pooled list.
func Example() {
	r := pool.NewRegistry()

	ids := pool.GetList[int](r)
	ids.AddRange(1, 2, 3, 4, 5)
	fmt.Println("in use:", ids.Len())
	pool.ReturnList(r, ids)

	again := pool.GetList[int](r)
	fmt.Println("after reuse:", again.Len(), again == ids)

	// Output:
	// in use: 5
	// after reuse: 0 true
}

// ExampleSizedPool shows that arrays are bucketed by their length.
func ExampleSizedPool() {
	arrays := pool.NewSizedPool[byte]()

	buf := arrays.Get(4)
	copy(buf, "ping")
	arrays.Return(buf)

	fmt.Println(len(arrays.Get(4)), len(arrays.Get(16)))
	fmt.Println(arrays.Sizes())

	// Output:
	// 4 16
	// [4 16]
}

// ExampleNew builds a custom pool with a reset function.
func ExampleNew() {
	buffers := pool.New(
		func() *bytes.Buffer { return new(bytes.Buffer) },
		(*bytes.Buffer).Reset,
		pool.WithConcurrent(true),
	)

	b := buffers.Get()
	b.WriteString("scratch")
	buffers.Return(b)

	st := buffers.Stats()
	fmt.Println(buffers.Get().Len(), st.Misses, st.Idle)

	// Output:
	// 0 1 1
}

// ExampleSizedPool_Rent rents an array and releases it back.
func ExampleSizedPool_Rent() {
	arrays := pool.NewSizedPool[int]()

	lease := arrays.Rent(3)
	copy(lease.Items(), []int{7, 8, 9})
	fmt.Println(lease.At(2), lease.Len())
	lease.Release()

	fmt.Println(lease.Released(), arrays.Idle())

	// Output:
	// 9 3
	// true 1
}
