package errors_test

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/ajitpratap0/memkit/pkg/errors"
)

// Example demonstrates creating an out-of-range error with argument details.
func Example() {
	err := errors.New(errors.ErrorTypeOutOfRange, "offset exceeds source length").
		WithDetail("argument", "offset").
		WithDetail("value", 12)

	fmt.Println(err.Error())
	fmt.Println(errors.Argument(err))

	// Output:
	// out_of_range: offset exceeds source length
	// offset
}

// ExampleWrap shows how to wrap existing errors with context.
func ExampleWrap() {
	err := errors.Wrap(io.EOF, errors.ErrorTypeConfig, "failed to read config file").
		WithDetail("file", "memkit.yaml")

	if errors.IsType(err, errors.ErrorTypeConfig) {
		fmt.Println("This is a config error")
	}
	if stderrors.Is(err, io.EOF) {
		fmt.Println("Original error was EOF")
	}

	// Output:
	// This is a config error
	// Original error was EOF
}

// ExampleSentinel shows matching typed errors against a package sentinel.
func ExampleSentinel() {
	errOutOfRange := errors.Sentinel(errors.ErrorTypeOutOfRange, "argument out of range")

	err := errors.New(errors.ErrorTypeOutOfRange, "count exceeds remaining length").
		WithDetail("argument", "count")

	fmt.Println(stderrors.Is(err, errOutOfRange))
	fmt.Println(stderrors.Is(err, errors.Sentinel(errors.ErrorTypeInvalidOperation, "")))

	// Output:
	// true
	// false
}
