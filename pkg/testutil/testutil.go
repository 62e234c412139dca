// Package testutil provides testing utilities for memkit
package testutil

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/ajitpratap0/memkit/pkg/pool"
)

// TestLogger creates a test logger that writes to the test output.
func TestLogger(t testing.TB) *zap.Logger {
	return zaptest.NewLogger(t)
}

// NewRegistry creates a pool registry that logs to the test output. The
// registry is reset when the test completes.
func NewRegistry(t testing.TB, opts ...pool.Option) *pool.Registry {
	t.Helper()
	opts = append([]pool.Option{pool.WithLogger(TestLogger(t)), pool.WithName(t.Name())}, opts...)
	r := pool.NewRegistry(opts...)
	t.Cleanup(r.Reset)
	return r
}

// RunParallel runs fn on workers goroutines and waits for all of them.
func RunParallel(workers int, fn func(worker int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			fn(w)
		}()
	}
	wg.Wait()
}
