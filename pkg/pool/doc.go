// Package pool recycles container instances so that short-lived lists, sets,
// maps, stacks, queues and fixed-length arrays do not churn the allocator.
//
// # Architecture
//
// Pool[T] is the building block: a factory, a reset function and a cache
// store. Get pops a cached instance or calls the factory; Return resets the
// item and pushes it back. Nil items are ignored, and neither call can fail.
// Every pool counts allocations, gets, hits, misses, returns and drops.
//
// SizedPool[T] keeps one Pool[[]T] per array length. The bucket is derived
// from len(array) on Return, so a bucket only ever holds arrays of its own
// length. Rent wraps a pooled array in a Lease that can back a segment view.
//
// Registry owns the pools of an application and creates them lazily per
// (kind, element type, concurrency):
//
//	r := pool.NewRegistry(pool.WithLogger(log))
//
//	ids := pool.GetList[int](r)
//	defer pool.ReturnList(r, ids)
//
//	buf := pool.Arrays[byte](r, true).Get(4096)
//	defer pool.Arrays[byte](r, true).Return(buf)
//
// Default returns a process-wide registry for code that has no natural place
// to thread one through.
//
// # Concurrency
//
// Plain pools use a FIFO store and must be confined to one goroutine or
// guarded by the caller. Concurrent pools use a lock-free ring with a locked
// overflow queue; each Get and Return is atomic, nothing more. Registry lookup
// is always safe for concurrent use.
//
// # Growth
//
// Pools are unbounded by default: an idle instance stays cached until Get
// takes it. Options.MaxRetained caps idle instances per pool; returns beyond
// the cap are dropped and counted.
//
// # Ownership
//
// After Return (or Lease.Release) the caller must not touch the instance, nor
// any segment view over it. The pool cannot detect such use.
package pool
