// Package memkit provides typed object pools for standard collections and
// read-only, zero-copy segments over existing storage.
//
// memkit targets hot paths that repeatedly build short-lived lists, maps,
// sets, stacks, queues and arrays. It also serves code that needs to hand out
// windows of a buffer without copying it.
//
// # Architecture
//
// Pools (pkg/pool): a Registry keeps one pool per (kind, element type,
// concurrency) key. Plain pools are for single-goroutine use; concurrent pools
// sit on a lock-free ring with a locked overflow queue. Array pools bucket by
// exact length. Every returned collection is cleared before it can be handed
// out again.
//
// Segments (pkg/segment): Segment[T] views Count elements at Offset in a
// slice, list, read-only list or rented array. Array[T] and String are the
// slice and string forms. Construction and narrowing are bounds-checked and
// never copy.
//
// Supporting packages:
//   - pkg/collections: List, Stack, Queue and Set plus read-only facades
//   - pkg/lockfree: the bounded MPMC ring behind concurrent pools
//   - pkg/mmap: memory-mapped files viewed as byte segments
//   - pkg/json: goccy/go-json with pooled buffers
//   - pkg/config, pkg/logger, pkg/metrics, pkg/errors: configuration, zap
//     logging, Prometheus collectors and typed errors
//
// # Quick Start
//
//	import (
//	    "github.com/ajitpratap0/memkit/pkg/pool"
//	    "github.com/ajitpratap0/memkit/pkg/segment"
//	)
//
//	func process(values []int) int {
//	    ids := pool.GetList[int](nil) // nil selects the default registry
//	    defer pool.ReturnList(nil, ids)
//
//	    for _, v := range values {
//	        ids.Add(v)
//	    }
//
//	    tail, err := segment.FromList(ids).Skip(1)
//	    if err != nil {
//	        return 0
//	    }
//	    return tail.Count()
//	}
//
// # Command Line
//
//	go build -o bin/memkit ./cmd/memkit
//	./bin/memkit bench --iterations 100000 --concurrent --workers 8
//	./bin/memkit segment --values 10,20,30,40 --offset 1 --count 2
package memkit
