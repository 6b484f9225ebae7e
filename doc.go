// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spscq provides a bounded, lock-free single-producer
// single-consumer FIFO queue.
//
// The queue passes fixed-size values between exactly two goroutines
// without locks. Both operations are wait-free: a call either commits
// one element or fails with [ErrWouldBlock] in a bounded number of
// steps, with no internal loop, retry, or blocking. All variants run
// the same cached-cursor Lamport ring algorithm and differ only in
// memory layout and access hints.
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	q := spscq.NewSPSC[Event](1024)
//
// Builder API selects the variant from layout hints:
//
//	q := spscq.Build[Event](spscq.New(1024))                        // → SPSC (padded)
//	q := spscq.Build[Event](spscq.New(1024).Unpadded())             // → SPSCCompact
//	q := spscq.Build[Event](spscq.New(1024).Prefetch())             // → SPSCPrefetch
//	q := spscq.Build[Event](spscq.New(1024).Unpadded().Prefetch())  // → SPSCCompactPrefetch
//	q := spscq.Build[Event](spscq.New(1000).ExactCapacity())        // → SPSCExact
//
// # Basic Usage
//
//	q := spscq.NewSPSC[int](1024)
//
//	// Producer goroutine (exactly one)
//	value := 42
//	err := q.Enqueue(&value)
//	if spscq.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	// Consumer goroutine (exactly one)
//	elem, err := q.Dequeue()
//	if spscq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// Callers own all waiting behavior. A typical producer retry loop:
//
//	backoff := iox.Backoff{}
//	for q.Enqueue(&item) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// # Algorithm
//
// Each side owns one cursor: the producer advances tail after writing a
// slot, the consumer advances head after reading one. Cursors are
// bounded indices in [0, Cap()); one slot stays permanently unused so
// head == tail means empty and advance(tail) == head means full. A
// queue of capacity n therefore holds at most n-1 elements.
//
// Each side also keeps a private, non-atomic snapshot of the other
// side's cursor. The fast path decides full/empty against the snapshot
// alone, avoiding the cache line the other core is writing; only when
// the snapshot says no room (or no data) is the real cursor re-read
// with acquire ordering and the snapshot refreshed. The snapshots carry
// no synchronization obligation and may be arbitrarily stale — staleness
// can only under-report available room or data, never fabricate it.
//
// The release store that advances a cursor is the sole publication
// point: the slot write becomes visible to the other goroutine once it
// observes the new cursor value with an acquire load. Loads of a
// goroutine's own cursor are relaxed, since nothing else ever writes it.
//
// # Variants
//
//	SPSC                - cursors padded to one cache line each (default)
//	SPSCCompact         - cursors packed tightly, smaller footprint
//	SPSCPrefetch        - padded + software prefetch hint per slot access
//	SPSCCompactPrefetch - unpadded + prefetch
//	SPSCExact           - exact (non-power-of-2) capacity, wrap-check advance
//
// Padding keeps the producer-owned and consumer-owned cursors on
// separate cache lines, preventing false sharing under sustained
// two-core traffic. Unpadded queues save ~5 cache lines per instance
// and suit fleets of small, lightly loaded pipelines.
//
// Prefetch issues a read or write hint on the slot before accessing it.
// It helps with large elements or buffers too big to stay resident; for
// small hot buffers it is pure overhead. Measure before enabling. On
// architectures without prefetch instructions the hint is a no-op.
//
// Power-of-two variants advance cursors with a bitmask. SPSCExact keeps
// the requested capacity exactly and pays one predictable branch per
// call for the wrap check.
//
// # Role Split
//
// Handing each goroutine only its half of the queue lets the compiler
// reject cross-role calls:
//
//	var p spscq.Producer[int] = q  // producer goroutine sees Enqueue only
//	var c spscq.Consumer[int] = q  // consumer goroutine sees Dequeue only
//
// # Error Handling
//
// Operations return [ErrWouldBlock] (an alias for iox.ErrWouldBlock)
// when the queue is full or empty. The error is a control flow signal:
// a failed call mutates nothing, so retrying is always safe. There is
// no other error path.
//
// # Thread Safety
//
// Exactly one goroutine may call Enqueue and exactly one may call
// Dequeue on a given queue instance (they may be the same goroutine).
// Violating this is a contract violation with undefined behavior
// including data corruption — not a detected, recoverable error.
// Queues must not be copied after first use, and must be torn down
// only after both goroutines have stopped touching them.
//
// Length is intentionally not provided because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before edges established
// through relaxed/acquire/release atomic orderings on separate
// variables, so concurrent tests of the generic variants report false
// positives under -race. Those tests are excluded via //go:build !race;
// the algorithm itself is unaffected.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering and [code.hybscloud.com/iox] for
// semantic errors. Tests and benchmarks additionally use
// [code.hybscloud.com/spin] for CPU pause instructions in retry loops.
package spscq
