// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

// Queue is the combined producer-consumer interface for a bounded
// single-producer single-consumer FIFO queue.
//
// Queue provides non-blocking Enqueue and Dequeue operations. Both
// operations return ErrWouldBlock when they cannot proceed (queue full
// or empty) without mutating any state, so retrying is always safe.
//
// The interface intentionally excludes length because accurate counts
// in lock-free algorithms require expensive cross-core synchronization.
// Track counts in application logic when needed.
//
// Example:
//
//	q := spscq.NewSPSC[int](1024)
//
//	// Producer goroutine
//	val := 42
//	if err := q.Enqueue(&val); err != nil {
//	    // Queue full - apply backpressure
//	}
//
//	// Consumer goroutine
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the enqueueing half of a queue.
//
// Hand a Producer to the producing goroutine instead of the full queue
// so the type system rules out accidental dequeues from the wrong side.
// The element is passed by pointer to avoid copying large structs; the
// queue stores a copy of the pointed-to value, so the original can be
// modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// The element is copied into the queue's internal buffer.
	// Returns nil on success, ErrWouldBlock if the queue is full.
	//
	// Exactly one goroutine may call Enqueue on a given queue.
	// Concurrent producers are a contract violation with undefined
	// behavior, not a recoverable error.
	Enqueue(elem *T) error
}

// Consumer is the dequeueing half of a queue.
//
// Hand a Consumer to the consuming goroutine instead of the full queue.
// The element is returned by value (copied out of the queue's internal
// buffer) and the vacated slot is cleared so referenced objects become
// collectable.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	//
	// Exactly one goroutine may call Dequeue on a given queue.
	// Concurrent consumers are a contract violation with undefined
	// behavior, not a recoverable error.
	Dequeue() (T, error)
}
