// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import "code.hybscloud.com/atomix"

// SPSC is a bounded single-producer single-consumer queue with
// cache-line-padded cursors.
//
// Based on Lamport's ring buffer with the cached index optimization:
// the producer keeps a private snapshot of the consumer's read cursor,
// and vice versa, so most calls decide full/empty without touching the
// cache line the other core is writing. The snapshot may be arbitrarily
// stale; it is re-validated with an acquire load before a call reports
// full or empty.
//
// Cursors are bounded indices in [0, Cap()). One slot stays permanently
// unused to distinguish a full queue from an empty one, so a queue of
// capacity n holds at most n-1 elements.
//
// Memory: O(capacity) plus five cache lines of cursor isolation.
type SPSC[T any] struct {
	_          pad
	head       atomix.Uint64 // Next slot to read; consumer-owned
	_          pad
	cachedTail uint64 // Consumer's cached view of tail
	_          pad
	tail       atomix.Uint64 // Next slot to write; producer-owned
	_          pad
	cachedHead uint64 // Producer's cached view of head
	_          pad
	buffer     []T
	mask       uint64
}

// NewSPSC creates a new padded SPSC queue.
// Capacity rounds up to the next power of 2; one slot is reserved,
// so the queue holds at most Cap()-1 elements.
// Panics if capacity < 2.
func NewSPSC[T any](capacity int) *SPSC[T] {
	if capacity < 2 {
		panic("spscq: capacity must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	return &SPSC[T]{
		buffer: make([]T, n),
		mask:   n - 1,
	}
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *SPSC[T]) Enqueue(elem *T) error {
	tail := q.tail.LoadRelaxed()
	next := (tail + 1) & q.mask
	if next == q.cachedHead {
		q.cachedHead = q.head.LoadAcquire()
		if next == q.cachedHead {
			return ErrWouldBlock
		}
	}

	q.buffer[tail] = *elem
	q.tail.StoreRelease(next)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPSC[T]) Dequeue() (T, error) {
	head := q.head.LoadRelaxed()
	if head == q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head == q.cachedTail {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	elem := q.buffer[head]
	var zero T
	q.buffer[head] = zero
	q.head.StoreRelease((head + 1) & q.mask)
	return elem, nil
}

// Cap returns the slot count. Usable capacity is Cap()-1.
func (q *SPSC[T]) Cap() int {
	return int(q.mask + 1)
}
