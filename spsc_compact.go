// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import "code.hybscloud.com/atomix"

// SPSCCompact is an SPSC queue with tightly packed cursors.
//
// Same algorithm as [SPSC] minus the cache-line isolation: the cursors
// and their cached snapshots share lines, trading false-sharing traffic
// under high operation rates for ~5 cache lines less memory per queue.
// Prefer [SPSC] unless queue instances are counted in the thousands.
type SPSCCompact[T any] struct {
	head       atomix.Uint64 // Next slot to read; consumer-owned
	cachedTail uint64        // Consumer's cached view of tail
	tail       atomix.Uint64 // Next slot to write; producer-owned
	cachedHead uint64        // Producer's cached view of head
	buffer     []T
	mask       uint64
}

// NewSPSCCompact creates a new unpadded SPSC queue.
// Capacity rounds up to the next power of 2; one slot is reserved,
// so the queue holds at most Cap()-1 elements.
// Panics if capacity < 2.
func NewSPSCCompact[T any](capacity int) *SPSCCompact[T] {
	if capacity < 2 {
		panic("spscq: capacity must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	return &SPSCCompact[T]{
		buffer: make([]T, n),
		mask:   n - 1,
	}
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *SPSCCompact[T]) Enqueue(elem *T) error {
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
func (q *SPSCCompact[T]) Dequeue() (T, error) {
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
func (q *SPSCCompact[T]) Cap() int {
	return int(q.mask + 1)
}
