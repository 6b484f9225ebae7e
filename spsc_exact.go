// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import "code.hybscloud.com/atomix"

// SPSCExact is an SPSC queue that keeps the requested capacity exactly,
// power of two or not.
//
// Cursor advancement uses a conditional wrap check instead of a bitmask,
// costing one predictable branch per call. The cached cursor snapshots
// and acquire/release publication are the same as in [SPSC]; cursors are
// padded. Use this variant when the buffer memory itself dominates and
// rounding 1000 slots up to 1024 is unacceptable.
type SPSCExact[T any] struct {
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
	capacity   uint64
}

// NewSPSCExact creates a new SPSC queue with exactly the given number
// of slots; one slot is reserved, so the queue holds at most capacity-1
// elements.
// Panics if capacity < 2.
func NewSPSCExact[T any](capacity int) *SPSCExact[T] {
	if capacity < 2 {
		panic("spscq: capacity must be >= 2")
	}

	return &SPSCExact[T]{
		buffer:   make([]T, capacity),
		capacity: uint64(capacity),
	}
}

// advance returns the cursor position after i, wrapping at capacity.
func (q *SPSCExact[T]) advance(i uint64) uint64 {
	if i+1 == q.capacity {
		return 0
	}
	return i + 1
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *SPSCExact[T]) Enqueue(elem *T) error {
	tail := q.tail.LoadRelaxed()
	next := q.advance(tail)
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
func (q *SPSCExact[T]) Dequeue() (T, error) {
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
	q.head.StoreRelease(q.advance(head))
	return elem, nil
}

// Cap returns the slot count. Usable capacity is Cap()-1.
func (q *SPSCExact[T]) Cap() int {
	return int(q.capacity)
}
