// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import (
	"unsafe"

	"code.hybscloud.com/atomix"

	"github.com/dgunther2001/spscq/internal/asm"
)

// SPSCPrefetch is an SPSC queue with padded cursors and software
// prefetch hints on the slot array.
//
// Same algorithm as [SPSC]; once room or data is confirmed, the slot
// about to be accessed gets a prefetch hint (write hint on enqueue,
// read hint on dequeue) before the actual access. The hint helps when
// elements are large or the buffer is big enough that slots fall out of
// cache between visits; for small hot buffers it is pure overhead.
// On architectures without prefetch support the hint compiles to a
// no-op call.
type SPSCPrefetch[T any] struct {
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

// NewSPSCPrefetch creates a new padded SPSC queue with prefetch hints.
// Capacity rounds up to the next power of 2; one slot is reserved,
// so the queue holds at most Cap()-1 elements.
// Panics if capacity < 2.
func NewSPSCPrefetch[T any](capacity int) *SPSCPrefetch[T] {
	if capacity < 2 {
		panic("spscq: capacity must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	return &SPSCPrefetch[T]{
		buffer: make([]T, n),
		mask:   n - 1,
	}
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *SPSCPrefetch[T]) Enqueue(elem *T) error {
	tail := q.tail.LoadRelaxed()
	next := (tail + 1) & q.mask
	if next == q.cachedHead {
		q.cachedHead = q.head.LoadAcquire()
		if next == q.cachedHead {
			return ErrWouldBlock
		}
	}

	asm.PrefetchWrite(unsafe.Pointer(&q.buffer[tail]))
	q.buffer[tail] = *elem
	q.tail.StoreRelease(next)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPSCPrefetch[T]) Dequeue() (T, error) {
	head := q.head.LoadRelaxed()
	if head == q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head == q.cachedTail {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	asm.PrefetchRead(unsafe.Pointer(&q.buffer[head]))
	elem := q.buffer[head]
	var zero T
	q.buffer[head] = zero
	q.head.StoreRelease((head + 1) & q.mask)
	return elem, nil
}

// Cap returns the slot count. Usable capacity is Cap()-1.
func (q *SPSCPrefetch[T]) Cap() int {
	return int(q.mask + 1)
}

// SPSCCompactPrefetch is an SPSC queue with tightly packed cursors and
// software prefetch hints, combining the [SPSCCompact] layout with the
// [SPSCPrefetch] access pattern.
type SPSCCompactPrefetch[T any] struct {
	head       atomix.Uint64 // Next slot to read; consumer-owned
	cachedTail uint64        // Consumer's cached view of tail
	tail       atomix.Uint64 // Next slot to write; producer-owned
	cachedHead uint64        // Producer's cached view of head
	buffer     []T
	mask       uint64
}

// NewSPSCCompactPrefetch creates a new unpadded SPSC queue with
// prefetch hints.
// Capacity rounds up to the next power of 2; one slot is reserved,
// so the queue holds at most Cap()-1 elements.
// Panics if capacity < 2.
func NewSPSCCompactPrefetch[T any](capacity int) *SPSCCompactPrefetch[T] {
	if capacity < 2 {
		panic("spscq: capacity must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	return &SPSCCompactPrefetch[T]{
		buffer: make([]T, n),
		mask:   n - 1,
	}
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *SPSCCompactPrefetch[T]) Enqueue(elem *T) error {
	tail := q.tail.LoadRelaxed()
	next := (tail + 1) & q.mask
	if next == q.cachedHead {
		q.cachedHead = q.head.LoadAcquire()
		if next == q.cachedHead {
			return ErrWouldBlock
		}
	}

	asm.PrefetchWrite(unsafe.Pointer(&q.buffer[tail]))
	q.buffer[tail] = *elem
	q.tail.StoreRelease(next)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPSCCompactPrefetch[T]) Dequeue() (T, error) {
	head := q.head.LoadRelaxed()
	if head == q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head == q.cachedTail {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	asm.PrefetchRead(unsafe.Pointer(&q.buffer[head]))
	elem := q.buffer[head]
	var zero T
	q.buffer[head] = zero
	q.head.StoreRelease((head + 1) & q.mask)
	return elem, nil
}

// Cap returns the slot count. Usable capacity is Cap()-1.
func (q *SPSCCompactPrefetch[T]) Cap() int {
	return int(q.mask + 1)
}
