// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

// Options configures queue creation and variant selection.
type Options struct {
	// Layout hints
	unpadded bool // Pack cursors tightly instead of line-per-cursor
	prefetch bool // Issue software prefetch hints on slot access
	exact    bool // Keep capacity exactly, conditional-wrap advance

	// Capacity (rounds up to next power of 2 unless exact)
	capacity int
}

// Builder creates queues with fluent configuration.
//
// Builder selects among the queue variants based on layout hints. Every
// variant runs the same cached-cursor algorithm; the hints trade memory
// footprint, cache behavior, and capacity granularity. Selection happens
// once at construction — the built queue carries no policy branches on
// its hot path.
//
// Example:
//
//	// Padded queue (default, best under sustained two-core traffic)
//	q := spscq.Build[Event](spscq.New(1024))
//
//	// Memory-lean queue for many small pipelines
//	q := spscq.Build[Sample](spscq.New(64).Unpadded())
//
//	// Large-element queue with prefetch hints
//	q := spscq.Build[Frame](spscq.New(8192).Prefetch())
//
//	// Exactly 1000 slots, no rounding
//	q := spscq.Build[Tick](spscq.New(1000).ExactCapacity())
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity rounds up to the next power of 2 unless ExactCapacity() is
// set. One slot is always reserved to tell a full queue from an empty
// one, so a queue of capacity n holds at most n-1 elements.
//
// Panics if capacity < 2.
func New(capacity int) *Builder {
	if capacity < 2 {
		panic("spscq: capacity must be >= 2")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// Unpadded packs the cursors tightly instead of isolating each on its
// own cache line.
//
// Trade-off: ~5 cache lines less memory per queue, false-sharing traffic
// between producer and consumer cores under high operation rates.
//
// Ignored when ExactCapacity() is set.
func (b *Builder) Unpadded() *Builder {
	b.opts.unpadded = true
	return b
}

// Prefetch issues a software prefetch hint on the slot before each
// access. Helps with large elements or buffers too big to stay cached;
// pure overhead for small hot buffers. No-op on architectures without
// prefetch support.
//
// Ignored when ExactCapacity() is set.
func (b *Builder) Prefetch() *Builder {
	b.opts.prefetch = true
	return b
}

// ExactCapacity keeps the requested capacity exactly instead of rounding
// up to a power of 2. The built queue advances cursors with a wrap check
// rather than a bitmask, costing one predictable branch per call.
func (b *Builder) ExactCapacity() *Builder {
	b.opts.exact = true
	return b
}

// Build creates a Queue[T] with automatic variant selection.
//
// Variant selection:
//
//	ExactCapacity()        → SPSCExact (wrap-check advance, padded)
//	Unpadded() + Prefetch() → SPSCCompactPrefetch
//	Unpadded()             → SPSCCompact
//	Prefetch()             → SPSCPrefetch
//	no hints               → SPSC (padded, masked; the default)
//
// For concrete return types, use:
//   - BuildPadded[T](b)          → *SPSC[T]
//   - BuildCompact[T](b)         → *SPSCCompact[T]
//   - BuildPrefetch[T](b)        → *SPSCPrefetch[T]
//   - BuildCompactPrefetch[T](b) → *SPSCCompactPrefetch[T]
//   - BuildExact[T](b)           → *SPSCExact[T]
func Build[T any](b *Builder) Queue[T] {
	switch {
	case b.opts.exact:
		return NewSPSCExact[T](b.opts.capacity)
	case b.opts.unpadded && b.opts.prefetch:
		return NewSPSCCompactPrefetch[T](b.opts.capacity)
	case b.opts.unpadded:
		return NewSPSCCompact[T](b.opts.capacity)
	case b.opts.prefetch:
		return NewSPSCPrefetch[T](b.opts.capacity)
	default:
		return NewSPSC[T](b.opts.capacity)
	}
}

// BuildPadded creates the default padded queue with compile-time type
// safety. Panics if the builder carries any layout hints.
func BuildPadded[T any](b *Builder) *SPSC[T] {
	if b.opts.unpadded || b.opts.prefetch || b.opts.exact {
		panic("spscq: BuildPadded requires no layout hints")
	}
	return NewSPSC[T](b.opts.capacity)
}

// BuildCompact creates an unpadded queue with compile-time type safety.
// Panics unless the builder is configured with Unpadded() only.
func BuildCompact[T any](b *Builder) *SPSCCompact[T] {
	if !b.opts.unpadded || b.opts.prefetch || b.opts.exact {
		panic("spscq: BuildCompact requires Unpadded() only")
	}
	return NewSPSCCompact[T](b.opts.capacity)
}

// BuildPrefetch creates a padded prefetching queue with compile-time
// type safety. Panics unless the builder is configured with Prefetch()
// only.
func BuildPrefetch[T any](b *Builder) *SPSCPrefetch[T] {
	if b.opts.unpadded || !b.opts.prefetch || b.opts.exact {
		panic("spscq: BuildPrefetch requires Prefetch() only")
	}
	return NewSPSCPrefetch[T](b.opts.capacity)
}

// BuildCompactPrefetch creates an unpadded prefetching queue with
// compile-time type safety. Panics unless the builder is configured
// with Unpadded() and Prefetch().
func BuildCompactPrefetch[T any](b *Builder) *SPSCCompactPrefetch[T] {
	if !b.opts.unpadded || !b.opts.prefetch || b.opts.exact {
		panic("spscq: BuildCompactPrefetch requires Unpadded() and Prefetch()")
	}
	return NewSPSCCompactPrefetch[T](b.opts.capacity)
}

// BuildExact creates an exact-capacity queue with compile-time type
// safety. Panics unless the builder is configured with ExactCapacity().
func BuildExact[T any](b *Builder) *SPSCExact[T] {
	if !b.opts.exact {
		panic("spscq: BuildExact requires ExactCapacity()")
	}
	return NewSPSCExact[T](b.opts.capacity)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
