// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package affinity pins the calling OS thread to a logical CPU.
//
// Used by the throughput benchmarks to place the producer and consumer
// on distinct cores so cache-line traffic between them is measured
// rather than scheduler noise. Platform-specific implementations live
// in separate files guarded by build tags.
package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and binds that
// thread to the given logical CPU. On unsupported platforms it still
// locks the thread but reports an error for the binding.
//
// Callers should runtime.UnlockOSThread when done.
func Pin(cpu int) error {
	runtime.LockOSThread()
	return setAffinity(cpu)
}
