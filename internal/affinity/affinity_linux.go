// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// setAffinity binds the calling thread to the given logical CPU.
func setAffinity(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	// Pid 0 targets the calling thread.
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity(cpu=%d): %w", cpu, err)
	}
	return nil
}
