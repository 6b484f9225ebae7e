// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq_test

import (
	"testing"

	"github.com/valyala/fastrand"
)

// TestVariantConsistency drives every variant through one randomized
// op script and requires identical outcomes at each step. The variants
// differ only in layout and hints, so any divergence is a bug.
func TestVariantConsistency(t *testing.T) {
	const capacity = 8
	const ops = 10000

	qs := variants(capacity)
	names := make([]string, 0, len(qs))
	for name := range qs {
		names = append(names, name)
	}

	rng := fastrand.RNG{}
	rng.Seed(1)

	for op := range ops {
		if rng.Uint32n(2) == 0 {
			v := op
			ref := qs[names[0]].Enqueue(&v)
			for _, name := range names[1:] {
				if err := qs[name].Enqueue(&v); (err == nil) != (ref == nil) {
					t.Fatalf("op %d: Enqueue diverged: %s got %v, %s got %v",
						op, names[0], ref, name, err)
				}
			}
		} else {
			refVal, refErr := qs[names[0]].Dequeue()
			for _, name := range names[1:] {
				val, err := qs[name].Dequeue()
				if (err == nil) != (refErr == nil) || val != refVal {
					t.Fatalf("op %d: Dequeue diverged: %s got (%d, %v), %s got (%d, %v)",
						op, names[0], refVal, refErr, name, val, err)
				}
			}
		}
	}
}
