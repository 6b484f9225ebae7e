// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq_test

import (
	"errors"
	"testing"

	"github.com/eapache/queue"
	"github.com/valyala/fastrand"

	"github.com/dgunther2001/spscq"
)

// TestModel checks every variant against an unbounded FIFO oracle under
// a randomized op stream. Enqueue must succeed exactly while the oracle
// holds fewer than Cap()-1 elements; every dequeued value must match
// the oracle's head. Runs single-goroutine, so it is exercised under
// the race detector too.
func TestModel(t *testing.T) {
	const capacity = 16
	const ops = 100000

	for name, q := range variants(capacity) {
		t.Run(name, func(t *testing.T) {
			oracle := queue.New()
			usable := q.Cap() - 1

			rng := fastrand.RNG{}
			rng.Seed(7)

			for op := range ops {
				// Bias toward enqueue so the full boundary gets hit.
				if rng.Uint32n(5) < 3 {
					v := op
					err := q.Enqueue(&v)
					switch {
					case err == nil:
						if oracle.Length() >= usable {
							t.Fatalf("op %d: Enqueue succeeded with %d elements held, want max %d",
								op, oracle.Length(), usable)
						}
						oracle.Add(v)
					case errors.Is(err, spscq.ErrWouldBlock):
						if oracle.Length() != usable {
							t.Fatalf("op %d: Enqueue failed with %d elements held, want %d (full)",
								op, oracle.Length(), usable)
						}
					default:
						t.Fatalf("op %d: Enqueue: %v", op, err)
					}
				} else {
					v, err := q.Dequeue()
					switch {
					case err == nil:
						if oracle.Length() == 0 {
							t.Fatalf("op %d: Dequeue succeeded on empty queue: got %d", op, v)
						}
						want := oracle.Remove().(int)
						if v != want {
							t.Fatalf("op %d: Dequeue: got %d, want %d", op, v, want)
						}
					case errors.Is(err, spscq.ErrWouldBlock):
						if oracle.Length() != 0 {
							t.Fatalf("op %d: Dequeue failed with %d elements held", op, oracle.Length())
						}
					default:
						t.Fatalf("op %d: Dequeue: %v", op, err)
					}
				}
			}

			// Drain and compare the tail of the model.
			for oracle.Length() > 0 {
				v, err := q.Dequeue()
				if err != nil {
					t.Fatalf("drain: Dequeue: %v", err)
				}
				want := oracle.Remove().(int)
				if v != want {
					t.Fatalf("drain: got %d, want %d", v, want)
				}
			}
			if _, err := q.Dequeue(); !errors.Is(err, spscq.ErrWouldBlock) {
				t.Fatalf("drain: Dequeue on empty: got %v, want ErrWouldBlock", err)
			}
		})
	}
}
