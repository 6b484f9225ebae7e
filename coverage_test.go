// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dgunther2001/spscq"
)

// TestConstructorPanics verifies every constructor rejects capacities
// below the minimum of 2.
func TestConstructorPanics(t *testing.T) {
	ctors := map[string]func(){
		"NewSPSC":                func() { spscq.NewSPSC[int](1) },
		"NewSPSCCompact":         func() { spscq.NewSPSCCompact[int](1) },
		"NewSPSCPrefetch":        func() { spscq.NewSPSCPrefetch[int](1) },
		"NewSPSCCompactPrefetch": func() { spscq.NewSPSCCompactPrefetch[int](0) },
		"NewSPSCExact":           func() { spscq.NewSPSCExact[int](1) },
		"New":                    func() { spscq.New(1) },
	}

	for name, f := range ctors {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s(<2): expected panic", name)
				}
			}()
			f()
		})
	}
}

// TestErrorClassification verifies the semantic error helpers.
func TestErrorClassification(t *testing.T) {
	q := spscq.NewSPSC[int](2)

	_, err := q.Dequeue()
	if !errors.Is(err, spscq.ErrWouldBlock) {
		t.Fatalf("Dequeue on empty: got %v, want ErrWouldBlock", err)
	}
	if !spscq.IsWouldBlock(err) {
		t.Fatal("IsWouldBlock(ErrWouldBlock): got false")
	}
	if !spscq.IsSemantic(err) {
		t.Fatal("IsSemantic(ErrWouldBlock): got false")
	}
	if !spscq.IsNonFailure(err) {
		t.Fatal("IsNonFailure(ErrWouldBlock): got false")
	}
	if !spscq.IsNonFailure(nil) {
		t.Fatal("IsNonFailure(nil): got false")
	}

	wrapped := fmt.Errorf("enqueue tick: %w", err)
	if !spscq.IsWouldBlock(wrapped) {
		t.Fatal("IsWouldBlock(wrapped): got false")
	}

	other := errors.New("boom")
	if spscq.IsWouldBlock(other) {
		t.Fatal("IsWouldBlock(other): got true")
	}
}

// TestProducerConsumerSplit verifies a queue satisfies the split role
// interfaces so each goroutine can be handed only its half.
func TestProducerConsumerSplit(t *testing.T) {
	q := spscq.NewSPSC[string](4)
	var p spscq.Producer[string] = q
	var c spscq.Consumer[string] = q

	v := "payload"
	if err := p.Enqueue(&v); err != nil {
		t.Fatalf("Enqueue via Producer: %v", err)
	}
	got, err := c.Dequeue()
	if err != nil || got != "payload" {
		t.Fatalf("Dequeue via Consumer: got (%q, %v)", got, err)
	}
}

// TestStructPayload verifies multi-word values move through intact.
func TestStructPayload(t *testing.T) {
	type sample struct {
		Seq   uint64
		Price float64
		Tag   [8]byte
	}

	q := spscq.NewSPSC[sample](8)
	in := sample{Seq: 9, Price: 101.25, Tag: [8]byte{'x', 'y'}}
	if err := q.Enqueue(&in); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	// The queue holds a copy; mutating the original must not leak in.
	in.Seq = 0

	out, err := q.Dequeue()
	if err != nil {
		t.Fatalf("Dequeue: %v", err)
	}
	if out.Seq != 9 || out.Price != 101.25 || out.Tag[0] != 'x' {
		t.Fatalf("Dequeue: got %+v", out)
	}
}
