// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package asm provides architecture-specific helpers for hot paths.
//
// PrefetchRead and PrefetchWrite hint the memory subsystem to begin
// loading the cache line holding addr before it is needed. The hints
// have no architectural effect: issuing one on any address, valid or
// not, never faults and never changes program behavior. On
// architectures without prefetch instructions both compile to empty
// functions.
package asm
