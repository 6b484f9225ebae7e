// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64 || arm64

package asm

import "unsafe"

// PrefetchRead hints that the cache line holding addr will be read
// soon. Maps to PREFETCHT0 on amd64 and PRFM PLDL1KEEP on arm64.
//
//go:noescape
func PrefetchRead(addr unsafe.Pointer)

// PrefetchWrite hints that the cache line holding addr will be written
// soon. Maps to PREFETCHW on amd64 and PRFM PSTL1KEEP on arm64.
//
//go:noescape
func PrefetchWrite(addr unsafe.Pointer)
