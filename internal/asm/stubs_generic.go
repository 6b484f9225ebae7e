// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64

package asm

import "unsafe"

// PrefetchRead is a no-op on architectures without prefetch support.
func PrefetchRead(addr unsafe.Pointer) {}

// PrefetchWrite is a no-op on architectures without prefetch support.
func PrefetchWrite(addr unsafe.Pointer) {}
