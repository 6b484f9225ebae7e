// Copyright 2026 The spscq Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package affinity

import "errors"

// setAffinity is a stub for platforms without thread affinity support.
func setAffinity(cpu int) error {
	return errors.New("affinity: not supported on this platform")
}
