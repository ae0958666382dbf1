// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"time"
)

// NewSeed returns a new random seed based on the current time.
func NewSeed() int64 {
	return time.Now().UnixNano()
}

// NewSeededRand returns a [SysRand] with its own source, seeded with
// seed, or with [NewSeed] if seed is 0. The seed actually used is
// also returned so that a run can be reproduced.
func NewSeededRand(seed int64) (*SysRand, int64) {
	if seed == 0 {
		seed = NewSeed()
	}
	return NewSysRand(seed), seed
}
