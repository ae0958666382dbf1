// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !debug

package orrery

// debugChecks is whether to check every frame rotation after each step.
const debugChecks = false
