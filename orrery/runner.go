// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orrery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/orrery/render"
)

// Runner is the host frame loop: it calls [System.Frame] once per tick.
// The next frame is only started after the previous one has been drawn,
// and ticks that are missed while drawing are dropped.
type Runner struct {

	// System is the system to advance.
	System *System

	// Bridge draws each frame.
	Bridge render.Bridge

	// FPS is the number of frames per second, or 0 to run unpaced.
	FPS float32

	// Frames is the number of frames to run, or 0 to run until the
	// context is cancelled.
	Frames int

	// OnFrame, if set, is called after each frame with its number, starting at 1.
	OnFrame func(frame int)
}

// NewRunner returns a new Runner for the given system and bridge,
// paced by the FPS and Frames of the system configuration.
func NewRunner(sys *System, br render.Bridge) *Runner {
	return &Runner{System: sys, Bridge: br, FPS: sys.Config.FPS, Frames: sys.Config.Frames}
}

// Run runs frames until the context is cancelled, the frame limit is
// reached, or a frame cannot be drawn. It returns nil when stopped by
// the context or the frame limit.
func (rn *Runner) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if rn.FPS > 0 {
		tk := time.NewTicker(time.Duration(float64(time.Second) / float64(rn.FPS)))
		defer tk.Stop()
		tick = tk.C
	}
	start := time.Now()
	frame := 0
	defer func() {
		slog.Info("orrery: stopped", "frames", frame, "elapsed", time.Since(start).Round(time.Millisecond))
	}()
	for rn.Frames <= 0 || frame < rn.Frames {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}
		if err := rn.System.Frame(rn.Bridge); err != nil {
			return fmt.Errorf("frame %d: %w", frame+1, err)
		}
		frame++
		if rn.OnFrame != nil {
			rn.OnFrame(frame)
		}
	}
	return nil
}
