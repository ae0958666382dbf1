// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orrery

import (
	"fmt"
	"log/slog"

	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/render"
)

// Step advances the system by one step: the star spins, every body
// moves along its orbit by its speed, the asteroids spin and the belt
// turns, and every satellite moves along its orbit by its speed.
//
// Each step advances every angle by a fixed amount, not by an amount
// scaled by elapsed time, so the apparent speed of the system depends
// on how often Step is called.
func (sys *System) Step() {
	sys.star.Step()
	for _, bd := range sys.bodies {
		bd.Advance(bd.Config.Speed)
	}
	sys.belt.Step(sys.rnd)
	for _, st := range sys.satellites {
		st.Advance(st.Config.Speed)
	}
	sys.steps++
	if debugChecks {
		sys.checkAngles()
	}
}

// Frame takes one [System.Step] and then draws the result with the given bridge.
func (sys *System) Frame(br render.Bridge) error {
	sys.Step()
	slog.Debug("orrery: frame", "step", sys.steps)
	return br.Render(sys.scene, sys.Camera())
}

// checkAngles panics if any frame rotation is not finite, which can
// only come from a bad speed getting past validation.
func (sys *System) checkAngles() {
	for i := range sys.scene.Nodes {
		nd := &sys.scene.Nodes[i]
		r := nd.Pose.Rot
		if !math32.IsFinite(r.X) || !math32.IsFinite(r.Y) || !math32.IsFinite(r.Z) {
			panic(fmt.Sprintf("orrery: node %d %q has rotation %v after step %d", i, nd.Name, r, sys.steps))
		}
	}
}
