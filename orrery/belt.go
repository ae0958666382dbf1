// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orrery

import (
	"cogentcore.org/orrery/base/randx"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/shape"
	"cogentcore.org/orrery/xyz"
)

// AsteroidMesh is the name of the unit sphere mesh shared by all asteroids.
const AsteroidMesh = "asteroid"

// Belt is an asteroid belt: a tilted group of asteroids that each
// keep a fixed position within the group. Each asteroid spins on its
// own, and the whole group turns about Y.
type Belt struct {

	// Config is the configuration the belt was built from.
	Config BeltConfig

	// Group is the tilted frame holding all of the asteroids.
	Group xyz.NodeID

	// Asteroids are the asteroid nodes, in the order of Field.
	Asteroids []xyz.NodeID

	// Field are the generated asteroid descriptors.
	Field []shape.Asteroid

	// angle is the bulk rotation and spins the X and Y spin
	// of each asteroid, accumulated at full precision.
	angle float64
	spins [][2]float64

	sc *xyz.Scene
}

// NewBelt adds an asteroid belt under the given parent frame.
// A belt with no asteroids is valid and stays empty.
func NewBelt(sc *xyz.Scene, parent xyz.NodeID, cfg *BeltConfig, rnd randx.Rand) (*Belt, error) {
	field, err := shape.AsteroidField(cfg.Inner, cfg.Outer, cfg.Count, randOpt(rnd)...)
	if err != nil {
		return nil, err
	}
	bt := &Belt{Config: *cfg, Field: field, sc: sc}
	bt.Group = sc.NewGroup(parent, "asteroid belt")
	sc.Pose(bt.Group).Rot.X = cfg.Tilt
	if len(field) == 0 {
		return bt, nil
	}

	segs := cfg.Segments
	if segs == 0 {
		segs = 6
	}
	geom, err := shape.Sphere(1, segs, segs)
	if err != nil {
		return nil, err
	}
	sc.SetMesh(xyz.NewTriMesh(AsteroidMesh, geom))
	clr := hexColor(cfg.Color)
	bt.Asteroids = make([]xyz.NodeID, len(field))
	bt.spins = make([][2]float64, len(field))
	for i := range field {
		as := &field[i]
		id := sc.NewSolid(bt.Group, "asteroid", AsteroidMesh)
		ps := sc.Pose(id)
		ps.Pos = as.Pos()
		ps.Scale = math32.Vector3Scalar(as.Size)
		sc.Node(id).Material.SetColor(clr)
		bt.Asteroids[i] = id
	}
	return bt, nil
}

// Len returns the number of asteroids.
func (bt *Belt) Len() int {
	return len(bt.Asteroids)
}

// Angle returns the current bulk rotation of the belt about Y, in radians.
func (bt *Belt) Angle() float64 {
	return bt.angle
}

// Step spins each asteroid about X and Y by a fresh random amount up
// to [BeltConfig.AsteroidSpin], and turns the whole belt by
// [BeltConfig.Spin]. It does nothing for an empty belt.
func (bt *Belt) Step(rnd randx.Rand) {
	if len(bt.Asteroids) == 0 {
		return
	}
	spin := float64(bt.Config.AsteroidSpin)
	for i, id := range bt.Asteroids {
		sp := &bt.spins[i]
		sp[0] = math32.WrapAngle(sp[0] + spin*rnd.Float64())
		sp[1] = math32.WrapAngle(sp[1] + spin*rnd.Float64())
		ps := bt.sc.Pose(id)
		ps.Rot.X, ps.Rot.Y = float32(sp[0]), float32(sp[1])
	}
	bt.angle = math32.WrapAngle(bt.angle + float64(bt.Config.Spin))
	bt.sc.Pose(bt.Group).Rot.Y = float32(bt.angle)
}

// randOpt returns rnd as an optional Rand argument list,
// which is empty to use the global source if rnd is nil.
func randOpt(rnd randx.Rand) []randx.Rand {
	if rnd == nil {
		return nil
	}
	return []randx.Rand{rnd}
}
