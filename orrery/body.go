// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orrery

import (
	"image/color"

	"cogentcore.org/orrery/base/randx"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/render"
	"cogentcore.org/orrery/shape"
	"cogentcore.org/orrery/xyz"
)

// Body is a body moving on a circular orbit, as a chain of frames:
// the orbit plane is tilted within its parent, the pivot turns within
// the orbit plane, and the mesh sits at a fixed offset within the pivot.
// The body is only ever moved by turning its pivot.
type Body struct {

	// Config is the configuration the body was built from.
	Config BodyConfig

	// OrbitPlane is the tilted frame of the orbit, which holds the
	// pivot and the orbit ring.
	OrbitPlane xyz.NodeID

	// Pivot is the frame that turns about Y to move the body.
	Pivot xyz.NodeID

	// Mesh is the solid of the body itself. Satellites, rings and
	// labels are attached to it.
	Mesh xyz.NodeID

	// OrbitRing is the polyline showing the orbit, or [xyz.NoNode].
	OrbitRing xyz.NodeID

	// Label is the billboard label above the body, or [xyz.NoNode].
	Label xyz.NodeID

	// Phase is the initial angle of the body along its orbit, in radians.
	Phase float32

	// Satellites are the bodies orbiting this one, in order.
	Satellites []*Body

	// Rings are the rings attached to this body.
	Rings []xyz.NodeID

	// angle is the accumulated pivot rotation, which is only
	// rounded to float32 when it is written into the pivot pose.
	angle float64

	sc *xyz.Scene
}

// NewBody adds a body orbiting the origin of the given parent frame,
// drawing its initial phase once from the given Rand (or the global
// source if nil), and adds a ring showing its orbit.
func NewBody(sc *xyz.Scene, parent xyz.NodeID, cfg *BodyConfig, rnd randx.Rand) (*Body, error) {
	if err := checkBody(cfg); err != nil {
		return nil, err
	}
	bd, err := newBody(sc, parent, cfg, randAngle(rnd))
	if err != nil {
		return nil, err
	}
	if err := bd.addOrbitRing(); err != nil {
		return nil, err
	}
	return bd, nil
}

// randAngle returns a random angle in [0, 2π) from rnd,
// or from the global source if rnd is nil.
func randAngle(rnd randx.Rand) float32 {
	if rnd == nil {
		return randx.Angle()
	}
	return randx.Angle(rnd)
}

func checkBody(cfg *BodyConfig) error {
	if err := shape.CheckPositive("orbit radius", cfg.OrbitRadius); err != nil {
		return err
	}
	if err := shape.CheckPositive("size", cfg.Size); err != nil {
		return err
	}
	return checkMotion(cfg)
}

// checkMotion returns an error if the speed or tilt is not finite.
func checkMotion(cfg *BodyConfig) error {
	if err := checkFinite("speed", cfg.Speed); err != nil {
		return err
	}
	return checkFinite("tilt", cfg.Tilt)
}

// newBody builds the frame chain of a body at the given phase.
func newBody(sc *xyz.Scene, parent xyz.NodeID, cfg *BodyConfig, phase float32) (*Body, error) {
	segs := cfg.Segments
	if segs == 0 {
		segs = shape.SphereSegments
	}
	geom, err := shape.Sphere(cfg.Size, segs, segs)
	if err != nil {
		return nil, err
	}
	bd := &Body{Config: *cfg, Phase: phase, OrbitRing: xyz.NoNode, Label: xyz.NoNode, sc: sc}
	sc.SetMesh(xyz.NewTriMesh(cfg.Name, geom))

	bd.OrbitPlane = sc.NewGroup(parent, cfg.Name+" orbit plane")
	sc.Pose(bd.OrbitPlane).Rot.X = cfg.Tilt
	bd.Pivot = sc.NewGroup(bd.OrbitPlane, cfg.Name+" pivot")
	bd.Mesh = sc.NewSolid(bd.Pivot, cfg.Name, cfg.Name)
	sc.Pose(bd.Mesh).Pos = math32.Vec3(math32.Cos(phase)*cfg.OrbitRadius, 0, math32.Sin(phase)*cfg.OrbitRadius)
	sc.Node(bd.Mesh).Material.SetTexture(render.TextureKey(cfg.Name, cfg.Texture))
	return bd, nil
}

// addOrbitRing adds the orbit ring to the orbit plane, so that it
// stays put while the body moves around it.
func (bd *Body) addOrbitRing() error {
	pts, err := shape.OrbitRing(bd.Config.OrbitRadius, shape.OrbitRingSegments)
	if err != nil {
		return err
	}
	name := bd.Config.Name + " orbit"
	bd.sc.SetMesh(xyz.NewLineMesh(name, pts))
	bd.OrbitRing = bd.sc.NewLines(bd.OrbitPlane, name, name)
	bd.sc.Node(bd.OrbitRing).Material.SetColor(color.RGBA{255, 255, 255, 255})
	return nil
}

// Name returns the name of the body.
func (bd *Body) Name() string {
	return bd.Config.Name
}

// Angle returns the current rotation of the pivot about Y, in radians.
func (bd *Body) Angle() float64 {
	return bd.angle
}

// SetAngle sets the rotation of the pivot about Y, in radians.
func (bd *Body) SetAngle(angle float64) {
	bd.angle = math32.WrapAngle(angle)
	bd.sc.Pose(bd.Pivot).Rot.Y = float32(bd.angle)
}

// Advance turns the pivot by the given angle in radians, keeping the
// accumulated angle in [0, 2π).
func (bd *Body) Advance(delta float32) {
	bd.SetAngle(bd.angle + float64(delta))
}

// WorldPos returns the current world position of the body center.
func (bd *Body) WorldPos() math32.Vector3 {
	return bd.sc.WorldPos(bd.Mesh)
}

// AddLabel adds a label with the given text above the body, at the
// given margin above its surface, with the given font size in pixels.
func (bd *Body) AddLabel(text string, margin, size float32) xyz.NodeID {
	bd.Label = bd.sc.NewLabel(bd.Mesh, bd.Config.Name+" label", text, size)
	bd.sc.Pose(bd.Label).Pos.Set(0, bd.Config.Size+margin, 0)
	return bd.Label
}

// AttachSatellite adds a satellite orbiting the given host body. The
// satellite's orbit plane is a child of the host mesh, so it follows
// the host. The first satellite of a host starts at phase 0, on the
// +X side of the host; any further satellite draws its own phase from
// the given Rand (or the global source if nil) so they do not overlap.
func AttachSatellite(sc *xyz.Scene, host *Body, cfg *SatelliteConfig, rnd randx.Rand) (*Body, error) {
	bc := cfg.Body()
	if err := shape.CheckPositive("distance", bc.OrbitRadius); err != nil {
		return nil, err
	}
	if err := shape.CheckPositive("size", bc.Size); err != nil {
		return nil, err
	}
	if err := checkMotion(&bc); err != nil {
		return nil, err
	}
	var phase float32
	if len(host.Satellites) > 0 {
		phase = randAngle(rnd)
	}
	st, err := newBody(sc, host.Mesh, &bc, phase)
	if err != nil {
		return nil, err
	}
	host.Satellites = append(host.Satellites, st)
	return st, nil
}

// AttachRing adds a flat ring around the given body, lying in the
// body's equatorial plane, offset vertically by cfg.Offset.
func AttachRing(sc *xyz.Scene, body *Body, cfg *RingConfig) (xyz.NodeID, error) {
	segs := cfg.Segments
	if segs == 0 {
		segs = shape.AnnulusSegments
	}
	geom, err := shape.Annulus(cfg.Inner, cfg.Outer, segs)
	if err != nil {
		return xyz.NoNode, err
	}
	name := body.Config.Name + " ring"
	sc.SetMesh(xyz.NewTriMesh(name, geom))
	rg := sc.NewSolid(body.Mesh, name, name)
	ps := sc.Pose(rg)
	ps.Rot.X = math32.Pi / 2
	ps.Pos.Y = cfg.Offset
	mt := &sc.Node(rg).Material
	mt.SetTexture(render.TextureKey(name, cfg.Texture)).SetTransparent(cfg.Opacity)
	mt.DoubleSide = true
	body.Rings = append(body.Rings, rg)
	return rg, nil
}
