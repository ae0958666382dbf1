// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orrery

import (
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/render"
	"cogentcore.org/orrery/shape"
	"cogentcore.org/orrery/xyz"
)

// Star is the central star, which spins in place at the origin of its parent.
type Star struct {

	// Config is the configuration the star was built from.
	Config StarConfig

	// Mesh is the solid of the star.
	Mesh xyz.NodeID

	// Label is the label above the star, or [xyz.NoNode].
	Label xyz.NodeID

	angle float64
	sc    *xyz.Scene
}

// NewStar adds the star under the given parent frame.
func NewStar(sc *xyz.Scene, parent xyz.NodeID, cfg *StarConfig) (*Star, error) {
	geom, err := shape.Sphere(cfg.Size, shape.SphereSegments, shape.SphereSegments)
	if err != nil {
		return nil, err
	}
	st := &Star{Config: *cfg, Label: xyz.NoNode, sc: sc}
	sc.SetMesh(xyz.NewTriMesh(cfg.Name, geom))
	st.Mesh = sc.NewSolid(parent, cfg.Name, cfg.Name)
	sc.Node(st.Mesh).Material.SetTexture(render.TextureKey(cfg.Name, cfg.Texture))
	return st, nil
}

// AddLabel adds the star label to the given frame, which is not the
// star mesh so that the label does not spin with the star.
func (st *Star) AddLabel(parent xyz.NodeID) xyz.NodeID {
	st.Label = st.sc.NewLabel(parent, st.Config.Name+" label", st.Config.Name, st.Config.LabelSize)
	st.sc.Pose(st.Label).Pos.Set(0, st.Config.Size+st.Config.LabelMargin, 0)
	return st.Label
}

// Angle returns the current self rotation of the star about Y, in radians.
func (st *Star) Angle() float64 {
	return st.angle
}

// Step advances the self rotation by [StarConfig.Spin].
func (st *Star) Step() {
	st.angle = math32.WrapAngle(st.angle + float64(st.Config.Spin))
	st.sc.Pose(st.Mesh).Rot.Y = float32(st.angle)
}
