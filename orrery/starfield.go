// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orrery

import (
	"cogentcore.org/orrery/base/randx"
	"cogentcore.org/orrery/shape"
	"cogentcore.org/orrery/xyz"
)

// StarFieldMesh is the name of the point mesh of the background stars.
const StarFieldMesh = "stars"

// StarField is the background star field, generated once and never updated.
type StarField struct {

	// Node is the points node of the field.
	Node xyz.NodeID

	// Field holds the star positions and colors.
	Field *shape.StarField
}

// NewStarField adds a background star field under the given parent frame.
func NewStarField(sc *xyz.Scene, parent xyz.NodeID, cfg *StarFieldConfig, rnd randx.Rand) (*StarField, error) {
	field, err := shape.NewStarField(cfg.Count, cfg.Spread, randOpt(rnd)...)
	if err != nil {
		return nil, err
	}
	sc.SetMesh(xyz.NewPointMesh(StarFieldMesh, field.Positions, field.Colors))
	sf := &StarField{Field: field}
	sf.Node = sc.NewPoints(parent, "star field", StarFieldMesh)
	mt := &sc.Node(sf.Node).Material
	mt.SetTransparent(cfg.Opacity)
	mt.VertexColor = true
	mt.PointSize = cfg.Size
	return sf, nil
}

// Len returns the number of stars.
func (sf *StarField) Len() int {
	return sf.Field.Len()
}
