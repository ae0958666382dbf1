// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/orrery/base/randx"
	"cogentcore.org/orrery/math32"
)

// StarField is an immutable cloud of background stars, with a
// position and an RGB color for each star.
type StarField struct {
	Positions []math32.Vector3
	Colors    []math32.Vector3
}

// Len returns the number of stars.
func (sf *StarField) Len() int {
	return len(sf.Positions)
}

// NewStarField returns count stars spread uniformly over a cube of the
// given edge length centered on the origin, each with a pastel color
// whose channels are in [0.8, 1]. A count <= 0 returns an empty field.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func NewStarField(count int, spread float32, randOpt ...randx.Rand) (*StarField, error) {
	if err := CheckPositive("star field spread", spread); err != nil {
		return nil, err
	}
	sf := &StarField{}
	if count <= 0 {
		return sf, nil
	}
	sf.Positions = make([]math32.Vector3, count)
	sf.Colors = make([]math32.Vector3, count)
	for i := range count {
		sf.Positions[i] = math32.Vec3(
			randx.UniformMeanRange(0, spread, randOpt...),
			randx.UniformMeanRange(0, spread, randOpt...),
			randx.UniformMeanRange(0, spread, randOpt...))
		sf.Colors[i] = math32.Vec3(
			randx.Uniform(0.8, 1, randOpt...),
			randx.Uniform(0.8, 1, randOpt...),
			randx.Uniform(0.8, 1, randOpt...))
	}
	return sf, nil
}
