// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/orrery/base/randx"
	"cogentcore.org/orrery/math32"
)

const (
	// AsteroidHeight is the maximum vertical offset of an asteroid
	// from the belt plane, in either direction.
	AsteroidHeight = 0.2

	// AsteroidMaxSize is the maximum asteroid radius.
	AsteroidMaxSize = 0.1
)

// Asteroid describes one asteroid placed on a belt annulus.
type Asteroid struct {

	// Angle around the belt, in radians.
	Angle float32

	// Radius is the planar distance from the belt center.
	Radius float32

	// Height is the vertical offset from the belt plane.
	Height float32

	// Size is the visual radius.
	Size float32
}

// Pos returns the local position of the asteroid in the belt frame.
func (a *Asteroid) Pos() math32.Vector3 {
	return math32.Vec3(a.Radius*math32.Cos(a.Angle), a.Height, a.Radius*math32.Sin(a.Angle))
}

// AsteroidField returns count independent asteroids on the annulus
// between inner and outer radius. A count <= 0 returns no asteroids.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func AsteroidField(inner, outer float32, count int, randOpt ...randx.Rand) ([]Asteroid, error) {
	if err := checkRadii(inner, outer); err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, nil
	}
	as := make([]Asteroid, count)
	for i := range as {
		as[i] = Asteroid{
			Angle:  randx.Angle(randOpt...),
			Radius: randx.Uniform(inner, outer, randOpt...),
			Height: randx.UniformMeanRange(0, 2*AsteroidHeight, randOpt...),
			Size:   randx.Uniform(0, AsteroidMaxSize, randOpt...),
		}
	}
	return as, nil
}
