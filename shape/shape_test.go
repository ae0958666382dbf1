// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"cogentcore.org/orrery/base/randx"
	"cogentcore.org/orrery/base/tolassert"
	"cogentcore.org/orrery/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func TestOrbitRing(t *testing.T) {
	for _, radius := range []float32{0.5, 6, 70} {
		for _, segs := range []int{1, 3, 64, OrbitRingSegments} {
			pts, err := OrbitRing(radius, segs)
			require.NoError(t, err)
			require.Len(t, pts, segs+1)
			for _, p := range pts {
				tolassert.EqualTol(t, radius, p.Length(), radius*tol)
				assert.Equal(t, float32(0), p.Y)
			}
			assert.Equal(t, pts[0], pts[segs])
		}
	}

	pts, err := OrbitRing(10, 0)
	assert.NoError(t, err)
	assert.Empty(t, pts)

	_, err = OrbitRing(0, 100)
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "orbit radius", ce.Field)
}

func TestAnnulus(t *testing.T) {
	ms, err := Annulus(2.4, 3.2, AnnulusSegments)
	require.NoError(t, err)
	assert.Len(t, ms.Vertex, 2*(AnnulusSegments+1))
	assert.Len(t, ms.Index, 6*AnnulusSegments)
	assert.Equal(t, 2*AnnulusSegments, ms.NumTriangles())
	for i, v := range ms.Vertex {
		assert.Equal(t, float32(0), v.Z)
		assert.Equal(t, math32.Vec3(0, 0, 1), ms.Normal[i])
		r := v.Length()
		assert.True(t, r > 2.4-tol && r < 3.2+tol, "radius %g out of range", r)
	}
	for _, idx := range ms.Index {
		assert.Less(t, int(idx), len(ms.Vertex))
	}
	tolassert.EqualTol(t, 6.4, ms.BBox.Size().X, tol)

	_, err = Annulus(3.2, 2.4, 64)
	assert.Error(t, err)
	_, err = Annulus(-1, 2, 64)
	assert.Error(t, err)
	_, err = Annulus(1, 2, 2)
	assert.Error(t, err)
}

func TestSphere(t *testing.T) {
	ms, err := Sphere(5, 16, 8)
	require.NoError(t, err)
	assert.Len(t, ms.Vertex, 17*9)
	for i, v := range ms.Vertex {
		tolassert.EqualTol(t, 5, v.Length(), tol)
		tolassert.EqualTol(t, 1, ms.Normal[i].Length(), tol)
	}
	// poles have one triangle per segment, other rows two
	assert.Equal(t, 16*(2*8-2), ms.NumTriangles())
	sz := ms.BBox.Size()
	tolassert.EqualTol(t, 10, sz.Y, tol)

	_, err = Sphere(0, 16, 8)
	assert.Error(t, err)
	_, err = Sphere(1, 2, 8)
	assert.Error(t, err)
}

func TestStarField(t *testing.T) {
	rnd := randx.NewSysRand(1)
	const spread = 1000
	sf, err := NewStarField(4000, spread, rnd)
	require.NoError(t, err)
	require.Equal(t, 4000, sf.Len())
	require.Len(t, sf.Colors, 4000)
	for i, p := range sf.Positions {
		for _, c := range []float32{p.X, p.Y, p.Z} {
			assert.True(t, c >= -spread/2 && c <= spread/2)
		}
		col := sf.Colors[i]
		for _, c := range []float32{col.X, col.Y, col.Z} {
			assert.True(t, c >= 0.8 && c <= 1)
		}
	}

	sf, err = NewStarField(-3, spread, rnd)
	require.NoError(t, err)
	assert.Equal(t, 0, sf.Len())

	_, err = NewStarField(10, 0, rnd)
	assert.Error(t, err)
}

func TestAsteroidField(t *testing.T) {
	rnd := randx.NewSysRand(2)
	as, err := AsteroidField(15, 16.5, 2000, rnd)
	require.NoError(t, err)
	require.Len(t, as, 2000)
	for _, a := range as {
		p := a.Pos()
		r := math32.Vec2(p.X, p.Z).Length()
		assert.True(t, r >= 15-tol && r <= 16.5+tol, "planar radius %g", r)
		assert.True(t, p.Y >= -AsteroidHeight && p.Y <= AsteroidHeight)
		assert.True(t, a.Size >= 0 && a.Size <= AsteroidMaxSize)
		assert.True(t, a.Angle >= 0 && a.Angle < math32.TwoPi)
	}

	as, err = AsteroidField(15, 16.5, 0, rnd)
	require.NoError(t, err)
	assert.Empty(t, as)

	_, err = AsteroidField(16.5, 15, 10, rnd)
	assert.Error(t, err)
}

func TestSeededGeneratorsRepeat(t *testing.T) {
	a, err := AsteroidField(1, 2, 50, randx.NewSysRand(7))
	require.NoError(t, err)
	b, err := AsteroidField(1, 2, 50, randx.NewSysRand(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
