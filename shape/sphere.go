// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/orrery/math32"

// SphereSegments is the default number of segments in each
// dimension of a body sphere.
const SphereSegments = 32

// Sphere returns a UV sphere mesh with the given radius and number of
// segments around the width and along the height. Angle starts at
// -X and elevation runs from the top (+Y) to the bottom.
func Sphere(radius float32, widthSegs, heightSegs int) (*Mesh, error) {
	if err := CheckPositive("sphere radius", radius); err != nil {
		return nil, err
	}
	if err := checkSegments("sphere width segments", widthSegs); err != nil {
		return nil, err
	}
	if err := checkSegments("sphere height segments", heightSegs); err != nil {
		return nil, err
	}
	ms := newMesh((widthSegs + 1) * (heightSegs + 1))
	vtxs := make([][]uint32, heightSegs+1)
	for y := 0; y <= heightSegs; y++ {
		v := float32(y) / float32(heightSegs)
		elev := v * math32.Pi
		row := make([]uint32, widthSegs+1)
		for x := 0; x <= widthSegs; x++ {
			u := float32(x) / float32(widthSegs)
			ang := u * math32.TwoPi
			pt := math32.Vec3(
				-radius*math32.Cos(ang)*math32.Sin(elev),
				radius*math32.Cos(elev),
				radius*math32.Sin(ang)*math32.Sin(elev))
			row[x] = ms.addVertex(pt, pt.Normal(), math32.Vec2(u, v))
		}
		vtxs[y] = row
	}

	for y := 0; y < heightSegs; y++ {
		for x := 0; x < widthSegs; x++ {
			v1 := vtxs[y][x+1]
			v2 := vtxs[y][x]
			v3 := vtxs[y+1][x]
			v4 := vtxs[y+1][x+1]
			if y != 0 {
				ms.Index = append(ms.Index, v1, v2, v4)
			}
			if y != heightSegs-1 {
				ms.Index = append(ms.Index, v2, v3, v4)
			}
		}
	}
	return ms, nil
}
