// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/orrery/math32"

// AnnulusSegments is the default number of angular segments in an annulus.
const AnnulusSegments = 64

// Annulus returns a flat ring mesh between the inner and outer radius,
// in the local X-Y plane facing +Z, with angle running counter-clockwise
// from +X. The U texture coordinate runs from the inner to the outer
// edge, and V runs around the ring. Callers rotate it by π/2 about X
// to lay it flat in the X-Z plane.
func Annulus(inner, outer float32, segs int) (*Mesh, error) {
	if err := checkRadii(inner, outer); err != nil {
		return nil, err
	}
	if err := checkSegments("annulus segments", segs); err != nil {
		return nil, err
	}
	ms := newMesh(2 * (segs + 1))
	norm := math32.Vec3(0, 0, 1)
	for j, r := range [2]float32{inner, outer} {
		for i := 0; i <= segs; i++ {
			v := float32(i) / float32(segs)
			th := v * math32.TwoPi
			pt := math32.Vec3(r*math32.Cos(th), r*math32.Sin(th), 0)
			ms.addVertex(pt, norm, math32.Vec2(float32(j), v))
		}
	}
	ms.Index = make([]uint32, 0, 6*segs)
	row := uint32(segs + 1)
	for i := uint32(0); i < uint32(segs); i++ {
		a := i
		b := i + row
		c := i + row + 1
		d := i + 1
		ms.Index = append(ms.Index, a, b, d, b, c, d)
	}
	return ms, nil
}
