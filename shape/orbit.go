// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/orrery/math32"

// OrbitRingSegments is the default number of segments in an orbit ring.
const OrbitRingSegments = 100

// OrbitRing returns a closed polyline of segs+1 points on a circle of
// the given radius in the local X-Z plane. The last point repeats the
// first. A segment count <= 0 returns no points.
func OrbitRing(radius float32, segs int) ([]math32.Vector3, error) {
	if err := CheckPositive("orbit radius", radius); err != nil {
		return nil, err
	}
	if segs <= 0 {
		return nil, nil
	}
	pts := make([]math32.Vector3, segs+1)
	for i := 0; i < segs; i++ {
		th := math32.TwoPi * float32(i) / float32(segs)
		pts[i] = math32.Vec3(radius*math32.Cos(th), 0, radius*math32.Sin(th))
	}
	pts[segs] = pts[0]
	return pts, nil
}
