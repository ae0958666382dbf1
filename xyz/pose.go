// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/orrery/math32"
)

// Pose contains the full specification of the position and orientation
// of a node relative to its parent. Rotation is stored as Euler angles
// so that accumulated rotation about an axis can be read back directly.
type Pose struct {

	// Pos is the position of the node relative to its parent.
	Pos math32.Vector3

	// Rot is the rotation in radians about the X, Y, and Z axes,
	// applied in XYZ order (the rotation matrix is Rx * Ry * Rz).
	Rot math32.Vector3

	// Scale is the scale factor along each local axis.
	Scale math32.Vector3
}

// NewPose returns an identity pose with unit scale.
func NewPose() Pose {
	return Pose{Scale: math32.Vec3(1, 1, 1)}
}

func (ps *Pose) String() string {
	return fmt.Sprintf("Pos: %v; Rot: %v; Scale: %v", ps.Pos, ps.Rot, ps.Scale)
}

// Quat returns the rotation as a quaternion.
func (ps *Pose) Quat() math32.Quat {
	return math32.NewQuatEuler(ps.Rot)
}

// Matrix returns the local transform matrix: translation * rotation * scale.
func (ps *Pose) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(ps.Pos, ps.Quat(), ps.Scale)
	return m
}

// SetRot sets the Euler rotation in radians.
func (ps *Pose) SetRot(x, y, z float32) {
	ps.Rot.Set(x, y, z)
}

// RotateY adds the given angle in radians to the rotation about Y.
func (ps *Pose) RotateY(delta float32) {
	ps.Rot.Y += delta
}
