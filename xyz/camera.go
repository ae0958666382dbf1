// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/orrery/math32"
)

// Camera defines the properties of a perspective camera, which looks
// from its position along the negative Z axis of its own frame.
type Camera struct {

	// Pos is the position of the camera in world coordinates.
	Pos math32.Vector3

	// Target is where the camera is pointing. It defaults to the origin
	// and is reset by a call to LookAt.
	Target math32.Vector3

	// UpDir is which way is up. It defaults to positive Y and is reset
	// by a call to LookAt.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width/height).
	Aspect float32

	// Near is the near plane distance.
	Near float32

	// Far is the far plane distance.
	Far float32
}

// Defaults sets the default camera: at 0,0,10 looking at the origin.
func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Aspect = 1.5
	cm.Near = .01
	cm.Far = 1000
	cm.Pos.Set(0, 0, 10)
	cm.LookAtOrigin()
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir.IsNil() {
		upDir = math32.Vector3Y
	}
	cm.UpDir = upDir
}

// LookAtOrigin points the camera at origin with Y axis pointing Up (i.e., standard)
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3Zero, math32.Vector3Y)
}

// SetAspect sets the aspect ratio from the given viewport size in pixels.
// It does nothing for a degenerate size.
func (cm *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	cm.Aspect = float32(width) / float32(height)
}

// Matrix returns the camera-to-world transform.
func (cm *Camera) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetRotationFromLookAt(cm.Pos, cm.Target, cm.UpDir)
	m[12], m[13], m[14] = cm.Pos.X, cm.Pos.Y, cm.Pos.Z
	return m
}

// ViewMatrix returns the world-to-camera transform, the inverse of [Camera.Matrix].
func (cm *Camera) ViewMatrix() math32.Matrix4 {
	cmat := cm.Matrix()
	var vm math32.Matrix4
	if err := vm.SetInverse(&cmat); err != nil {
		vm.SetIdentity()
	}
	return vm
}

// ProjectionMatrix returns the perspective projection matrix.
func (cm *Camera) ProjectionMatrix() math32.Matrix4 {
	var pm math32.Matrix4
	pm.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	return pm
}

// ViewProjection returns the projection times the view matrix, which
// maps world coordinates to clip coordinates.
func (cm *Camera) ViewProjection() math32.Matrix4 {
	pm := cm.ProjectionMatrix()
	vm := cm.ViewMatrix()
	var vp math32.Matrix4
	vp.MulMatrices(&pm, &vm)
	return vp
}

// ViewVector is the vector between the camera position and target
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pos.Sub(cm.Target)
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down),
// relative to current position and orientation,
// keeping the same distance from the Target, and rotating the camera and
// the Up direction vector to keep looking at the target.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir.IsNil() {
		ctdir.Set(0, 0, 1)
	}
	dir := ctdir.Normal()

	up := cm.UpDir
	right := cm.UpDir.Cross(dir).Normal()

	// delX rotates around the up vector
	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	dx := ctdir.MulQuat(dxq).Sub(ctdir)
	// delY rotates around the right vector
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	dy := ctdir.MulQuat(dyq).Sub(ctdir)

	cm.Pos = cm.Pos.Add(dx).Add(dy)
	cm.UpDir = cm.UpDir.MulQuat(dyq) // this is only one that affects up
}

// Zoom moves the camera toward (positive) or away from (negative) the
// target by the given fraction of the current distance. It never moves
// the camera onto or past the target.
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis.IsNil() {
		return
	}
	if zoomPct >= 1 {
		zoomPct = 0.9
	}
	cm.Pos = cm.Pos.Sub(ctaxis.MulScalar(zoomPct))
}
