// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"
	"testing"

	"cogentcore.org/orrery/base/tolassert"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func assertVec(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, want.X, got.X, tol, "X of %v", got)
	tolassert.EqualTol(t, want.Y, got.Y, tol, "Y of %v", got)
	tolassert.EqualTol(t, want.Z, got.Z, tol, "Z of %v", got)
}

func TestNestedFrames(t *testing.T) {
	sc := NewScene("sc")
	tilt := sc.NewGroup(sc.Root(), "tilt")
	pivot := sc.NewGroup(tilt, "pivot")
	body := sc.NewGroup(pivot, "body")
	sc.Pose(body).Pos.Set(10, 0, 0)

	assertVec(t, math32.Vec3(10, 0, 0), sc.WorldPos(body))

	// rotating the pivot a quarter turn about Y moves +X to -Z
	sc.Pose(pivot).RotateY(math32.Pi / 2)
	assertVec(t, math32.Vec3(0, 0, -10), sc.WorldPos(body))

	// tilting about X rotates -Z toward +Y
	sc.Pose(tilt).Rot.X = math32.Pi / 2
	assertVec(t, math32.Vec3(0, 10, 0), sc.WorldPos(body))

	// translation of an ancestor carries through
	sc.Pose(sc.Root()).Pos.Set(1, 2, 3)
	assertVec(t, math32.Vec3(1, 12, 3), sc.WorldPos(body))

	assert.Equal(t, []NodeID{sc.Root(), tilt, pivot, body}, sc.Path(body))
}

func TestWalkMatchesWorldMatrix(t *testing.T) {
	sc := NewScene("sc")
	a := sc.NewGroup(sc.Root(), "a")
	b := sc.NewGroup(a, "b")
	c := sc.NewLabel(b, "c", "Earth", 40)
	sc.Pose(a).SetRot(0.3, 0.5, 0)
	sc.Pose(a).Pos.Set(2, 0, 0)
	sc.Pose(b).Pos.Set(0, 1, 5)
	sc.Pose(b).Scale.Set(2, 2, 2)
	sc.Pose(c).Pos.Set(0, 1.1, 0)

	var order []NodeID
	sc.Walk(func(id NodeID, nd *Node, world *math32.Matrix4) bool {
		order = append(order, id)
		assertVec(t, sc.WorldPos(id), world.Position())
		return true
	})
	assert.Equal(t, []NodeID{sc.Root(), a, b, c}, order)

	order = nil
	sc.Walk(func(id NodeID, nd *Node, world *math32.Matrix4) bool {
		order = append(order, id)
		return id != a
	})
	assert.Equal(t, []NodeID{sc.Root(), a}, order)
}

func TestSceneNodes(t *testing.T) {
	sc := NewScene("sc")
	assert.Equal(t, 1, sc.Len())
	assert.Equal(t, NoNode, sc.Node(sc.Root()).Parent)

	sun := sc.NewSolid(sc.Root(), "Sun", "sun")
	lbl := sc.NewLabel(sun, "Sun label", "Sun", 50)
	stars := sc.NewPoints(sc.Root(), "stars", "stars")
	ring := sc.NewLines(sc.Root(), "ring", "ring")
	assert.Equal(t, 5, sc.Len())
	assert.Equal(t, []NodeID{sun, stars, ring}, sc.Node(sc.Root()).Kids)
	assert.Equal(t, Label, sc.Node(lbl).Kind)
	assert.Equal(t, "Sun", sc.Node(lbl).Text)
	assert.True(t, sc.Node(sun).HasMesh())
	assert.False(t, sc.Node(lbl).HasMesh())
	assert.Equal(t, "Points", sc.Node(stars).Kind.String())
	assert.Equal(t, float32(1), sc.Node(sun).Material.Opacity)

	id, ok := sc.FindByName("Sun label")
	assert.True(t, ok)
	assert.Equal(t, lbl, id)
	_, ok = sc.FindByName("Pluto")
	assert.False(t, ok)

	assert.Panics(t, func() { sc.NewGroup(NodeID(99), "orphan") })
}

func TestMeshLibrary(t *testing.T) {
	sc := NewScene("sc")
	geom, err := shape.Sphere(2, 8, 8)
	require.NoError(t, err)
	sc.SetMesh(NewTriMesh("sphere", geom))
	sc.SetMesh(NewLineMesh("line", []math32.Vector3{math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 3)}))

	ms, err := sc.MeshByName("sphere")
	require.NoError(t, err)
	tri, ok := ms.(*TriMesh)
	require.True(t, ok)
	tolassert.EqualTol(t, 4, tri.BBox.Size().Y, tol)

	ms, err = sc.MeshByName("line")
	require.NoError(t, err)
	assertVec(t, math32.Vec3(1, 0, 3), ms.AsMeshBase().BBox.Size())

	_, err = sc.MeshByName("missing")
	assert.Error(t, err)
}

func TestAmbient(t *testing.T) {
	sc := NewScene("sc")
	r, g, b := sc.Ambient()
	assert.Equal(t, [3]float32{}, [3]float32{r, g, b})
	NewAmbientLight(sc, "ambient", 1, color.RGBA{255, 255, 255, 255})
	NewAmbientLight(sc, "extra", 0.5, color.RGBA{255, 0, 0, 255})
	r, g, b = sc.Ambient()
	assert.Equal(t, [3]float32{1, 1, 1}, [3]float32{r, g, b})
}

func TestCamera(t *testing.T) {
	var cm Camera
	cm.Defaults()
	cm.Pos.Set(15, -10, 20)
	cm.FOV = 60
	cm.Near = 0.1
	cm.SetAspect(800, 600)
	tolassert.EqualTol(t, 800.0/600.0, cm.Aspect, tol)
	cm.SetAspect(0, 600)
	tolassert.EqualTol(t, 800.0/600.0, cm.Aspect, tol)

	// the target projects to the center of the view
	vp := cm.ViewProjection()
	x, y, z, w := vp.MulVector4(0, 0, 0, 1)
	tolassert.EqualTol(t, 0, x/w, tol)
	tolassert.EqualTol(t, 0, y/w, tol)
	assert.True(t, z/w > -1 && z/w < 1)

	// the view matrix puts the target straight ahead on -Z
	vm := cm.ViewMatrix()
	vt := vm.MulVector3AsPoint(math32.Vector3Zero)
	assertVec(t, math32.Vec3(0, 0, -cm.Pos.Length()), vt)

	dist := cm.ViewVector().Length()
	cm.Orbit(30, 0)
	tolassert.EqualTol(t, dist, cm.ViewVector().Length(), 1e-3)
	cm.Orbit(0, 10)
	tolassert.EqualTol(t, dist, cm.ViewVector().Length(), 1e-3)

	cm.Zoom(0.5)
	tolassert.EqualTol(t, dist/2, cm.ViewVector().Length(), 1e-3)
}
