// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/shape"
)

// Mesh holds geometry that nodes refer to by name.
// Meshes are stored on the [Scene] and not within the node arena.
type Mesh interface {

	// AsMeshBase returns the [MeshBase] for this Mesh,
	// which provides the core functionality of a mesh.
	AsMeshBase() *MeshBase
}

// MeshBase provides the core implementation of the [Mesh] interface.
type MeshBase struct {

	// Name is the name of the mesh, used by nodes to refer to it.
	Name string

	// BBox is the bounding box of the mesh in local coordinates.
	BBox math32.Box3
}

func (mb *MeshBase) AsMeshBase() *MeshBase {
	return mb
}

func (mb *MeshBase) setBBox(pts []math32.Vector3) {
	mb.BBox.SetEmpty()
	for _, p := range pts {
		mb.BBox.ExpandByPoint(p)
	}
}

// TriMesh is an indexed triangle mesh, rendered by [Solid] nodes.
type TriMesh struct {
	MeshBase

	// Geom is the triangle geometry.
	Geom *shape.Mesh
}

// NewTriMesh returns a new TriMesh with the given name and geometry.
func NewTriMesh(name string, geom *shape.Mesh) *TriMesh {
	ms := &TriMesh{Geom: geom}
	ms.Name = name
	ms.BBox = geom.BBox
	return ms
}

// LineMesh is a polyline, rendered by [Lines] nodes.
type LineMesh struct {
	MeshBase

	// Points are connected in order by line segments.
	Points []math32.Vector3
}

// NewLineMesh returns a new LineMesh with the given name and points.
func NewLineMesh(name string, pts []math32.Vector3) *LineMesh {
	ms := &LineMesh{Points: pts}
	ms.Name = name
	ms.setBBox(pts)
	return ms
}

// PointMesh is a point cloud, rendered by [Points] nodes.
type PointMesh struct {
	MeshBase

	// Points are the point positions.
	Points []math32.Vector3

	// Colors are the optional per-point RGB colors in [0, 1],
	// used when the material has VertexColor set.
	Colors []math32.Vector3
}

// NewPointMesh returns a new PointMesh with the given name, points and colors.
func NewPointMesh(name string, pts, colors []math32.Vector3) *PointMesh {
	ms := &PointMesh{Points: pts, Colors: colors}
	ms.Name = name
	ms.setBBox(pts)
	return ms
}
