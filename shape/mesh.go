// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/orrery/math32"

// Mesh holds indexed triangle geometry in local coordinates.
type Mesh struct {

	// Vertex positions.
	Vertex []math32.Vector3

	// Normal for each vertex.
	Normal []math32.Vector3

	// TexCoord is the texture (UV) coordinate of each vertex.
	TexCoord []math32.Vector2

	// Index has three vertex indexes per triangle.
	Index []uint32

	// BBox is the bounding box of the vertexes.
	BBox math32.Box3
}

// NumTriangles returns the number of triangles in the mesh.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Index) / 3
}

func (ms *Mesh) addVertex(pt, norm math32.Vector3, uv math32.Vector2) uint32 {
	idx := uint32(len(ms.Vertex))
	ms.Vertex = append(ms.Vertex, pt)
	ms.Normal = append(ms.Normal, norm)
	ms.TexCoord = append(ms.TexCoord, uv)
	ms.BBox.ExpandByPoint(pt)
	return idx
}

func newMesh(nVtx int) *Mesh {
	ms := &Mesh{
		Vertex:   make([]math32.Vector3, 0, nVtx),
		Normal:   make([]math32.Vector3, 0, nVtx),
		TexCoord: make([]math32.Vector2, 0, nVtx),
	}
	ms.BBox.SetEmpty()
	return ms
}
