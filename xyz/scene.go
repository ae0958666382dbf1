// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz provides a 3D scenegraph of nested coordinate frames.
// A [Scene] owns all of its nodes in a flat arena indexed by [NodeID],
// and world transforms are always composed on demand from the chain
// of local poses, so a node is only ever moved by changing a pose.
package xyz

import (
	"fmt"
	"image/color"

	"cogentcore.org/orrery/math32"
)

// Scene is the overall scenegraph: the arena of nodes, the library
// of meshes they refer to, the camera and the lights.
type Scene struct {

	// Name of the scene, which is also the name of the root node.
	Name string

	// Nodes is the arena of all nodes. Node 0 is the root group.
	Nodes []Node

	// Meshes holds the mesh data referred to by name from nodes.
	Meshes map[string]Mesh

	// Camera determines the view onto the scene.
	Camera Camera

	// Lights are all of the lights in the scene.
	Lights []Light

	// BackgroundColor is the color behind everything.
	BackgroundColor color.RGBA
}

// NewScene returns a new Scene with a root group of the given name
// and a default camera.
func NewScene(name string) *Scene {
	sc := &Scene{Name: name, Meshes: map[string]Mesh{}}
	sc.Camera.Defaults()
	sc.BackgroundColor = color.RGBA{0, 0, 0, 255}
	sc.Nodes = append(sc.Nodes, Node{Name: name, Kind: Group, Parent: NoNode, Pose: NewPose()})
	return sc
}

// Root returns the id of the root group.
func (sc *Scene) Root() NodeID {
	return 0
}

// Len returns the number of nodes, including the root.
func (sc *Scene) Len() int {
	return len(sc.Nodes)
}

// IsValid returns whether the given id refers to a node in the scene.
func (sc *Scene) IsValid(id NodeID) bool {
	return id >= 0 && int(id) < len(sc.Nodes)
}

// Node returns the node with the given id. The pointer is only valid
// until the next node is added to the scene.
func (sc *Scene) Node(id NodeID) *Node {
	return &sc.Nodes[id]
}

// Pose returns the pose of the node with the given id. The pointer is
// only valid until the next node is added to the scene.
func (sc *Scene) Pose(id NodeID) *Pose {
	return &sc.Nodes[id].Pose
}

// AddNode adds a new node of the given kind under the given parent and
// returns its id. It panics if the parent does not exist.
func (sc *Scene) AddNode(parent NodeID, name string, kind NodeKinds) NodeID {
	if !sc.IsValid(parent) {
		panic(fmt.Sprintf("xyz.Scene.AddNode: parent %d of %q does not exist", parent, name))
	}
	id := NodeID(len(sc.Nodes))
	nd := Node{Name: name, Kind: kind, Parent: parent, Pose: NewPose()}
	nd.Material.Defaults()
	sc.Nodes = append(sc.Nodes, nd)
	sc.Nodes[parent].Kids = append(sc.Nodes[parent].Kids, id)
	return id
}

// NewGroup adds a new group under the given parent.
func (sc *Scene) NewGroup(parent NodeID, name string) NodeID {
	return sc.AddNode(parent, name, Group)
}

// NewSolid adds a new solid rendering the named [TriMesh] under the given parent.
func (sc *Scene) NewSolid(parent NodeID, name, mesh string) NodeID {
	id := sc.AddNode(parent, name, Solid)
	sc.Nodes[id].Mesh = mesh
	return id
}

// NewLines adds a new polyline rendering the named [LineMesh] under the given parent.
func (sc *Scene) NewLines(parent NodeID, name, mesh string) NodeID {
	id := sc.AddNode(parent, name, Lines)
	sc.Nodes[id].Mesh = mesh
	return id
}

// NewPoints adds a new point cloud rendering the named [PointMesh] under the given parent.
func (sc *Scene) NewPoints(parent NodeID, name, mesh string) NodeID {
	id := sc.AddNode(parent, name, Points)
	sc.Nodes[id].Mesh = mesh
	return id
}

// NewLabel adds a new billboard label with the given text and font
// size in pixels under the given parent.
func (sc *Scene) NewLabel(parent NodeID, name, text string, size float32) NodeID {
	id := sc.AddNode(parent, name, Label)
	nd := &sc.Nodes[id]
	nd.Text = text
	nd.TextSize = size
	return id
}

// FindByName returns the first node in depth-first order with the
// given name, and false if there is none.
func (sc *Scene) FindByName(name string) (NodeID, bool) {
	found := NoNode
	sc.Walk(func(id NodeID, nd *Node, _ *math32.Matrix4) bool {
		if found != NoNode {
			return false
		}
		if nd.Name == name {
			found = id
			return false
		}
		return true
	})
	return found, found != NoNode
}

// Path returns the ids from the root down to the given node, inclusive.
func (sc *Scene) Path(id NodeID) []NodeID {
	var path []NodeID
	for cur := id; cur != NoNode; cur = sc.Nodes[cur].Parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// WorldMatrix returns the transform from the local frame of the given
// node to world coordinates, composing every local pose from the root
// down. It is never cached.
func (sc *Scene) WorldMatrix(id NodeID) math32.Matrix4 {
	wm := *math32.Identity4()
	for _, pid := range sc.Path(id) {
		lm := sc.Nodes[pid].Pose.Matrix()
		wm.SetMul(&lm)
	}
	return wm
}

// WorldPos returns the world position of the origin of the given node.
func (sc *Scene) WorldPos(id NodeID) math32.Vector3 {
	wm := sc.WorldMatrix(id)
	return wm.Position()
}

// Walk calls fun for each node in depth-first order starting at the
// root, passing the world matrix of the node, which is composed afresh
// on each walk. If fun returns false, the children of that node are skipped.
func (sc *Scene) Walk(fun func(id NodeID, nd *Node, world *math32.Matrix4) bool) {
	sc.walk(sc.Root(), math32.Identity4(), fun)
}

func (sc *Scene) walk(id NodeID, parent *math32.Matrix4, fun func(id NodeID, nd *Node, world *math32.Matrix4) bool) {
	nd := &sc.Nodes[id]
	lm := nd.Pose.Matrix()
	var wm math32.Matrix4
	wm.MulMatrices(parent, &lm)
	if !fun(id, nd, &wm) {
		return
	}
	for _, kid := range nd.Kids {
		sc.walk(kid, &wm, fun)
	}
}

// SetMesh adds the given mesh to the library, replacing any
// existing mesh with the same name.
func (sc *Scene) SetMesh(ms Mesh) {
	sc.Meshes[ms.AsMeshBase().Name] = ms
}

// MeshByName returns the mesh with the given name.
func (sc *Scene) MeshByName(name string) (Mesh, error) {
	ms, ok := sc.Meshes[name]
	if !ok {
		return nil, fmt.Errorf("xyz.Scene: mesh %q not found", name)
	}
	return ms, nil
}

// AddLight adds the given light to the scene.
func (sc *Scene) AddLight(lt Light) {
	sc.Lights = append(sc.Lights, lt)
}
