// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
)

// NodeID is the index of a node in its [Scene].
type NodeID int

// NoNode is the NodeID of no node, such as the parent of the root.
const NoNode NodeID = -1

// NodeKinds are the kinds of node in a scene.
type NodeKinds int32

const (
	// Group is a frame with no geometry of its own.
	Group NodeKinds = iota

	// Solid renders a [TriMesh].
	Solid

	// Lines renders a [LineMesh] as a connected polyline.
	Lines

	// Points renders a [PointMesh] as a point cloud.
	Points

	// Label renders its Text as a billboard.
	Label
)

var kindNames = [...]string{"Group", "Solid", "Lines", "Points", "Label"}

func (k NodeKinds) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("NodeKinds(%d)", k)
	}
	return kindNames[k]
}

// Node is one frame of a scene, with a pose relative to its parent.
type Node struct {

	// Name of the node, not necessarily unique.
	Name string

	// Kind determines how the node is rendered.
	Kind NodeKinds

	// Parent is the id of the parent node, or [NoNode] for the root.
	Parent NodeID

	// Kids are the ids of the child nodes, in order.
	Kids []NodeID

	// Pose is the transform relative to the parent.
	Pose Pose

	// Mesh is the name of the mesh in the scene library, for
	// Solid, Lines and Points nodes.
	Mesh string

	// Material is the surface appearance.
	Material Material

	// Text is the text of a Label node.
	Text string

	// TextSize is the font size of a Label node, in pixels.
	TextSize float32
}

// HasMesh returns whether the node renders a mesh.
func (nd *Node) HasMesh() bool {
	return nd.Kind == Solid || nd.Kind == Lines || nd.Kind == Points
}
