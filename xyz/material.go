// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"
)

// Material describes the appearance of a node's surface.
// It is an unlit material: the Color, or the texture when one is
// available, is shown as is, scaled only by the ambient light.
// Textures are resolved by name by the renderer, and the Color
// is used until the texture is available.
type Material struct {

	// Color is the main color of the surface, and of lines and points.
	Color color.RGBA

	// TextureName is the key of the texture that provides color for the surface.
	TextureName string

	// Opacity is the overall opacity in [0, 1]; it only applies if Transparent is set.
	Opacity float32

	// Transparent indicates that Opacity and texture alpha are used for blending.
	Transparent bool

	// DoubleSide renders back faces as well as front faces.
	DoubleSide bool

	// VertexColor uses the per-point colors of a [PointMesh].
	VertexColor bool

	// PointSize is the size of each point of a [Points] node, in world units.
	PointSize float32
}

// Defaults sets default material parameters: opaque white.
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{255, 255, 255, 255}
	mt.Opacity = 1
	mt.PointSize = 1
}

// SetColor sets the [Material.Color].
func (mt *Material) SetColor(c color.RGBA) *Material {
	mt.Color = c
	return mt
}

// SetTexture sets the [Material.TextureName].
func (mt *Material) SetTexture(name string) *Material {
	mt.TextureName = name
	return mt
}

// SetTransparent makes the material transparent with the given opacity.
func (mt *Material) SetTransparent(opacity float32) *Material {
	mt.Transparent = true
	mt.Opacity = opacity
	return mt
}

// EffectiveOpacity returns the opacity to render with.
func (mt *Material) EffectiveOpacity() float32 {
	if !mt.Transparent {
		return 1
	}
	return mt.Opacity
}
