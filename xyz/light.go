// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"
)

// Light represents a light that illuminates a scene.
// These are stored on the [Scene] object and not within the node arena.
type Light interface {

	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {

	// Name is the name of the light.
	Name string

	// On is whether the light is turned on.
	On bool

	// Lumens is the brightness of the light in normalized 0-1 units.
	// It is just multiplied by the color.
	Lumens float32

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// AmbientLight provides diffuse uniform lighting; typically only one of these in a [Scene].
type AmbientLight struct {
	LightBase
}

// NewAmbientLight adds an ambient light to the given scene, with the
// given name, color, and lumens (0-1 normalized).
func NewAmbientLight(sc *Scene, name string, lumens float32, clr color.RGBA) *AmbientLight {
	lt := &AmbientLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Lumens = lumens
	sc.AddLight(lt)
	return lt
}

// Ambient returns the total ambient light of the scene as RGB
// multipliers, each clamped to [0, 1].
func (sc *Scene) Ambient() (r, g, b float32) {
	for _, lt := range sc.Lights {
		al, ok := lt.(*AmbientLight)
		if !ok || !al.On {
			continue
		}
		r += al.Lumens * float32(al.Color.R) / 255
		g += al.Lumens * float32(al.Color.G) / 255
		b += al.Lumens * float32(al.Color.B) / 255
	}
	return min(r, 1), min(g, 1), min(b, 1)
}
