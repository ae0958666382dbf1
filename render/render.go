// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render defines the collaborators that turn a scene into
// pixels: the bridge that draws frames, the provider that resolves
// textures, the label renderer, and the camera controller.
package render

import (
	"image"
	"image/draw"
	"strings"

	"cogentcore.org/orrery/base/errors"
	"cogentcore.org/orrery/xyz"
)

// Bridge draws frames of a scene.
type Bridge interface {

	// Render draws one frame of the given scene as seen by the given camera.
	Render(sc *xyz.Scene, cam *xyz.Camera) error

	// Resize notifies the bridge that the viewport is now the given
	// size in pixels. The bridge adjusts its own camera aspect ratio.
	Resize(width, height int)
}

// AssetProvider resolves textures by key in the background.
type AssetProvider interface {

	// Request starts resolving the texture with the given key, if it
	// is not already resolved or in progress. It never blocks.
	Request(key string)

	// Texture returns the texture with the given key, and false if
	// it is not (yet) available. It never blocks.
	Texture(key string) (image.Image, bool)
}

// LabelRenderer draws billboard labels.
type LabelRenderer interface {

	// DrawLabel draws the given text centered horizontally above the
	// given point of dst, with the given font size in pixels.
	DrawLabel(dst draw.Image, text string, at image.Point, size float32)
}

// CameraController moves the camera in response to user input.
// The system only supplies the initial pose and never reads
// controller state back.
type CameraController interface {

	// Init takes the initial camera pose and target.
	Init(cam *xyz.Camera)
}

// TextureKey returns the texture key for a body: the explicit texture
// if given, and otherwise the lower-cased name.
func TextureKey(name, texture string) string {
	if texture != "" {
		return texture
	}
	return strings.ToLower(name)
}

// RequestTextures asks the provider for every texture named by a
// material in the scene.
func RequestTextures(ap AssetProvider, sc *xyz.Scene) {
	for i := range sc.Nodes {
		if tn := sc.Nodes[i].Material.TextureName; tn != "" {
			ap.Request(tn)
		}
	}
}

// Multi is a [Bridge] that draws each frame with every one of its bridges.
type Multi []Bridge

// Render renders with every bridge, returning all of their errors joined.
func (m Multi) Render(sc *xyz.Scene, cam *xyz.Camera) error {
	var errs []error
	for _, br := range m {
		if err := br.Render(sc, cam); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Resize resizes every bridge.
func (m Multi) Resize(width, height int) {
	for _, br := range m {
		br.Resize(width, height)
	}
}
