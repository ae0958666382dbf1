// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Labels is a [render.LabelRenderer] that draws text with the Go
// regular font, falling back on a fixed bitmap font if it cannot be loaded.
type Labels struct {

	// Color is the text color.
	Color color.RGBA

	// Scale multiplies the requested font size.
	Scale float32

	font  *opentype.Font
	faces map[float32]font.Face
}

// NewLabels returns new white Labels at the given scale.
func NewLabels(scale float32) *Labels {
	lb := &Labels{Color: colornames.White, Scale: scale, faces: map[float32]font.Face{}}
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		slog.Warn("raster: using basic font for labels", "err", err)
	}
	lb.font = fnt
	return lb
}

// Face returns the font face for the given size in pixels.
func (lb *Labels) Face(size float32) font.Face {
	size *= lb.Scale
	if lb.font == nil || size <= 0 {
		return basicfont.Face7x13
	}
	if fc, ok := lb.faces[size]; ok {
		return fc
	}
	fc, err := opentype.NewFace(lb.font, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		slog.Warn("raster: using basic font for labels", "size", size, "err", err)
		fc = basicfont.Face7x13
	}
	lb.faces[size] = fc
	return fc
}

// DrawLabel draws the text centered horizontally with its baseline at the given point.
func (lb *Labels) DrawLabel(dst draw.Image, text string, at image.Point, size float32) {
	fc := lb.Face(size)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(lb.Color), Face: fc}
	wd := d.MeasureString(text)
	d.Dot = fixed.P(at.X, at.Y).Sub(fixed.Point26_6{X: wd / 2})
	d.DrawString(text)
}
