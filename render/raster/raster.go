// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a headless software [render.Bridge] that
// draws a scene into an RGBA image, which can be saved as a PNG file.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"

	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/render"
	"cogentcore.org/orrery/xyz"
	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
)

// Bridge is a software [render.Bridge]. Solids are drawn as textured
// triangles with a depth buffer, lines and points are drawn directly,
// and labels are drawn on top of everything.
type Bridge struct {

	// Assets resolves textures by key. If nil, or while a texture
	// is not available, the material color is used.
	Assets render.AssetProvider

	// Labels draws the labels. If nil, labels are not drawn.
	Labels render.LabelRenderer

	// Bloom is the radius in pixels of the glow added around bright
	// pixels, or 0 for no glow.
	Bloom float64

	width  int
	height int
	img    *image.RGBA
	depth  []float32
	frames int

	// textures converted to RGBA, by key
	textures map[string]texture
}

// texture is a texture from the assets and its RGBA version.
type texture struct {
	src  image.Image
	rgba *image.RGBA
}

// New returns a new Bridge drawing into an image of the given size.
func New(width, height int) *Bridge {
	br := &Bridge{textures: map[string]texture{}}
	br.Resize(width, height)
	return br
}

// Resize sets the size of the image, which takes effect on the next frame.
// The camera aspect ratio is set from it on each frame.
func (br *Bridge) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == br.width && height == br.height {
		return
	}
	br.width, br.height = width, height
	br.img = image.NewRGBA(image.Rect(0, 0, width, height))
	br.depth = make([]float32, width*height)
	slog.Debug("raster: resized", "width", width, "height", height)
}

// Size returns the size of the image.
func (br *Bridge) Size() image.Point {
	return image.Pt(br.width, br.height)
}

// Image returns the most recently drawn frame. It is reused by the next frame.
func (br *Bridge) Image() *image.RGBA {
	return br.img
}

// Frames returns the number of frames drawn.
func (br *Bridge) Frames() int {
	return br.frames
}

// SaveFrame saves the most recently drawn frame as a PNG file.
func (br *Bridge) SaveFrame(filename string) error {
	return imgio.Save(filename, br.img, imgio.PNGEncoder())
}

// Render draws one frame of the scene.
func (br *Bridge) Render(sc *xyz.Scene, cam *xyz.Camera) error {
	cam.SetAspect(br.width, br.height)
	fr := &frame{br: br, sc: sc, vp: cam.ViewProjection()}
	fr.focal = float32(br.height) / 2 / math32.Tan(math32.DegToRad(cam.FOV/2))
	fr.ambR, fr.ambG, fr.ambB = sc.Ambient()
	if len(sc.Lights) == 0 {
		fr.ambR, fr.ambG, fr.ambB = 1, 1, 1
	}

	draw.Draw(br.img, br.img.Bounds(), image.NewUniform(sc.BackgroundColor), image.Point{}, draw.Src)
	for i := range br.depth {
		br.depth[i] = float32(math.Inf(1))
	}

	// opaque first, then transparent without writing depth
	var later []item
	sc.Walk(func(id xyz.NodeID, nd *xyz.Node, world *math32.Matrix4) bool {
		it := item{node: nd, world: *world}
		switch {
		case nd.Kind == xyz.Label:
			later = append(later, it)
		case nd.HasMesh() && nd.Material.Transparent:
			later = append(later, it)
		case nd.HasMesh():
			if err := fr.drawItem(&it); err != nil {
				slog.Warn("raster: cannot draw node", "node", nd.Name, "err", err)
			}
		}
		return true
	})
	for i := range later {
		if later[i].node.Kind == xyz.Label {
			continue
		}
		if err := fr.drawItem(&later[i]); err != nil {
			slog.Warn("raster: cannot draw node", "node", later[i].node.Name, "err", err)
		}
	}

	if br.Bloom > 0 {
		glow := blur.Gaussian(br.img, br.Bloom)
		draw.Draw(br.img, br.img.Bounds(), blend.Screen(br.img, glow), image.Point{}, draw.Src)
	}
	if br.Labels != nil {
		for i := range later {
			if later[i].node.Kind == xyz.Label {
				fr.drawLabel(&later[i])
			}
		}
	}
	br.frames++
	return nil
}

// texture returns the RGBA texture with the given key, or nil.
// The RGBA version is made again when the assets return a new image.
func (br *Bridge) texture(key string) *image.RGBA {
	if key == "" || br.Assets == nil {
		return nil
	}
	img, ok := br.Assets.Texture(key)
	if !ok {
		return nil
	}
	if tex, ok := br.textures[key]; ok && tex.src == img {
		return tex.rgba
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = clone.AsRGBA(img)
	}
	br.textures[key] = texture{src: img, rgba: rgba}
	return rgba
}

// item is a node to draw, with its world matrix.
type item struct {
	node  *xyz.Node
	world math32.Matrix4
}

// frame holds the state of drawing one frame.
type frame struct {
	br    *Bridge
	sc    *xyz.Scene
	vp    math32.Matrix4
	focal float32

	ambR, ambG, ambB float32
}

// vertex is a projected vertex.
type vertex struct {
	x, y, z float32 // screen x, y and normalized depth
	w       float32 // clip w, the distance in front of the camera
}

// project returns the projection of the given local point through mvp.
func project(mvp *math32.Matrix4, p math32.Vector3, width, height int) vertex {
	cx, cy, cz, cw := mvp.MulVector4(p.X, p.Y, p.Z, 1)
	if cw <= 0 {
		return vertex{w: cw}
	}
	return vertex{
		x: (cx/cw + 1) / 2 * float32(width),
		y: (1 - cy/cw) / 2 * float32(height),
		z: cz / cw,
		w: cw,
	}
}

func (fr *frame) mvp(it *item) math32.Matrix4 {
	var m math32.Matrix4
	m.MulMatrices(&fr.vp, &it.world)
	return m
}

func (fr *frame) drawItem(it *item) error {
	ms, err := fr.sc.MeshByName(it.node.Mesh)
	if err != nil {
		return err
	}
	switch ms := ms.(type) {
	case *xyz.TriMesh:
		fr.drawSolid(it, ms)
	case *xyz.LineMesh:
		fr.drawLines(it, ms)
	case *xyz.PointMesh:
		fr.drawPoints(it, ms)
	}
	return nil
}

func (fr *frame) drawLabel(it *item) {
	mvp := fr.mvp(it)
	v := project(&mvp, math32.Vector3Zero, fr.br.width, fr.br.height)
	if v.w <= 0 || v.z < -1 || v.z > 1 {
		return
	}
	at := image.Pt(int(v.x), int(v.y))
	if !at.In(fr.br.img.Bounds()) {
		return
	}
	fr.br.Labels.DrawLabel(fr.br.img, it.node.Text, at, it.node.TextSize)
}

// shade returns the given color scaled by the ambient light.
func (fr *frame) shade(r, g, b float32) (float32, float32, float32) {
	return r * fr.ambR, g * fr.ambG, b * fr.ambB
}

// plot blends the given color in [0, 1] with the given alpha into pixel
// x, y if z passes the depth test, writing depth if write is set.
func (fr *frame) plot(x, y int, z, r, g, b, a float32, write bool) {
	br := fr.br
	if x < 0 || y < 0 || x >= br.width || y >= br.height || z < -1 || z > 1 {
		return
	}
	di := y*br.width + x
	if z >= br.depth[di] {
		return
	}
	if write {
		br.depth[di] = z
	}
	pi := br.img.PixOffset(x, y)
	px := br.img.Pix[pi : pi+4 : pi+4]
	if a >= 1 {
		px[0], px[1], px[2], px[3] = to8(r), to8(g), to8(b), 255
		return
	}
	ia := 1 - a
	px[0] = to8(r*a + float32(px[0])/255*ia)
	px[1] = to8(g*a + float32(px[1])/255*ia)
	px[2] = to8(b*a + float32(px[2])/255*ia)
	px[3] = 255
}

func to8(v float32) uint8 {
	return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
}

func rgbaf(c color.RGBA) (float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}
