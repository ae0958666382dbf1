// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/shape"
	"cogentcore.org/orrery/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func newScene(t *testing.T) *xyz.Scene {
	t.Helper()
	sc := xyz.NewScene("test")
	sc.Camera.Pos.Set(0, 0, 10)
	sc.Camera.LookAtOrigin()
	return sc
}

func addSphere(t *testing.T, sc *xyz.Scene, name string, radius float32, pos math32.Vector3, clr color.RGBA) xyz.NodeID {
	geom, err := shape.Sphere(radius, 16, 16)
	require.NoError(t, err)
	sc.SetMesh(xyz.NewTriMesh(name, geom))
	id := sc.NewSolid(sc.Root(), name, name)
	sc.Pose(id).Pos = pos
	sc.Node(id).Material.SetColor(clr)
	return id
}

type textures map[string]image.Image

func (tx textures) Request(key string) {}

func (tx textures) Texture(key string) (image.Image, bool) {
	img, ok := tx[key]
	return img, ok
}

type label struct {
	text string
	at   image.Point
}

type labelLog []label

func (ll *labelLog) DrawLabel(dst draw.Image, text string, at image.Point, size float32) {
	*ll = append(*ll, label{text, at})
}

func TestBackground(t *testing.T) {
	sc := newScene(t)
	sc.BackgroundColor = color.RGBA{10, 20, 30, 255}
	br := New(32, 16)
	require.NoError(t, br.Render(sc, &sc.Camera))
	assert.Equal(t, 1, br.Frames())
	assert.Equal(t, sc.BackgroundColor, br.Image().RGBAAt(0, 0))
	assert.Equal(t, sc.BackgroundColor, br.Image().RGBAAt(31, 15))
	assert.Equal(t, float32(2), sc.Camera.Aspect)
}

func TestSolidDepth(t *testing.T) {
	sc := newScene(t)
	addSphere(t, sc, "near", 1, math32.Vector3Zero, red)
	addSphere(t, sc, "far", 2, math32.Vec3(0, 0, -5), blue)
	br := New(64, 64)
	require.NoError(t, br.Render(sc, &sc.Camera))
	img := br.Image()
	assert.Equal(t, red, img.RGBAAt(32, 32))
	assert.Equal(t, black, img.RGBAAt(1, 1))
	// the far sphere shows around the near one
	found := false
	for x := 32; x < 64; x++ {
		if img.RGBAAt(x, 32) == blue {
			found = true
		}
	}
	assert.True(t, found)
}

func TestTextureAndAmbient(t *testing.T) {
	sc := newScene(t)
	id := addSphere(t, sc, "earth", 1, math32.Vector3Zero, red)
	sc.Node(id).Material.SetTexture("earth")
	tex := image.NewRGBA(image.Rect(0, 0, 8, 4))
	draw.Draw(tex, tex.Bounds(), image.NewUniform(green), image.Point{}, draw.Src)

	br := New(64, 64)
	require.NoError(t, br.Render(sc, &sc.Camera))
	assert.Equal(t, red, br.Image().RGBAAt(32, 32))

	br.Assets = textures{"earth": tex}
	xyz.NewAmbientLight(sc, "ambient", 0.5, white)
	require.NoError(t, br.Render(sc, &sc.Camera))
	assert.Equal(t, color.RGBA{0, 128, 0, 255}, br.Image().RGBAAt(32, 32))
}

func TestTransparent(t *testing.T) {
	sc := newScene(t)
	id := addSphere(t, sc, "glass", 1, math32.Vector3Zero, white)
	sc.Node(id).Material.SetTransparent(0.5)
	br := New(64, 64)
	require.NoError(t, br.Render(sc, &sc.Camera))
	px := br.Image().RGBAAt(32, 32)
	// front and back faces both blend over the background
	assert.Greater(t, px.R, uint8(120))
	assert.Equal(t, px.R, px.G)
}

func TestLinesPointsLabels(t *testing.T) {
	sc := newScene(t)
	sc.SetMesh(xyz.NewLineMesh("line", []math32.Vector3{math32.Vec3(-1, 0, 0), math32.Vec3(1, 0, 0)}))
	sc.NewLines(sc.Root(), "line", "line")
	sc.SetMesh(xyz.NewPointMesh("star", []math32.Vector3{math32.Vec3(0, 2, 0)}, []math32.Vector3{math32.Vec3(0, 0, 1)}))
	pts := sc.NewPoints(sc.Root(), "stars", "star")
	mt := &sc.Node(pts).Material
	mt.VertexColor = true
	mt.PointSize = 0.1
	sc.NewLabel(sc.Root(), "label", "Sun", 50)

	var ll labelLog
	br := New(64, 64)
	br.Labels = &ll
	require.NoError(t, br.Render(sc, &sc.Camera))
	img := br.Image()
	assert.Equal(t, white, img.RGBAAt(32, 32))
	assert.Equal(t, black, img.RGBAAt(32, 40))

	// the star is 2 units up at distance 10
	foc := float32(32) / math32.Tan(math32.DegToRad(15))
	sy := int(32 - 2*foc/10)
	assert.Equal(t, blue, img.RGBAAt(32, sy))

	require.Len(t, ll, 1)
	assert.Equal(t, "Sun", ll[0].text)
	assert.Equal(t, image.Pt(32, 32), ll[0].at)
}

func TestBloom(t *testing.T) {
	sc := newScene(t)
	sc.SetMesh(xyz.NewPointMesh("star", []math32.Vector3{math32.Vector3Zero}, nil))
	pts := sc.NewPoints(sc.Root(), "star", "star")
	sc.Node(pts).Material.PointSize = 0.1
	br := New(64, 64)
	require.NoError(t, br.Render(sc, &sc.Camera))
	assert.Equal(t, black, br.Image().RGBAAt(34, 32))

	br.Bloom = 2
	require.NoError(t, br.Render(sc, &sc.Camera))
	assert.Greater(t, br.Image().RGBAAt(33, 32).R, uint8(0))
}

func TestResizeAndSave(t *testing.T) {
	sc := newScene(t)
	addSphere(t, sc, "sun", 1, math32.Vector3Zero, red)
	br := New(64, 64)
	br.Resize(80, 40)
	require.NoError(t, br.Render(sc, &sc.Camera))
	assert.Equal(t, image.Pt(80, 40), br.Size())
	assert.Equal(t, image.Rect(0, 0, 80, 40), br.Image().Bounds())
	assert.Equal(t, float32(2), sc.Camera.Aspect)

	fn := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, br.SaveFrame(fn))
	f, err := os.Open(fn)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, br.Image().Bounds(), img.Bounds())
}

func TestLabelsFont(t *testing.T) {
	lb := NewLabels(1)
	img := image.NewRGBA(image.Rect(0, 0, 100, 40))
	lb.DrawLabel(img, "Earth", image.Pt(50, 30), 20)
	lit := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			lit++
		}
	}
	assert.Greater(t, lit, 10)
	assert.Same(t, lb.Face(20), lb.Face(20))
}
