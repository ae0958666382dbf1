// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"

	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/xyz"
)

// drawSolid draws the triangles of a mesh, textured if the texture
// is available. Triangles with any vertex behind the camera are skipped.
func (fr *frame) drawSolid(it *item, ms *xyz.TriMesh) {
	geom := ms.Geom
	if geom == nil {
		return
	}
	mt := &it.node.Material
	mvp := fr.mvp(it)
	w, h := fr.br.width, fr.br.height
	vs := make([]vertex, len(geom.Vertex))
	for i, p := range geom.Vertex {
		vs[i] = project(&mvp, p, w, h)
	}
	tex := fr.br.texture(mt.TextureName)
	cr, cg, cb := rgbaf(mt.Color)
	alpha := mt.EffectiveOpacity()
	write := !mt.Transparent
	for t := 0; t+2 < len(geom.Index); t += 3 {
		i0, i1, i2 := geom.Index[t], geom.Index[t+1], geom.Index[t+2]
		v0, v1, v2 := vs[i0], vs[i1], vs[i2]
		if v0.w <= 0 || v1.w <= 0 || v2.w <= 0 {
			continue
		}
		var uv [3]math32.Vector2
		if tex != nil && len(geom.TexCoord) == len(geom.Vertex) {
			uv = [3]math32.Vector2{geom.TexCoord[i0], geom.TexCoord[i1], geom.TexCoord[i2]}
		} else {
			tex = nil
		}
		fr.fillTriangle(v0, v1, v2, uv, tex, cr, cg, cb, alpha, write)
	}
}

// fillTriangle fills the triangle with a perspective correct texture
// lookup, or the flat color if tex is nil.
func (fr *frame) fillTriangle(v0, v1, v2 vertex, uv [3]math32.Vector2, tex *image.RGBA, cr, cg, cb, alpha float32, write bool) {
	area := edge(v0, v1, v2.x, v2.y)
	if area == 0 {
		return
	}
	minX := max(int(math32.Min(v0.x, math32.Min(v1.x, v2.x))), 0)
	maxX := min(int(math32.Max(v0.x, math32.Max(v1.x, v2.x)))+1, fr.br.width-1)
	minY := max(int(math32.Min(v0.y, math32.Min(v1.y, v2.y))), 0)
	maxY := min(int(math32.Max(v0.y, math32.Max(v1.y, v2.y)))+1, fr.br.height-1)
	iw0, iw1, iw2 := 1/v0.w, 1/v1.w, 1/v2.w
	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			b0 := edge(v1, v2, px, py) / area
			b1 := edge(v2, v0, px, py) / area
			b2 := edge(v0, v1, px, py) / area
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}
			z := b0*v0.z + b1*v1.z + b2*v2.z
			r, g, b, a := cr, cg, cb, alpha
			if tex != nil {
				iw := b0*iw0 + b1*iw1 + b2*iw2
				u := (b0*uv[0].X*iw0 + b1*uv[1].X*iw1 + b2*uv[2].X*iw2) / iw
				v := (b0*uv[0].Y*iw0 + b1*uv[1].Y*iw1 + b2*uv[2].Y*iw2) / iw
				var ta float32
				r, g, b, ta = sample(tex, u, v)
				a *= ta
			}
			r, g, b = fr.shade(r, g, b)
			fr.plot(x, y, z, r, g, b, a, write)
		}
	}
}

// edge returns twice the signed area of the triangle a, b, (x, y).
func edge(a, b vertex, x, y float32) float32 {
	return (b.x-a.x)*(y-a.y) - (b.y-a.y)*(x-a.x)
}

// sample returns the texture color at the given UV coordinates,
// with v = 0 at the top of the image.
func sample(tex *image.RGBA, u, v float32) (r, g, b, a float32) {
	bb := tex.Bounds()
	x := bb.Min.X + min(int(math32.Clamp(u, 0, 1)*float32(bb.Dx())), bb.Dx()-1)
	y := bb.Min.Y + min(int(math32.Clamp(v, 0, 1)*float32(bb.Dy())), bb.Dy()-1)
	pi := tex.PixOffset(x, y)
	px := tex.Pix[pi : pi+4 : pi+4]
	a = float32(px[3]) / 255
	if a == 0 {
		return 0, 0, 0, 0
	}
	// un-premultiply
	return float32(px[0]) / 255 / a, float32(px[1]) / 255 / a, float32(px[2]) / 255 / a, a
}

// drawLines draws the polyline of a mesh with its material color.
func (fr *frame) drawLines(it *item, ms *xyz.LineMesh) {
	mt := &it.node.Material
	mvp := fr.mvp(it)
	r, g, b := fr.shade(rgbaf(mt.Color))
	a := mt.EffectiveOpacity()
	var prev vertex
	for i, p := range ms.Points {
		v := project(&mvp, p, fr.br.width, fr.br.height)
		if i > 0 && prev.w > 0 && v.w > 0 {
			fr.line(prev, v, r, g, b, a, !mt.Transparent)
		}
		prev = v
	}
}

// line draws a line between two projected vertexes,
// interpolating depth along it.
func (fr *frame) line(v0, v1 vertex, r, g, b, a float32, write bool) {
	dx, dy := v1.x-v0.x, v1.y-v0.y
	n := int(math32.Max(math32.Abs(dx), math32.Abs(dy)))
	// lines far off screen are not worth stepping along
	if n > 4*(fr.br.width+fr.br.height) {
		return
	}
	for i := 0; i <= n; i++ {
		t := float32(0)
		if n > 0 {
			t = float32(i) / float32(n)
		}
		fr.plot(int(v0.x+dx*t), int(v0.y+dy*t), v0.z+(v1.z-v0.z)*t, r, g, b, a, write)
	}
}

// drawPoints draws each point of a mesh as a disc whose size shrinks
// with distance, using the per-point colors if the material says so.
func (fr *frame) drawPoints(it *item, ms *xyz.PointMesh) {
	mt := &it.node.Material
	mvp := fr.mvp(it)
	cr, cg, cb := rgbaf(mt.Color)
	a := mt.EffectiveOpacity()
	vcolor := mt.VertexColor && len(ms.Colors) == len(ms.Points)
	for i, p := range ms.Points {
		v := project(&mvp, p, fr.br.width, fr.br.height)
		if v.w <= 0 {
			continue
		}
		r, g, b := cr, cg, cb
		if vcolor {
			c := ms.Colors[i]
			r, g, b = c.X, c.Y, c.Z
		}
		r, g, b = fr.shade(r, g, b)
		rad := mt.PointSize * fr.focal / v.w / 2
		fr.disc(v, rad, r, g, b, a, !mt.Transparent)
	}
}

// maxPointRadius is the largest radius of a drawn point, in pixels.
const maxPointRadius = 32

// disc fills a disc of the given pixel radius at a projected vertex,
// or a single pixel for a radius under one pixel.
func (fr *frame) disc(v vertex, rad, r, g, b, a float32, write bool) {
	cx, cy := int(v.x), int(v.y)
	if rad < 1 {
		fr.plot(cx, cy, v.z, r, g, b, a, write)
		return
	}
	rad = min(rad, maxPointRadius)
	ir := int(rad + 0.5)
	r2 := rad * rad
	for y := -ir; y <= ir; y++ {
		for x := -ir; x <= ir; x++ {
			if float32(x*x+y*y) <= r2 {
				fr.plot(cx+x, cy+y, v.z, r, g, b, a, write)
			}
		}
	}
}
