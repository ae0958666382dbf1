// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"errors"
	"image"
	"testing"

	"cogentcore.org/orrery/xyz"
	"github.com/stretchr/testify/assert"
)

type countBridge struct {
	frames int
	w, h   int
	err    error
}

func (cb *countBridge) Render(sc *xyz.Scene, cam *xyz.Camera) error {
	cb.frames++
	return cb.err
}

func (cb *countBridge) Resize(w, h int) {
	cb.w, cb.h = w, h
}

type requestLog []string

func (rl *requestLog) Request(key string) { *rl = append(*rl, key) }

func (rl *requestLog) Texture(key string) (image.Image, bool) { return nil, false }

func TestTextureKey(t *testing.T) {
	assert.Equal(t, "earth", TextureKey("Earth", ""))
	assert.Equal(t, "8k_earth_daymap", TextureKey("Earth", "8k_earth_daymap"))
}

func TestMulti(t *testing.T) {
	errBad := errors.New("bad frame")
	a, b := &countBridge{}, &countBridge{err: errBad}
	m := Multi{a, b}
	sc := xyz.NewScene("sc")
	err := m.Render(sc, &sc.Camera)
	assert.ErrorIs(t, err, errBad)
	assert.Equal(t, 1, a.frames)
	assert.Equal(t, 1, b.frames)

	m.Resize(640, 480)
	assert.Equal(t, [2]int{640, 480}, [2]int{b.w, b.h})

	assert.NoError(t, Multi{a}.Render(sc, &sc.Camera))
}

func TestRequestTextures(t *testing.T) {
	sc := xyz.NewScene("sc")
	sun := sc.NewSolid(sc.Root(), "Sun", "sun")
	sc.Node(sun).Material.SetTexture("8k_sun")
	sc.NewGroup(sc.Root(), "empty")
	var rl requestLog
	RequestTextures(&rl, sc)
	assert.Equal(t, requestLog{"8k_sun"}, rl)
}
