// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, filename string, w, h int) {
	t.Helper()
	require.NoError(t, encodeImage(filename, w, h))
}

func encodeImage(filename string, w, h int) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if filepath.Ext(filename) == ".jpg" {
		return jpeg.Encode(f, img, nil)
	}
	return png.Encode(f, img)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "8k_earth_daymap.jpg"), 16, 8)
	writeImage(t, filepath.Join(dir, "8k_saturn_ring_alpha.png"), 8, 4)
	ld := New(dir)

	_, ok := ld.Texture("8k_earth_daymap")
	assert.False(t, ok)
	ld.Request("8k_earth_daymap")
	ld.Request("8k_saturn_ring_alpha")
	ld.Request("8k_earth_daymap")
	ld.Wait()

	img, ok := ld.Texture("8k_earth_daymap")
	require.True(t, ok)
	assert.Equal(t, image.Pt(16, 8), img.Bounds().Size())
	img, ok = ld.Texture("8k_saturn_ring_alpha")
	require.True(t, ok)
	r, _, _, a := img.At(1, 1).RGBA()
	assert.NotZero(t, a)
	assert.NotZero(t, r)
}

func TestDownscale(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "sun.png"), 64, 32)
	ld := New(dir)
	ld.MaxSize = 16
	ld.Request("sun")
	ld.Wait()
	img, ok := ld.Texture("sun")
	require.True(t, ok)
	assert.Equal(t, image.Pt(16, 8), img.Bounds().Size())
}

func TestUnavailable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mars.jpg"), []byte("not an image at all"), 0o666))
	ld := New(dir)
	ld.Request("mars")
	ld.Request("pluto")
	ld.Wait()

	_, ok := ld.Texture("mars")
	assert.False(t, ok)
	assert.ErrorIs(t, ld.Err("mars"), ErrAssetUnavailable)
	assert.ErrorIs(t, ld.Err("pluto"), ErrAssetUnavailable)
	assert.ErrorIs(t, ld.Err("pluto"), os.ErrNotExist)

	_, err := New("").loadKey("moon")
	assert.ErrorIs(t, err, ErrAssetUnavailable)
}

func TestLoadRejectsNonImage(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "doc.png")
	// a PDF header
	require.NoError(t, os.WriteFile(fn, []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"), 0o666))
	_, err := Load(fn, 0)
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	ld := New(dir)
	ld.Request("venus")
	ld.Wait()
	require.Error(t, ld.Err("venus"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- ld.Watch(ctx) }()

	fn := filepath.Join(dir, "venus.png")
	assert.Eventually(t, func() bool {
		encodeImage(fn, 4, 4)
		_, ok := ld.Texture("venus")
		return ok
	}, 5*time.Second, 50*time.Millisecond)

	// unrequested files are ignored
	writeImage(t, filepath.Join(dir, "other.png"), 4, 4)
	cancel()
	require.NoError(t, <-done)
	ld.Wait()
	_, ok := ld.Texture("other")
	assert.False(t, ok)
}

func TestKeyForFile(t *testing.T) {
	ld := New("textures")
	ld.requested["8k_moon"] = true
	key, ok := ld.keyForFile("textures/8k_moon.jpg")
	assert.True(t, ok)
	assert.Equal(t, "8k_moon", key)
	_, ok = ld.keyForFile("textures/8k_moon.txt")
	assert.False(t, ok)
	_, ok = ld.keyForFile("textures/8k_sun.jpg")
	assert.False(t, ok)
}
