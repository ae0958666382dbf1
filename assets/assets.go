// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets provides a [render.AssetProvider] that loads textures
// from a directory in the background.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"cogentcore.org/orrery/base/errors"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/webp"
)

// ErrAssetUnavailable is the error for a texture that could not be
// found or decoded. It is logged and never returned to the caller of
// [Loader.Texture], which just reports the texture as not available.
var ErrAssetUnavailable = errors.New("asset unavailable")

// Extensions are the file extensions tried, in order, for a texture key.
var Extensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// Loader loads textures named by key from files in a directory.
// The file for a key is the first of <Dir>/<key><ext> that exists
// for ext in [Extensions].
type Loader struct {

	// Dir is the directory holding the texture files.
	Dir string

	// MaxSize is the largest width of a loaded texture in pixels.
	// Larger images are scaled down to it. 0 means no limit.
	MaxSize int

	mu       sync.Mutex
	textures map[string]image.Image

	// pending holds the keys being loaded; true means the
	// file changed during the load and must be loaded again.
	pending map[string]bool

	failed    map[string]error
	requested map[string]bool
	wg        sync.WaitGroup
}

// New returns a new Loader for the given directory.
func New(dir string) *Loader {
	return &Loader{
		Dir:       dir,
		textures:  map[string]image.Image{},
		pending:   map[string]bool{},
		failed:    map[string]error{},
		requested: map[string]bool{},
	}
}

// Request starts loading the texture with the given key, unless it is
// already loaded, loading, or has failed to load. It never blocks.
func (ld *Loader) Request(key string) {
	ld.start(key, false)
}

// Texture returns the texture with the given key if it has been loaded.
func (ld *Loader) Texture(key string) (image.Image, bool) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	img, ok := ld.textures[key]
	return img, ok
}

// Err returns the error from the most recent failed load of the given
// key, or nil.
func (ld *Loader) Err(key string) error {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.failed[key]
}

// Wait waits for all loads in progress to finish.
func (ld *Loader) Wait() {
	ld.wg.Wait()
}

// start starts a load of the given key. If reload is set, the key is
// loaded again even if it has been loaded or has failed.
func (ld *Loader) start(key string, reload bool) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.requested[key] = true
	if _, busy := ld.pending[key]; busy {
		if reload {
			ld.pending[key] = true
		}
		return
	}
	if !reload {
		if _, ok := ld.textures[key]; ok {
			return
		}
		if ld.failed[key] != nil {
			return
		}
	}
	ld.pending[key] = false
	ld.wg.Add(1)
	go ld.load(key)
}

func (ld *Loader) load(key string) {
	defer ld.wg.Done()
	for {
		img, err := ld.loadKey(key)
		ld.mu.Lock()
		if err != nil {
			ld.failed[key] = err
			slog.Warn("assets: texture unavailable", "key", key, "err", err)
		} else {
			delete(ld.failed, key)
			ld.textures[key] = img
			slog.Debug("assets: texture loaded", "key", key, "size", img.Bounds().Size())
		}
		if !ld.pending[key] {
			delete(ld.pending, key)
			ld.mu.Unlock()
			return
		}
		ld.pending[key] = false
		ld.mu.Unlock()
	}
}

// loadKey finds and loads the file for the given key.
func (ld *Loader) loadKey(key string) (image.Image, error) {
	fn, err := ld.find(key)
	if err != nil {
		return nil, err
	}
	img, err := Load(fn, ld.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetUnavailable, key, err)
	}
	return img, nil
}

// find returns the file for the given key.
func (ld *Loader) find(key string) (string, error) {
	if ld.Dir == "" {
		return "", fmt.Errorf("%w: %s: no texture directory", ErrAssetUnavailable, key)
	}
	for _, ext := range Extensions {
		fn := filepath.Join(ld.Dir, key+ext)
		if _, err := os.Stat(fn); err == nil {
			return fn, nil
		}
	}
	return "", fmt.Errorf("%w: %s: no file in %s: %w", ErrAssetUnavailable, key, ld.Dir, os.ErrNotExist)
}

// Load reads and decodes the image file with the given name, checking
// its content type first, and scales it down to maxSize wide if it is
// wider than that and maxSize > 0.
func Load(filename string, maxSize int) (image.Image, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	kind, err := filetype.Match(b)
	if err != nil {
		return nil, err
	}
	switch kind.Extension {
	case "jpg", "png", "webp":
	default:
		if kind == filetype.Unknown {
			return nil, fmt.Errorf("%s: unknown file type", filename)
		}
		return nil, fmt.Errorf("%s: unsupported file type %s", filename, kind.MIME.Value)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	sz := img.Bounds().Size()
	if maxSize > 0 && sz.X > maxSize {
		h := max(sz.Y*maxSize/sz.X, 1)
		img = transform.Resize(img, maxSize, h, transform.Linear)
	}
	return img, nil
}
