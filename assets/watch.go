// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads requested textures whose files are created or written
// in [Loader.Dir], until ctx is done. A texture that was not available
// when first requested becomes available once its file appears.
func (ld *Loader) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(ld.Dir); err != nil {
		return err
	}
	slog.Debug("assets: watching", "dir", ld.Dir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if key, ok := ld.keyForFile(ev.Name); ok {
				slog.Debug("assets: texture changed", "key", key, "file", ev.Name)
				ld.start(key, true)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("assets: watcher error", "err", err)
		}
	}
}

// keyForFile returns the requested key that the given file provides.
func (ld *Loader) keyForFile(filename string) (string, bool) {
	base := filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(base))
	for _, e := range Extensions {
		if ext != e {
			continue
		}
		key := strings.TrimSuffix(base, filepath.Ext(base))
		ld.mu.Lock()
		defer ld.mu.Unlock()
		return key, ld.requested[key]
	}
	return "", false
}
