// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/orrery/cli"
	"cogentcore.org/orrery/orrery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := &Config{System: *orrery.DefaultConfig()}
	_, err := cli.Config(cli.DefaultOptions("orrery"), cfg, args...)
	require.NoError(t, err)
	return cfg
}

func TestFlags(t *testing.T) {
	cfg := testConfig(t, "--frames", "2", "--fps", "0", "--seed", "7", "--width", "32", "-v", "--ws-addr", ":0")
	assert.Equal(t, 2, cfg.System.Frames)
	assert.Equal(t, float32(0), cfg.System.FPS)
	assert.Equal(t, int64(7), cfg.System.Seed)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 540, cfg.Height)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Quiet)
	assert.Equal(t, ":0", cfg.WSAddr)
	assert.Equal(t, "textures", cfg.Textures)
	assert.Len(t, cfg.System.Bodies, 8)
}

func TestConfigFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "orrery.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Width = 100\n\n[System]\nSeed = 3\n"), 0o666))
	cfg := testConfig(t, "--config", fn, "--seed", "5")
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, int64(5), cfg.System.Seed)
	assert.Len(t, cfg.System.Bodies, 8)
}

func TestRunSnapshots(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, "--frames", "3", "--fps", "0", "--seed", "1",
		"--width", "64", "--height", "48", "--snapshot-every", "1",
		"--snapshot-dir", dir, "--textures", filepath.Join(dir, "missing"))
	cfg.System.StarField.Count = 100
	cfg.System.Belt.Count = 50

	require.NoError(t, run(context.Background(), cfg))
	for _, fn := range []string{"frame-000001.png", "frame-000002.png", "frame-000003.png"} {
		assert.FileExists(t, filepath.Join(dir, fn))
	}
	assert.NoFileExists(t, filepath.Join(dir, "frame-000004.png"))
}

func TestRunCancelled(t *testing.T) {
	cfg := testConfig(t, "--fps", "30", "--ws-addr", "127.0.0.1:0", "--textures", t.TempDir())
	cfg.System.StarField.Count = 10
	cfg.System.Belt.Count = 10
	cfg.Width, cfg.Height = 16, 16
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, run(ctx, cfg))
}
