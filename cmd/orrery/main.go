// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orrery runs an animated model of the solar system, drawing
// frames headlessly to PNG snapshots and streaming them to WebSocket
// viewers.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"cogentcore.org/orrery/assets"
	"cogentcore.org/orrery/base/errors"
	"cogentcore.org/orrery/base/logx"
	"cogentcore.org/orrery/cli"
	"cogentcore.org/orrery/orrery"
	"cogentcore.org/orrery/render"
	"cogentcore.org/orrery/render/raster"
	"cogentcore.org/orrery/render/wsview"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

// Config is the configuration of the command.
type Config struct {

	// System is the configuration of the solar system.
	System orrery.Config

	// Textures is the directory holding the texture files.
	Textures string `default:"textures" flag:"textures" desc:"directory holding the texture files"`

	// MaxTextureSize is the largest width of a loaded texture.
	MaxTextureSize int `default:"2048" flag:"max-texture-size" desc:"largest width of a loaded texture (0 = no limit)"`

	// SnapshotDir is the directory that PNG snapshots are saved in.
	// No snapshots are saved if it is empty.
	SnapshotDir string `flag:"snapshot-dir" desc:"directory to save PNG snapshots in"`

	// SnapshotEvery is the number of frames between snapshots.
	SnapshotEvery int `default:"60" flag:"snapshot-every" desc:"number of frames between snapshots"`

	// Width is the width of the frames in pixels.
	Width int `default:"960" flag:"width" desc:"frame width in pixels"`

	// Height is the height of the frames in pixels.
	Height int `default:"540" flag:"height" desc:"frame height in pixels"`

	// Bloom is the radius of the glow around bright pixels.
	Bloom float64 `default:"0" flag:"bloom" desc:"radius of the glow around bright pixels (0 = none)"`

	// WSAddr is the address to serve WebSocket viewers on.
	// Viewers are not served if it is empty.
	WSAddr string `flag:"ws-addr" desc:"address to serve WebSocket viewers on, such as :8081"`

	// Verbose shows info messages.
	Verbose bool `flag:"verbose,v" desc:"show info messages"`

	// VeryVerbose shows debug messages.
	VeryVerbose bool `flag:"very-verbose" desc:"show debug messages"`

	// Quiet only shows errors.
	Quiet bool `flag:"quiet,q" desc:"only show errors"`
}

func main() {
	cfg := &Config{System: *orrery.DefaultConfig()}
	opts := cli.DefaultOptions("orrery")
	opts.DefaultFiles = []string{"orrery.toml", "orrery.yaml"}
	_, err := cli.Config(opts, cfg, os.Args[1:]...)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
	logx.SetDefaultLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// run builds the system and runs it until ctx is done or the
// frame limit is reached.
func run(ctx context.Context, cfg *Config) error {
	sys, err := orrery.New(&cfg.System, nil)
	if err != nil {
		return err
	}

	ld := assets.New(cfg.Textures)
	ld.MaxSize = cfg.MaxTextureSize
	render.RequestTextures(ld, sys.Scene())

	ras := raster.New(cfg.Width, cfg.Height)
	ras.Assets = ld
	ras.Labels = raster.NewLabels(0.5)
	ras.Bloom = cfg.Bloom
	bridges := render.Multi{ras}

	var ws *wsview.Server
	if cfg.WSAddr != "" {
		ws = wsview.New()
		ws.Init(sys.Camera())
		bridges = append(bridges, ws)
	}
	bridges.Resize(cfg.Width, cfg.Height)

	if cfg.SnapshotDir != "" {
		if err := os.MkdirAll(cfg.SnapshotDir, 0o755); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	rn := orrery.NewRunner(sys, bridges)
	rn.OnFrame = func(frame int) {
		if cfg.SnapshotDir == "" || cfg.SnapshotEvery <= 0 || frame%cfg.SnapshotEvery != 0 {
			return
		}
		fn := filepath.Join(cfg.SnapshotDir, fmt.Sprintf("frame-%06d.png", frame))
		if errors.Log(ras.SaveFrame(fn)) == nil {
			slog.Debug("orrery: saved snapshot", "file", fn)
		}
	}
	g.Go(func() error {
		defer cancel()
		return rn.Run(ctx)
	})
	if ws != nil {
		g.Go(func() error {
			return ws.ListenAndServe(ctx, cfg.WSAddr)
		})
	}
	if _, err := os.Stat(cfg.Textures); err == nil {
		g.Go(func() error {
			return ld.Watch(ctx)
		})
	} else {
		slog.Warn("orrery: texture directory unavailable; bodies are drawn in plain colors", "dir", cfg.Textures)
	}
	err = g.Wait()
	ld.Wait()
	return err
}
