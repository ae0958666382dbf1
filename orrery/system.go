// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orrery builds an animated model of a star system as a
// hierarchy of nested frames: a star, bodies on tilted circular orbits,
// satellites orbiting bodies, rings, an asteroid belt, and background
// stars. A [System] is built once from a [Config] and then advanced one
// fixed step per frame.
package orrery

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/orrery/base/randx"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/xyz"
)

// System is a star system and the scene it is built in. All of its
// mutable state is the rotation of its frames, which only [System.Step]
// changes.
type System struct {

	// Config is the configuration the system was built from.
	Config *Config

	// Seed is the random seed the system was built with.
	Seed int64

	scene      *xyz.Scene
	rnd        randx.Rand
	star       *Star
	bodies     []*Body
	satellites []*Body
	belt       *Belt
	stars      *StarField
	steps      int
}

// New builds a new System from the given configuration. If rnd is nil,
// a source seeded from [Config.Seed] is used. The same source is used
// for the initial phases, the generated geometry, and the asteroid spin.
func New(cfg *Config, rnd randx.Rand) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sys := &System{Config: cfg, Seed: cfg.Seed, rnd: rnd}
	if rnd == nil {
		sys.rnd, sys.Seed = randx.NewSeededRand(cfg.Seed)
	}
	sc := xyz.NewScene("solar system")
	sys.scene = sc
	root := sc.Root()
	xyz.NewAmbientLight(sc, "ambient", 1, color.RGBA{255, 255, 255, 255})

	cam := &sc.Camera
	cam.Pos = cfg.Camera.Pos
	cam.FOV = cfg.Camera.FOV
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	cam.LookAt(cfg.Camera.Target, math32.Vector3Y)

	var err error
	sys.stars, err = NewStarField(sc, root, &cfg.StarField, sys.rnd)
	if err != nil {
		return nil, fmt.Errorf("star field: %w", err)
	}
	sys.belt, err = NewBelt(sc, root, &cfg.Belt, sys.rnd)
	if err != nil {
		return nil, fmt.Errorf("asteroid belt: %w", err)
	}
	sys.star, err = NewStar(sc, root, &cfg.Star)
	if err != nil {
		return nil, fmt.Errorf("star %q: %w", cfg.Star.Name, err)
	}

	for i := range cfg.Bodies {
		bc := &cfg.Bodies[i]
		bd, err := NewBody(sc, root, bc, sys.rnd)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", bc.Name, err)
		}
		bd.AddLabel(bc.Name, cfg.LabelMargin, cfg.LabelSize)
		sys.bodies = append(sys.bodies, bd)
	}
	for i := range cfg.Satellites {
		stc := &cfg.Satellites[i]
		st, err := AttachSatellite(sc, sys.BodyByName(stc.Host), stc, sys.rnd)
		if err != nil {
			return nil, fmt.Errorf("satellite %q: %w", stc.Name, err)
		}
		if stc.Label {
			st.AddLabel(stc.Name, cfg.LabelMargin, cfg.LabelSize)
		}
		sys.satellites = append(sys.satellites, st)
	}
	for i := range cfg.Rings {
		rc := &cfg.Rings[i]
		if _, err := AttachRing(sc, sys.BodyByName(rc.Body), rc); err != nil {
			return nil, fmt.Errorf("ring on %q: %w", rc.Body, err)
		}
	}
	sys.star.AddLabel(root)

	slog.Info("orrery: system built", "bodies", len(sys.bodies), "satellites", len(sys.satellites),
		"asteroids", sys.belt.Len(), "stars", sys.stars.Len(), "nodes", sc.Len(), "seed", sys.Seed)
	return sys, nil
}

// Scene returns the scene the system is built in.
func (sys *System) Scene() *xyz.Scene {
	return sys.scene
}

// Camera returns the scene camera.
func (sys *System) Camera() *xyz.Camera {
	return &sys.scene.Camera
}

// Star returns the central star.
func (sys *System) Star() *Star {
	return sys.star
}

// Bodies returns the bodies orbiting the star, in configuration order.
func (sys *System) Bodies() []*Body {
	return sys.bodies
}

// Satellites returns all of the satellites, in configuration order.
func (sys *System) Satellites() []*Body {
	return sys.satellites
}

// SatellitePivot returns the pivot frame of the satellite with the given index.
func (sys *System) SatellitePivot(i int) xyz.NodeID {
	return sys.satellites[i].Pivot
}

// Belt returns the asteroid belt.
func (sys *System) Belt() *Belt {
	return sys.belt
}

// StarField returns the background star field.
func (sys *System) StarField() *StarField {
	return sys.stars
}

// Steps returns the number of steps taken so far.
func (sys *System) Steps() int {
	return sys.steps
}

// BodyByName returns the body or satellite with the given name, or nil.
func (sys *System) BodyByName(name string) *Body {
	for _, bd := range sys.bodies {
		if bd.Name() == name {
			return bd
		}
	}
	for _, st := range sys.satellites {
		if st.Name() == name {
			return st
		}
	}
	return nil
}
