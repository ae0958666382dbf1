// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orrery

import (
	"fmt"
	"image/color"

	"cogentcore.org/orrery/base/errors"
	"cogentcore.org/orrery/base/reflectx"
	"cogentcore.org/orrery/math32"
	"cogentcore.org/orrery/shape"
)

// DefaultTilt is the orbital plane tilt shared by all of the
// planets in the default configuration.
const DefaultTilt = math32.Pi / 4

// Config is the static table that a [System] is built from.
type Config struct {

	// Star is the central star.
	Star StarConfig

	// Bodies are the bodies orbiting the star, in order.
	Bodies []BodyConfig

	// Rings are flat rings attached to bodies.
	Rings []RingConfig

	// Satellites are bodies orbiting other bodies.
	Satellites []SatelliteConfig

	// Belt is the asteroid belt.
	Belt BeltConfig

	// StarField is the background star field.
	StarField StarFieldConfig

	// Camera is the initial camera.
	Camera CameraConfig

	// Seed is the random seed used for the initial phases and the
	// generated geometry; 0 means a new seed based on the time.
	Seed int64 `flag:"seed" desc:"random seed (0 = time based)"`

	// LabelMargin is the gap between the top of a body and its label.
	LabelMargin float32 `default:"0.2"`

	// LabelSize is the font size of body labels, in pixels.
	LabelSize float32 `default:"40"`

	// Frames is the number of frames to run, or 0 to run until stopped.
	Frames int `flag:"frames" desc:"number of frames to run (0 = until interrupted)"`

	// FPS is the number of frames per second, or 0 to run without pacing.
	FPS float32 `default:"60" flag:"fps" desc:"frames per second (0 = unpaced)"`
}

// StarConfig describes the central star, which does not orbit anything.
type StarConfig struct {
	Name    string `default:"Sun"`
	Texture string `default:"8k_sun"`
	Size    float32 `default:"5"`

	// Spin is the self rotation about Y per step, in radians.
	Spin float32 `default:"0.001"`

	// LabelMargin is the gap between the top of the star and its label.
	LabelMargin float32 `default:"0.5"`

	// LabelSize is the font size of the star label, in pixels.
	LabelSize float32 `default:"50"`
}

// BodyConfig describes one body orbiting the star.
type BodyConfig struct {

	// Name identifies the body and is the text of its label.
	Name string

	// Texture is the texture key; if empty, the lower-cased Name is used.
	Texture string

	// OrbitRadius is the distance from the center of the orbit.
	OrbitRadius float32

	// Size is the radius of the body sphere.
	Size float32

	// Speed is the angle in radians the body advances along its
	// orbit each step. Its sign gives the direction.
	Speed float32

	// Tilt is the rotation of the orbital plane about X, in radians.
	Tilt float32

	// Segments is the number of sphere segments; 0 means [shape.SphereSegments].
	Segments int
}

// RingConfig describes a flat ring around a body, such as Saturn's.
type RingConfig struct {

	// Body is the name of the body the ring is attached to.
	Body string

	// Texture is the texture key of the ring.
	Texture string

	// Inner is the inner radius.
	Inner float32

	// Outer is the outer radius.
	Outer float32

	// Offset is the vertical offset from the body's equatorial plane.
	Offset float32

	// Opacity of the ring.
	Opacity float32

	// Segments is the number of angular segments; 0 means [shape.AnnulusSegments].
	Segments int
}

// SatelliteConfig describes a body orbiting another body, such as a moon.
type SatelliteConfig struct {

	// Host is the name of the body the satellite orbits.
	Host string

	// Name identifies the satellite.
	Name string

	// Texture is the texture key; if empty, the lower-cased Name is used.
	Texture string

	// Distance is the distance from the center of the host.
	Distance float32

	// Size is the radius of the satellite sphere.
	Size float32

	// Speed is the angle in radians the satellite advances each step.
	Speed float32

	// Tilt is the rotation of the orbital plane about X, in radians.
	Tilt float32

	// Segments is the number of sphere segments; 0 means [shape.SphereSegments].
	Segments int

	// Label gives the satellite a label like the bodies have.
	Label bool
}

// Body returns the satellite as a [BodyConfig].
func (sc *SatelliteConfig) Body() BodyConfig {
	return BodyConfig{Name: sc.Name, Texture: sc.Texture, OrbitRadius: sc.Distance, Size: sc.Size, Speed: sc.Speed, Tilt: sc.Tilt, Segments: sc.Segments}
}

// BeltConfig describes the asteroid belt.
type BeltConfig struct {
	Inner float32 `default:"15"`
	Outer float32 `default:"16.5"`
	Count int     `default:"2000"`

	// Tilt is the rotation of the belt plane about X, in radians.
	Tilt float32 `default:"0.7853982"`

	// Spin is the bulk rotation of the whole belt about Y per step.
	Spin float32 `default:"0.001"`

	// AsteroidSpin is the maximum spin of each asteroid about X and Y per step.
	AsteroidSpin float32 `default:"0.01"`

	// Color is the RGB color of the asteroids, as 0xRRGGBB.
	Color uint32 `default:"8947848"`

	// Segments is the number of sphere segments of each asteroid.
	Segments int `default:"6"`
}

// StarFieldConfig describes the background star field.
type StarFieldConfig struct {
	Count   int     `default:"4000"`
	Spread  float32 `default:"1000"`
	Size    float32 `default:"0.7"`
	Opacity float32 `default:"0.9"`
}

// CameraConfig is the initial camera pose. The camera controller
// takes it from there.
type CameraConfig struct {
	Pos    math32.Vector3
	Target math32.Vector3
	FOV    float32 `default:"60"`
	Near   float32 `default:"0.1"`
	Far    float32 `default:"1000"`
}

// DefaultConfig returns the configuration of the solar system: the
// Sun, eight planets, Saturn's ring, the Moon, the asteroid belt
// between Mars and Jupiter, and the background stars.
func DefaultConfig() *Config {
	cfg := &Config{}
	errors.Must(reflectx.SetFromDefaultTags(cfg))
	cfg.Bodies = []BodyConfig{
		{Name: "Mercury", Texture: "2k_mercury", OrbitRadius: 6, Size: 0.2, Speed: 0.02, Tilt: DefaultTilt},
		{Name: "Venus", Texture: "8k_venus_surface", OrbitRadius: 8, Size: 0.4, Speed: 0.015, Tilt: DefaultTilt},
		{Name: "Earth", Texture: "8k_earth_daymap", OrbitRadius: 10, Size: 0.9, Speed: 0.01, Tilt: DefaultTilt},
		{Name: "Mars", Texture: "8k_mars", OrbitRadius: 13, Size: 0.8, Speed: 0.008, Tilt: DefaultTilt},
		{Name: "Jupiter", Texture: "8k_jupiter", OrbitRadius: 20, Size: 2, Speed: 0.006, Tilt: DefaultTilt},
		{Name: "Saturn", Texture: "8k_saturn", OrbitRadius: 30, Size: 1.9, Speed: 0.005, Tilt: DefaultTilt},
		{Name: "Uranus", Texture: "2k_uranus", OrbitRadius: 50, Size: 1.5, Speed: 0.004, Tilt: DefaultTilt},
		{Name: "Neptune", Texture: "2k_neptune", OrbitRadius: 70, Size: 1.4, Speed: 0.003, Tilt: DefaultTilt},
	}
	cfg.Rings = []RingConfig{
		{Body: "Saturn", Texture: "8k_saturn_ring_alpha", Inner: 2.4, Outer: 3.2, Offset: -0.05, Opacity: 0.8},
	}
	cfg.Satellites = []SatelliteConfig{
		{Host: "Earth", Name: "Moon", Texture: "8k_moon", Distance: 1.5, Size: 0.2, Speed: 1e-7, Segments: 16},
	}
	cfg.Camera.Pos = math32.Vec3(15, -10, 20)
	return cfg
}

// Validate returns all of the problems with the configuration joined
// together, or nil if it can be built. Radius and size problems are
// [ConfigurationError]s.
func (cfg *Config) Validate() error {
	var errs []error
	add := func(what string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", what, err))
		}
	}
	add("star "+cfg.Star.Name, shape.CheckPositive("size", cfg.Star.Size))
	add("star "+cfg.Star.Name, checkFinite("spin", cfg.Star.Spin))

	names := map[string]bool{cfg.Star.Name: true}
	for i := range cfg.Bodies {
		bc := &cfg.Bodies[i]
		what := fmt.Sprintf("body %d %q", i, bc.Name)
		if names[bc.Name] {
			errs = append(errs, fmt.Errorf("%s: duplicate name", what))
		}
		names[bc.Name] = true
		add(what, shape.CheckPositive("orbit radius", bc.OrbitRadius))
		add(what, shape.CheckPositive("size", bc.Size))
		add(what, checkFinite("speed", bc.Speed))
		add(what, checkFinite("tilt", bc.Tilt))
	}
	for i := range cfg.Satellites {
		st := &cfg.Satellites[i]
		what := fmt.Sprintf("satellite %d %q", i, st.Name)
		if !names[st.Host] || st.Host == cfg.Star.Name {
			errs = append(errs, fmt.Errorf("%s: no body named %q to orbit", what, st.Host))
		}
		if names[st.Name] {
			errs = append(errs, fmt.Errorf("%s: duplicate name", what))
		}
		names[st.Name] = true
		add(what, shape.CheckPositive("distance", st.Distance))
		add(what, shape.CheckPositive("size", st.Size))
		add(what, checkFinite("speed", st.Speed))
		add(what, checkFinite("tilt", st.Tilt))
	}
	for i := range cfg.Rings {
		rc := &cfg.Rings[i]
		what := fmt.Sprintf("ring %d on %q", i, rc.Body)
		if !names[rc.Body] || rc.Body == cfg.Star.Name {
			errs = append(errs, fmt.Errorf("%s: no body named %q", what, rc.Body))
		}
		add(what, shape.CheckPositive("inner radius", rc.Inner))
		if rc.Outer <= rc.Inner {
			add(what, &ConfigurationError{Field: "outer radius", Value: rc.Outer, Reason: "must be greater than inner radius"})
		}
		add(what, checkFinite("offset", rc.Offset))
	}
	add("asteroid belt", shape.CheckPositive("inner radius", cfg.Belt.Inner))
	if cfg.Belt.Outer <= cfg.Belt.Inner {
		add("asteroid belt", &ConfigurationError{Field: "outer radius", Value: cfg.Belt.Outer, Reason: "must be greater than inner radius"})
	}
	add("asteroid belt", checkFinite("tilt", cfg.Belt.Tilt))
	add("asteroid belt", checkFinite("spin", cfg.Belt.Spin))
	add("asteroid belt", checkFinite("asteroid spin", cfg.Belt.AsteroidSpin))
	add("star field", shape.CheckPositive("spread", cfg.StarField.Spread))
	if cfg.FPS < 0 {
		errs = append(errs, fmt.Errorf("fps %g must not be negative", cfg.FPS))
	}
	return errors.Join(errs...)
}

func checkFinite(field string, v float32) error {
	if math32.IsFinite(v) {
		return nil
	}
	return &ConfigurationError{Field: field, Value: v, Reason: "must be finite"}
}

// hexColor returns the opaque color for the given 0xRRGGBB value.
func hexColor(hex uint32) color.RGBA {
	return color.RGBA{uint8(hex >> 16), uint8(hex >> 8), uint8(hex), 255}
}
