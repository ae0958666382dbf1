// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "math"

// rndOrGlobal returns the optional single Rand, or the global source.
func rndOrGlobal(randOpt []Rand) Rand {
	if len(randOpt) == 0 {
		return NewGlobalRand()
	}
	return randOpt[0]
}

// Uniform returns a uniformly distributed float32 in the
// half-open interval [min, max).
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func Uniform(min, max float32, randOpt ...Rand) float32 {
	rnd := rndOrGlobal(randOpt)
	return min + rnd.Float32()*(max-min)
}

// UniformMeanRange returns a uniformly distributed float32 in the
// interval [mean - rng/2, mean + rng/2).
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func UniformMeanRange(mean, rng float32, randOpt ...Rand) float32 {
	rnd := rndOrGlobal(randOpt)
	return mean + (rnd.Float32()-0.5)*rng
}

// Angle returns a uniformly distributed angle in radians
// in the half-open interval [0, 2π).
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func Angle(randOpt ...Rand) float32 {
	rnd := rndOrGlobal(randOpt)
	a := float32(rnd.Float64() * 2 * math.Pi)
	if a >= 2*math.Pi { // float32 rounding of values just below 2π
		a = 0
	}
	return a
}
