// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSysRandSeeded(t *testing.T) {
	a := NewSysRand(42)
	b := NewSysRand(42)
	for range 100 {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	a.Seed(7)
	b.Seed(7)
	assert.Equal(t, a.Int63(), b.Int63())
	assert.Equal(t, a.Intn(10), b.Intn(10))

	g := NewGlobalRand()
	g.Seed(3)
	assert.NotNil(t, g.Rand)
}

func TestNewSeededRand(t *testing.T) {
	_, seed := NewSeededRand(0)
	assert.NotZero(t, seed)
	r, seed := NewSeededRand(11)
	assert.Equal(t, int64(11), seed)
	assert.Equal(t, NewSysRand(11).Float32(), r.Float32())
}

func TestUniform(t *testing.T) {
	rnd := NewSysRand(1)
	for range 10000 {
		v := Uniform(0.8, 1.0, rnd)
		assert.GreaterOrEqual(t, v, float32(0.8))
		assert.LessOrEqual(t, v, float32(1.0))

		m := UniformMeanRange(0, 0.4, rnd)
		assert.GreaterOrEqual(t, m, float32(-0.2))
		assert.LessOrEqual(t, m, float32(0.2))

		a := Angle(rnd)
		assert.GreaterOrEqual(t, a, float32(0))
		assert.Less(t, a, float32(2*math.Pi))
	}
	assert.Equal(t, float32(5), Uniform(5, 5))
}
