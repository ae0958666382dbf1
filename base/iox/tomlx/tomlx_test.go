// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	Name        string
	OrbitRadius float32
}

type table struct {
	Seed   int64
	Bodies []body
}

func TestRoundTripFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "system.toml")
	in := table{Seed: 5, Bodies: []body{{"Mercury", 6}, {"Venus", 8}}}
	require.NoError(t, Save(&in, fn))

	var out table
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
}

func TestReadBytesOverrides(t *testing.T) {
	out := table{Seed: 1}
	require.NoError(t, ReadBytes(&out, []byte("[[Bodies]]\nName = \"Earth\"\nOrbitRadius = 10\n")))
	assert.Equal(t, int64(1), out.Seed)
	require.Len(t, out.Bodies, 1)
	assert.Equal(t, "Earth", out.Bodies[0].Name)

	assert.Error(t, Open(&out, filepath.Join(t.TempDir(), "missing.toml")))
	assert.Error(t, ReadBytes(&out, []byte("Seed = [")))
}
