// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

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

func TestRoundTripFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "body.yaml")
	in := body{"Saturn", 30}
	require.NoError(t, Save(&in, fn))

	var out body
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
}

func TestReadBytes(t *testing.T) {
	var out body
	require.NoError(t, ReadBytes(&out, []byte("name: Mars\norbitradius: 13\n")))
	assert.Equal(t, body{"Mars", 13}, out)
}
