// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamText(t *testing.T) {
	b, err := Fixed[float32](1.5).MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "1.5", string(b))

	b, err = Random[int]().MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "random", string(b))

	var f Param[float32]
	assert.NoError(t, f.UnmarshalText([]byte("0.25")))
	assert.Equal(t, Fixed[float32](0.25), f)
	assert.NoError(t, f.UnmarshalText([]byte("Random")))
	assert.True(t, f.Random)

	var n Param[int]
	assert.NoError(t, n.UnmarshalText([]byte(" 3 ")))
	assert.Equal(t, Fixed(3), n)
	assert.Error(t, n.UnmarshalText([]byte("three")))

	var bp Param[bool]
	assert.NoError(t, bp.UnmarshalText([]byte("true")))
	assert.Equal(t, Fixed(true), bp)
}

func TestConfigDefaults(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, Fixed(true), c.Bevel)
	assert.True(t, c.Branches.Random)
	assert.True(t, c.Density.Random)
	assert.Equal(t, Fixed[float32](0.15), c.DepthLimit)
	assert.True(t, c.Engines.Random)
	assert.True(t, c.HullSegments.Random)
	assert.Equal(t, Fixed(true), c.Ribs)
	assert.Equal(t, Fixed(true), c.Symmetric)
	assert.Equal(t, Fixed(false), c.SymmetricDetail)
	assert.Equal(t, Fixed[float32](1.5), c.TaperHi)
	assert.Equal(t, Fixed[float32](1.2), c.TaperLo)
}
