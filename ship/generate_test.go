// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import (
	"errors"
	"testing"

	"cogentcore.org/core/base/metadata"
	"cogentcore.org/core/math32"
	"cogentcore.org/starship/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bareConfig is the scenario configuration: hull counts are exact
// because the rib, branch, greeble, and bevel passes that add faces
// are all off.
func bareConfig() *Config {
	c := DefaultConfig()
	c.Bevel = Fixed(false)
	c.Branches = Fixed(0)
	c.Density = Fixed[float32](0)
	c.Engines = Fixed(2)
	c.HullSegments = Fixed(6)
	c.Ribs = Fixed(false)
	return c
}

func TestGenerateDeterminism(t *testing.T) {
	a, err := Generate("42", nil)
	require.NoError(t, err)
	b, err := Generate("42", nil)
	require.NoError(t, err)
	assert.Equal(t, a.Vtxs, b.Vtxs)
	assert.Equal(t, a.Faces, b.Faces)
	assert.Equal(t, a.BBox, b.BBox)
	assert.Equal(t, a.Checksum(), b.Checksum())

	c, err := Generate("43", nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.Checksum(), c.Checksum())
}

func TestGenerateValidity(t *testing.T) {
	for _, seed := range []string{"42", "tug-7", "-9000", "freighter"} {
		msh, err := Generate(seed, nil)
		require.NoError(t, err, "seed %q", seed)
		require.NotEmpty(t, msh.Faces)
		for fi, f := range msh.Faces {
			assert.GreaterOrEqual(t, len(f.Vtx), 3, "seed %q face %d", seed, fi)
			assert.GreaterOrEqual(t, f.Role, mesh.Hull)
			assert.Less(t, f.Role, mesh.RoleN)
			for _, vi := range f.Vtx {
				require.GreaterOrEqual(t, vi, 0)
				require.Less(t, vi, len(msh.Vtxs), "seed %q face %d", seed, fi)
			}
		}
	}
}

// mirrorPairs checks that every vertex has a partner at the Y-mirrored
// position within eps.
func mirrorPairs(t *testing.T, msh *mesh.Mesh, eps float32) {
	t.Helper()
	for vi, v := range msh.Vtxs {
		want := math32.Vec3(v.X, -v.Y, v.Z)
		found := false
		for _, w := range msh.Vtxs {
			if w.DistanceTo(want) <= eps {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("vertex %d at %v has no mirror partner", vi, v)
		}
	}
}

func TestGenerateSymmetry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Symmetric = Fixed(true)
	cfg.SymmetricDetail = Fixed(true)
	for _, seed := range []string{"42", "tug-7"} {
		msh, err := Generate(seed, cfg)
		require.NoError(t, err)
		mirrorPairs(t, msh, 1e-6)
		axis, err := metadata.GetFromData[string](msh.Meta, "SymmetryAxis")
		require.NoError(t, err)
		assert.Equal(t, "Y", axis)
	}
}

// roleTwins checks that every non-hull face off the mirror plane has
// a face of the same role at the Y-mirrored center.
func roleTwins(t *testing.T, msh *mesh.Mesh, eps float32) {
	t.Helper()
	for fi, f := range msh.Faces {
		if f.Role == mesh.Hull {
			continue
		}
		ctr := msh.FaceCenter(fi)
		if math32.Abs(ctr.Y) <= eps {
			continue
		}
		found := false
		for mi, mf := range msh.Faces {
			if mi == fi || mf.Role != f.Role {
				continue
			}
			mc := msh.FaceCenter(mi)
			if math32.Abs(mc.X-ctr.X) <= eps &&
				math32.Abs(mc.Y+ctr.Y) <= eps &&
				math32.Abs(mc.Z-ctr.Z) <= eps {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("face %d role %v at %v has no mirrored twin", fi, f.Role, ctr)
		}
	}
}

func TestGenerateRoleSymmetry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Symmetric = Fixed(true)
	cfg.SymmetricDetail = Fixed(true)
	cfg.Density = Fixed[float32](0.9)
	for _, seed := range []string{"42", "tug-7", "freighter"} {
		msh, err := Generate(seed, cfg)
		require.NoError(t, err)
		roleTwins(t, msh, 1e-4)
	}
}

func TestGenerateHullOnlySymmetry(t *testing.T) {
	// asymmetric detail on a symmetric hull: hull vertices still pair
	cfg := bareConfig()
	cfg.Engines = Fixed(0)
	msh, err := Generate("42", cfg)
	require.NoError(t, err)
	mirrorPairs(t, msh, 1e-6)
}

func TestGenerateScenario42(t *testing.T) {
	msh, err := Generate("42", bareConfig())
	require.NoError(t, err)

	hullFaces, err := metadata.GetFromData[int](msh.Meta, "HullFaces")
	require.NoError(t, err)
	// 6 segments of 4 side quads plus the two caps
	assert.Equal(t, 26, hullFaces)

	engineFaces, err := metadata.GetFromData[int](msh.Meta, "EngineFaces")
	require.NoError(t, err)
	assert.Greater(t, engineFaces, 0)

	// only the rear cap faces -X, so 2 requested engines clamp to 1
	conds, err := metadata.GetFromData[[]Condition](msh.Meta, "Conditions")
	require.NoError(t, err)
	assert.Contains(t, conds, CondInsufficientEngineSites)

	mirrorPairs(t, msh, 1e-6)
}

func TestGenerateEngineClamp(t *testing.T) {
	cfg := bareConfig()
	cfg.Engines = Fixed(4)
	msh, err := Generate("42", cfg)
	require.NoError(t, err)
	conds, err := metadata.GetFromData[[]Condition](msh.Meta, "Conditions")
	require.NoError(t, err)
	assert.Equal(t, []Condition{CondInsufficientEngineSites}, conds)

	n := 0
	for _, f := range msh.Faces {
		if f.Role == mesh.Engine {
			n++
		}
	}
	assert.Greater(t, n, 0)
}

func TestGenerateDensityZero(t *testing.T) {
	cfg := bareConfig()
	msh, err := Generate("tug-7", cfg)
	require.NoError(t, err)
	greeble, err := metadata.GetFromData[int](msh.Meta, "GreebleFaces")
	require.NoError(t, err)
	assert.Zero(t, greeble)
	for _, f := range msh.Faces {
		assert.NotEqual(t, mesh.Greeble, f.Role)
	}
}

func TestGenerateSingleSegment(t *testing.T) {
	cfg := bareConfig()
	cfg.Engines = Fixed(0)
	cfg.HullSegments = Fixed(1)
	cfg.Symmetric = Fixed(false)
	msh, err := Generate("42", cfg)
	require.NoError(t, err)
	// the documented minimum: the bare primitive box
	assert.Len(t, msh.Faces, 6)
	assert.Len(t, msh.Vtxs, 8)
}

func TestGenerateInvalidSeed(t *testing.T) {
	_, err := Generate("   ", nil)
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestGenerateParamError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HullSegments = Fixed(99)
	_, err := Generate("42", cfg)
	var pe *ParamError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "HullSegments", pe.Field)
}

func TestGenerateMetadata(t *testing.T) {
	msh, err := Generate("tug-7", nil)
	require.NoError(t, err)

	text, err := metadata.GetFromData[string](msh.Meta, "SeedText")
	require.NoError(t, err)
	assert.Equal(t, "tug-7", text)

	seed, err := metadata.GetFromData[int64](msh.Meta, "Seed")
	require.NoError(t, err)
	want, err := NormalizeSeed("tug-7")
	require.NoError(t, err)
	assert.Equal(t, want, seed)

	p, err := metadata.GetFromData[Params](msh.Meta, "Params")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p.HullSegments, 3)
	assert.LessOrEqual(t, p.HullSegments, 6)

	assert.False(t, msh.BBox.IsEmpty())
}

func TestGenerateParallelRuns(t *testing.T) {
	// independent runs own their Source, so they can race freely
	seeds := []string{"42", "tug-7", "freighter", "42"}
	sums := make([]uint64, len(seeds))
	done := make(chan int)
	for i, seed := range seeds {
		go func(i int, seed string) {
			msh, err := Generate(seed, nil)
			if err == nil {
				sums[i] = msh.Checksum()
			}
			done <- i
		}(i, seed)
	}
	for range seeds {
		<-done
	}
	assert.Equal(t, sums[0], sums[3])
	assert.NotEqual(t, sums[0], sums[1])
	assert.NotZero(t, sums[2])
}
