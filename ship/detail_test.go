// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/starship/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// detailFace returns a mesh holding one w by h quad centered on the
// origin in the XY plane, facing +Z.
func detailFace(w, h float32) *mesh.Mesh {
	m := mesh.New()
	hw, hh := w/2, h/2
	m.AddFace(mesh.Hull,
		m.AddVertex(math32.Vec3(-hw, -hh, 0)),
		m.AddVertex(math32.Vec3(hw, -hh, 0)),
		m.AddVertex(math32.Vec3(hw, hh, 0)),
		m.AddVertex(math32.Vec3(-hw, hh, 0)))
	return m
}

func TestAddTube(t *testing.T) {
	sub := mesh.New()
	addTube(sub, mesh.Greeble, math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0), 2, 0.5, 8)

	assert.Equal(t, 16, len(sub.Vtxs))
	require.Equal(t, 10, len(sub.Faces))
	for fi := range sub.Faces {
		assert.Equal(t, mesh.Greeble, sub.Faces[fi].Role)
	}

	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 0, -1), sub.FaceNormal(0))
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 0, 1), sub.FaceNormal(9))
	for fi := 1; fi < 9; fi++ {
		n := sub.FaceNormal(fi)
		c := sub.FaceCenter(fi)
		tolassert.EqualTol(t, 0, n.Z, standardTol)
		assert.Greater(t, n.X*c.X+n.Y*c.Y, float32(0))
	}
}

func TestAddCone(t *testing.T) {
	sub := mesh.New()
	addCone(sub, mesh.Greeble, math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0), 2, 0.5, 8)

	assert.Equal(t, 9, len(sub.Vtxs))
	require.Equal(t, 8, len(sub.Faces))
	for fi := range sub.Faces {
		n := sub.FaceNormal(fi)
		c := sub.FaceCenter(fi)
		assert.Greater(t, n.Z, float32(0))
		assert.Greater(t, n.X*c.X+n.Y*c.Y, float32(0))
	}
}

func TestBuildAntenna(t *testing.T) {
	hull := detailFace(2, 2)
	sub := buildAntenna(hull, 0)

	assert.Equal(t, 9, len(sub.Vtxs))
	assert.Equal(t, 8, len(sub.Faces))
	for fi := range sub.Faces {
		assert.Equal(t, mesh.Greeble, sub.Faces[fi].Role)
	}

	// spike as tall as the face's short extent
	top := float32(0)
	for _, v := range sub.Vtxs {
		top = math32.Max(top, v.Z)
	}
	tolassert.EqualTol(t, 2, top, standardTol)
}

func TestBuildDome(t *testing.T) {
	hull := detailFace(2, 2)
	sub := buildDome(hull, 0)

	assert.Equal(t, 4*8+1, len(sub.Vtxs))
	assert.Equal(t, 3*8+8, len(sub.Faces))
	for _, v := range sub.Vtxs {
		tolassert.EqualTol(t, 1, v.Length(), standardTol)
		assert.GreaterOrEqual(t, v.Z, float32(0))
	}
}

func TestBuildDisc(t *testing.T) {
	hull := detailFace(2, 2)
	sub := buildDisc(hull, 0)

	assert.Equal(t, discSegs, len(sub.Vtxs))
	require.Equal(t, 1, len(sub.Faces))
	assert.Equal(t, mesh.Glow, sub.Faces[0].Role)
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 0, 1), sub.FaceNormal(0))
	for _, v := range sub.Vtxs {
		tolassert.EqualTol(t, 0.04, v.Z, standardTol)
	}
}

func TestBuildGrid(t *testing.T) {
	seed := int64(31)
	hull := detailFace(2, 2)
	p := &Params{DepthLimit: 0.15}
	sub := buildGrid(hull, 0, p, NewSource(seed))

	// replay the draws: one cut count, one depth, a flip per cell
	ref := NewSource(seed)
	k := ref.IntRange(2, 4)
	ref.Uniform(0.2, 1)
	raised := 0
	for i := 0; i < (k+1)*(k+1); i++ {
		if ref.Bool(0.5) {
			raised++
		}
	}

	// each raised cell keeps its cap plus four crease faces from the
	// inset and four sides from the extrude; flat cells are dropped
	// from the submesh
	assert.Equal(t, 9*raised, len(sub.Faces))
	for fi := range sub.Faces {
		assert.Equal(t, mesh.Greeble, sub.Faces[fi].Role)
	}

	// raised detail stays within the depth limit off the face
	limit := p.DepthLimit * 2
	for _, f := range sub.Faces {
		for _, vi := range f.Vtx {
			z := sub.Vtxs[vi].Z
			assert.GreaterOrEqual(t, z, float32(-1e-5))
			assert.LessOrEqual(t, z, limit+1e-5)
		}
	}
}

func TestBuildTurrets(t *testing.T) {
	seed := int64(8)
	hull := detailFace(4, 4)
	src := NewSource(seed)
	sub := buildTurrets(hull, 0, src)

	ref := NewSource(seed)
	hs := ref.IntRange(1, 2)
	vs := ref.IntRange(1, 2)
	for i := 0; i < hs*vs; i++ {
		ref.IntRange(-45, 45)
	}

	// a turret is an 18 face base drum plus a 10 face barrel
	assert.Equal(t, 28*hs*vs, len(sub.Faces))
	assert.Equal(t, ref.Float(), src.Float())
}

func TestBuildCylinders(t *testing.T) {
	seed := int64(16)
	hull := detailFace(4, 4)
	src := NewSource(seed)
	sub := buildCylinders(hull, 0, src)

	ref := NewSource(seed)
	hs := ref.IntRange(1, 3)
	vs := ref.IntRange(1, 3)
	segs := ref.IntRange(6, 12)

	assert.Equal(t, (segs+2)*hs*vs, len(sub.Faces))
	assert.Equal(t, ref.Float(), src.Float())
}

func TestDetailBaseQuad(t *testing.T) {
	hull := detailFace(2, 1)
	sub, f0 := detailBase(hull, 0)
	assert.Equal(t, 4, len(sub.Faces[f0].Vtx))
	tolAssertEqualVector(t, standardTol, hull.FaceNormal(0), sub.FaceNormal(f0))
	tolAssertEqualVector(t, standardTol, hull.FaceCenter(0), sub.FaceCenter(f0))
	assert.Equal(t, hull.Vtxs[0], sub.Vtxs[0])
}

func TestDetailBaseOctagon(t *testing.T) {
	// non-quad faces fall back to the frame rectangle
	m := mesh.New()
	vtx := make([]int, 8)
	for i := 0; i < 8; i++ {
		s, c := math32.Sincos(2 * math32.Pi * float32(i) / 8)
		vtx[i] = m.AddVertex(math32.Vec3(c, s, 0))
	}
	m.AddFace(mesh.Hull, vtx...)

	sub, f0 := detailBase(m, 0)
	require.Equal(t, 4, len(sub.Faces[f0].Vtx))
	tolAssertEqualVector(t, standardTol, m.FaceNormal(0), sub.FaceNormal(f0))
	tolAssertEqualVector(t, standardTol, m.FaceCenter(0), sub.FaceCenter(f0))
}
