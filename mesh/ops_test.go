// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestExtrudeFace(t *testing.T) {
	m := unitQuad()
	sides := m.ExtrudeFace(0, 2)

	assert.Equal(t, 8, len(m.Vtxs))
	assert.Equal(t, 5, len(m.Faces))
	assert.Equal(t, []int{1, 2, 3, 4}, sides)

	// cap moved along +Z, reusing its face index
	assert.Equal(t, []int{4, 5, 6, 7}, m.Faces[0].Vtx)
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 0, 2), m.Vtxs[4])
	tolAssertEqualVector(t, standardTol, math32.Vec3(0.5, 0.5, 2), m.FaceCenter(0))
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 0, 1), m.FaceNormal(0))

	// side quads face outward
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, -1, 0), m.FaceNormal(sides[0]))
	tolAssertEqualVector(t, standardTol, math32.Vec3(1, 0, 0), m.FaceNormal(sides[1]))
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 1, 0), m.FaceNormal(sides[2]))
	tolAssertEqualVector(t, standardTol, math32.Vec3(-1, 0, 0), m.FaceNormal(sides[3]))

	// sides inherit the cap role
	for _, fi := range sides {
		assert.Equal(t, Hull, m.Faces[fi].Role)
	}
}

func TestScaleFace(t *testing.T) {
	m := unitQuad()
	m.ScaleFace(0, 2)

	tolAssertEqualVector(t, standardTol, math32.Vec3(-0.5, -0.5, 0), m.Vtxs[0])
	tolAssertEqualVector(t, standardTol, math32.Vec3(1.5, 1.5, 0), m.Vtxs[2])
	tolAssertEqualVector(t, standardTol, math32.Vec3(0.5, 0.5, 0), m.FaceCenter(0))
}

func TestScaleFaceAxes(t *testing.T) {
	m := unitQuad()
	m.ScaleFaceAxes(0, 2, 3)

	tolAssertEqualVector(t, standardTol, math32.Vec3(-0.5, -1, 0), m.Vtxs[0])
	tolAssertEqualVector(t, standardTol, math32.Vec3(1.5, 2, 0), m.Vtxs[2])
}

func TestTranslateFace(t *testing.T) {
	m := unitQuad()
	m.TranslateFace(0, math32.Vec3(0, 0, 5))
	tolAssertEqualVector(t, standardTol, math32.Vec3(0.5, 0.5, 5), m.FaceCenter(0))
}

func TestRotateFaceY(t *testing.T) {
	m := unitQuad()
	m.RotateFaceY(0, 90)

	// (1,0,0) lands on (0,0,-1); Y is untouched
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 0, -1), m.Vtxs[1])
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 1, -1), m.Vtxs[2])
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 0, 0), m.Vtxs[0])
}

func TestInsetFace(t *testing.T) {
	m := unitQuad()
	creases := m.InsetFace(0, 0.5)

	assert.Equal(t, 4, len(creases))
	assert.Equal(t, 5, len(m.Faces))
	tolAssertEqualVector(t, standardTol, math32.Vec3(0.25, 0.25, 0), m.Vtxs[m.Faces[0].Vtx[0]])
	tolAssertEqualVector(t, standardTol, math32.Vec3(0.5, 0.5, 0), m.FaceCenter(0))
}

func TestSubdivideGrid(t *testing.T) {
	m := unitQuad()
	cells := m.SubdivideGrid(0, 2, 2)

	assert.Equal(t, 4, len(cells))
	assert.Equal(t, 0, cells[0])
	assert.Equal(t, 9, len(m.Vtxs))
	assert.Equal(t, 4, len(m.Faces))

	// corners are reused, not duplicated
	assert.Equal(t, 0, m.Faces[cells[0]].Vtx[0])
	assert.Equal(t, 1, m.Faces[cells[1]].Vtx[1])

	// interior grid vertices are shared between neighboring cells
	center := m.Faces[cells[0]].Vtx[2]
	assert.Equal(t, center, m.Faces[cells[1]].Vtx[3])
	assert.Equal(t, center, m.Faces[cells[2]].Vtx[1])
	assert.Equal(t, center, m.Faces[cells[3]].Vtx[0])
	tolAssertEqualVector(t, standardTol, math32.Vec3(0.5, 0.5, 0), m.Vtxs[center])

	for _, ci := range cells {
		tolassert.EqualTol(t, 0.25, m.FaceArea(ci), standardTol)
		tolAssertEqualVector(t, standardTol, math32.Vec3(0, 0, 1), m.FaceNormal(ci))
	}
}

func TestSubdivideGridNonQuad(t *testing.T) {
	m := New()
	m.AddFace(Hull,
		m.AddVertex(math32.Vec3(0, 0, 0)),
		m.AddVertex(math32.Vec3(1, 0, 0)),
		m.AddVertex(math32.Vec3(0, 1, 0)))
	assert.Nil(t, m.SubdivideGrid(0, 2, 2))
}

func TestReflectY(t *testing.T) {
	m := New()
	m.AddFace(Greeble,
		m.AddVertex(math32.Vec3(0, 1, 0)),
		m.AddVertex(math32.Vec3(1, 2, 0)),
		m.AddVertex(math32.Vec3(0, 3, 1)))
	n := m.FaceNormal(0)

	r := m.ReflectY()
	assert.Equal(t, Greeble, r.Faces[0].Role)
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, -1, 0), r.Vtxs[0])
	tolAssertEqualVector(t, standardTol, math32.Vec3(1, -2, 0), r.Vtxs[1])

	// winding reversal keeps the normal outward: the reflected normal
	// is the mirror image of the original
	rn := r.FaceNormal(0)
	tolAssertEqualVector(t, standardTol, math32.Vec3(n.X, -n.Y, n.Z), rn)
}

func TestDeleteFaces(t *testing.T) {
	m := unitQuad()
	m.SubdivideGrid(0, 2, 2)
	m.DeleteFaces(1, 3)

	assert.Equal(t, 2, len(m.Faces))
	// remaining faces keep their relative order
	assert.Equal(t, 0, m.Faces[0].Vtx[0])
}
