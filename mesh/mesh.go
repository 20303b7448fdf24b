// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides a compact indexed polygon mesh for procedural
// model generation, with the topological operations needed to grow and
// decorate hulls (extrusion, in-plane face scaling, grid subdivision,
// insetting, reflection), and an [Assemble] step that welds a set of
// submeshes into one final mesh with a bounding box.
//
// Faces are general polygons (triangles, quads, or larger rings) wound
// counter-clockwise when viewed from outside, and each carries a
// material [Role] so that downstream consumers (exporters, scene
// adapters) can bind real materials without the generator knowing
// anything about rendering.
//
// The operation set is a small general-purpose kernel, deliberately
// broader than what any one generator stage reaches for: ops such as
// [Mesh.ScaleFaceAxes] and [Mesh.Clone] are part of the public surface
// for callers building their own stages.
package mesh

//go:generate core generate

import (
	"cogentcore.org/core/base/metadata"
	"cogentcore.org/core/math32"
)

// Face is one polygonal face of a [Mesh]: an ordered ring of vertex
// indices wound counter-clockwise as seen from outside, plus the
// material [Role] it renders with.
type Face struct {

	// Vtx are indices into [Mesh.Vtxs], in winding order.
	Vtx []int

	// Role is the material role this face renders with.
	Role Role
}

// Mesh is an indexed polygon mesh with per-face material roles.
// Generator stages each build their own Mesh and [Assemble] merges
// them into the final artifact. BBox and Meta are only populated by
// [Assemble]; working meshes leave them zero.
type Mesh struct {

	// Vtxs are the vertex positions.
	Vtxs []math32.Vector3

	// Faces index into Vtxs.
	Faces []Face

	// BBox is the axis-aligned bounding box over all referenced vertices.
	BBox math32.Box3

	// Meta holds generation metadata such as the seed, the resolved
	// parameters, and any non-fatal conditions.
	Meta metadata.Data
}

// New returns a new empty Mesh.
func New() *Mesh {
	return &Mesh{}
}

// AddVertex appends a vertex position and returns its index.
func (m *Mesh) AddVertex(pt math32.Vector3) int {
	m.Vtxs = append(m.Vtxs, pt)
	return len(m.Vtxs) - 1
}

// AddFace appends a face with the given role and vertex indices,
// returning its index.
func (m *Mesh) AddFace(role Role, vtx ...int) int {
	m.Faces = append(m.Faces, Face{Vtx: vtx, Role: role})
	return len(m.Faces) - 1
}

// Clone returns a deep copy of the mesh. Meta is shallow-copied.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Vtxs:  make([]math32.Vector3, len(m.Vtxs)),
		Faces: make([]Face, len(m.Faces)),
		BBox:  m.BBox,
	}
	copy(c.Vtxs, m.Vtxs)
	for i, f := range m.Faces {
		vtx := make([]int, len(f.Vtx))
		copy(vtx, f.Vtx)
		c.Faces[i] = Face{Vtx: vtx, Role: f.Role}
	}
	c.Meta.Copy(m.Meta)
	return c
}

// FaceCenter returns the mean of the face's vertex positions.
func (m *Mesh) FaceCenter(fi int) math32.Vector3 {
	f := m.Faces[fi]
	var c math32.Vector3
	for _, vi := range f.Vtx {
		c.SetAdd(m.Vtxs[vi])
	}
	return c.MulScalar(1 / float32(len(f.Vtx)))
}

// FaceNormal returns the unit normal of the face, computed with
// Newell's method so that non-planar rings still get a stable result.
// Returns the zero vector for degenerate faces.
func (m *Mesh) FaceNormal(fi int) math32.Vector3 {
	f := m.Faces[fi]
	var n math32.Vector3
	for i, vi := range f.Vtx {
		a := m.Vtxs[vi]
		b := m.Vtxs[f.Vtx[(i+1)%len(f.Vtx)]]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	lsq := n.LengthSquared()
	if lsq == 0 {
		return math32.Vector3{}
	}
	return n.MulScalar(1 / math32.Sqrt(lsq))
}

// FaceArea returns the area of the face (half the length of the
// Newell normal, exact for planar polygons).
func (m *Mesh) FaceArea(fi int) float32 {
	f := m.Faces[fi]
	var n math32.Vector3
	for i, vi := range f.Vtx {
		a := m.Vtxs[vi]
		b := m.Vtxs[f.Vtx[(i+1)%len(f.Vtx)]]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return 0.5 * n.Length()
}

// FaceAspect returns the aspect ratio of the face: its longer frame
// extent over its shorter one, always >= 1. Extents are measured in
// the face frame, so chamfered rings with short corner edges still
// report the shape of the face as a whole. A face with a zero extent
// returns Infinity.
func (m *Mesh) FaceAspect(fi int) float32 {
	w, h := m.FaceSize(fi)
	lo := math32.Min(w, h)
	hi := math32.Max(w, h)
	if lo <= 0 {
		return math32.Infinity
	}
	return hi / lo
}

// Frame is a face-local orthonormal coordinate frame: X along the
// longest face edge, Z the outward face normal, Y = Z cross X, with
// the origin at the face center.
type Frame struct {
	Center math32.Vector3
	X      math32.Vector3
	Y      math32.Vector3
	Z      math32.Vector3
}

// FaceFrame returns the face-local [Frame] of the given face.
// The longest-edge rule keeps the frame axis-aligned with the panel
// shape even on chamfered rings, where the first edge may be a short
// corner diagonal.
func (m *Mesh) FaceFrame(fi int) Frame {
	f := m.Faces[fi]
	n := len(f.Vtx)
	best := 0
	bl := float32(-1)
	for i := 0; i < n; i++ {
		el := m.Vtxs[f.Vtx[(i+1)%n]].Sub(m.Vtxs[f.Vtx[i]]).LengthSquared()
		if el > bl {
			bl = el
			best = i
		}
	}
	fr := Frame{Center: m.FaceCenter(fi), Z: m.FaceNormal(fi)}
	fr.X = m.Vtxs[f.Vtx[(best+1)%n]].Sub(m.Vtxs[f.Vtx[best]]).Normal()
	fr.Y = fr.Z.Cross(fr.X)
	return fr
}

// FaceSize returns the width and height of the face: its extents
// along the [FaceFrame] X and Y axes.
func (m *Mesh) FaceSize(fi int) (w, h float32) {
	fr := m.FaceFrame(fi)
	f := m.Faces[fi]
	minx, maxx := math32.Infinity, -math32.Infinity
	miny, maxy := math32.Infinity, -math32.Infinity
	for _, vi := range f.Vtx {
		d := m.Vtxs[vi].Sub(fr.Center)
		x := d.Dot(fr.X)
		y := d.Dot(fr.Y)
		minx = math32.Min(minx, x)
		maxx = math32.Max(maxx, x)
		miny = math32.Min(miny, y)
		maxy = math32.Max(maxy, y)
	}
	return maxx - minx, maxy - miny
}

// Pt returns the world position at the given face-frame coordinates.
func (fr Frame) Pt(x, y, z float32) math32.Vector3 {
	p := fr.Center
	p.SetAdd(fr.X.MulScalar(x))
	p.SetAdd(fr.Y.MulScalar(y))
	p.SetAdd(fr.Z.MulScalar(z))
	return p
}
