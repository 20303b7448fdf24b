// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"slices"

	"cogentcore.org/core/math32"
)

// ExtrudeFace extrudes the given face along its normal by dist.
// The face itself becomes the moved cap, reusing its index and role,
// and one side quad per edge is appended connecting the old ring to
// the new one. Side faces inherit the cap's role; the returned slice
// holds their indices, in edge order, so callers can retag them.
// A dist of 0 is valid and duplicates the ring in place, which is how
// creases are made before scaling the cap.
func (m *Mesh) ExtrudeFace(fi int, dist float32) []int {
	old := slices.Clone(m.Faces[fi].Vtx)
	role := m.Faces[fi].Role
	off := m.FaceNormal(fi).MulScalar(dist)
	nv := len(old)
	newIdx := make([]int, nv)
	for i, vi := range old {
		newIdx[i] = m.AddVertex(m.Vtxs[vi].Add(off))
	}
	sides := make([]int, 0, nv)
	for i := 0; i < nv; i++ {
		j := (i + 1) % nv
		sides = append(sides, m.AddFace(role, old[i], old[j], newIdx[j], newIdx[i]))
	}
	m.Faces[fi].Vtx = newIdx
	return sides
}

// ScaleFace scales the face's vertices about the face center by a
// single factor. Vertices shared with neighboring faces move too.
func (m *Mesh) ScaleFace(fi int, s float32) {
	c := m.FaceCenter(fi)
	for _, vi := range m.Faces[fi].Vtx {
		m.Vtxs[vi] = c.Add(m.Vtxs[vi].Sub(c).MulScalar(s))
	}
}

// ScaleFaceAxes scales the face's vertices about the face center by
// separate factors along the face-frame X and Y axes, leaving the
// normal offset of each vertex unchanged.
func (m *Mesh) ScaleFaceAxes(fi int, sx, sy float32) {
	fr := m.FaceFrame(fi)
	for _, vi := range m.Faces[fi].Vtx {
		d := m.Vtxs[vi].Sub(fr.Center)
		m.Vtxs[vi] = fr.Pt(d.Dot(fr.X)*sx, d.Dot(fr.Y)*sy, d.Dot(fr.Z))
	}
}

// TranslateFace moves the face's vertices by delta.
func (m *Mesh) TranslateFace(fi int, delta math32.Vector3) {
	for _, vi := range m.Faces[fi].Vtx {
		m.Vtxs[vi].SetAdd(delta)
	}
}

// RotateFaceY rotates the face's vertices by the given angle in
// degrees about the world Y axis through the origin.
func (m *Mesh) RotateFaceY(fi int, degrees float32) {
	s, c := math32.Sincos(math32.DegToRad(degrees))
	for _, vi := range m.Faces[fi].Vtx {
		v := m.Vtxs[vi]
		m.Vtxs[vi].X = c*v.X + s*v.Z
		m.Vtxs[vi].Z = -s*v.X + c*v.Z
	}
}

// InsetFace duplicates the face ring in place and shrinks the cap
// about its center, leaving a ring of crease faces behind. Returns
// the crease face indices, as in [Mesh.ExtrudeFace].
func (m *Mesh) InsetFace(fi int, s float32) []int {
	sides := m.ExtrudeFace(fi, 0)
	m.ScaleFace(fi, s)
	return sides
}

// SubdivideGrid splits a quad face into an nx by ny grid of quad
// cells, interpolating the corners bilinearly. The parent face is
// rewritten as the first cell and the rest are appended; all cells
// inherit the parent's role and share their interior grid vertices.
// Returns the cell face indices in row-major order (x fastest), or
// nil if the face is not a quad. Interior boundary vertices are not
// stitched into neighboring faces, so subdividing a face that shares
// edges leaves T-junctions.
func (m *Mesh) SubdivideGrid(fi, nx, ny int) []int {
	if len(m.Faces[fi].Vtx) != 4 || nx < 1 || ny < 1 {
		return nil
	}
	old := slices.Clone(m.Faces[fi].Vtx)
	role := m.Faces[fi].Role
	p0 := m.Vtxs[old[0]]
	p1 := m.Vtxs[old[1]]
	p2 := m.Vtxs[old[2]]
	p3 := m.Vtxs[old[3]]

	grid := make([]int, (nx+1)*(ny+1))
	gi := func(i, j int) int { return j*(nx+1) + i }
	for j := 0; j <= ny; j++ {
		v := float32(j) / float32(ny)
		for i := 0; i <= nx; i++ {
			u := float32(i) / float32(nx)
			switch {
			case i == 0 && j == 0:
				grid[gi(i, j)] = old[0]
			case i == nx && j == 0:
				grid[gi(i, j)] = old[1]
			case i == nx && j == ny:
				grid[gi(i, j)] = old[2]
			case i == 0 && j == ny:
				grid[gi(i, j)] = old[3]
			default:
				lo := p0.MulScalar(1 - u).Add(p1.MulScalar(u))
				hi := p3.MulScalar(1 - u).Add(p2.MulScalar(u))
				grid[gi(i, j)] = m.AddVertex(lo.MulScalar(1 - v).Add(hi.MulScalar(v)))
			}
		}
	}

	cells := make([]int, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			vtx := []int{grid[gi(i, j)], grid[gi(i+1, j)], grid[gi(i+1, j+1)], grid[gi(i, j+1)]}
			if i == 0 && j == 0 {
				m.Faces[fi].Vtx = vtx
				cells = append(cells, fi)
			} else {
				cells = append(cells, m.AddFace(role, vtx...))
			}
		}
	}
	return cells
}

// ReflectY returns a mirrored copy of the mesh: every vertex with Y
// negated and every face winding reversed, so outward normals stay
// outward. Roles are preserved.
func (m *Mesh) ReflectY() *Mesh {
	c := &Mesh{
		Vtxs:  make([]math32.Vector3, len(m.Vtxs)),
		Faces: make([]Face, len(m.Faces)),
	}
	for i, v := range m.Vtxs {
		v.Y = -v.Y
		c.Vtxs[i] = v
	}
	for i, f := range m.Faces {
		vtx := make([]int, len(f.Vtx))
		for k, vi := range f.Vtx {
			vtx[len(f.Vtx)-1-k] = vi
		}
		c.Faces[i] = Face{Vtx: vtx, Role: f.Role}
	}
	return c
}

// DeleteFaces removes the given faces from the mesh, preserving the
// relative order of the remaining faces. Face indices shift down, so
// any previously saved indices are invalidated. Vertices are never
// removed here; [Assemble] drops the unreferenced ones.
func (m *Mesh) DeleteFaces(fis ...int) {
	if len(fis) == 0 {
		return
	}
	drop := make(map[int]bool, len(fis))
	for _, fi := range fis {
		drop[fi] = true
	}
	kept := m.Faces[:0]
	for i, f := range m.Faces {
		if !drop[i] {
			kept = append(kept, f)
		}
	}
	m.Faces = kept
}
