// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/starship/mesh"
)

// Detail builders decorate one hull face each, emitting a standalone
// submesh in the face's local frame that [mesh.Assemble] welds back
// onto the hull. The hull face itself is never cut; raised detail
// simply sits on it, which keeps the hull watertight no matter what
// the builders do.

const (
	antennaSegs = 8
	barrelSegs  = 8
	turretSegs  = 16
	discSegs    = 32

	// discLift raises glow discs off their face by this fraction of
	// the detail size so they never z-fight with the hull.
	discLift = 0.02
)

// detailBase starts a submesh for the given hull face: a copy of the
// face itself when it is a quad, otherwise its frame rectangle, which
// covers chamfered caps within the bevel width. The copy keeps the
// face's role.
func detailBase(hull *mesh.Mesh, fi int) (*mesh.Mesh, int) {
	sub := mesh.New()
	f := hull.Faces[fi]
	if len(f.Vtx) == 4 {
		vtx := make([]int, 4)
		for i, vi := range f.Vtx {
			vtx[i] = sub.AddVertex(hull.Vtxs[vi])
		}
		return sub, sub.AddFace(f.Role, vtx...)
	}
	fr := hull.FaceFrame(fi)
	w, h := hull.FaceSize(fi)
	hw, hh := w/2, h/2
	return sub, sub.AddFace(f.Role,
		sub.AddVertex(fr.Pt(-hw, -hh, 0)),
		sub.AddVertex(fr.Pt(hw, -hh, 0)),
		sub.AddVertex(fr.Pt(hw, hh, 0)),
		sub.AddVertex(fr.Pt(-hw, hh, 0)))
}

// addTube appends a closed cylinder to sub: segs sides from base along
// the unit axis, with u a unit vector perpendicular to axis seeding
// the ring basis. Rings wind counter-clockwise about the axis so all
// faces point outward.
func addTube(sub *mesh.Mesh, role mesh.Role, base, axis, u math32.Vector3, length, radius float32, segs int) {
	v := axis.Cross(u)
	top := base.Add(axis.MulScalar(length))
	r0 := make([]int, segs)
	r1 := make([]int, segs)
	for i := 0; i < segs; i++ {
		s, c := math32.Sincos(2 * math32.Pi * float32(i) / float32(segs))
		off := u.MulScalar(c * radius).Add(v.MulScalar(s * radius))
		r0[i] = sub.AddVertex(base.Add(off))
		r1[i] = sub.AddVertex(top.Add(off))
	}
	bottom := make([]int, segs)
	for i, vi := range r0 {
		bottom[segs-1-i] = vi
	}
	sub.AddFace(role, bottom...)
	for i := 0; i < segs; i++ {
		j := (i + 1) % segs
		sub.AddFace(role, r0[i], r0[j], r1[j], r1[i])
	}
	sub.AddFace(role, r1...)
}

// addCone appends an open cone from a base ring on the face up to an
// apex along the axis. No base cap; the cone sits on the hull.
func addCone(sub *mesh.Mesh, role mesh.Role, base, axis, u math32.Vector3, height, radius float32, segs int) {
	v := axis.Cross(u)
	apex := sub.AddVertex(base.Add(axis.MulScalar(height)))
	ring := make([]int, segs)
	for i := 0; i < segs; i++ {
		s, c := math32.Sincos(2 * math32.Pi * float32(i) / float32(segs))
		ring[i] = sub.AddVertex(base.Add(u.MulScalar(c * radius)).Add(v.MulScalar(s * radius)))
	}
	for i := 0; i < segs; i++ {
		j := (i + 1) % segs
		sub.AddFace(role, ring[i], ring[j], apex)
	}
}

// buildAntenna raises a thin spike from the face center, as tall as
// the face's short extent.
func buildAntenna(hull *mesh.Mesh, fi int) *mesh.Mesh {
	fr := hull.FaceFrame(fi)
	w, h := hull.FaceSize(fi)
	size := math32.Min(w, h)
	sub := mesh.New()
	addCone(sub, Classify(StageGreeble, LocalBody), fr.Center, fr.Z, fr.X, size, size/4, antennaSegs)
	return sub
}

// buildDome sets a half uv-sphere on the face center, 8 segments by 4
// elevation bands.
func buildDome(hull *mesh.Mesh, fi int) *mesh.Mesh {
	const segs, bands = 8, 4
	fr := hull.FaceFrame(fi)
	w, h := hull.FaceSize(fi)
	radius := math32.Min(w, h) / 2
	role := Classify(StageGreeble, LocalBody)
	sub := mesh.New()

	rings := make([][]int, bands)
	for k := 0; k < bands; k++ {
		se, ce := math32.Sincos(float32(k) * (math32.Pi / 2) / bands)
		rr, z := radius*ce, radius*se
		ring := make([]int, segs)
		for i := 0; i < segs; i++ {
			s, c := math32.Sincos(2 * math32.Pi * float32(i) / float32(segs))
			ring[i] = sub.AddVertex(fr.Pt(rr*c, rr*s, z))
		}
		rings[k] = ring
	}
	pole := sub.AddVertex(fr.Pt(0, 0, radius))
	for k := 0; k < bands-1; k++ {
		lo, hi := rings[k], rings[k+1]
		for i := 0; i < segs; i++ {
			j := (i + 1) % segs
			sub.AddFace(role, lo[i], lo[j], hi[j], hi[i])
		}
	}
	top := rings[bands-1]
	for i := 0; i < segs; i++ {
		j := (i + 1) % segs
		sub.AddFace(role, top[i], top[j], pole)
	}
	return sub
}

// buildDisc lays an emissive disc just above the face center.
func buildDisc(hull *mesh.Mesh, fi int) *mesh.Mesh {
	fr := hull.FaceFrame(fi)
	w, h := hull.FaceSize(fi)
	size := math32.Min(w, h)
	radius := size / 2
	sub := mesh.New()
	ring := make([]int, discSegs)
	for i := 0; i < discSegs; i++ {
		s, c := math32.Sincos(2 * math32.Pi * float32(i) / float32(discSegs))
		ring[i] = sub.AddVertex(fr.Pt(radius*c, radius*s, discLift*size))
	}
	sub.AddFace(Classify(StageGreeble, LocalGlowFace), ring...)
	return sub
}

// buildGrid greebles the face with a grid of raised panel cells. One
// cut count and one depth draw per face, then a coin flip per cell;
// raised cells inset a border crease and extrude the inner panel,
// flat cells are dropped from the submesh so only the raised panels
// remain, sitting on the intact hull face. Depth is capped by
// DepthLimit times the face's short extent.
func buildGrid(hull *mesh.Mesh, fi int, p *Params, src *Source) *mesh.Mesh {
	k := src.IntRange(2, 4)
	w, h := hull.FaceSize(fi)
	depth := src.Uniform(0.2, 1) * p.DepthLimit * math32.Min(w, h)
	sub, f0 := detailBase(hull, fi)
	cells := sub.SubdivideGrid(f0, k+1, k+1)
	var flat []int
	for _, ci := range cells {
		if src.Bool(0.5) {
			sub.Faces[ci].Role = Classify(StageGreeble, LocalRaised)
			sub.InsetFace(ci, 0.8)
			sub.ExtrudeFace(ci, depth)
		} else {
			flat = append(flat, ci)
		}
	}
	sub.DeleteFaces(flat...)
	return sub
}

// buildTurrets mounts a small grid of gun turrets on the face: a squat
// base drum and a barrel tilted by a per-turret aim draw.
func buildTurrets(hull *mesh.Mesh, fi int, src *Source) *mesh.Mesh {
	hs := src.IntRange(1, 2)
	vs := src.IntRange(1, 2)
	fr := hull.FaceFrame(fi)
	w, h := hull.FaceSize(fi)
	size := 0.5 * math32.Min(w/float32(hs+2), h/float32(vs+2))
	role := Classify(StageGreeble, LocalBody)
	sub := mesh.New()
	for j := 0; j < vs; j++ {
		for i := 0; i < hs; i++ {
			aim := src.IntRange(-45, 45)
			px := w * (float32(i+1)/float32(hs+1) - 0.5)
			py := h * (float32(j+1)/float32(vs+1) - 0.5)
			pos := fr.Pt(px, py, 0)
			addTube(sub, role, pos, fr.Z, fr.X, 0.2*size, size, turretSegs)
			s, c := math32.Sincos(math32.DegToRad(float32(aim)))
			dir := fr.Z.MulScalar(c).Add(fr.Y.MulScalar(s))
			addTube(sub, role, pos.Add(fr.Z.MulScalar(0.1*size)), dir, fr.X, size, 0.25*size, barrelSegs)
		}
	}
	return sub
}

// buildCylinders lays a grid of pipes across the face, half embedded,
// lying along the face's short axis.
func buildCylinders(hull *mesh.Mesh, fi int, src *Source) *mesh.Mesh {
	hs := src.IntRange(1, 3)
	vs := src.IntRange(1, 3)
	segs := src.IntRange(6, 12)
	fr := hull.FaceFrame(fi)
	w, h := hull.FaceSize(fi)
	depth := 1.3 * math32.Min(w/float32(hs+2), h/float32(vs+2))
	radius := 0.25 * depth
	role := Classify(StageGreeble, LocalBody)
	sub := mesh.New()
	for j := 0; j < vs; j++ {
		for i := 0; i < hs; i++ {
			px := w * (float32(i+1)/float32(hs+1) - 0.5)
			py := h * (float32(j+1)/float32(vs+1) - 0.5)
			center := fr.Pt(px, py, 0)
			addTube(sub, role, center.Sub(fr.Y.MulScalar(depth/2)), fr.Y, fr.X, depth, radius, segs)
		}
	}
	return sub
}
