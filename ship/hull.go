// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import (
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/starship/mesh"
)

// minHalfExtent is the smallest cross-section half extent a taper may
// leave behind; offending factors are redrawn once and then clamped.
const minHalfExtent = 0.05

// hullGeom is the hull under construction: the mesh plus the ring and
// band bookkeeping the modifier passes need. Each cross-section ring
// holds vertex indices in a fixed slot order in the (Y, Z) plane,
// arranged so that slot i mirrors slot K-1-i across the Y=0 plane. A
// band is the run of side faces between two consecutive rings, with
// faces[i] spanning the edge from slot i to slot i+1.
type hullGeom struct {
	m        *mesh.Mesh
	rings    [][]int
	bands    []hullBand
	capRear  int     // face index of the -X cap
	capNose  int     // face index of the +X cap
	ringNose int     // ring currently at the nose cap
	baseZ    float32 // primitive Z scale, sets sideways shift amounts
}

type hullBand struct {
	r0, r1 int // ring indices
	faces  []int
}

// buildHull grows the hull: a primitive box with seed-scaled extents,
// then a segment walk extruding the nose cap. The primitive counts as
// segment 1, so HullSegments of 1 leaves the bare box; the rear cap
// stays flat and axis-aligned for the engine stage.
func buildHull(p *Params, src *Source) *hullGeom {
	sx := src.Uniform(0.75, 2)
	sy := src.Uniform(0.75, 2)
	sz := src.Uniform(0.75, 2)
	g := newHullBox(sx, sy, sz)
	g.walk(p, src)
	return g
}

// newHullBox builds the primitive box centered on the origin with the
// given full extents: ring 0 at -X under the rear cap, ring 1 at +X
// under the nose cap, and one band of side walls between them.
func newHullBox(sx, sy, sz float32) *hullGeom {
	m := mesh.New()
	hx, hy, hz := sx/2, sy/2, sz/2
	r0 := []int{
		m.AddVertex(math32.Vec3(-hx, -hy, -hz)),
		m.AddVertex(math32.Vec3(-hx, -hy, hz)),
		m.AddVertex(math32.Vec3(-hx, hy, hz)),
		m.AddVertex(math32.Vec3(-hx, hy, -hz)),
	}
	r1 := []int{
		m.AddVertex(math32.Vec3(hx, -hy, -hz)),
		m.AddVertex(math32.Vec3(hx, -hy, hz)),
		m.AddVertex(math32.Vec3(hx, hy, hz)),
		m.AddVertex(math32.Vec3(hx, hy, -hz)),
	}
	g := &hullGeom{m: m, rings: [][]int{r0, r1}, baseZ: sz, ringNose: 1}
	g.capRear = m.AddFace(mesh.Hull, r0[0], r0[1], r0[2], r0[3])
	g.capNose = m.AddFace(mesh.Hull, r1[3], r1[2], r1[1], r1[0])
	band := hullBand{r0: 0, r1: 1}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		band.faces = append(band.faces, m.AddFace(mesh.Hull, r0[j], r0[i], r1[i], r1[j]))
	}
	g.bands = append(g.bands, band)
	return g
}

// walk extrudes the nose cap through the segment recipe. The segment
// length is drawn once for the whole walk; each segment then draws its
// branch value, where at most 0.1 selects the rare ribbed profile when
// Ribs is on and otherwise falls through to the plain recipe. An empty
// walk draws nothing.
func (g *hullGeom) walk(p *Params, src *Source) {
	segs := p.HullSegments - 1
	if segs <= 0 {
		return
	}
	length := src.Uniform(0.3, 1)
	for i := 0; i < segs; i++ {
		last := i == segs-1
		if val := src.Float(); val <= 0.1 && p.Ribs {
			g.ribSegment(length, src)
			continue
		}
		g.plainSegment(length, last, p, src)
	}
}

// plainSegment extrudes the cap by the walk length and applies the
// optional deviations, each behind its own chance draw: a short micro
// segment, a cross-section taper, a sideways Z shift, and a 5 degree
// rotation about Y. The taper always inverts to shrink on the last
// segment so the hull closes toward the nose.
func (g *hullGeom) plainSegment(length float32, last bool, p *Params, src *Source) {
	g.extend(length)
	if src.Bool(0.25) && p.Ribs {
		g.extend(0.25 * length)
	}
	if src.Bool(0.5) {
		sy := src.Uniform(p.TaperLo, p.TaperHi)
		sz := src.Uniform(p.TaperLo, p.TaperHi)
		invert := last || src.Bool(0.5)
		if invert {
			sy, sz = 1/sy, 1/sz
		}
		sy, sz = g.guardTaper(sy, sz, invert, p, src)
		g.taperCap(sy, sz)
	}
	if src.Bool(0.5) {
		amt := src.Uniform(0.1, 0.4) * g.baseZ * length
		g.m.TranslateFace(g.capNose, math32.Vec3(0, 0, src.Sign()*amt))
	}
	if src.Bool(0.5) {
		g.m.RotateFaceY(g.capNose, src.Sign()*5)
	}
}

// ribSegment extrudes the cap through a run of ribs over the walk
// length, each rib a quarter step out, a neck in, a half step waist, a
// neck back out, and a quarter step to close.
func (g *hullGeom) ribSegment(length float32, src *Source) {
	scale := src.Uniform(0.75, 0.95)
	ribs := src.IntRange(2, 4)
	step := length / float32(ribs)
	for i := 0; i < ribs; i++ {
		g.extend(0.25 * step)
		g.extend(0)
		g.m.ScaleFace(g.capNose, scale)
		g.extend(0.5 * step)
		g.extend(0)
		g.m.ScaleFace(g.capNose, 1/scale)
		g.extend(0.25 * step)
	}
}

// extend extrudes the nose cap by dist and records the new ring and
// its band. The cap keeps its face index across extrusion. The nose
// cap winds opposite to ring slot order, so the ring and band faces
// are recovered reversed from the extrusion output.
func (g *hullGeom) extend(dist float32) {
	sides := g.m.ExtrudeFace(g.capNose, dist)
	capVtx := g.m.Faces[g.capNose].Vtx
	k := len(capVtx)
	ring := make([]int, k)
	faces := make([]int, k)
	for j := 0; j < k; j++ {
		ring[j] = capVtx[k-1-j]
		faces[j] = sides[(k-2-j+k)%k]
	}
	g.rings = append(g.rings, ring)
	ri := len(g.rings) - 1
	g.bands = append(g.bands, hullBand{r0: g.ringNose, r1: ri, faces: faces})
	g.ringNose = ri
}

// taperCap scales the nose cap ring about its center in world Y and Z,
// the cross-section axes, leaving its position along the hull alone.
func (g *hullGeom) taperCap(sy, sz float32) {
	c := g.m.FaceCenter(g.capNose)
	for _, vi := range g.m.Faces[g.capNose].Vtx {
		v := g.m.Vtxs[vi]
		v.Y = c.Y + (v.Y-c.Y)*sy
		v.Z = c.Z + (v.Z-c.Z)*sz
		g.m.Vtxs[vi] = v
	}
}

// capExtents returns the half extents of the nose cap ring in world Y
// and Z about the face center.
func (g *hullGeom) capExtents() (ay, az float32) {
	c := g.m.FaceCenter(g.capNose)
	for _, vi := range g.m.Faces[g.capNose].Vtx {
		d := g.m.Vtxs[vi].Sub(c)
		ay = math32.Max(ay, math32.Abs(d.Y))
		az = math32.Max(az, math32.Abs(d.Z))
	}
	return ay, az
}

// guardTaper rejects taper factors that would shrink a cross-section
// half extent below minHalfExtent: the pair is redrawn once with the
// same inversion, then clamped per axis to the minimum.
func (g *hullGeom) guardTaper(sy, sz float32, invert bool, p *Params, src *Source) (float32, float32) {
	ay, az := g.capExtents()
	if ay*sy >= minHalfExtent && az*sz >= minHalfExtent {
		return sy, sz
	}
	sy = src.Uniform(p.TaperLo, p.TaperHi)
	sz = src.Uniform(p.TaperLo, p.TaperHi)
	if invert {
		sy, sz = 1/sy, 1/sz
	}
	if ay*sy < minHalfExtent {
		sy = minHalfExtent / ay
	}
	if az*sz < minHalfExtent {
		sz = minHalfExtent / az
	}
	return sy, sz
}

// sideFaces returns the indices of all band side faces in ascending
// order.
func (g *hullGeom) sideFaces() []int {
	var fis []int
	for _, b := range g.bands {
		fis = append(fis, b.faces...)
	}
	slices.Sort(fis)
	return fis
}
