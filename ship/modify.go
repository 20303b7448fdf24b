// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import (
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/starship/mesh"
)

// symEps separates faces based on one side of the mirror plane from
// faces that span it.
const symEps = 1e-4

// bevelWidth is the absolute chamfer width of the longitudinal edge
// bevel, capped at a quarter of the adjacent ring edge.
const bevelWidth = 0.02

// applyModifiers runs the hull modifier chain in its fixed order:
// per-face scaling, bevel, branch stubs, mirror. Scaling runs before
// the bevel so the chamfer lands on final edge positions, and the
// mirror runs last so everything drawn before it is captured exactly
// once per retained side.
func applyModifiers(g *hullGeom, p *Params, src *Source) {
	scalePass(g, src)
	if p.Bevel {
		bevelPass(g)
	}
	stubs := stubPass(g, p, src)
	if p.Symmetric {
		mirrorPass(g, stubs)
	}
}

// scalePass scales a random quarter of the hull faces in their own
// plane, snapshot order ascending, drawing the factor only for chosen
// faces.
func scalePass(g *hullGeom, src *Source) {
	n := len(g.m.Faces)
	for fi := 0; fi < n; fi++ {
		if src.Bool(0.25) {
			g.m.ScaleFace(fi, src.Uniform(0.85, 1.15))
		}
	}
}

// bevelPass chamfers the four longitudinal corner edges of the hull.
// Every quad ring becomes an octagon: each corner vertex splits into a
// pair nudged toward its two ring neighbors, the band walls are
// rewritten onto the split vertices, a chamfer strip is added along
// each corner of each band, and the caps become octagons. The octagon
// keeps the slot mirror pairing i <-> K-1-i. Consumes no draws; the
// replaced corner vertices go unreferenced and are dropped at
// assembly.
func bevelPass(g *hullGeom) {
	newRings := make([][]int, len(g.rings))
	for ri, ring := range g.rings {
		nr := make([]int, 8)
		for i := 0; i < 4; i++ {
			p := g.m.Vtxs[ring[i]]
			dp := g.m.Vtxs[ring[(i+3)%4]].Sub(p)
			dn := g.m.Vtxs[ring[(i+1)%4]].Sub(p)
			wp := math32.Min(bevelWidth, 0.25*dp.Length())
			wn := math32.Min(bevelWidth, 0.25*dn.Length())
			nr[2*i] = g.m.AddVertex(p.Add(dp.Normal().MulScalar(wp)))
			nr[2*i+1] = g.m.AddVertex(p.Add(dn.Normal().MulScalar(wn)))
		}
		newRings[ri] = nr
	}
	for _, b := range g.bands {
		r0, r1 := g.rings[b.r0], g.rings[b.r1]
		n0, n1 := newRings[b.r0], newRings[b.r1]
		for i, fi := range b.faces {
			// every band wall cycle runs [r0[j], r0[i], r1[i], r1[j]],
			// from the primitive box and extrusion alike, so the
			// replacement keeps the outward winding and the strip
			// winds against the wall's r0[i] to r1[i] edge
			j := (i + 1) % 4
			repl := map[int]int{
				r0[i]: n0[2*i+1], r0[j]: n0[(2*j)%8],
				r1[i]: n1[2*i+1], r1[j]: n1[(2*j)%8],
			}
			vtx := g.m.Faces[fi].Vtx
			for k, vi := range vtx {
				vtx[k] = repl[vi]
			}
			g.m.AddFace(mesh.Hull, n1[2*i+1], n0[2*i+1], n0[2*i], n1[2*i])
		}
	}
	g.m.Faces[g.capRear].Vtx = slices.Clone(newRings[0])
	noseRing := newRings[g.ringNose]
	rev := make([]int, len(noseRing))
	for i, vi := range noseRing {
		rev[len(noseRing)-1-i] = vi
	}
	g.m.Faces[g.capNose].Vtx = rev
	g.rings = newRings
}

// stubRec records the mesh ranges of one built branch stub so the
// mirror pass can reflect it: its base face (now the stub cap) and the
// half-open vertex and face ranges the stub appended.
type stubRec struct {
	base    int
	vtx0    int
	vtxEnd  int
	face0   int
	faceEnd int
}

// stubPass grows short branch stubs from a random subset of the hull
// faces, the one asymmetric feature of the hull. Under symmetry only
// stubs based strictly on the +Y side are built; candidates on or
// across the mirror plane still consume their draws so the stream
// stays aligned, and the built stubs are reflected by the mirror pass.
func stubPass(g *hullGeom, p *Params, src *Source) []stubRec {
	if p.Branches == 0 {
		return nil
	}
	var recs []stubRec
	n := len(g.m.Faces)
	for fi := 0; fi < n; fi++ {
		if g.m.FaceAspect(fi) > 4 {
			continue
		}
		if !src.Bool(0.15) {
			continue
		}
		length := src.Uniform(0.1, 0.4)
		count := src.IntRange(1, p.Branches)
		build := !p.Symmetric || g.m.FaceCenter(fi).Y > symEps
		rec := stubRec{base: fi, vtx0: len(g.m.Vtxs), face0: len(g.m.Faces)}
		for i := 0; i < count; i++ {
			if build {
				g.m.ExtrudeFace(fi, length)
			}
			if src.Bool(0.75) {
				s := 1 / src.Uniform(1.1, 1.5)
				if build {
					g.m.ScaleFace(fi, s)
				}
			}
		}
		if build && p.Symmetric {
			rec.vtxEnd = len(g.m.Vtxs)
			rec.faceEnd = len(g.m.Faces)
			recs = append(recs, rec)
		}
	}
	return recs
}

// mirrorPass regenerates the -Y half of every ring as an exact
// reflection of its +Y slot partner, then reflects the recorded branch
// stubs across the plane with reversed winding. Runs last and consumes
// no draws.
func mirrorPass(g *hullGeom, stubs []stubRec) {
	mirrorOf := map[int]int{}
	for _, ring := range g.rings {
		k := len(ring)
		for i := 0; i < k/2; i++ {
			lo, hi := ring[i], ring[k-1-i]
			v := g.m.Vtxs[hi]
			v.Y = -v.Y
			g.m.Vtxs[lo] = v
			mirrorOf[lo] = hi
			mirrorOf[hi] = lo
		}
	}
	for _, st := range stubs {
		ref := make(map[int]int, st.vtxEnd-st.vtx0)
		for vi := st.vtx0; vi < st.vtxEnd; vi++ {
			v := g.m.Vtxs[vi]
			v.Y = -v.Y
			ref[vi] = g.m.AddVertex(v)
		}
		remap := func(vi int) int {
			if vi >= st.vtx0 {
				return ref[vi]
			}
			return mirrorOf[vi]
		}
		for fi := st.face0; fi < st.faceEnd; fi++ {
			g.m.AddFace(g.m.Faces[fi].Role, mirrorFaceVtx(g.m.Faces[fi].Vtx, remap)...)
		}
		g.m.AddFace(g.m.Faces[st.base].Role, mirrorFaceVtx(g.m.Faces[st.base].Vtx, remap)...)
	}
}

// mirrorFaceVtx returns the face's vertex ring remapped through remap
// and reversed, so the reflected face keeps an outward winding.
func mirrorFaceVtx(vtx []int, remap func(int) int) []int {
	out := make([]int, len(vtx))
	for i, vi := range vtx {
		out[len(vtx)-1-i] = remap(vi)
	}
	return out
}
