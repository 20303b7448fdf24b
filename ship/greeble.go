// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/starship/mesh"
)

// minGreebleArea is the smallest face area the greeble stage will
// decorate; anything smaller reads as noise at ship scale.
const minGreebleArea = 0.05

// rearNormalX bounds the X component of a face normal below which the
// face counts as rear facing and is reserved for the engine stage.
const rearNormalX = -0.95

// greeblePass decorates the hull with surface detail, returning one
// submesh per decorated face and retagging lit panel and glow faces on
// the hull itself. Faces are visited in ascending index order. Rear
// faces, high aspect faces, and tiny faces are skipped outright; every
// remaining face draws a density gate and, when it passes, one
// classifier value that picks the detail kind for the face's
// orientation. Greebled faces never have their geometry cut, so the
// draw stream stays face-local and stable. With symmetric detail, any
// role retag on a processed face is copied to its mirror twin so
// materials mirror along with the geometry.
func greeblePass(hull *mesh.Mesh, p *Params, src *Source) []*mesh.Mesh {
	var subs []*mesh.Mesh
	n := len(hull.Faces)
	for fi := 0; fi < n; fi++ {
		nrm := hull.FaceNormal(fi)
		if nrm.X < rearNormalX {
			continue
		}
		if hull.FaceAspect(fi) > 3 {
			continue
		}
		if hull.FaceArea(fi) < minGreebleArea {
			continue
		}
		ctr := hull.FaceCenter(fi)
		if p.SymmetricDetail && ctr.Y <= symEps {
			continue
		}
		if src.Float() >= p.Density {
			continue
		}
		val := src.Float()
		outward := nrm.Dot(ctr) > 0
		prior := hull.Faces[fi].Role

		var sub *mesh.Mesh
		switch {
		case nrm.X > 0.9: // nose
			switch {
			case outward && val > 0.7:
				sub = buildAntenna(hull, fi)
				hull.Faces[fi].Role = Classify(StageGreeble, LocalBody)
			case val > 0.4:
				sub = buildGrid(hull, fi, p, src)
			default:
				// lit panel, no geometry
				hull.Faces[fi].Role = Classify(StageGreeble, LocalBody)
			}
		case nrm.Z > 0.9: // top
			switch {
			case outward && val > 0.7:
				sub = buildAntenna(hull, fi)
				hull.Faces[fi].Role = Classify(StageGreeble, LocalBody)
			case val > 0.6:
				sub = buildGrid(hull, fi, p, src)
			case val > 0.3:
				sub = buildCylinders(hull, fi, src)
			}
		case nrm.Z < -0.9: // bottom
			switch {
			case val > 0.75:
				sub = buildDisc(hull, fi)
				hull.Faces[fi].Role = Classify(StageGreeble, LocalGlowFace)
			case val > 0.5:
				sub = buildGrid(hull, fi, p, src)
			case val > 0.25:
				sub = buildTurrets(hull, fi, src)
			}
		default: // sides
			switch {
			case val > 0.9:
				sub = buildDome(hull, fi)
			case val > 0.6:
				sub = buildGrid(hull, fi, p, src)
			case val > 0.3:
				sub = buildCylinders(hull, fi, src)
			}
		}
		if p.SymmetricDetail && hull.Faces[fi].Role != prior {
			mirrorRetag(hull, fi)
		}
		if sub == nil {
			continue
		}
		subs = append(subs, sub)
		if p.SymmetricDetail {
			subs = append(subs, sub.ReflectY())
		}
	}
	return subs
}

// mirrorRetag copies the role of face fi onto its mirror twin, the
// face whose center is the Y negation of fi's. Mirrored hull rings are
// regenerated slot-paired, so the twin's center matches exactly; a
// face with no twin is left alone.
func mirrorRetag(hull *mesh.Mesh, fi int) {
	want := hull.FaceCenter(fi)
	want.Y = -want.Y
	n := len(hull.Faces)
	for mi := 0; mi < n; mi++ {
		if mi == fi {
			continue
		}
		c := hull.FaceCenter(mi)
		if math32.Abs(c.X-want.X) <= symEps &&
			math32.Abs(c.Y-want.Y) <= symEps &&
			math32.Abs(c.Z-want.Z) <= symEps {
			hull.Faces[mi].Role = hull.Faces[fi].Role
			return
		}
	}
}
