// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import (
	"sort"

	"cogentcore.org/starship/mesh"
)

// enginePass builds exhaust nozzle clusters on the rear of the ship.
// Sites are the rear facing faces, the flat hull cap plus any rear
// facing branch stubs, taken largest first with index order breaking
// ties. When fewer sites exist than Engines asks for, the pass builds
// what it can and reports [CondInsufficientEngineSites]; it never
// fails. Each selected site face is retagged to the engine role and
// covered by a nozzle submesh; with symmetric detail the retag and the
// submesh are both mirrored onto the -Y twin site.
func enginePass(hull *mesh.Mesh, p *Params, src *Source) ([]*mesh.Mesh, []Condition) {
	if p.Engines == 0 {
		return nil, nil
	}
	var sites []int
	n := len(hull.Faces)
	for fi := 0; fi < n; fi++ {
		if hull.FaceNormal(fi).X >= rearNormalX {
			continue
		}
		if p.SymmetricDetail && hull.FaceCenter(fi).Y < -symEps {
			continue
		}
		sites = append(sites, fi)
	}
	sort.SliceStable(sites, func(a, b int) bool {
		aa, ab := hull.FaceArea(sites[a]), hull.FaceArea(sites[b])
		if aa != ab {
			return aa > ab
		}
		return sites[a] < sites[b]
	})

	var conds []Condition
	take := p.Engines
	if len(sites) < take {
		take = len(sites)
		conds = append(conds, CondInsufficientEngineSites)
	}
	var subs []*mesh.Mesh
	for _, fi := range sites[:take] {
		sub := buildNozzles(hull, fi, src)
		subs = append(subs, sub)
		if p.SymmetricDetail && hull.FaceCenter(fi).Y > symEps {
			mirrorRetag(hull, fi)
			subs = append(subs, sub.ReflectY())
		}
	}
	return subs, conds
}

// buildNozzles covers one rear face with a grid of exhaust nozzles.
// The cut count shrinks as the face gets more elongated; the nozzle
// shape draws happen once per site and are shared by every cell, so a
// cluster reads as one engine block. Each cell pushes out, necks in,
// recesses with burn-lit walls, and necks in again.
func buildNozzles(hull *mesh.Mesh, fi int, src *Source) *mesh.Mesh {
	hi := 4 - int(hull.FaceAspect(fi))
	if hi < 1 {
		hi = 1
	}
	cuts := src.IntRange(1, hi)
	length := src.Uniform(0.1, 0.2)
	outer := 1 / src.Uniform(1.3, 1.6)
	inner := 1 / src.Uniform(1.05, 1.1)

	hull.Faces[fi].Role = Classify(StageEngine, LocalBody)
	sub, f0 := detailBase(hull, fi)
	cells := sub.SubdivideGrid(f0, cuts+1, cuts+1)
	for _, ci := range cells {
		sub.ExtrudeFace(ci, length)
		sub.ScaleFace(ci, outer)
		sub.Faces[ci].Role = Classify(StageEngine, LocalBurn)
		sub.ExtrudeFace(ci, -0.9*length)
		sub.Faces[ci].Role = Classify(StageEngine, LocalBody)
		sub.ScaleFace(ci, inner)
	}
	return sub
}
