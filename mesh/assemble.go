// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32"
)

// WeldEpsilon is the distance within which [Assemble] merges
// coincident vertices from different submeshes.
const WeldEpsilon = 1e-5

// AssemblyError reports an internal consistency failure found while
// assembling submeshes: a face index out of bounds, an invalid role,
// or a degenerate face. It indicates a bug in a generator stage, not
// bad user input.
type AssemblyError struct {

	// Sub is the index of the offending submesh in the Assemble call.
	Sub int

	// Face is the face index within that submesh.
	Face int

	// Reason describes the failed check.
	Reason string
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("mesh: assembly failed at submesh %d face %d: %s", e.Sub, e.Face, e.Reason)
}

// Assemble merges the given submeshes into one final mesh. Every face
// is first checked for index bounds, a valid role, and at least three
// vertices; any failure returns an [AssemblyError] and no mesh.
// Vertices within [WeldEpsilon] of each other are welded on a
// quantized grid, first occurrence winning, with submeshes processed
// in argument order and vertices in index order, so the result is
// fully deterministic. Unreferenced vertices are dropped. The output
// BBox covers all remaining vertices.
func Assemble(subs ...*Mesh) (*Mesh, error) {
	for si, sub := range subs {
		for fi, f := range sub.Faces {
			if len(f.Vtx) < 3 {
				return nil, &AssemblyError{Sub: si, Face: fi, Reason: fmt.Sprintf("degenerate face with %d vertices", len(f.Vtx))}
			}
			if f.Role < 0 || f.Role >= RoleN {
				return nil, &AssemblyError{Sub: si, Face: fi, Reason: fmt.Sprintf("invalid role %d", f.Role)}
			}
			for _, vi := range f.Vtx {
				if vi < 0 || vi >= len(sub.Vtxs) {
					return nil, &AssemblyError{Sub: si, Face: fi, Reason: fmt.Sprintf("vertex index %d out of range [0,%d)", vi, len(sub.Vtxs))}
				}
			}
		}
	}

	out := New()
	type cell [3]int64
	weld := make(map[cell]int)
	quant := func(v math32.Vector3) cell {
		return cell{
			int64(math.Round(float64(v.X) / WeldEpsilon)),
			int64(math.Round(float64(v.Y) / WeldEpsilon)),
			int64(math.Round(float64(v.Z) / WeldEpsilon)),
		}
	}

	for _, sub := range subs {
		ref := make([]bool, len(sub.Vtxs))
		for _, f := range sub.Faces {
			for _, vi := range f.Vtx {
				ref[vi] = true
			}
		}
		remap := make([]int, len(sub.Vtxs))
		for vi, v := range sub.Vtxs {
			if !ref[vi] {
				remap[vi] = -1
				continue
			}
			k := quant(v)
			if gi, ok := weld[k]; ok {
				remap[vi] = gi
			} else {
				gi := out.AddVertex(v)
				weld[k] = gi
				remap[vi] = gi
			}
		}
		for _, f := range sub.Faces {
			vtx := make([]int, len(f.Vtx))
			for i, vi := range f.Vtx {
				vtx[i] = remap[vi]
			}
			out.AddFace(f.Role, vtx...)
		}
	}

	out.BBox = math32.B3Empty()
	out.BBox.ExpandByPoints(out.Vtxs)
	return out, nil
}
