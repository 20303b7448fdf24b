// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzship displays generated ship meshes in an xyz scene.
// It is the scene-insertion consumer of the generator: the pipeline
// produces a [mesh.Mesh] with abstract material roles, and this
// package turns each role into a flat-shaded [xyz.GenMesh] and a
// [xyz.Solid] with palette colors, grouped under one [xyz.Group].
package xyzship

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/starship/mesh"
	"cogentcore.org/starship/ship"
)

// RoleMesh builds a flat-shaded triangle mesh from the faces of msh
// carrying the given role, or nil if no face does. Faces are fan
// triangulated and every triangle gets its own three vertices with
// the face normal, so panels render with crisp edges instead of
// smoothed seams. Faces are processed in mesh order, so the result is
// deterministic for a deterministic input mesh.
func RoleMesh(msh *mesh.Mesh, role mesh.Role, name string) *xyz.GenMesh {
	ntri := 0
	for _, f := range msh.Faces {
		if f.Role != role {
			continue
		}
		ntri += len(f.Vtx) - 2
	}
	if ntri == 0 {
		return nil
	}
	nv := ntri * 3
	ms := &xyz.GenMesh{
		Vertex:   math32.NewArrayF32(nv*3, nv*3),
		Normal:   math32.NewArrayF32(nv*3, nv*3),
		TexCoord: math32.NewArrayF32(nv*2, nv*2),
		Index:    math32.NewArrayU32(nv, nv),
	}
	ms.Name = name
	vi := 0
	for fi, f := range msh.Faces {
		if f.Role != role {
			continue
		}
		n := msh.FaceNormal(fi)
		for i := 1; i < len(f.Vtx)-1; i++ {
			tri := [3]math32.Vector3{
				msh.Vtxs[f.Vtx[0]],
				msh.Vtxs[f.Vtx[i]],
				msh.Vtxs[f.Vtx[i+1]],
			}
			for _, pt := range tri {
				ms.Vertex.SetVector3(vi*3, pt)
				ms.Normal.SetVector3(vi*3, n)
				ms.Index.Set(vi, uint32(vi))
				vi++
			}
		}
	}
	return ms
}

// NewShip adds the given generated ship to the scene as a group of
// one solid per material role, with mesh and node names derived from
// the mesh checksum so multiple ships can share a scene. The palette
// supplies the solid colors; Glow solids render emissive. It returns
// the group, positioned at the origin for the caller to pose.
func NewShip(sc *xyz.Scene, parent tree.Node, msh *mesh.Mesh, pal *ship.Palette) *xyz.Group {
	gp := xyz.NewGroup(parent)
	gp.SetName(fmt.Sprintf("ship-%016x", msh.Checksum()))
	for _, role := range mesh.RoleValues() {
		rnm := strings.ToLower(role.String())
		ms := RoleMesh(msh, role, fmt.Sprintf("%s-%s", gp.Name, rnm))
		if ms == nil {
			continue
		}
		sc.SetMesh(ms)
		sld := xyz.NewSolid(gp).SetMesh(ms)
		sld.SetName(rnm)
		setRoleMaterial(sld, role, pal)
	}
	return gp
}

// setRoleMaterial configures the solid's material for its role: hull
// and greeble plating with a modest specular term, engine metal dull,
// glow fully emissive.
func setRoleMaterial(sld *xyz.Solid, role mesh.Role, pal *ship.Palette) {
	c := pal.Role(role)
	sld.Material.Color = c
	switch role {
	case mesh.Glow:
		sld.Material.Emissive = c
	case mesh.Engine:
		sld.Material.Shiny = 5
		sld.Material.Reflective = 0.2
	default:
		sld.Material.Shiny = 30
		sld.Material.Reflective = 0.3
	}
}
