// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package objx writes [mesh.Mesh] geometry in the Wavefront OBJ
// format, with faces grouped by material role and an optional
// companion .mtl library binding each role to colors from a
// [ship.Palette]. Quads are written as native four-vertex faces, so
// no triangulation is introduced on export.
//
// Only the subset of the format the generator needs is produced:
// vertex positions, polygonal faces, groups, and material references.
// Normals and texture coordinates are left to the importing
// application, which recomputes them anyway for flat-shaded models.
package objx

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/starship/mesh"
	"cogentcore.org/starship/ship"
)

// MaterialName returns the .mtl material name used for the given
// role: the lowercased role name.
func MaterialName(r mesh.Role) string {
	return strings.ToLower(r.String())
}

// Write writes the mesh to w in OBJ format. If mtlLib is non-empty, a
// mtllib reference to it is emitted and each role group selects its
// material with usemtl; otherwise groups are emitted without material
// references. Faces are grouped by role in role order, and faces
// within a group keep their mesh order, so output is deterministic.
func Write(msh *mesh.Mesh, w io.Writer, mtlLib string) error {
	bw := bufio.NewWriter(w)
	if mtlLib != "" {
		fmt.Fprintf(bw, "mtllib %s\n", mtlLib)
	}
	fmt.Fprintln(bw, "o ship")
	for _, v := range msh.Vtxs {
		fmt.Fprintf(bw, "v %s %s %s\n", ftoa(v.X), ftoa(v.Y), ftoa(v.Z))
	}
	for _, role := range mesh.RoleValues() {
		first := true
		for _, f := range msh.Faces {
			if f.Role != role {
				continue
			}
			if first {
				fmt.Fprintf(bw, "g %s\n", MaterialName(role))
				if mtlLib != "" {
					fmt.Fprintf(bw, "usemtl %s\n", MaterialName(role))
				}
				first = false
			}
			bw.WriteString("f")
			for _, vi := range f.Vtx {
				fmt.Fprintf(bw, " %d", vi+1)
			}
			bw.WriteString("\n")
		}
	}
	return bw.Flush()
}

// WriteMtl writes a .mtl material library binding each role material
// to colors from the given palette. Glow is emissive; the others are
// diffuse with a modest specular term on the hull plate.
func WriteMtl(pal *ship.Palette, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, role := range mesh.RoleValues() {
		c := pal.Role(role)
		r, g, b := crgb(c)
		fmt.Fprintf(bw, "newmtl %s\n", MaterialName(role))
		if role == mesh.Glow {
			fmt.Fprintln(bw, "Kd 0 0 0")
			fmt.Fprintf(bw, "Ke %s %s %s\n", ftoa(r), ftoa(g), ftoa(b))
			fmt.Fprintln(bw, "illum 1")
		} else {
			fmt.Fprintf(bw, "Kd %s %s %s\n", ftoa(r), ftoa(g), ftoa(b))
			fmt.Fprintln(bw, "Ks 0.2 0.2 0.2")
			fmt.Fprintln(bw, "Ns 30")
			fmt.Fprintln(bw, "illum 2")
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// Save writes the mesh to the given .obj file, without a material
// library reference.
func Save(msh *mesh.Mesh, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(msh, f, "")
}

// SaveAll writes the mesh to the given .obj file along with a sibling
// .mtl file holding the palette materials, and links the two with a
// mtllib reference.
func SaveAll(msh *mesh.Mesh, pal *ship.Palette, filename string) error {
	mtlFile := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".mtl"
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Write(msh, f, filepath.Base(mtlFile)); err != nil {
		return err
	}
	mf, err := os.Create(mtlFile)
	if err != nil {
		return err
	}
	defer mf.Close()
	return WriteMtl(pal, mf)
}

// ftoa formats a float32 with the fewest digits that round-trip.
func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func crgb(c color.RGBA) (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}
