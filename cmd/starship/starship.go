// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command starship generates procedural spaceship meshes from seeds
// and exports them as Wavefront OBJ files.
package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/base/metadata"
	"cogentcore.org/core/cli"
	"cogentcore.org/starship/mesh"
	"cogentcore.org/starship/objx"
	"cogentcore.org/starship/ship"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the starship cli.
type Config struct {

	// Seed is the seed text for generation. Integer text is used
	// directly; any other text is hashed. The same seed always
	// produces the same ship.
	Seed string `posarg:"0" default:"42"`

	// Count is the number of ships to build. When more than one,
	// each ship N uses the derived seed "Seed.N" and its own
	// numbered output file.
	Count int `cmd:"build" flag:"n,count" default:"1"`

	// Output is the output .obj filename; numbered before the
	// extension when Count is more than one.
	Output string `cmd:"build" flag:"o,output" default:"ship.obj"`

	// Materials also writes a sibling .mtl file with a seed-chosen
	// color palette, referenced from the .obj.
	Materials bool `cmd:"build" default:"true"`

	// Verify regenerates each ship a second time in stats and fails
	// if the two checksums differ.
	Verify bool `cmd:"stats"`

	// Gen configures the generator. Any field can be set to a
	// literal value or to "random" to let the seed choose.
	Gen ship.Config `display:"add-fields"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("starship", "Starship generates procedural spaceship meshes from seeds and exports them as Wavefront OBJ files.")
	opts.DefaultFiles = []string{"starship.toml"}
	cli.Run(opts, &Config{}, Build, Stats)
}

// Build generates Count ships from the seed and writes them as .obj
// files (plus .mtl palettes unless turned off).
func Build(c *Config) error { //cli:cmd -root
	for i := 0; i < c.Count; i++ {
		seed, out := shipSeed(c, i)
		msh, err := ship.Generate(seed, &c.Gen)
		if err != nil {
			return err
		}
		if c.Materials {
			n, err := ship.NormalizeSeed(seed)
			if err != nil {
				return err
			}
			err = objx.SaveAll(msh, ship.RandomPalette(n), out)
			if err != nil {
				return err
			}
		} else if err := objx.Save(msh, out); err != nil {
			return err
		}
		logx.PrintlnInfo("starship: seed", seed, "->", out+":", len(msh.Vtxs), "vertices,", len(msh.Faces), "faces")
	}
	return nil
}

// Stats generates the ship for the seed and prints its geometry
// counts, role breakdown, bounding box, and checksum without writing
// any files.
func Stats(c *Config) error {
	msh, err := ship.Generate(c.Seed, &c.Gen)
	if err != nil {
		return err
	}
	fmt.Println("seed:      ", c.Seed)
	fmt.Println("vertices:  ", len(msh.Vtxs))
	fmt.Println("faces:     ", len(msh.Faces))
	for _, role := range mesh.RoleValues() {
		n := 0
		for _, f := range msh.Faces {
			if f.Role == role {
				n++
			}
		}
		fmt.Printf("  %-9s %d\n", strings.ToLower(role.String())+":", n)
	}
	fmt.Println("bounds min:", msh.BBox.Min)
	fmt.Println("bounds max:", msh.BBox.Max)
	fmt.Printf("checksum:   %016x\n", msh.Checksum())
	if conds, err := metadata.GetFromData[[]ship.Condition](msh.Meta, "Conditions"); err == nil {
		for _, cond := range conds {
			fmt.Println("condition: ", cond)
		}
	}
	if c.Verify {
		again, err := ship.Generate(c.Seed, &c.Gen)
		if err != nil {
			return err
		}
		if again.Checksum() != msh.Checksum() {
			return fmt.Errorf("starship: seed %q is not deterministic: checksums %016x and %016x differ", c.Seed, msh.Checksum(), again.Checksum())
		}
		fmt.Println("verified:   regeneration matches")
	}
	return nil
}

// shipSeed returns the derived seed and output filename for ship i.
func shipSeed(c *Config, i int) (seed, out string) {
	if c.Count <= 1 {
		return c.Seed, c.Output
	}
	ext := filepath.Ext(c.Output)
	base := strings.TrimSuffix(c.Output, ext)
	return fmt.Sprintf("%s.%d", c.Seed, i+1), fmt.Sprintf("%s_%d%s", base, i+1, ext)
}
