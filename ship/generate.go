// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ship generates procedural spaceship meshes from a seed.
//
// A generation run is a fixed pipeline: the seed text normalizes to an
// int64 ([NormalizeSeed]), a [Source] seeded with it resolves any
// random [Config] fields into concrete [Params], the hull grows by
// extruding a primitive box nose-ward segment by segment, a modifier
// chain refines it (per-face scaling, edge bevel, branch stubs, mirror
// symmetry), the greeble stage scatters surface detail, and the engine
// stage carves exhaust nozzles into the rear. [mesh.Assemble] welds
// the stage outputs into the final mesh.
//
// The same seed and configuration always produce the identical mesh:
// every stage draws from the one Source in a fixed order, and gates
// that skip work still consume their draws, so the stream depends only
// on the code path and never on the values drawn. Any change to a
// draw formula or to stage order changes the ships existing seeds
// produce.
package ship

import (
	"cogentcore.org/core/base/logx"
	"cogentcore.org/starship/mesh"
)

// Generate builds the ship for the given seed text and configuration.
// Seed text that parses as an integer is used directly; anything else
// is hashed, so "42" and "tug-7" are both valid. A nil cfg uses
// [DefaultConfig]. The returned mesh carries metadata: the normalized
// seed, the resolved parameters, stage face counts, and any non-fatal
// conditions.
func Generate(seed string, cfg *Config) (*mesh.Mesh, error) {
	n, err := NormalizeSeed(seed)
	if err != nil {
		return nil, err
	}
	m, err := GenerateSeed(n, cfg)
	if err != nil {
		return nil, err
	}
	m.Meta.Set("SeedText", seed)
	return m, nil
}

// GenerateSeed is [Generate] for an already normalized seed.
func GenerateSeed(seed int64, cfg *Config) (msh *mesh.Mesh, err error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*RangeError)
			if !ok {
				panic(r)
			}
			msh, err = nil, re
		}
	}()

	src := NewSource(seed)
	p, err := ResolveParams(cfg, src)
	if err != nil {
		return nil, err
	}
	logx.PrintlnDebug("ship: seed", seed, "params", *p)

	g := buildHull(p, src)
	applyModifiers(g, p, src)
	hullFaces := len(g.m.Faces)
	logx.PrintlnDebug("ship: hull", hullFaces, "faces", len(g.rings), "rings")

	gsubs := greeblePass(g.m, p, src)
	greebleFaces := 0
	for _, s := range gsubs {
		greebleFaces += len(s.Faces)
	}
	logx.PrintlnDebug("ship: greeble", len(gsubs), "submeshes", greebleFaces, "faces")

	esubs, conds := enginePass(g.m, p, src)
	engineFaces := 0
	for _, s := range esubs {
		engineFaces += len(s.Faces)
	}
	logx.PrintlnDebug("ship: engines", len(esubs), "submeshes", engineFaces, "faces")
	for _, c := range conds {
		logx.PrintlnWarn("ship: seed", seed, "condition:", c)
	}

	subs := make([]*mesh.Mesh, 0, 1+len(gsubs)+len(esubs))
	subs = append(subs, g.m)
	subs = append(subs, gsubs...)
	subs = append(subs, esubs...)
	out, err := mesh.Assemble(subs...)
	if err != nil {
		return nil, err
	}

	out.Meta.Set("Seed", seed)
	out.Meta.Set("Params", *p)
	out.Meta.Set("HullFaces", hullFaces)
	out.Meta.Set("GreebleFaces", greebleFaces)
	out.Meta.Set("EngineFaces", engineFaces)
	if len(conds) > 0 {
		out.Meta.Set("Conditions", conds)
	}
	if p.Symmetric {
		out.Meta.Set("SymmetryAxis", "Y")
	}
	return out, nil
}
