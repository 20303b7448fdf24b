// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

// Params is the fully resolved parameter set driving one generation
// run. See [Config] for field meanings and ranges. Params is produced
// by [ResolveParams], treated as read-only thereafter, and echoed into
// the mesh metadata.
type Params struct {
	Bevel           bool
	Branches        int
	Density         float32
	DepthLimit      float32
	Engines         int
	HullSegments    int
	Ribs            bool
	Symmetric       bool
	SymmetricDetail bool
	TaperHi         float32
	TaperLo         float32
}

// ResolveParams validates cfg and resolves every [Random] field from
// src. Explicit values outside their declared range, or an explicit
// TaperLo above an explicit TaperHi, return a [ParamError] before
// anything is drawn. Fields then resolve in alphabetical order with
// exactly one draw per random field, so the draw stream layout depends
// only on which fields are random, not on the values drawn.
//
// Random taper bounds resolve against each other (TaperHi first, then
// TaperLo within [1, TaperHi]), so a resolved pair is always ordered.
// SymmetricDetail is forced off when Symmetric resolves false.
func ResolveParams(cfg *Config, src *Source) (*Params, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	p := &Params{}
	p.Bevel = resolveBool(cfg.Bevel, src)
	if cfg.Branches.Random {
		p.Branches = src.IntRange(1, 5)
	} else {
		p.Branches = cfg.Branches.Value
	}
	if cfg.Density.Random {
		p.Density = src.Uniform(0.3, 0.9)
	} else {
		p.Density = cfg.Density.Value
	}
	if cfg.DepthLimit.Random {
		p.DepthLimit = src.Uniform(0.02, 0.5)
	} else {
		p.DepthLimit = cfg.DepthLimit.Value
	}
	if cfg.Engines.Random {
		p.Engines = src.IntRange(1, 3)
	} else {
		p.Engines = cfg.Engines.Value
	}
	if cfg.HullSegments.Random {
		p.HullSegments = src.IntRange(3, 6)
	} else {
		p.HullSegments = cfg.HullSegments.Value
	}
	p.Ribs = resolveBool(cfg.Ribs, src)
	p.Symmetric = resolveBool(cfg.Symmetric, src)
	p.SymmetricDetail = resolveBool(cfg.SymmetricDetail, src)
	if cfg.TaperHi.Random {
		lo := float32(1)
		if !cfg.TaperLo.Random {
			lo = cfg.TaperLo.Value
		}
		p.TaperHi = src.Uniform(lo, 2)
	} else {
		p.TaperHi = cfg.TaperHi.Value
	}
	if cfg.TaperLo.Random {
		p.TaperLo = src.Uniform(1, p.TaperHi)
	} else {
		p.TaperLo = cfg.TaperLo.Value
	}
	if !p.Symmetric {
		p.SymmetricDetail = false
	}
	return p, nil
}

func resolveBool(p Param[bool], src *Source) bool {
	if p.Random {
		return src.Bool(0.5)
	}
	return p.Value
}

func validateConfig(cfg *Config) error {
	if err := checkInt("Branches", cfg.Branches, 0, 5); err != nil {
		return err
	}
	if err := checkFloat("Density", cfg.Density, 0, 1); err != nil {
		return err
	}
	if err := checkFloat("DepthLimit", cfg.DepthLimit, 0.02, 0.5); err != nil {
		return err
	}
	if err := checkInt("Engines", cfg.Engines, 0, 4); err != nil {
		return err
	}
	if err := checkInt("HullSegments", cfg.HullSegments, 1, 8); err != nil {
		return err
	}
	if err := checkFloat("TaperHi", cfg.TaperHi, 1, 2); err != nil {
		return err
	}
	if err := checkFloat("TaperLo", cfg.TaperLo, 1, 2); err != nil {
		return err
	}
	if !cfg.TaperLo.Random && !cfg.TaperHi.Random && cfg.TaperLo.Value > cfg.TaperHi.Value {
		return &ParamError{Field: "TaperLo", Value: float64(cfg.TaperLo.Value), Lo: 1, Hi: float64(cfg.TaperHi.Value)}
	}
	return nil
}

func checkInt(field string, p Param[int], lo, hi int) error {
	if p.Random || (p.Value >= lo && p.Value <= hi) {
		return nil
	}
	return &ParamError{Field: field, Value: float64(p.Value), Lo: float64(lo), Hi: float64(hi)}
}

func checkFloat(field string, p Param[float32], lo, hi float32) error {
	if p.Random || (p.Value >= lo && p.Value <= hi) {
		return nil
	}
	return &ParamError{Field: field, Value: float64(p.Value), Lo: float64(lo), Hi: float64(hi)}
}
