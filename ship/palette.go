// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import (
	"image/color"

	"cogentcore.org/core/colors/cam/hct"
	"cogentcore.org/starship/mesh"
)

// Palette binds the four material roles to concrete colors for
// exporters and scene adapters. The generator itself never uses it;
// roles stay abstract until something has to render.
type Palette struct {

	// Hull is the base plate color.
	Hull color.RGBA

	// Greeble is the lit panel detail color.
	Greeble color.RGBA

	// Engine is the dark engine metal color.
	Engine color.RGBA

	// Glow is the emissive exhaust and glow disc color.
	Glow color.RGBA
}

// RandomPalette draws the color scheme for a seed: a hull plate color
// of random hue with restrained chroma and tone, greeble panels
// slightly lighter, engine metal at a tenth of the hull brightness,
// and a fixed burn orange glow. It draws from its own source, so
// generating geometry and picking colors never perturb each other's
// draw streams.
func RandomPalette(seed int64) *Palette {
	src := NewSource(seed)
	hue := src.Uniform(0, 360)
	chroma := src.Uniform(0, 25)
	tone := src.Uniform(5, 50)
	hull := hct.New(hue, chroma, tone).AsRGBA()
	return &Palette{
		Hull:    hull,
		Greeble: hct.Lighten(hull, 10),
		Engine:  scaleRGB(hull, 0.1),
		Glow:    color.RGBA{R: 255, G: 153, B: 51, A: 255},
	}
}

// Role returns the palette color for the given material role.
func (p *Palette) Role(r mesh.Role) color.RGBA {
	switch r {
	case mesh.Greeble:
		return p.Greeble
	case mesh.Engine:
		return p.Engine
	case mesh.Glow:
		return p.Glow
	default:
		return p.Hull
	}
}

func scaleRGB(c color.RGBA, f float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}
