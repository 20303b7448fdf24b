// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import (
	"fmt"
	"strconv"
	"strings"
)

// Param is one generation parameter, either pinned to an explicit
// value or resolved from the seed stream at generation time. The zero
// Param is the zero value of T, pinned.
type Param[T any] struct {
	Value  T    // explicit value; ignored when Random is set
	Random bool // resolve from the seed stream instead
}

// Fixed returns a Param pinned to the given value.
func Fixed[T any](v T) Param[T] {
	return Param[T]{Value: v}
}

// Random returns a Param resolved from the seed stream at generation
// time. The resolved value is a function of the seed alone, so two
// runs with the same seed and config produce the same ship.
func Random[T any]() Param[T] {
	return Param[T]{Random: true}
}

func (p Param[T]) String() string {
	if p.Random {
		return "random"
	}
	return fmt.Sprintf("%v", p.Value)
}

// MarshalText renders the parameter as "random" or its literal value,
// for config files and flags.
func (p Param[T]) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses "random" (any case) or a literal bool, int, or
// float value.
func (p *Param[T]) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if strings.EqualFold(s, "random") {
		*p = Param[T]{Random: true}
		return nil
	}
	switch v := any(&p.Value).(type) {
	case *bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*v = b
	case *int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*v = n
	case *float32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return err
		}
		*v = float32(f)
	default:
		return fmt.Errorf("unsupported parameter type %T", p.Value)
	}
	p.Random = false
	return nil
}

// Config selects the generation parameters for [Generate]. Each field
// is either pinned with [Fixed] or left to the seed with [Random];
// [ResolveParams] resolves them in field declaration order, which is
// alphabetical. See [Params] for the meaning of each field.
type Config struct {

	// Bevel chamfers the four longitudinal hull edges with narrow
	// 45 degree strips.
	Bevel Param[bool]

	// Branches caps the number of segments in each asymmetric branch
	// stub grown from the hull sides; 0 disables stubs entirely.
	// Range [0, 5].
	Branches Param[int]

	// Density is the probability that a candidate face receives
	// greeble detail. Range [0, 1].
	Density Param[float32]

	// DepthLimit bounds raised greeble depth as a fraction of the
	// face short edge. Range [0.02, 0.5].
	DepthLimit Param[float32]

	// Engines is the number of engine nozzle clusters requested on
	// the rear of the hull. Range [0, 4].
	Engines Param[int]

	// HullSegments is the number of segments in the hull walk: the
	// primitive box counts as the first, and the rest extrude the nose
	// cap while the rear stays flat for the engine stage. Range [1, 8].
	HullSegments Param[int]

	// Ribs enables the ribbed segment variant in the hull walk.
	Ribs Param[bool]

	// Symmetric mirrors the hull across the Y=0 plane.
	Symmetric Param[bool]

	// SymmetricDetail also mirrors greeble and engine detail across
	// Y=0. Only meaningful when Symmetric is set; ignored otherwise.
	SymmetricDetail Param[bool]

	// TaperHi is the upper bound of the per-segment taper factor.
	// Range [1, 2].
	TaperHi Param[float32]

	// TaperLo is the lower bound of the per-segment taper factor.
	// Range [1, 2], at most TaperHi.
	TaperLo Param[float32]
}

// Defaults sets the standard configuration: a beveled, ribbed,
// symmetric hull with seed-chosen segment count, detail density,
// branches, and engines.
func (c *Config) Defaults() {
	c.Bevel = Fixed(true)
	c.Branches = Random[int]()
	c.Density = Random[float32]()
	c.DepthLimit = Fixed[float32](0.15)
	c.Engines = Random[int]()
	c.HullSegments = Random[int]()
	c.Ribs = Fixed(true)
	c.Symmetric = Fixed(true)
	c.SymmetricDetail = Fixed(false)
	c.TaperHi = Fixed[float32](1.5)
	c.TaperLo = Fixed[float32](1.2)
}

// DefaultConfig returns a new Config with [Config.Defaults] applied.
func DefaultConfig() *Config {
	c := &Config{}
	c.Defaults()
	return c
}
