// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import "cogentcore.org/lab/base/randx"

// Source is the single stream of randomness behind a generation run.
// It wraps one seeded [randx.SysRand] that is never reseeded, so the
// sequence of values is a pure function of the seed, and every stage
// of the pipeline draws from the same stream in a fixed, documented
// order. Every method draws even for degenerate ranges, so the draw
// sequence depends only on the code path taken, never on the values
// drawn.
//
// Inverted ranges panic with a [RangeError]; [Generate] recovers the
// panic and reports it as an error.
type Source struct {
	rand *randx.SysRand
}

// NewSource returns a Source seeded with the given value.
func NewSource(seed int64) *Source {
	return &Source{rand: randx.NewSysRand(seed)}
}

// Float returns the next value in [0, 1).
func (s *Source) Float() float32 {
	return s.rand.Float32()
}

// Uniform returns a value in [lo, hi), panicking with a [RangeError]
// if lo > hi.
func (s *Source) Uniform(lo, hi float32) float32 {
	if lo > hi {
		panic(&RangeError{Lo: float64(lo), Hi: float64(hi)})
	}
	return lo + s.Float()*(hi-lo)
}

// IntRange returns an integer in [lo, hi], inclusive on both ends,
// panicking with a [RangeError] if lo > hi.
func (s *Source) IntRange(lo, hi int) int {
	if lo > hi {
		panic(&RangeError{Lo: float64(lo), Hi: float64(hi)})
	}
	return lo + s.rand.Intn(hi-lo+1)
}

// Bool returns true with probability p.
func (s *Source) Bool(p float32) bool {
	return s.Float() < p
}

// Sign returns +1 or -1 with equal probability.
func (s *Source) Sign() float32 {
	if s.Bool(0.5) {
		return 1
	}
	return -1
}
