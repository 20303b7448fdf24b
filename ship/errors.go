// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import (
	"errors"
	"fmt"
)

// ErrInvalidSeed is returned by [NormalizeSeed] and [Generate] when the
// seed text is empty or only whitespace.
var ErrInvalidSeed = errors.New("empty seed text")

// RangeError reports a random draw requested with an inverted range,
// which indicates a bug in the generator itself rather than bad input.
// [Source] raises it as a panic; [Generate] recovers it and returns it
// as an ordinary error.
type RangeError struct {
	Lo, Hi float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid random range [%g, %g]", e.Lo, e.Hi)
}

// ParamError reports an explicitly configured parameter value outside
// its documented range. It is returned by [ResolveParams] before any
// geometry is generated.
type ParamError struct {
	Field  string  // configuration field name
	Value  float64 // offending value
	Lo, Hi float64 // permitted range, inclusive
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("parameter %s = %g outside range [%g, %g]", e.Field, e.Value, e.Lo, e.Hi)
}

// Condition is a non-fatal generation note. Conditions are recorded in
// the mesh metadata under the Conditions key and never abort a build.
type Condition string

// CondInsufficientEngineSites is recorded when fewer rear hull faces
// qualify as engine mounts than the resolved Engines count requested.
const CondInsufficientEngineSites Condition = "InsufficientEngineSites"
