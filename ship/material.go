// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import "cogentcore.org/starship/mesh"

// Stage identifies the pipeline stage a face was built by.
type Stage int32

const (
	// StageHull is the hull walk and its modifiers.
	StageHull Stage = iota

	// StageGreeble is the surface detail stage.
	StageGreeble

	// StageEngine is the engine nozzle stage.
	StageEngine
)

// Local identifies where a face sits within its builder's output.
type Local int32

const (
	// LocalBody is the ordinary outer surface of the builder.
	LocalBody Local = iota

	// LocalRaised marks raised detail such as greeble panel cells.
	LocalRaised

	// LocalBurn marks surfaces washed by engine exhaust.
	LocalBurn

	// LocalGlowFace marks emissive faces such as glow discs.
	LocalGlowFace
)

// Classify maps a builder stage and local position to the material
// role its faces carry. Builders tag every face they emit through
// this one function, so the binding of surfaces to materials lives in
// a single table: hull bodies render as hull plate, raised greeble as
// lit detail, engine bodies as dark metal, and burn or glow surfaces
// as emissive.
func Classify(stage Stage, local Local) mesh.Role {
	switch stage {
	case StageGreeble:
		if local == LocalGlowFace {
			return mesh.Glow
		}
		return mesh.Greeble
	case StageEngine:
		if local == LocalBurn || local == LocalGlowFace {
			return mesh.Glow
		}
		return mesh.Engine
	default:
		return mesh.Hull
	}
}
