// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Role is the material role of a [Face]. The generator tags every
// face with a role; binding roles to actual materials, shaders, or
// colors is up to the consumer.
type Role int32 //enums:enum

const (
	// Hull is the base plating of the ship body.
	Hull Role = iota

	// Greeble is raised surface detail: panels, antennas, turrets,
	// domes, and similar clutter.
	Greeble

	// Engine is engine housing and nozzle structure.
	Engine

	// Glow is emissive geometry: exhaust burn surfaces and glow discs.
	Glow
)
