// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Checksum returns a stable FNV-64a digest over the mesh geometry:
// vertex bit patterns, face vertex indices, and roles. Two meshes
// compare equal under Checksum exactly when their geometry is
// byte-identical, which makes it a cheap determinism probe.
func (m *Mesh) Checksum() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	u32 := func(u uint32) {
		binary.LittleEndian.PutUint32(buf[:], u)
		h.Write(buf[:])
	}
	u32(uint32(len(m.Vtxs)))
	for _, v := range m.Vtxs {
		u32(math.Float32bits(v.X))
		u32(math.Float32bits(v.Y))
		u32(math.Float32bits(v.Z))
	}
	u32(uint32(len(m.Faces)))
	for _, f := range m.Faces {
		u32(uint32(len(f.Vtx)))
		for _, vi := range f.Vtx {
			u32(uint32(vi))
		}
		u32(uint32(f.Role))
	}
	return h.Sum64()
}
