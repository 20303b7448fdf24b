// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// NormalizeSeed maps arbitrary seed text to the int64 seed that drives
// generation. Text that parses as a base-10 integer is used directly,
// so numeric seeds round-trip exactly; anything else is hashed with
// FNV-64a. Leading and trailing whitespace is ignored, and text that is
// empty after trimming returns [ErrInvalidSeed].
//
// The mapping is part of the determinism contract: a given seed text
// must produce the same ship in every release.
func NormalizeSeed(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrInvalidSeed
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n, nil
	}
	h := fnv.New64a()
	h.Write([]byte(text))
	return int64(h.Sum64()), nil
}
