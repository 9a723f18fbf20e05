// SPDX-License-Identifier: MIT
// Package: fixgen/gen
//
// bool.go - the boolean generator.

package gen

import "github.com/katalvlaran/fixgen/rng"

// Bool generates booleans from single-bit draws.
//
// Bool supports no ranged, signed, sized or filtered capability: a
// two-valued domain cannot be meaningfully ranged, and a filtered draw on
// it degenerates to either a constant or an unsatisfiable predicate.
// Requests for those operations fail at the fixture facade with an
// unsupported-operation error.
type Bool struct {
	src *rng.Source
}

// NewBool returns a Bool generator drawing from src. Panics on nil src.
func NewBool(src *rng.Source) *Bool {
	if src == nil {
		panic("gen: NewBool(nil source)")
	}

	return &Bool{src: src}
}

// Generate returns one random bit as a boolean. Complexity: O(1).
func (g *Bool) Generate() bool {
	return g.src.Bool()
}

// Compile-time capability check: Bool is a plain Generator and nothing more.
var _ Generator[bool] = (*Bool)(nil)
