// SPDX-License-Identifier: MIT
// Package: fixgen/gen
//
// float.go - the generic floating-point generator (float32, float64).
//
// Design:
//   • Ranged draws interpolate from + u*(to-from) with u in [0,1).
//   • When the interval width drops below SnapWidth, the draw snaps to one
//     of the endpoints on a single bit: a near-zero-width interval cannot
//     produce a value distinguishable from its boundaries, so we stop
//     pretending it can.
//   • The full-domain draw composes a magnitude in [0, Max) with a random
//     sign instead of interpolating over [-Max, Max), whose width is not
//     representable.

package gen

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fixgen/rng"
)

// SnapWidth is the interval width below which a ranged float draw
// returns one of the endpoints instead of interpolating.
const SnapWidth = 1.0

// Float generates values of float32 or float64 across the full
// representable range or a half-open interval.
type Float[T constraints.Float] struct {
	src *rng.Source
}

// NewFloat returns a Float generator for T drawing from src.
// Panics on nil src.
func NewFloat[T constraints.Float](src *rng.Source) *Float[T] {
	if src == nil {
		panic("gen: NewFloat(nil source)")
	}

	return &Float[T]{src: src}
}

// Generate returns a value in (-Max, Max) for T's representable range:
// a uniform magnitude in [0, Max) with an independent sign bit.
// Complexity: O(1) (two draws).
func (g *Float[T]) Generate() T {
	magnitude := T(g.src.Float64()) * maxFloatOf[T]()
	if g.src.Bool() {
		return -magnitude
	}

	return magnitude
}

// GenerateInRange returns a value in [from, to); intervals narrower than
// SnapWidth collapse to one of the endpoints on a single bit draw.
// from > to is ErrInvalidRange. Complexity: O(1).
func (g *Float[T]) GenerateInRange(from, to T) (T, error) {
	if from > to {
		return 0, fmt.Errorf("GenerateInRange: from %v > to %v: %w", from, to, ErrInvalidRange)
	}

	width := float64(to) - float64(from)
	if width < SnapWidth {
		if g.src.Bool() {
			return to, nil
		}

		return from, nil
	}

	if math.IsInf(width, 1) {
		// Width overflow only happens for float64 endpoints spanning most of
		// the domain; interpolate as a convex combination, which never
		// leaves [from, to].
		u := T(g.src.Float64())

		return from*(1-u) + to*u, nil
	}

	return from + T(g.src.Float64()*width), nil
}

// maxFloatOf returns the largest finite value of T.
func maxFloatOf[T constraints.Float]() T {
	switch any(T(0)).(type) {
	case float32:
		return T(math.MaxFloat32)
	default:
		maxF64 := float64(math.MaxFloat64)

		return T(maxF64)
	}
}

// Compile-time capability checks.
var (
	_ RangedGenerator[float32] = (*Float[float32])(nil)
	_ RangedGenerator[float64] = (*Float[float64])(nil)
)
