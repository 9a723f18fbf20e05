// SPDX-License-Identifier: MIT
// Package: fixgen/gen
//
// integer.go - the generic integer generator, one instantiation per
// built-in integer type (int, int8..int64, uint, uint8..uint64).
//
// Design:
//   • Full-domain draws truncate one Uint64 to the target width; Go's
//     integer conversion rules make this exact for every width and sign.
//   • Ranged draws map [from, to) onto its two's-complement span in uint64
//     space, draw an offset, and add it back modularly. The modular
//     arithmetic is exact because the true result always lies inside the
//     target domain.
//   • Sign draws fold the wrong half onto the right one with a bitwise
//     complement (^v maps v to -v-1), preserving uniformity per half.

package gen

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fixgen/rng"
)

// Integer generates values of any built-in integer type T across the
// full domain, a half-open range, a sign half-domain, or a predicate.
type Integer[T constraints.Integer] struct {
	src *rng.Source
}

// NewInteger returns an Integer generator for T drawing from src.
// Panics on nil src.
func NewInteger[T constraints.Integer](src *rng.Source) *Integer[T] {
	if src == nil {
		panic("gen: NewInteger(nil source)")
	}

	return &Integer[T]{src: src}
}

// Generate returns a uniform value over the full domain of T.
// Complexity: O(1) (one Uint64 draw, one truncating conversion).
func (g *Integer[T]) Generate() T {
	return T(g.src.Uint64())
}

// GenerateInRange returns a uniform value in [from, to).
// from == to yields from; from > to is ErrInvalidRange.
// Complexity: O(1).
func (g *Integer[T]) GenerateInRange(from, to T) (T, error) {
	if from > to {
		return 0, fmt.Errorf("GenerateInRange: from %v > to %v: %w", from, to, ErrInvalidRange)
	}
	if from == to {
		return from, nil
	}

	// Span of [from, to) in modular uint64 arithmetic; exact for signed
	// types because both endpoints sign-extend consistently.
	span := uint64(to) - uint64(from)

	return from + T(g.src.Uint64n(span)), nil
}

// GenerateSign returns a value restricted to the half-domain selected
// by s. SignNegative on an unsigned T is ErrSignUnsatisfiable.
// Complexity: O(1); the fold never redraws.
func (g *Integer[T]) GenerateSign(s Sign) (T, error) {
	v := g.Generate()

	switch s {
	case SignAny:
		return v, nil

	case SignNonNegative:
		if !signedDomain[T]() {
			return v, nil // unsigned values are non-negative by definition
		}
		if v < 0 {
			v = ^v // fold: ^v == -v-1 >= 0
		}

		return v, nil

	case SignNegative:
		if !signedDomain[T]() {
			return 0, fmt.Errorf("GenerateSign: %v of %T: %w", s, v, ErrSignUnsatisfiable)
		}
		if v >= 0 {
			v = ^v // fold: ^v == -v-1 < 0
		}

		return v, nil

	default:
		panic(fmt.Sprintf("gen: GenerateSign(invalid Sign %d)", int(s)))
	}
}

// GenerateFiltered draws full-domain values until pred accepts one,
// bounded by MaxFilterAttempts. Panics on a nil predicate.
// Complexity: O(MaxFilterAttempts) worst case.
func (g *Integer[T]) GenerateFiltered(pred func(T) bool) (T, error) {
	if pred == nil {
		panic("gen: GenerateFiltered(nil predicate)")
	}

	for i := 0; i < MaxFilterAttempts; i++ {
		if v := g.Generate(); pred(v) {
			return v, nil
		}
	}

	return 0, fmt.Errorf("GenerateFiltered: %d draws rejected: %w", MaxFilterAttempts, ErrFilterExhausted)
}

// signedDomain reports whether T is a signed integer type.
// ^T(0) is -1 for signed types and the maximum value for unsigned ones.
func signedDomain[T constraints.Integer]() bool {
	return ^T(0) < T(0)
}

// Compile-time capability checks for representative instantiations.
var (
	_ SignedGenerator[int]      = (*Integer[int])(nil)
	_ SignedGenerator[int8]     = (*Integer[int8])(nil)
	_ SignedGenerator[uint64]   = (*Integer[uint64])(nil)
	_ FilteredGenerator[int32]  = (*Integer[int32])(nil)
	_ FilteredGenerator[uint16] = (*Integer[uint16])(nil)
)
