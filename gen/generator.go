// SPDX-License-Identifier: MIT
// Package: fixgen/gen
//
// generator.go - capability interfaces, the Sign enum, and shared constants.
//
// Design:
//   • Capabilities are separate interfaces; a concrete generator implements
//     exactly the subset its type supports, and callers select behavior by
//     interface satisfaction at the boundary (one checked assertion in the
//     fixture facade), never by scattered casts.
//   • All bounds are named constants; no magic numbers in implementations.

package gen

// Sign selects a half of a numeric domain for sign-constrained draws.
type Sign int

const (
	// SignAny places no sign constraint on the draw.
	SignAny Sign = iota

	// SignNonNegative restricts the draw to values >= 0.
	SignNonNegative

	// SignNegative restricts the draw to values < 0.
	SignNegative
)

// String renders the Sign for error messages and test output.
func (s Sign) String() string {
	switch s {
	case SignAny:
		return "any"
	case SignNonNegative:
		return "non-negative"
	case SignNegative:
		return "negative"
	default:
		return "invalid"
	}
}

// Shared generation bounds (named, no magic numbers).
const (
	// MinChar and MaxChar delimit the printable ASCII range used by Char
	// and String draws, inclusive on both ends.
	MinChar = 33
	MaxChar = 126

	// MinStringLen and MaxStringLen bound the drawn length of unsized
	// string fixtures, inclusive.
	MinStringLen = 1
	MaxStringLen = 32

	// MinSliceLen and MaxSliceLen bound the drawn length of unsized array
	// and slice fixtures, inclusive.
	MinSliceLen = 1
	MaxSliceLen = 16

	// MaxFilterAttempts bounds the work of a filtered draw; every filtered
	// generation performs at most this many raw draws before returning
	// ErrFilterExhausted.
	MaxFilterAttempts = 10000
)

// Generator produces values of one type with no constraints.
// Every built-in implementation draws from a shared *rng.Source, so a
// generator's output sequence is fully determined by the Source seed and
// the interleaving of calls.
type Generator[T any] interface {
	// Generate returns the next value. It never fails; constrained draws
	// that can fail live on the capability interfaces below.
	Generate() T
}

// RangedGenerator additionally supports draws constrained to the
// half-open interval [from, to).
type RangedGenerator[T any] interface {
	Generator[T]

	// GenerateInRange returns a value v with from <= v < to
	// (v == from when from == to). Returns ErrInvalidRange when from > to.
	GenerateInRange(from, to T) (T, error)
}

// SignedGenerator additionally supports draws constrained to one sign
// half of a numeric domain.
type SignedGenerator[T any] interface {
	RangedGenerator[T]

	// GenerateSign returns a value from the half-domain selected by s.
	// Returns ErrSignUnsatisfiable for SignNegative on unsigned domains.
	GenerateSign(s Sign) (T, error)
}

// SizedGenerator additionally supports draws of an exact size; T is a
// length-bearing type (string, slice).
type SizedGenerator[T any] interface {
	Generator[T]

	// GenerateSized returns a value of length exactly n.
	// Returns ErrInvalidSize when n < 0; n == 0 is valid and yields an
	// empty value.
	GenerateSized(n int) (T, error)
}

// FilteredGenerator supports predicate-constrained draws. Generators for
// which filtering is meaningless (Bool, AnyValue) do not satisfy this
// interface; the fixture facade turns that absence into an
// unsupported-operation error at its boundary rather than retrying a
// predicate that can never be told apart from rejection.
type FilteredGenerator[T any] interface {
	// GenerateFiltered draws until pred accepts a value, performing at most
	// MaxFilterAttempts draws, then returns ErrFilterExhausted.
	// Panics on a nil predicate (constructor-argument rule).
	GenerateFiltered(pred func(T) bool) (T, error)
}
