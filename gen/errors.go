// SPDX-License-Identifier: MIT
// Package: fixgen/gen
//
// errors.go - sentinel errors for generator operations.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context via fmt.Errorf("...: %w", ErrX).
//   • Generators MUST NOT panic at runtime; panics are confined to
//     constructor argument validation (nil Source, nil nested generator,
//     nil predicate).

package gen

import "errors"

// ErrInvalidRange indicates a ranged draw received from > to.
// The draw convention is half-open [from, to); from == to is valid and
// yields from.
// Usage: if errors.Is(err, ErrInvalidRange) { /* fix the caller's bounds */ }.
var ErrInvalidRange = errors.New("gen: invalid range, from > to")

// ErrInvalidSize indicates a negative size passed to a sized draw
// (GenerateSized, Repeat).
// Usage: if errors.Is(err, ErrInvalidSize) { /* fix the requested size */ }.
var ErrInvalidSize = errors.New("gen: invalid size, must be non-negative")

// ErrSignUnsatisfiable indicates a SignNegative draw was requested on an
// unsigned integer domain, which contains no negative values.
// Usage: if errors.Is(err, ErrSignUnsatisfiable) { /* use a signed type */ }.
var ErrSignUnsatisfiable = errors.New("gen: sign constraint unsatisfiable on unsigned domain")

// ErrFilterExhausted indicates a filtered draw failed to satisfy the
// predicate within MaxFilterAttempts draws. The draw budget keeps every
// operation bounded; an exhausted budget almost always means the predicate
// accepts (close to) nothing.
// Usage: if errors.Is(err, ErrFilterExhausted) { /* widen the predicate */ }.
var ErrFilterExhausted = errors.New("gen: filter predicate not satisfied within attempt budget")
