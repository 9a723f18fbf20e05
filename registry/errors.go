// SPDX-License-Identifier: MIT
// Package: fixgen/registry
//
// errors.go - sentinel errors for registration and resolution.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Registration errors surface at registration time, never at use time.
//   • Resolution never falls back to a default generator.

package registry

import "errors"

// ErrBuiltinOverride indicates an attempt to register a generator under a
// key already bound to a built-in. Built-in bindings are immutable after
// library initialization; the collision is rejected when Add is called,
// not when the key is later resolved.
// Usage: if errors.Is(err, ErrBuiltinOverride) { /* pick a qualifier */ }.
var ErrBuiltinOverride = errors.New("registry: key is bound to a built-in generator")

// ErrDuplicateKey indicates a second registration under a custom key that
// is already taken. Re-registration fails deterministically; it never
// overwrites.
// Usage: if errors.Is(err, ErrDuplicateKey) { /* register once */ }.
var ErrDuplicateKey = errors.New("registry: key already registered")

// ErrNotRegistered indicates resolution of a key with no binding. This is
// a fatal configuration error for the caller; the registry does not guess.
// Usage: if errors.Is(err, ErrNotRegistered) { /* register the type */ }.
var ErrNotRegistered = errors.New("registry: no generator registered for key")

// ErrWrongType indicates a resolved handle does not satisfy the generator
// interface the caller asked for (the single checked assertion in As).
// Usage: if errors.Is(err, ErrWrongType) { /* fix the registration */ }.
var ErrWrongType = errors.New("registry: generator has wrong type for key")

// ErrDependencyCycle indicates two or more dependent factories resolve
// each other in a loop. Construction aborts instead of recursing forever.
// Usage: if errors.Is(err, ErrDependencyCycle) { /* break the loop */ }.
var ErrDependencyCycle = errors.New("registry: dependent factories form a cycle")
