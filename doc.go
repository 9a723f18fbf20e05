// Package fixgen is your deterministic playground for generating test
// fixtures — from single primitives to qualified, composed collections.
//
// 🚀 What is fixgen?
//
//	A small, thread-safe library that brings together:
//		• A seeded Mersenne-Twister random source behind one mutex
//		• Primitive generators: bool, all integer widths, floats, chars, strings
//		• Array & slice generators: raw bytes plus element-composed slices
//		• A (type, qualifier)-keyed registry with factories and dependent factories
//		• A fluent, build-once Configuration producing an immutable Fixture
//
// ✨ Why choose fixgen?
//
//   - Reproducible by construction – same seed, same registrations, same values
//   - Rock-solid error policy – sentinel errors, errors.Is, no silent fallbacks
//   - Extensible – register your own generators; built-ins stay protected
//   - Pure Go – no cgo, no services, no files
//
// Under the hood, everything is organized under four subpackages:
//
//	rng/      — the shared seeded random source (mutex-guarded draws)
//	gen/      — capability interfaces and the built-in generators
//	registry/ — the (type, qualifier) → generator mapping and its builder
//	fixture/  — the Configuration builder and the typed generation facade
//
// Quick example:
//
//	f, err := fixture.NewConfig().Seed(42).Build()
//	if err != nil { ... }
//	n, _  := fixture.Ranged[int](f, 0, 10)   // deterministic under seed 42
//	s, _  := fixture.Value[string](f)        // printable ASCII, bounded length
//	xs, _ := fixture.Slice[int64](f, fixture.WithSize(5))
//
// Dive into the per-package doc.go files for contracts, error taxonomy and
// determinism guarantees.
package fixgen
