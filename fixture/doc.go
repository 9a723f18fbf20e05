// Package fixture is the entry point of fixgen: a fluent, build-once
// Configuration and the immutable Fixture it produces, plus the generic
// typed generation facade.
//
// Lifecycle:
//
//	Config  — created by NewConfig with every built-in generator claimed;
//	          mutated only through chained calls (Seed, Register,
//	          RegisterDependent); consumed by exactly one Build.
//	Fixture — holds the freshly seeded random source and the built
//	          registry; read-only for its whole life, safe for concurrent
//	          generation calls.
//
// Generation goes through generic package functions (Go methods cannot be
// generic), each resolving the (type, qualifier) key and performing the
// one checked capability assertion at this boundary:
//
//	v, err  := fixture.Value[int64](f)
//	v, err   = fixture.Value[int64](f, fixture.WithQualifier("even"))
//	n, err  := fixture.Ranged[int](f, 0, 10)
//	m, err  := fixture.Signed[int32](f, gen.SignNegative)
//	s, err  := fixture.Sized[string](f, 8)
//	xs, err := fixture.Slice[int16](f, fixture.WithSize(5))
//	ys, err := fixture.List(f, 3, func() string { return "C" })
//	p, err  := fixture.Filtered[int](f, func(n int) bool { return n%2 == 0 })
//
// Requests the resolved generator cannot serve (a ranged draw on bool, a
// filtered draw on the opaque any value) fail with ErrUnsupportedOp; a
// request for an unregistered (type, qualifier) pair surfaces the
// registry's ErrNotRegistered unchanged. No request ever falls back to a
// default generator and none is retried.
//
// Determinism: two Fixtures built with the same seed and the same
// registration sequence produce identical value sequences for identical
// call sequences.
package fixture
