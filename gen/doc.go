// Package gen defines the generator capability interfaces and every
// built-in generator: primitives (bool, integers of all widths, floats,
// chars, strings), raw byte arrays, composed slices, UUIDs, and the
// opaque "any" value.
//
// The package offers the following key components:
//
//   - Capability interfaces (compile-time, no runtime casts inside gen):
//     – Generator[T]:         unconstrained draw, Generate() T.
//     – RangedGenerator[T]:   half-open interval draw, GenerateInRange(from, to).
//     – SignedGenerator[T]:   half-domain draw, GenerateSign(Sign).
//     – SizedGenerator[T]:    exact-size draw for strings/slices, GenerateSized(n).
//     – FilteredGenerator[T]: predicate-constrained draw with bounded attempts.
//   - Primitive generators:
//     – Bool:       one bit; deliberately supports no other capability.
//     – Integer[T]: generic over every built-in integer type; full-domain,
//       ranged, signed and filtered draws.
//     – Float[T]:   generic over float32/float64; full-range and ranged draws
//       with the degenerate-width snap rule.
//     – Char:       printable ASCII rune in [MinChar, MaxChar].
//     – String:     printable ASCII text, length in [MinStringLen, MaxStringLen].
//   - Collection generators:
//     – Bytes:      raw random bytes (byte-reinterpretation path).
//     – SliceOf[T]: element-composed slices over any nested Generator[T].
//     – Repeat:     ordered sequence from an injected producer function.
//   - Extras:
//     – UUID:       deterministic v4-shaped UUIDs from the shared Source.
//     – AnyValue:   opaque Token values for "I just need something" requests.
//
// Contract (strict):
//
//   - A generator implements exactly the capability subset its type supports;
//     callers discover capabilities by interface satisfaction, never by
//     probing behavior.
//   - Ranged draws use the half-open convention [from, to); from > to is
//     ErrInvalidRange, from == to yields from.
//   - Sign draws: SignNonNegative never yields a negative value,
//     SignNegative never yields a non-negative one; SignNegative on an
//     unsigned domain is ErrSignUnsatisfiable.
//   - Filtered draws perform at most MaxFilterAttempts draws, then return
//     ErrFilterExhausted. Generators without the capability simply do not
//     satisfy FilteredGenerator; the fixture facade reports those as
//     unsupported at its boundary.
//   - All generators share one rng.Source; determinism follows from the
//     Source seed and the call sequence.
//
// Errors are sentinels (ErrInvalidRange, ErrInvalidSize, ErrSignUnsatisfiable,
// ErrFilterExhausted); branch with errors.Is, never by message.
package gen
