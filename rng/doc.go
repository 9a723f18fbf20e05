// Package rng provides the single shared random source used by every
// fixgen generator: a Mersenne-Twister (MT19937) stream seeded once at
// construction and accessed under mutual exclusion.
//
// Guarantees:
//
//   - Determinism — two Sources built with the same seed produce identical
//     draw sequences for identical call sequences.
//   - Thread-safety — every draw acquires one sync.Mutex; no two goroutines
//     can interleave partial draws.
//   - Bounded work — every draw is O(1), or O(n) for Read(buf) with len(buf)=n.
//     No draw blocks indefinitely and none can fail.
//
// The Source is deliberately small: generators own the distribution logic
// (ranges, signs, sizes); the Source only hands out raw uniform draws.
package rng
