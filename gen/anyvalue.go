// SPDX-License-Identifier: MIT
// Package: fixgen/gen
//
// anyvalue.go - the opaque "any" generator.

package gen

import "github.com/katalvlaran/fixgen/rng"

// Token is the opaque, comparable value produced for "any" requests.
// Its only promise is identity: two Tokens compare equal iff they came
// from the same draw position of the same seed.
type Token struct {
	N uint64
}

// AnyValue serves requests for a value of no particular type. Like Bool,
// it supports no filtered capability: a predicate over opaque tokens has
// no domain structure to search, so a filtered request fails at the
// fixture facade with an unsupported-operation error.
type AnyValue struct {
	src *rng.Source
}

// NewAnyValue returns an AnyValue generator drawing from src.
// Panics on nil src.
func NewAnyValue(src *rng.Source) *AnyValue {
	if src == nil {
		panic("gen: NewAnyValue(nil source)")
	}

	return &AnyValue{src: src}
}

// Generate returns a fresh opaque Token. Complexity: O(1).
func (g *AnyValue) Generate() any {
	return Token{N: g.src.Uint64()}
}

// Compile-time capability check: AnyValue is a plain Generator and
// nothing more.
var _ Generator[any] = (*AnyValue)(nil)
