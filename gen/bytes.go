// SPDX-License-Identifier: MIT
// Package: fixgen/gen
//
// bytes.go - the raw byte-array generator.
//
// Unlike SliceOf, which invokes a nested per-element generator, Bytes
// fills the whole buffer from one Source.Read: byte-width slots are
// reinterpreted random bytes, one lock acquisition per array.

package gen

import (
	"fmt"

	"github.com/katalvlaran/fixgen/rng"
)

// Bytes generates []byte fixtures by raw byte extraction.
type Bytes struct {
	src *rng.Source
}

// NewBytes returns a Bytes generator drawing from src. Panics on nil src.
func NewBytes(src *rng.Source) *Bytes {
	if src == nil {
		panic("gen: NewBytes(nil source)")
	}

	return &Bytes{src: src}
}

// Generate returns a byte slice of a drawn length in
// [MinSliceLen, MaxSliceLen]. Complexity: O(length).
func (g *Bytes) Generate() []byte {
	b, _ := g.GenerateSized(g.src.IntIn(MinSliceLen, MaxSliceLen)) // drawn size is always valid

	return b
}

// GenerateSized returns a byte slice of length exactly n, filled by one
// bulk read. n == 0 yields an empty (non-nil) slice. ErrInvalidSize when
// n < 0. Complexity: O(n).
func (g *Bytes) GenerateSized(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("GenerateSized: size %d: %w", n, ErrInvalidSize)
	}

	buf := make([]byte, n)
	_, _ = g.src.Read(buf) // Source.Read fills fully and cannot fail

	return buf, nil
}

// Compile-time capability check.
var _ SizedGenerator[[]byte] = (*Bytes)(nil)
