// SPDX-License-Identifier: MIT
// Package: fixgen/gen
//
// slice.go - element-composed slice generation.
//
// SliceOf is the dependency-injection point of the collection layer: it
// produces []T by invoking ANY nested Generator[T], built-in or
// user-registered. Repeat is the same loop for callers who bring a plain
// producer function instead of a generator value.

package gen

import (
	"fmt"

	"github.com/katalvlaran/fixgen/rng"
)

// SliceOf generates []T by invoking a nested element generator once per
// slot, in order.
type SliceOf[T any] struct {
	src  *rng.Source
	elem Generator[T]
}

// NewSliceOf returns a SliceOf generator over elem, drawing sizes from
// src. Panics on nil src or nil elem.
func NewSliceOf[T any](src *rng.Source, elem Generator[T]) *SliceOf[T] {
	if src == nil {
		panic("gen: NewSliceOf(nil source)")
	}
	if elem == nil {
		panic("gen: NewSliceOf(nil element generator)")
	}

	return &SliceOf[T]{src: src, elem: elem}
}

// Generate returns a slice of a drawn length in [MinSliceLen, MaxSliceLen].
// Complexity: O(length) element draws.
func (g *SliceOf[T]) Generate() []T {
	out, _ := g.GenerateSized(g.src.IntIn(MinSliceLen, MaxSliceLen)) // drawn size is always valid

	return out
}

// GenerateSized returns a slice of length exactly n; slot i holds the
// i-th value the element generator produced. ErrInvalidSize when n < 0.
// Complexity: O(n) element draws.
func (g *SliceOf[T]) GenerateSized(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("GenerateSized: size %d: %w", n, ErrInvalidSize)
	}

	out := make([]T, n)
	for i := range out {
		out[i] = g.elem.Generate()
	}

	return out, nil
}

// Repeat builds an ordered sequence of n values by invoking next n times.
// A constant producer therefore yields n identical elements, in order.
// Panics on nil next; ErrInvalidSize when n < 0. Complexity: O(n).
func Repeat[T any](n int, next func() T) ([]T, error) {
	if next == nil {
		panic("gen: Repeat(nil producer)")
	}
	if n < 0 {
		return nil, fmt.Errorf("Repeat: size %d: %w", n, ErrInvalidSize)
	}

	out := make([]T, n)
	for i := range out {
		out[i] = next()
	}

	return out, nil
}

// Compile-time capability check for a representative instantiation.
var _ SizedGenerator[[]int64] = (*SliceOf[int64])(nil)
