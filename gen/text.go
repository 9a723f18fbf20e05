// SPDX-License-Identifier: MIT
// Package: fixgen/gen
//
// text.go - the character and string generators.
//
// Both draw exclusively from the printable ASCII range [MinChar, MaxChar],
// so generated text is always safe to print, diff, and embed in test
// output verbatim.

package gen

import (
	"fmt"

	"github.com/katalvlaran/fixgen/rng"
)

// Char generates printable ASCII runes in [MinChar, MaxChar].
type Char struct {
	src *rng.Source
}

// NewChar returns a Char generator drawing from src. Panics on nil src.
func NewChar(src *rng.Source) *Char {
	if src == nil {
		panic("gen: NewChar(nil source)")
	}

	return &Char{src: src}
}

// Generate returns one printable ASCII rune. Complexity: O(1).
func (g *Char) Generate() rune {
	return rune(g.src.IntIn(MinChar, MaxChar))
}

// GenerateFiltered draws runes until pred accepts one, bounded by
// MaxFilterAttempts. Panics on a nil predicate.
func (g *Char) GenerateFiltered(pred func(rune) bool) (rune, error) {
	if pred == nil {
		panic("gen: GenerateFiltered(nil predicate)")
	}

	for i := 0; i < MaxFilterAttempts; i++ {
		if v := g.Generate(); pred(v) {
			return v, nil
		}
	}

	return 0, fmt.Errorf("GenerateFiltered: %d draws rejected: %w", MaxFilterAttempts, ErrFilterExhausted)
}

// String generates printable ASCII text. Unsized draws pick a length in
// [MinStringLen, MaxStringLen]; sized draws honor the length exactly.
type String struct {
	src *rng.Source
}

// NewString returns a String generator drawing from src. Panics on nil src.
func NewString(src *rng.Source) *String {
	if src == nil {
		panic("gen: NewString(nil source)")
	}

	return &String{src: src}
}

// Generate returns text of a drawn length in [MinStringLen, MaxStringLen].
// Complexity: O(length).
func (g *String) Generate() string {
	s, _ := g.GenerateSized(g.src.IntIn(MinStringLen, MaxStringLen)) // drawn size is always valid

	return s
}

// GenerateSized returns text of length exactly n; every byte is one
// printable ASCII draw. n == 0 yields "". ErrInvalidSize when n < 0.
// Complexity: O(n).
func (g *String) GenerateSized(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("GenerateSized: size %d: %w", n, ErrInvalidSize)
	}

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(g.src.IntIn(MinChar, MaxChar))
	}

	return string(buf), nil
}

// Compile-time capability checks.
var (
	_ FilteredGenerator[rune] = (*Char)(nil)
	_ SizedGenerator[string]  = (*String)(nil)
)
