// Package gen_test verifies character and string generation: charset
// bounds, length bounds, and exact sizing.
package gen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixgen/gen"
	"github.com/katalvlaran/fixgen/rng"
)

// TestCharRange ensures every drawn rune is printable ASCII.
func TestCharRange(t *testing.T) {
	t.Parallel()

	g := gen.NewChar(rng.New(42))
	for i := 0; i < 2000; i++ {
		v := g.Generate()
		if v < gen.MinChar || v > gen.MaxChar {
			t.Fatalf("rune %q (%d) outside [%d,%d]", v, v, gen.MinChar, gen.MaxChar)
		}
	}
}

// TestCharFiltered verifies the bounded predicate draw on runes.
func TestCharFiltered(t *testing.T) {
	t.Parallel()

	g := gen.NewChar(rng.New(8))

	v, err := g.GenerateFiltered(func(r rune) bool { return r >= 'a' && r <= 'z' })
	require.NoError(t, err)
	require.GreaterOrEqual(t, v, 'a')
	require.LessOrEqual(t, v, 'z')

	_, err = g.GenerateFiltered(func(rune) bool { return false })
	require.ErrorIs(t, err, gen.ErrFilterExhausted)
}

// TestStringBounds: unsized draws keep length in the documented interval
// and every byte in the printable range.
func TestStringBounds(t *testing.T) {
	t.Parallel()

	g := gen.NewString(rng.New(42))
	for i := 0; i < 500; i++ {
		s := g.Generate()
		require.GreaterOrEqual(t, len(s), gen.MinStringLen)
		require.LessOrEqual(t, len(s), gen.MaxStringLen)
		for _, b := range []byte(s) {
			if b < gen.MinChar || b > gen.MaxChar {
				t.Fatalf("byte %d of %q outside [%d,%d]", b, s, gen.MinChar, gen.MaxChar)
			}
		}
	}
}

// TestStringSized: explicit sizes are honored exactly, including zero.
func TestStringSized(t *testing.T) {
	t.Parallel()

	g := gen.NewString(rng.New(1))

	for _, n := range []int{0, 1, 5, 100} {
		s, err := g.GenerateSized(n)
		require.NoError(t, err)
		require.Len(t, s, n)
	}

	_, err := g.GenerateSized(-1)
	require.ErrorIs(t, err, gen.ErrInvalidSize)
}
