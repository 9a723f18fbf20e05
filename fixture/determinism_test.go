// Package fixture_test verifies end-to-end seed determinism: one seed and
// one registration sequence fully determine every generated value.
package fixture_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	ggen "github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixgen/fixture"
	"github.com/katalvlaran/fixgen/registry"
)

// TestSeedReproducesRangedInts pins the canonical scenario: seed 42,
// three integers in [0, 10), identical across independently built
// fixtures and therefore across runs.
func TestSeedReproducesRangedInts(t *testing.T) {
	t.Parallel()

	draw := func() [3]int {
		f := build(t, 42)
		var out [3]int
		for i := range out {
			n, err := fixture.Ranged[int](f, 0, 10)
			require.NoError(t, err)
			out[i] = n
		}

		return out
	}

	first := draw()
	for run := 0; run < 5; run++ {
		require.Equal(t, first, draw(), "seed 42 failed to reproduce on run %d", run)
	}
}

// TestSeedDeterminismAcrossKinds replays a mixed call sequence over every
// built-in kind on two same-seed fixtures.
func TestSeedDeterminismAcrossKinds(t *testing.T) {
	t.Parallel()

	sequence := func(f *fixture.Fixture) []any {
		out := make([]any, 0, 64)
		for i := 0; i < 8; i++ {
			b, err := fixture.Value[bool](f)
			require.NoError(t, err)
			n, err := fixture.Ranged[int64](f, -1000, 1000)
			require.NoError(t, err)
			s, err := fixture.Value[string](f)
			require.NoError(t, err)
			u, err := fixture.Value[uuid.UUID](f)
			require.NoError(t, err)
			fl, err := fixture.Ranged[float64](f, 0, 1e6)
			require.NoError(t, err)
			bs, err := fixture.Value[[]byte](f, fixture.WithSize(16))
			require.NoError(t, err)
			out = append(out, b, n, s, u, fl, string(bs))
		}

		return out
	}

	require.Equal(t, sequence(build(t, 777)), sequence(build(t, 777)))
}

// TestDifferentSeedsDiverge: different seeds produce different streams.
func TestDifferentSeedsDiverge(t *testing.T) {
	t.Parallel()

	fa := build(t, 1)
	fb := build(t, 2)

	same := true
	for i := 0; i < 50; i++ {
		va, err := fixture.Value[uint64](fa)
		require.NoError(t, err)
		vb, err := fixture.Value[uint64](fb)
		require.NoError(t, err)
		if va != vb {
			same = false

			break
		}
	}
	require.False(t, same, "seeds 1 and 2 replayed each other for 50 draws")
}

// TestSeedDeterminismProperty widens the canonical scenario to arbitrary
// seeds, with custom registrations in the sequence.
func TestSeedDeterminismProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("same seed and registrations, same values", prop.ForAll(
		func(seed int64) bool {
			run := func() []int {
				f, err := fixture.NewConfig().
					Seed(seed).
					Register(registry.KeyOf[int]("even"), evenFactory).
					Build()
				if err != nil {
					return nil
				}
				out := make([]int, 0, 20)
				for i := 0; i < 10; i++ {
					n, err := fixture.Ranged[int](f, -50, 50)
					if err != nil {
						return nil
					}
					e, err := fixture.Value[int](f, fixture.WithQualifier("even"))
					if err != nil {
						return nil
					}
					out = append(out, n, e)
				}

				return out
			}

			a, b := run(), run()
			if a == nil || b == nil {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}

			return true
		},
		ggen.Int64(),
	))

	properties.TestingRun(t)
}
