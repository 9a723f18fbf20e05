// Package gen_test holds property-based checks of the generator
// contracts: for all valid bounds, ranged draws stay inside the interval;
// for all seeds, equal seeds replay equal sequences.
package gen_test

import (
	"testing"

	"github.com/leanovate/gopter"
	ggen "github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/fixgen/gen"
	"github.com/katalvlaran/fixgen/rng"
)

// TestRangedDrawProperties checks interval containment and invalid-range
// rejection over generated bounds.
func TestRangedDrawProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	g := gen.NewInteger[int64](rng.New(42))

	properties.Property("valid bounds keep the draw in [from, to)", prop.ForAll(
		func(a, b int64) bool {
			from, to := a, b
			if from > to {
				from, to = to, from
			}
			v, err := g.GenerateInRange(from, to)
			if err != nil {
				return false
			}
			if from == to {
				return v == from
			}

			return v >= from && v < to
		},
		ggen.Int64(),
		ggen.Int64(),
	))

	properties.Property("from > to always fails with ErrInvalidRange", prop.ForAll(
		func(a int64, delta int64) bool {
			if delta <= 0 {
				delta = 1
			}
			from := a
			to := a - delta
			if to > from { // delta wrapped past MinInt64
				return true
			}
			if from == to {
				return true
			}
			_, err := g.GenerateInRange(from, to)

			return err != nil
		},
		ggen.Int64(),
		ggen.Int64Range(1, 1<<32),
	))

	properties.TestingRun(t)
}

// TestSignDrawProperties checks the half-domain restriction for every seed.
func TestSignDrawProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("SignNonNegative never yields negative", prop.ForAll(
		func(seed int64) bool {
			g := gen.NewInteger[int64](rng.New(seed))
			for i := 0; i < 50; i++ {
				v, err := g.GenerateSign(gen.SignNonNegative)
				if err != nil || v < 0 {
					return false
				}
			}

			return true
		},
		ggen.Int64(),
	))

	properties.Property("SignNegative never yields non-negative", prop.ForAll(
		func(seed int64) bool {
			g := gen.NewInteger[int64](rng.New(seed))
			for i := 0; i < 50; i++ {
				v, err := g.GenerateSign(gen.SignNegative)
				if err != nil || v >= 0 {
					return false
				}
			}

			return true
		},
		ggen.Int64(),
	))

	properties.TestingRun(t)
}

// TestSeedReplayProperty: equal seeds replay identical generator output
// across a mixed call sequence.
func TestSeedReplayProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("equal seeds produce equal mixed sequences", prop.ForAll(
		func(seed int64) bool {
			run := func() []any {
				src := rng.New(seed)
				gi := gen.NewInteger[int](src)
				gs := gen.NewString(src)
				gf := gen.NewFloat[float64](src)
				out := make([]any, 0, 30)
				for i := 0; i < 10; i++ {
					out = append(out, gi.Generate(), gs.Generate(), gf.Generate())
				}

				return out
			}
			a, b := run(), run()
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
