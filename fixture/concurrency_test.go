// Package fixture_test verifies thread-safety of a shared Fixture under
// concurrent generation, the typical shape of parallel test execution.
package fixture_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixgen/fixture"
	"github.com/katalvlaran/fixgen/gen"
)

// TestConcurrentGeneration hammers one Fixture from many goroutines
// across every draw kind; it passes when no race or panic occurs and all
// constrained draws honor their constraints.
func TestConcurrentGeneration(t *testing.T) {
	t.Parallel()

	f := build(t, 42)

	const workers = 16
	const perWorker = 200

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				n, err := fixture.Ranged[int](f, 0, 100)
				if err != nil || n < 0 || n >= 100 {
					panic("ranged draw broke under concurrency")
				}
				v, err := fixture.Signed[int64](f, gen.SignNonNegative)
				if err != nil || v < 0 {
					panic("signed draw broke under concurrency")
				}
				s, err := fixture.Value[string](f)
				if err != nil || len(s) < gen.MinStringLen || len(s) > gen.MaxStringLen {
					panic("string draw broke under concurrency")
				}
				if _, err := fixture.Slice[int32](f, fixture.WithSize(3)); err != nil {
					panic("slice draw broke under concurrency")
				}
			}
		}()
	}
	wg.Wait()
}

// TestConcurrentLazySliceResolution races many goroutines into the lazy
// dependent materialization of one built-in slice binding.
func TestConcurrentLazySliceResolution(t *testing.T) {
	t.Parallel()

	f := build(t, 5)

	var wg sync.WaitGroup
	const workers = 32
	errs := make(chan error, workers)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			xs, err := fixture.Slice[uint32](f, fixture.WithSize(4))
			if err != nil {
				errs <- err

				return
			}
			if len(xs) != 4 {
				panic("sized slice draw returned wrong length")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
