// SPDX-License-Identifier: MIT
// Package: fixgen/fixture
//
// fixture.go - the immutable Fixture and the generic generation facade.
//
// Design:
//   • Every entry point resolves one (type, qualifier) key, performs the
//     single checked capability assertion, and delegates; capability
//     absence is ErrUnsupportedOp, registry failures pass through.
//   • Entry points are package-level generic functions; Go methods cannot
//     carry type parameters.
//   • A nil Fixture or nil injected function is a programmer error and
//     panics (constructor-argument rule); everything else is an error.

package fixture

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fixgen/gen"
	"github.com/katalvlaran/fixgen/registry"
	"github.com/katalvlaran/fixgen/rng"
)

// Fixture is the constructed runtime object: one seeded random source
// plus the built registry. It is immutable and safe for concurrent
// generation calls.
type Fixture struct {
	src *rng.Source
	reg *registry.Registry
}

// CallOption tunes one generation request.
type CallOption func(*callOpts)

type callOpts struct {
	qualifier string
	size      int
	hasSize   bool
}

// WithQualifier selects a named generator flavour for the requested type.
func WithQualifier(q string) CallOption {
	return func(o *callOpts) { o.qualifier = q }
}

// WithSize requests an exact length for sized draws (strings, arrays,
// slices). A negative size is reported by the generator as an
// invalid-size error.
func WithSize(n int) CallOption {
	return func(o *callOpts) {
		o.size = n
		o.hasSize = true
	}
}

func applyCallOpts(opts []CallOption) callOpts {
	var o callOpts
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Value returns a fixture of type T from its registered generator.
// With WithSize the draw goes through the sized capability.
func Value[T any](f *Fixture, opts ...CallOption) (T, error) {
	var zero T
	checkFixture(f, "Value")
	o := applyCallOpts(opts)

	k := registry.KeyOf[T](o.qualifier)
	h, err := f.reg.Resolve(k)
	if err != nil {
		return zero, err
	}

	g, err := registry.As[gen.Generator[T]](h, k)
	if err != nil {
		return zero, err
	}

	if o.hasSize {
		sg, ok := h.(gen.SizedGenerator[T])
		if !ok {
			return zero, fmt.Errorf("Value: %s has no sized draw: %w", k, ErrUnsupportedOp)
		}

		return sg.GenerateSized(o.size)
	}

	return g.Generate(), nil
}

// Ranged returns a fixture of type T constrained to the half-open
// interval [from, to). ErrUnsupportedOp when the resolved generator has
// no ranged capability; gen.ErrInvalidRange when from > to.
func Ranged[T any](f *Fixture, from, to T, opts ...CallOption) (T, error) {
	var zero T
	checkFixture(f, "Ranged")
	o := applyCallOpts(opts)

	k := registry.KeyOf[T](o.qualifier)
	h, err := f.reg.Resolve(k)
	if err != nil {
		return zero, err
	}
	if _, err = registry.As[gen.Generator[T]](h, k); err != nil {
		return zero, err
	}

	rg, ok := h.(gen.RangedGenerator[T])
	if !ok {
		return zero, fmt.Errorf("Ranged: %s has no ranged draw: %w", k, ErrUnsupportedOp)
	}

	return rg.GenerateInRange(from, to)
}

// Signed returns a fixture of type T restricted to the sign half-domain
// selected by s. ErrUnsupportedOp when the resolved generator has no
// signed capability.
func Signed[T any](f *Fixture, s gen.Sign, opts ...CallOption) (T, error) {
	var zero T
	checkFixture(f, "Signed")
	o := applyCallOpts(opts)

	k := registry.KeyOf[T](o.qualifier)
	h, err := f.reg.Resolve(k)
	if err != nil {
		return zero, err
	}
	if _, err = registry.As[gen.Generator[T]](h, k); err != nil {
		return zero, err
	}

	sg, ok := h.(gen.SignedGenerator[T])
	if !ok {
		return zero, fmt.Errorf("Signed: %s has no signed draw: %w", k, ErrUnsupportedOp)
	}

	return sg.GenerateSign(s)
}

// Sized returns a fixture of type T with exactly the requested length;
// shorthand for Value with WithSize.
func Sized[T any](f *Fixture, n int, opts ...CallOption) (T, error) {
	checkFixture(f, "Sized")

	return Value[T](f, append(opts, WithSize(n))...)
}

// Filtered returns a fixture of type T accepted by pred. Panics on nil
// pred. ErrUnsupportedOp when the resolved generator has no filtered
// capability (bool and the opaque any value, by design of their domains);
// gen.ErrFilterExhausted when the bounded draw budget runs out.
func Filtered[T any](f *Fixture, pred func(T) bool, opts ...CallOption) (T, error) {
	var zero T
	checkFixture(f, "Filtered")
	if pred == nil {
		panic("fixture: Filtered(nil predicate)")
	}
	o := applyCallOpts(opts)

	k := registry.KeyOf[T](o.qualifier)
	h, err := f.reg.Resolve(k)
	if err != nil {
		return zero, err
	}
	if _, err = registry.As[gen.Generator[T]](h, k); err != nil {
		return zero, err
	}

	fg, ok := h.(gen.FilteredGenerator[T])
	if !ok {
		return zero, fmt.Errorf("Filtered: %s has no filtered draw: %w", k, ErrUnsupportedOp)
	}

	return fg.GenerateFiltered(pred)
}

// Slice returns a []T fixture. A registered []T binding (built-in or
// custom) is used directly; otherwise the element generator for T under
// the same qualifier is wrapped in a size-driven loop. WithSize fixes the
// length exactly; without it the length is drawn from the documented
// slice bounds.
func Slice[T any](f *Fixture, opts ...CallOption) ([]T, error) {
	checkFixture(f, "Slice")
	o := applyCallOpts(opts)

	k := registry.KeyOf[[]T](o.qualifier)
	h, err := f.reg.Resolve(k)
	switch {
	case err == nil:
		g, asErr := registry.As[gen.Generator[[]T]](h, k)
		if asErr != nil {
			return nil, asErr
		}
		if o.hasSize {
			sg, ok := h.(gen.SizedGenerator[[]T])
			if !ok {
				return nil, fmt.Errorf("Slice: %s has no sized draw: %w", k, ErrUnsupportedOp)
			}

			return sg.GenerateSized(o.size)
		}

		return g.Generate(), nil

	case errors.Is(err, registry.ErrNotRegistered):
		// No []T binding: compose over the element generator.
		ek := registry.KeyOf[T](o.qualifier)
		eh, rErr := f.reg.Resolve(ek)
		if rErr != nil {
			return nil, rErr
		}
		eg, asErr := registry.As[gen.Generator[T]](eh, ek)
		if asErr != nil {
			return nil, asErr
		}
		sg := gen.NewSliceOf[T](f.src, eg)
		if o.hasSize {
			return sg.GenerateSized(o.size)
		}

		return sg.Generate(), nil

	default:
		return nil, err
	}
}

// List builds an ordered sequence of n values by invoking next n times;
// this is the nested-generator override path, composing with any producer
// including closures over other fixture calls. Panics on nil next;
// gen.ErrInvalidSize when n < 0.
func List[T any](f *Fixture, n int, next func() T) ([]T, error) {
	checkFixture(f, "List")
	if next == nil {
		panic("fixture: List(nil producer)")
	}

	return gen.Repeat(n, next)
}

func checkFixture(f *Fixture, op string) {
	if f == nil {
		panic("fixture: " + op + "(nil fixture)")
	}
}
