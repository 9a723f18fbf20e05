// SPDX-License-Identifier: MIT
// Package: fixgen/fixture
//
// builtins.go - installation of every built-in generator binding.
//
// Scalar built-ins are plain factories. Slice built-ins are dependent
// factories: each resolves its element generator through the registry at
// first use, which is exactly the composition path user-defined element
// generators travel too.

package fixture

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fixgen/gen"
	"github.com/katalvlaran/fixgen/registry"
	"github.com/katalvlaran/fixgen/rng"
)

// QualifierChar selects the printable-character flavour of int32.
// rune and int32 are one Go type, so the char generator lives under a
// dedicated qualifier while the unqualified int32 binding keeps full
// integer semantics.
const QualifierChar = "char"

// installBuiltins claims every built-in key on b. The only possible
// failure is a duplicate claim, which would be a wiring bug surfaced by
// every test that builds a Config.
func installBuiltins(b *registry.Builder) error {
	scalars := errors.Join(
		b.AddBuiltin(registry.KeyOf[bool](""), func(src *rng.Source) any { return gen.NewBool(src) }),
		b.AddBuiltin(registry.KeyOf[int](""), intFactory[int]()),
		b.AddBuiltin(registry.KeyOf[int8](""), intFactory[int8]()),
		b.AddBuiltin(registry.KeyOf[int16](""), intFactory[int16]()),
		b.AddBuiltin(registry.KeyOf[int32](""), intFactory[int32]()),
		b.AddBuiltin(registry.KeyOf[int64](""), intFactory[int64]()),
		b.AddBuiltin(registry.KeyOf[uint](""), intFactory[uint]()),
		b.AddBuiltin(registry.KeyOf[uint8](""), intFactory[uint8]()),
		b.AddBuiltin(registry.KeyOf[uint16](""), intFactory[uint16]()),
		b.AddBuiltin(registry.KeyOf[uint32](""), intFactory[uint32]()),
		b.AddBuiltin(registry.KeyOf[uint64](""), intFactory[uint64]()),
		b.AddBuiltin(registry.KeyOf[float32](""), func(src *rng.Source) any { return gen.NewFloat[float32](src) }),
		b.AddBuiltin(registry.KeyOf[float64](""), func(src *rng.Source) any { return gen.NewFloat[float64](src) }),
		b.AddBuiltin(registry.KeyOf[rune](QualifierChar), func(src *rng.Source) any { return gen.NewChar(src) }),
		b.AddBuiltin(registry.KeyOf[string](""), func(src *rng.Source) any { return gen.NewString(src) }),
		b.AddBuiltin(registry.KeyOf[uuid.UUID](""), func(src *rng.Source) any { return gen.NewUUID(src) }),
		b.AddBuiltin(registry.KeyOf[any](""), func(src *rng.Source) any { return gen.NewAnyValue(src) }),
	)
	if scalars != nil {
		return scalars
	}

	// []byte takes the raw byte-reinterpretation path; the remaining slice
	// flavours compose their element generators through the registry.
	return errors.Join(
		b.AddBuiltin(registry.KeyOf[[]byte](""), func(src *rng.Source) any { return gen.NewBytes(src) }),
		b.AddBuiltinDependent(registry.KeyOf[[]int](""), sliceFactory[int]()),
		b.AddBuiltinDependent(registry.KeyOf[[]int16](""), sliceFactory[int16]()),
		b.AddBuiltinDependent(registry.KeyOf[[]int32](""), sliceFactory[int32]()),
		b.AddBuiltinDependent(registry.KeyOf[[]int64](""), sliceFactory[int64]()),
		b.AddBuiltinDependent(registry.KeyOf[[]uint16](""), sliceFactory[uint16]()),
		b.AddBuiltinDependent(registry.KeyOf[[]uint32](""), sliceFactory[uint32]()),
		b.AddBuiltinDependent(registry.KeyOf[[]uint64](""), sliceFactory[uint64]()),
		b.AddBuiltinDependent(registry.KeyOf[[]float64](""), sliceFactory[float64]()),
		b.AddBuiltinDependent(registry.KeyOf[[]string](""), sliceFactory[string]()),
	)
}

// intFactory builds the plain factory for one integer width.
func intFactory[T constraints.Integer]() registry.Factory {
	return func(src *rng.Source) any { return gen.NewInteger[T](src) }
}

// sliceFactory builds the dependent factory for []T: it resolves the
// default flavour of T and wraps it in a size-driven SliceOf.
func sliceFactory[T any]() registry.DependentFactory {
	return func(src *rng.Source, look registry.Lookup) (any, error) {
		elemKey := registry.KeyOf[T]("")
		h, err := look.Resolve(elemKey)
		if err != nil {
			return nil, err
		}
		eg, err := registry.As[gen.Generator[T]](h, elemKey)
		if err != nil {
			return nil, err
		}

		return gen.NewSliceOf[T](src, eg), nil
	}
}
