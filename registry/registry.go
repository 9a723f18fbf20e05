// SPDX-License-Identifier: MIT
// Package: fixgen/registry
//
// registry.go - two-phase builder, the built registry, and the typed
// accessor boundary.
//
// Design:
//   • Phase 1 (Builder): collect factories under keys; built-ins claim
//     their keys first and stay immutable; collisions fail here, at
//     registration time.
//   • Phase 2 (Registry): plain factories materialize eagerly at Build;
//     dependent factories materialize lazily on first Resolve with
//     memoization, so registration order is independent of dependency
//     order. A resolution path tracks in-flight keys to turn factory
//     cycles into ErrDependencyCycle instead of unbounded recursion.
//   • Concurrency: ready entries are read under RLock; only the one-time
//     construction of a pending entry takes the write lock.

package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/katalvlaran/fixgen/rng"
)

// Factory constructs a generator bound to the shared random source.
// The returned handle must satisfy the gen capability interfaces the
// entry's callers will ask for.
type Factory func(src *rng.Source) any

// DependentFactory constructs a generator that composes other registered
// generators, resolved through look. Resolution of dependencies is lazy
// and order-independent.
type DependentFactory func(src *rng.Source, look Lookup) (any, error)

// Lookup resolves registry entries from inside a DependentFactory.
// A built *Registry satisfies Lookup for external callers too.
type Lookup interface {
	Resolve(k Key) (any, error)
}

// Builder collects registrations before the registry is built.
// It is not safe for concurrent use; registration is a single-threaded
// setup step by contract.
type Builder struct {
	factories  map[Key]Factory
	dependents map[Key]DependentFactory
	builtin    map[Key]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		factories:  make(map[Key]Factory),
		dependents: make(map[Key]DependentFactory),
		builtin:    make(map[Key]struct{}),
	}
}

// AddBuiltin registers f under k and marks the key as built-in, making it
// immutable for the lifetime of the library. Intended for the fixture
// package's initialization pass. Panics on nil f; ErrDuplicateKey if the
// key is already taken.
func (b *Builder) AddBuiltin(k Key, f Factory) error {
	if f == nil {
		panic("registry: AddBuiltin(nil factory)")
	}
	if err := b.claim(k); err != nil {
		return err
	}

	b.factories[k] = f
	b.builtin[k] = struct{}{}

	return nil
}

// AddBuiltinDependent is AddBuiltin for dependent factories.
func (b *Builder) AddBuiltinDependent(k Key, f DependentFactory) error {
	if f == nil {
		panic("registry: AddBuiltinDependent(nil factory)")
	}
	if err := b.claim(k); err != nil {
		return err
	}

	b.dependents[k] = f
	b.builtin[k] = struct{}{}

	return nil
}

// Add registers a custom factory under k.
// Panics on nil f. Returns ErrBuiltinOverride when k is claimed by a
// built-in and ErrDuplicateKey when k was already registered; it never
// overwrites.
func (b *Builder) Add(k Key, f Factory) error {
	if f == nil {
		panic("registry: Add(nil factory)")
	}
	if err := b.claimCustom(k); err != nil {
		return err
	}

	b.factories[k] = f

	return nil
}

// AddDependent registers a custom dependent factory under k, with the
// same collision rules as Add.
func (b *Builder) AddDependent(k Key, f DependentFactory) error {
	if f == nil {
		panic("registry: AddDependent(nil factory)")
	}
	if err := b.claimCustom(k); err != nil {
		return err
	}

	b.dependents[k] = f

	return nil
}

// Builtin reports whether k is claimed by a built-in binding.
func (b *Builder) Builtin(k Key) bool {
	_, ok := b.builtin[k]

	return ok
}

// Build materializes the registry against src: plain factories construct
// eagerly, dependent factories stay pending for lazy resolution.
// The Builder must not be reused after Build. Panics on nil src.
// Complexity: O(entries).
func (b *Builder) Build(src *rng.Source) *Registry {
	if src == nil {
		panic("registry: Build(nil source)")
	}

	r := &Registry{
		src:     src,
		ready:   make(map[Key]any, len(b.factories)),
		pending: make(map[Key]DependentFactory, len(b.dependents)),
	}
	for k, f := range b.factories {
		r.ready[k] = f(src)
	}
	for k, f := range b.dependents {
		r.pending[k] = f
	}

	return r
}

func (b *Builder) claim(k Key) error {
	if b.taken(k) {
		return fmt.Errorf("AddBuiltin: %s: %w", k, ErrDuplicateKey)
	}

	return nil
}

func (b *Builder) claimCustom(k Key) error {
	if _, ok := b.builtin[k]; ok {
		return fmt.Errorf("Add: %s: %w", k, ErrBuiltinOverride)
	}
	if b.taken(k) {
		return fmt.Errorf("Add: %s: %w", k, ErrDuplicateKey)
	}

	return nil
}

func (b *Builder) taken(k Key) bool {
	if _, ok := b.factories[k]; ok {
		return true
	}
	_, ok := b.dependents[k]

	return ok
}

// Registry is the built, effectively read-only (type, qualifier) →
// generator mapping. Safe for concurrent Resolve calls.
type Registry struct {
	src *rng.Source

	mu      sync.RWMutex // guards the maps below
	ready   map[Key]any
	pending map[Key]DependentFactory
}

// Resolve returns the generator handle bound to k, constructing a pending
// dependent entry on first use. ErrNotRegistered when k has no binding;
// ErrDependencyCycle when dependent factories loop.
// Complexity: O(1) after first use; first use costs the factory chain.
func (r *Registry) Resolve(k Key) (any, error) {
	// Fast path: already materialized.
	r.mu.RLock()
	h, ok := r.ready[k]
	r.mu.RUnlock()
	if ok {
		return h, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resolveLocked(k, nil)
}

// resolveLocked materializes k under the write lock; path carries the
// in-flight keys of the current dependent chain for cycle detection.
func (r *Registry) resolveLocked(k Key, path map[Key]struct{}) (any, error) {
	if h, ok := r.ready[k]; ok {
		return h, nil
	}

	dep, ok := r.pending[k]
	if !ok {
		return nil, fmt.Errorf("Resolve: %s: %w", k, ErrNotRegistered)
	}
	if _, inFlight := path[k]; inFlight {
		return nil, fmt.Errorf("Resolve: %s: %w", k, ErrDependencyCycle)
	}

	if path == nil {
		path = make(map[Key]struct{})
	}
	path[k] = struct{}{}
	h, err := dep(r.src, lockedLookup{r: r, path: path})
	delete(path, k)
	if err != nil {
		return nil, fmt.Errorf("Resolve: %s: %w", k, err)
	}

	r.ready[k] = h
	delete(r.pending, k)

	return h, nil
}

// lockedLookup is the Lookup view handed to dependent factories; it
// resolves within the already-held write lock and the current cycle path.
type lockedLookup struct {
	r    *Registry
	path map[Key]struct{}
}

func (l lockedLookup) Resolve(k Key) (any, error) {
	return l.r.resolveLocked(k, l.path)
}

// As is the typed accessor boundary: it asserts the type-erased handle h
// (resolved under k) to the requested generator interface G with exactly
// one checked assertion, failing with ErrWrongType and both type names on
// mismatch.
func As[G any](h any, k Key) (G, error) {
	g, ok := h.(G)
	if !ok {
		var zero G
		want := reflect.TypeOf((*G)(nil)).Elem()

		return zero, fmt.Errorf("As: key %s holds %T, want %s: %w", k, h, want, ErrWrongType)
	}

	return g, nil
}
