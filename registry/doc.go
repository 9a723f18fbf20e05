// Package registry maps (type, qualifier) keys to generator instances
// and keeps built-in bindings immutable after library initialization.
//
// The build is two-phase, so registration order never has to match
// dependency order:
//
//  1. Collect — a Builder gathers factories (plain and dependent) under
//     their keys, rejecting collisions with built-ins up front.
//  2. Resolve — Build materializes plain factories eagerly against the
//     shared random source; dependent factories stay pending and are
//     constructed lazily on first Resolve, with memoization and cycle
//     detection, looking other entries up through the finished Registry.
//
// Handles are type-erased (any): the registry stores generators whose
// value types vary per entry. The typed boundary is As[T], which performs
// the single checked assertion and fails descriptively, so no call site
// ever carries an unchecked cast.
//
// A built Registry is read-only; concurrent Resolve calls are safe. The
// only internal lock guards the one-time construction of pending
// dependent entries.
//
// Errors are sentinels (ErrBuiltinOverride, ErrDuplicateKey,
// ErrNotRegistered, ErrWrongType, ErrDependencyCycle); branch with
// errors.Is.
package registry
