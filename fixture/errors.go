// SPDX-License-Identifier: MIT
// Package: fixgen/fixture
//
// errors.go - sentinel errors of the facade boundary.

package fixture

import "errors"

// ErrUnsupportedOp indicates the resolved generator does not support the
// requested operation (ranged, signed, sized or filtered draw). The
// failure is immediate and descriptive; the facade never retries and
// never substitutes a different generator.
// Usage: if errors.Is(err, ErrUnsupportedOp) { /* use a plain Value */ }.
var ErrUnsupportedOp = errors.New("fixture: operation not supported by generator")

// ErrConfigConsumed indicates a second Build on a Config. A Config is
// consumed by exactly one Build; build a new Config for a new Fixture.
// Usage: if errors.Is(err, ErrConfigConsumed) { /* NewConfig again */ }.
var ErrConfigConsumed = errors.New("fixture: configuration already consumed by Build")
