// SPDX-License-Identifier: MIT
// Package: fixgen/fixture
//
// config.go - the fluent, build-once Configuration.
//
// Design:
//   • NewConfig claims every built-in key before the caller can register
//     anything, so built-in protection holds from the first chained call.
//   • Chained calls return the receiver; registration failures are
//     recorded immediately (first error wins) and surfaced by Build,
//     keeping the fluent chain unbroken while still failing at
//     configuration time, never at generation time.
//   • Build consumes the Config exactly once and seeds a fresh Source,
//     so one registration sequence plus one seed fully determine the
//     resulting Fixture's output.

package fixture

import (
	"fmt"

	"github.com/katalvlaran/fixgen/registry"
	"github.com/katalvlaran/fixgen/rng"
)

// DefaultSeed is the seed used when the caller never sets one. A fixed
// default keeps unconfigured fixtures reproducible run over run.
const DefaultSeed int64 = 1

// Config collects the seed and the custom generator registrations that
// will back a Fixture. Not safe for concurrent use; configuration is a
// single-threaded setup step by contract.
type Config struct {
	seed     int64
	builder  *registry.Builder
	err      error // first registration failure, surfaced by Build
	consumed bool
}

// NewConfig returns a Config with DefaultSeed and all built-in
// generators claimed (bool, every integer width, floats, char, string,
// uuid, any, byte arrays, and the built-in slice flavours).
func NewConfig() *Config {
	b := registry.NewBuilder()
	c := &Config{seed: DefaultSeed, builder: b}
	c.err = installBuiltins(b)

	return c
}

// Seed sets the random-source seed used once at Build. Fluent.
func (c *Config) Seed(seed int64) *Config {
	c.seed = seed

	return c
}

// Register adds a custom generator factory under k. Fluent; a collision
// with a built-in (ErrBuiltinOverride) or an earlier registration
// (ErrDuplicateKey) is recorded now and returned by Build.
// Panics on nil factory.
func (c *Config) Register(k registry.Key, f registry.Factory) *Config {
	if c.err == nil {
		c.err = c.builder.Add(k, f)
	}

	return c
}

// RegisterDependent adds a custom dependent factory under k: at first
// resolution it receives the full registry and may compose any other
// registered generator. Fluent; same collision rules as Register.
func (c *Config) RegisterDependent(k registry.Key, f registry.DependentFactory) *Config {
	if c.err == nil {
		c.err = c.builder.AddDependent(k, f)
	}

	return c
}

// Build consumes the Config and returns the immutable Fixture: a freshly
// seeded Source plus the fully populated Registry. The first recorded
// registration failure is returned here; a second Build returns
// ErrConfigConsumed.
func (c *Config) Build() (*Fixture, error) {
	if c.consumed {
		return nil, fmt.Errorf("Build: %w", ErrConfigConsumed)
	}
	c.consumed = true

	if c.err != nil {
		return nil, fmt.Errorf("Build: %w", c.err)
	}

	src := rng.New(c.seed)

	return &Fixture{src: src, reg: c.builder.Build(src)}, nil
}
