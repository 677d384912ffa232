// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/go-playground/validator/v10"
)

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValidator replaces the record validator, e.g. to register custom tags.
// Panics on nil.
func WithValidator(v *validator.Validate) BuilderOption {
	if v == nil {
		panic("builder: WithValidator(nil)")
	}
	return func(c *builderConfig) {
		c.validate = v
	}
}

// WithStrictGroups makes Ingest fail with ErrDanglingReference when a member
// lists a group that was not loaded, instead of dropping the id silently.
func WithStrictGroups() BuilderOption {
	return func(c *builderConfig) {
		c.strictGroups = true
	}
}
