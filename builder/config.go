// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng          = nil    (RandomConnections requires WithSeed/WithRand)
//   • validate     = shared validator.Validate instance
//   • strictGroups = false  (dangling group ids are dropped)

package builder

import (
	"math/rand"

	"github.com/go-playground/validator/v10"
)

// defaultValidator caches struct metadata across builds; validator.Validate
// is safe for concurrent use.
var defaultValidator = validator.New(validator.WithRequiredStructEnabled())

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// validate checks LoadedMember / LoadedGroup records.
	validate *validator.Validate
	// strictGroups turns dangling member→group references into errors.
	strictGroups bool
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		validate: defaultValidator,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
