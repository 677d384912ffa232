// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Apply runs constructors against an existing graph (rebuilds keep members and groups).
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same records, options, seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; constructors return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// Constructor applies one deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate early, return sentinel errors,
// and preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Typical composition:
//
//	g, err := builder.BuildGraph(nil, nil,
//	    builder.Ingest(members, groups),
//	    builder.ConnectGroups(),
//	)
//
// Complexity: O(len(bopts)) + Σ cost of constructors.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph. Unlike BuildGraph the
// graph is kept on error; mutations made before the failing constructor stay.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// =============================================================================
// Constructors - implemented in impl_*.go
// =============================================================================
//
// Ingest(members, groups)  impl_ingest.go   validate records, register, associate
// ConnectGroups()          impl_connect.go  pairwise connections, first-group-wins
// ConnectGroup(groupID)    impl_connect.go  one group only
// RandomConnections(n)     impl_random.go   n random attempts; requires WithSeed/WithRand
