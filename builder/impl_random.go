// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_random.go - implementation of RandomConnections(n), a stress-test
// generator that sprinkles extra connections over a loaded graph.
//
// Canonical model:
//   - n independent attempts. Each draws src, dst ∈ [0,M) and group ∈ [0,G)
//     from cfg.rng, in that order.
//   - src == dst: attempt skipped.
//   - src already connected to dst: attempt skipped (first connection wins).
//   - Otherwise a symmetric connection tagged with the drawn group is added,
//     even if neither member belongs to it; its weight still follows the
//     group size.
//
// Contract:
//   - n ≥ 0 (else ErrBadCount).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - n > 0 requires M ≥ 2 and G ≥ 1 (else ErrTooFewMembers).
//
// Determinism: fixed draw order; identical graphs for a fixed seed.

package builder

import (
	"github.com/katalvlaran/socialgraph/core"
)

// RandomConnections returns a Constructor performing n random connection attempts.
func RandomConnections(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 {
			return builderErrorf(MethodRandomConnections, ErrBadCount, "n=%d", n)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandomConnections, ErrNeedRandSource, "n=%d", n)
		}
		if n == 0 {
			return nil
		}
		m, gc := g.MemberCount(), g.GroupCount()
		if m < MinRandomMembers || gc < MinRandomGroups {
			return builderErrorf(MethodRandomConnections, ErrTooFewMembers, "members=%d groups=%d", m, gc)
		}

		rng := cfg.rng
		for i := 0; i < n; i++ {
			src := rng.Intn(m)
			dst := rng.Intn(m)
			group := rng.Intn(gc)
			if src == dst {
				continue
			}
			// Connect keeps the existing pair untouched.
			if _, err := g.Connect(src, dst, group); err != nil {
				return builderErrorf(MethodRandomConnections, err, "attempt %d", i)
			}
		}

		return nil
	}
}
