// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_connect.go - the Graph Builder: per-group pairwise connections.
//
// Canonical model:
//   - For each group (load order), for every unordered pair {m_i, m_j} with
//     i < j over list position, insert symmetric connections tagged with the group.
//   - First-group-wins: if m_i already holds a connection to m_j, the pair is
//     skipped for this group (core.Graph.Connect reports false).
//   - Groups with fewer than two members contribute nothing.
//
// Complexity: O(Σ C(|group.members|, 2)) over all groups.

package builder

import (
	"github.com/katalvlaran/socialgraph/core"
)

// ConnectGroups returns a Constructor that connects the members of every group.
func ConnectGroups() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for gi := 0; gi < g.GroupCount(); gi++ {
			if err := connectGroup(g, gi); err != nil {
				return builderErrorf(MethodConnectGroups, err, "group %d", g.GroupAt(gi).ID)
			}
		}

		return nil
	}
}

// ConnectGroup returns a Constructor that connects the members of one group.
func ConnectGroup(groupID uint64) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		gi, err := g.GroupIndex(groupID)
		if err != nil {
			return builderErrorf(MethodConnectGroup, err, "group %d", groupID)
		}
		if err = connectGroup(g, gi); err != nil {
			return builderErrorf(MethodConnectGroup, err, "group %d", groupID)
		}

		return nil
	}
}

// connectGroup inserts the pairwise connections of group gi.
func connectGroup(g *core.Graph, gi int) error {
	members := g.GroupAt(gi).MemberIndices()
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			// Associate dedups, so i<j never names the same member twice.
			if _, err := g.Connect(members[i], members[j], gi); err != nil {
				return err
			}
		}
	}

	return nil
}
