// Package bfs provides breadth-first search over the social graph, returning
// the shortest-hop tree rooted at a member.
//
// What
//
//   - Explore members in non-decreasing hop distance from a root member.
//   - Discover the whole reachable component; there is no early exit on a
//     target, so one tree answers path queries to every reached member.
//   - Returns a Tree containing:
//   - Order:  discovery sequence, root first
//   - Depth:  member ID → hops from root
//   - Parent: member ID → discovering member ID
//   - Writes the same tree into the graph's traversal scratch state
//     (parent link, depth in Key), so core.Graph.PathFrom works as well.
//
// Determinism
//
//	core.Graph.Connections returns entries sorted by destination member ID,
//	and BFS enqueues in that order, so Order is fully reproducible.
//
// Complexity (V = members, E = connections)
//
//   - Time:   O(V + E·log d) (connection tables are sorted per expansion)
//   - Memory: O(V)
//
// Usage
//
//	g.ResetTraversalState()
//	tree, err := bfs.FindReachableTree(g, rootID)
//	if err != nil {
//	    // ErrGraphNil, core.ErrMemberNotFound, core.ErrTraversalDirty, context errors
//	}
//	path, err := tree.PathTo(targetID) // ErrNoPath if target is elsewhere
//
// Options
//
//   - WithContext(ctx):     cancellation, checked once per dequeued member.
//   - WithOnDiscover(fn):   hook run when a member gets its parent link.
package bfs
