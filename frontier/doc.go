// Package frontier grows a weighted tree over the social graph from a root
// member, Prim style.
//
// What:
//
//   - A min-heap holds candidate connections ordered by (weight, push
//     sequence). Weight is the connection's group size plus one.
//   - Each round pops until it finds a candidate whose destination is still
//     outside the tree. Stale candidates are dropped lazily on pop, never
//     removed eagerly; a member may sit in the heap several times.
//   - The fresh candidate is annexed: its destination gets parent = the
//     candidate's source, the running total grows by its weight, and the new
//     member's outward connections are queued.
//   - The run ends when the heap drains, so the whole component is grown.
//
// The result exposes TotalWeight, the annexed Edges, Parent links, annex
// Order and PathTo. The graph's scratch state holds the same tree (parent
// links, key = running total at annex time); call ResetTraversalState
// before the next search.
//
// Determinism:
//
//	Connections are queued in ascending destination ID order and ties on
//	weight go to the earlier push, so two runs on the same graph annex the
//	same edges in the same order.
//
// Complexity:
//
//   - Time:   O(E log E)
//   - Memory: O(E)
package frontier
