// Package dfs implements a depth-bounded, iterative-deepening depth-first
// path search over the social graph.
//
// What:
//
//   - FindPathBounded(g, root, target, maxBound, opts...) tries bounds
//     d = 0, 1, ..., maxBound. Each pass is a depth-first search that only
//     succeeds when it lands on target after exactly d hops.
//   - Marks are set on entry and cleared on exit (backtracking), so a pass
//     explores every simple path of length d from root.
//   - The walk uses an explicit stack of (member, remaining, cursor) frames;
//     large bounds never hit recursion limits.
//   - The first success leaves the root→target path in the graph's parent
//     links; PathResult.Path holds the same path as member IDs.
//
// Bounds:
//
//	An unbounded search for an unreachable target never terminates, so the
//	caller always supplies maxBound. SafeBound(g) = member count - 1 is
//	always enough. A pass that reaches no unmarked member with hops to spare
//	ends the search early, whatever maxBound says. Because passes grow one
//	hop at a time, the path found has the same length as the breadth-first
//	depth of target.
//
// Complexity:
//
//   - Time:   exponential in the bound on dense graphs (all simple paths of
//     length ≤ d are enumerated); O(d²) on a chain.
//   - Memory: O(d) stack frames plus per-frame connection slices.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrNegativeBound        maxBound < 0
//   - core.ErrMemberNotFound  unknown root or target (wrapped)
//   - core.ErrTraversalDirty  previous search was not followed by a reset
//   - context.Canceled        search cancelled via WithContext
package dfs
