// File: traversal.go
// Role: Per-member traversal scratch state (parent back-link, color, key)
// shared by the bfs, dfs and frontier packages.
//
// Contract:
//   - A search claims the scratch state with BeginTraversal and leaves its
//     results in it (parent links form the search tree).
//   - The next search fails with ErrTraversalDirty until ResetTraversalState runs.
package core

// BeginTraversal claims the scratch state for a new search.
// It fails fast with ErrTraversalDirty if an earlier search was not followed
// by ResetTraversalState.
func (g *Graph) BeginTraversal() error {
	g.muTrav.Lock()
	defer g.muTrav.Unlock()

	if g.dirty {
		return ErrTraversalDirty
	}
	g.dirty = true

	return nil
}

// ResetTraversalState clears parent links, colors and keys of every member
// and releases the scratch state for the next search.
// Complexity: O(V).
func (g *Graph) ResetTraversalState() {
	g.muTrav.Lock()
	defer g.muTrav.Unlock()

	for i := range g.parent {
		g.parent[i] = NoParent
		g.color[i] = White
		g.key[i] = 0
	}
	g.dirty = false
}

// TraversalDirty reports whether the scratch state holds results of a search.
func (g *Graph) TraversalDirty() bool {
	g.muTrav.Lock()
	defer g.muTrav.Unlock()

	return g.dirty
}

// Parent returns the parent index recorded for member i, or NoParent.
func (g *Graph) Parent(i int) int { return g.parent[i] }

// SetParent records p as the parent of member i. Pass NoParent to unmark.
func (g *Graph) SetParent(i, p int) { g.parent[i] = p }

// Color returns the visitation color of member i.
func (g *Graph) Color(i int) Color { return g.color[i] }

// SetColor sets the visitation color of member i.
func (g *Graph) SetColor(i int, c Color) { g.color[i] = c }

// Key returns the scratch key of member i (depth or running cost).
func (g *Graph) Key(i int) float64 { return g.key[i] }

// SetKey sets the scratch key of member i.
func (g *Graph) SetKey(i int, k float64) { g.key[i] = k }

// Marked reports whether member i is already incorporated by a traversal
// rooted at root: either it is the root or it carries a parent link.
func (g *Graph) Marked(i, root int) bool {
	return i == root || g.parent[i] != NoParent
}

// PathFrom walks parent links from target back to root and returns the
// member IDs in root→target order. ok is false when target is not linked
// to root by the current scratch state.
// Complexity: O(path length); the walk is bounded by V to survive corrupt links.
func (g *Graph) PathFrom(root, target int) (path []uint64, ok bool) {
	rev := make([]uint64, 0, 8)
	cur := target
	for steps := 0; steps <= len(g.members); steps++ {
		rev = append(rev, g.members[cur].ID)
		if cur == root {
			for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
				rev[i], rev[j] = rev[j], rev[i]
			}

			return rev, true
		}
		cur = g.parent[cur]
		if cur == NoParent {
			return nil, false
		}
	}

	return nil, false
}
