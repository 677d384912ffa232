// Package bfs provides breadth-first search over a core.Graph,
// returning the shortest-hop tree of everything reachable from a root member.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// walker encapsulates mutable BFS state. Parent links and depths live in
// the graph's traversal scratch; res mirrors them for the caller.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	root  int
	queue []int
	res   *Tree
}

// FindReachableTree runs breadth-first search from the member rootID and
// discovers its entire connected component. It never stops early on a
// particular target; use Tree.PathTo afterwards.
//
// Contract:
//   - Members are discovered in ascending-ID order per expanded member, so
//     the tree is deterministic.
//   - On return the graph's scratch state holds the tree (parent links,
//     depth in Key, Black color); call g.ResetTraversalState before the
//     next search.
//   - On cancellation the partial tree is returned with the context error.
//
// Errors: ErrGraphNil, core.ErrMemberNotFound, core.ErrTraversalDirty,
// or the context error if cancelled.
// Complexity: O(V + E) time, O(V) memory for the queue and result maps.
func FindReachableTree(g *core.Graph, rootID uint64, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	root, err := g.MemberIndex(rootID)
	if err != nil {
		return nil, fmt.Errorf("bfs: root: %w", err)
	}
	if err = g.BeginTraversal(); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}

	n := g.MemberCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		root:  root,
		queue: make([]int, 0, n),
		res: &Tree{
			Root:   rootID,
			Order:  make([]uint64, 0, n),
			Depth:  make(map[uint64]int, n),
			Parent: make(map[uint64]uint64, n),
		},
	}

	// Seed queue with root (no parent)
	w.res.Order = append(w.res.Order, rootID)
	w.res.Depth[rootID] = 0
	g.SetColor(root, core.Gray)
	w.queue = append(w.queue, root)

	return w.res, w.loop()
}

// loop processes the queue until empty or cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]
		w.expand(cur)
	}

	return nil
}

// expand scans cur's connections and enqueues every member that is neither
// root nor already linked.
func (w *walker) expand(cur int) {
	g := w.graph
	curID := g.MemberAt(cur).ID
	depth := int(g.Key(cur)) + 1
	for _, c := range g.Connections(cur) {
		nbr := c.Dst
		if g.Marked(nbr, w.root) {
			continue
		}
		g.SetParent(nbr, cur)
		g.SetKey(nbr, float64(depth))
		g.SetColor(nbr, core.Gray)

		id := g.MemberAt(nbr).ID
		w.res.Order = append(w.res.Order, id)
		w.res.Depth[id] = depth
		w.res.Parent[id] = curID
		w.opts.OnDiscover(id, depth)

		w.queue = append(w.queue, nbr)
	}
	g.SetColor(cur, core.Black)
}
