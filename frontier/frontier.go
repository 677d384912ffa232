package frontier

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// grower holds the state of one GrowFrontier call.
type grower struct {
	graph *core.Graph
	opts  Options
	root  int
	pq    candidatePQ
	seq   uint64
	res   *Result
}

// GrowFrontier greedily grows a tree from rootID, always annexing the
// cheapest queued connection whose destination is not yet in the tree.
//
// Steps:
//  1. Validate the graph and root, then claim the traversal scratch state.
//  2. Queue every connection of root (ascending destination ID).
//  3. Pop until a fresh candidate appears; stale ones are discarded.
//  4. Annex it: parent = the edge's source, add its weight to the total,
//     record the edge, key = running total. Queue the new member's
//     connections to members outside the tree.
//  5. Stop when the heap drains: the whole component has been grown.
//
// A root without connections yields TotalWeight 0 and no edges.
// Weights are group size + 1, so small groups are preferred.
//
// Errors: ErrGraphNil, core.ErrMemberNotFound, core.ErrTraversalDirty,
// or the context error if cancelled.
//
// Complexity: O(E log E) time, O(E) heap memory (lazy deletion keeps one
// entry per queued connection).
func GrowFrontier(g *core.Graph, rootID uint64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	root, err := g.MemberIndex(rootID)
	if err != nil {
		return nil, fmt.Errorf("frontier: root: %w", err)
	}
	if err = g.BeginTraversal(); err != nil {
		return nil, fmt.Errorf("frontier: %w", err)
	}

	n := g.MemberCount()
	w := &grower{
		graph: g,
		opts:  o,
		root:  root,
		res: &Result{
			Root:   rootID,
			Edges:  make([]Edge, 0, n-1),
			Parent: make(map[uint64]uint64, n),
			Order:  make([]uint64, 0, n),
		},
	}
	heap.Init(&w.pq)

	g.SetColor(root, core.Black)
	w.enqueue(root)

	return w.res, w.loop()
}

// enqueue pushes every connection of src whose destination is outside the tree.
func (w *grower) enqueue(src int) {
	for _, c := range w.graph.Connections(src) {
		if w.graph.Marked(c.Dst, w.root) {
			continue
		}
		heap.Push(&w.pq, candidate{
			src:    src,
			dst:    c.Dst,
			group:  c.Group,
			weight: w.graph.Weight(c),
			seq:    w.seq,
		})
		w.seq++
	}
}

// loop drains the heap, annexing the first fresh candidate of each round.
func (w *grower) loop() error {
	ctx := w.opts.Ctx
	for w.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c := heap.Pop(&w.pq).(candidate)
		if w.graph.Marked(c.dst, w.root) {
			continue
		}
		w.annex(c)
		w.enqueue(c.dst)
	}

	return nil
}

// annex links c.dst into the tree and records the edge.
func (w *grower) annex(c candidate) {
	g := w.graph
	g.SetParent(c.dst, c.src)
	g.SetColor(c.dst, core.Black)
	w.res.TotalWeight += c.weight
	g.SetKey(c.dst, w.res.TotalWeight)

	e := Edge{
		From:   g.MemberAt(c.src).ID,
		To:     g.MemberAt(c.dst).ID,
		Group:  g.GroupAt(c.group).ID,
		Weight: c.weight,
	}
	w.res.Edges = append(w.res.Edges, e)
	w.res.Parent[e.To] = e.From
	w.res.Order = append(w.res.Order, e.To)
	if w.opts.OnAnnex != nil {
		w.opts.OnAnnex(e)
	}
}
