package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// frame is one level of the explicit depth-first stack.
type frame struct {
	node      int
	remaining int
	cursor    int
	conns     []core.Connection
}

// walker encapsulates state during one FindPathBounded call.
type walker struct {
	graph    *core.Graph
	opts     Options
	ctx      context.Context
	root     int
	target   int
	stack    []frame
	expanded int
}

// SafeBound returns a bound that always lets FindPathBounded terminate with
// the correct answer: no simple path is longer than member count - 1.
// Returns 0 for a nil or empty graph.
// Complexity: O(1).
func SafeBound(g *core.Graph) int {
	if g == nil || g.MemberCount() == 0 {
		return 0
	}

	return g.MemberCount() - 1
}

// FindPathBounded searches for targetID from rootID by iterative deepening:
// for d = 0..maxBound it runs a depth-first search limited to exactly d hops,
// marking a member's parent on entry and clearing it on exit so sibling
// branches never see each other's marks. The first successful pass wins and
// its path is recovered from the parent links left in the scratch state.
//
// Contract:
//   - An unreachable target is not an error: the result has Found == false.
//   - A pass that cuts nothing off at its bound has seen every simple path
//     from root; the search stops there and Bound reports that depth.
//   - Call g.ResetTraversalState before the next search.
//
// Errors: ErrGraphNil, ErrNegativeBound, core.ErrMemberNotFound,
// core.ErrTraversalDirty, or the context error if cancelled.
// Complexity: O(D·P) time, P = simple paths from root of length ≤ D, where D
// is the last bound tried (never above min(maxBound, V)); O(V) memory.
func FindPathBounded(g *core.Graph, rootID, targetID uint64, maxBound int, opts ...Option) (*PathResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxBound < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBound, maxBound)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	root, err := g.MemberIndex(rootID)
	if err != nil {
		return nil, fmt.Errorf("dfs: root: %w", err)
	}
	target, err := g.MemberIndex(targetID)
	if err != nil {
		return nil, fmt.Errorf("dfs: target: %w", err)
	}
	if err = g.BeginTraversal(); err != nil {
		return nil, fmt.Errorf("dfs: %w", err)
	}

	w := &walker{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		root:   root,
		target: target,
	}
	res := &PathResult{Root: rootID, Target: targetID}
	g.SetColor(root, core.Gray)

	// d never steps past maxBound, so maxBound == math.MaxInt cannot wrap.
	for d := 0; ; d++ {
		res.Bound = d
		if o.OnDeepen != nil {
			o.OnDeepen(d)
		}
		found, cut, err := w.pass(d)
		res.Expanded = w.expanded
		if err != nil {
			return res, err
		}
		if found {
			res.Found = true
			res.Path, _ = g.PathFrom(root, target)

			return res, nil
		}
		if !cut || d == maxBound {
			return res, nil
		}
	}
}

// pass runs one depth-limited search. Success requires landing on target
// with exactly zero hops remaining. cut reports whether some unmarked
// neighbor was reached with no hops left, i.e. whether a deeper bound could
// see more. On failure every mark it made is undone.
func (w *walker) pass(bound int) (found, cut bool, err error) {
	if bound == 0 {
		return w.root == w.target, len(w.graph.Connections(w.root)) > 0, nil
	}

	g := w.graph
	w.stack = append(w.stack[:0], frame{node: w.root, remaining: bound, conns: g.Connections(w.root)})
	for len(w.stack) > 0 {
		select {
		case <-w.ctx.Done():
			w.unwind()
			return false, cut, w.ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.cursor == len(top.conns) {
			w.leave(top.node)
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		nbr := top.conns[top.cursor].Dst
		top.cursor++
		if g.Marked(nbr, w.root) {
			continue
		}

		w.expanded++
		rem := top.remaining - 1
		g.SetParent(nbr, top.node)
		if rem == 0 {
			if nbr == w.target {
				g.SetColor(nbr, core.Black)
				return true, cut, nil
			}
			g.SetParent(nbr, core.NoParent)
			cut = true
			continue
		}
		g.SetColor(nbr, core.Gray)
		g.SetKey(nbr, float64(rem))
		w.stack = append(w.stack, frame{node: nbr, remaining: rem, conns: g.Connections(nbr)})
	}

	return false, cut, nil
}

// leave clears the marks of a member whose subtree is exhausted.
func (w *walker) leave(i int) {
	if i == w.root {
		return
	}
	w.graph.SetParent(i, core.NoParent)
	w.graph.SetColor(i, core.White)
	w.graph.SetKey(i, 0)
}

// unwind pops every open frame, clearing marks, after cancellation.
func (w *walker) unwind() {
	for len(w.stack) > 0 {
		w.leave(w.stack[len(w.stack)-1].node)
		w.stack = w.stack[:len(w.stack)-1]
	}
}
