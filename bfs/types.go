// Package bfs provides tunable options and error definitions
// for breadth‐first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoPath is returned by Tree.PathTo when the target was not discovered.
	// It is a normal outcome, not a failure of the search.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued member.
	Ctx context.Context

	// OnDiscover is called when a member receives its parent link,
	// with the member ID and its depth from root.
	OnDiscover func(id uint64, depth int)
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnDiscover: func(uint64, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnDiscover registers a callback run on every discovery.
func WithOnDiscover(fn func(id uint64, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// Tree is the shortest-hop tree of the component reachable from Root.
//   - Order:  members in discovery sequence, Root first.
//   - Depth:  member ID → hop count from Root.
//   - Parent: member ID → discovering member ID (Root absent).
type Tree struct {
	Root   uint64
	Order  []uint64
	Depth  map[uint64]int
	Parent map[uint64]uint64
}

// Reached reports whether id was discovered.
func (t *Tree) Reached(id uint64) bool {
	_, ok := t.Depth[id]
	return ok
}

// PathTo reconstructs the path from Root to dest by walking parent links.
// Returns ErrNoPath if dest was not reached.
func (t *Tree) PathTo(dest uint64) ([]uint64, error) {
	if !t.Reached(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := []uint64{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := t.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
