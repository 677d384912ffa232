// Package frontier defines options, results and sentinel errors for the
// greedy frontier grower.
package frontier

import (
	"context"
	"errors"
	"fmt"
)

// ErrGraphNil indicates that a nil *core.Graph was passed to GrowFrontier.
var ErrGraphNil = errors.New("frontier: graph is nil")

// ErrNoPath is returned by Result.PathTo for a member that was not annexed.
var ErrNoPath = errors.New("frontier: no path")

// Option configures GrowFrontier.
type Option func(*Options)

// Options holds the grower's knobs.
type Options struct {
	// Ctx allows cancellation; checked once per heap pop.
	Ctx context.Context

	// OnAnnex, if non-nil, is called for every annexed edge in annex order.
	OnAnnex func(e Edge)
}

// DefaultOptions returns a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnAnnex registers fn to observe annexed edges.
func WithOnAnnex(fn func(e Edge)) Option {
	return func(o *Options) {
		o.OnAnnex = fn
	}
}

// Edge is one annexed connection of the grown tree.
// Weight is the group size plus one at the time the candidate was queued.
type Edge struct {
	From   uint64
	To     uint64
	Group  uint64
	Weight float64
}

// Result is the tree grown from Root.
//
// Fields:
//
//	TotalWeight - sum of Edges[i].Weight.
//	Edges       - annexed connections in annex order.
//	Parent      - member ID → source member ID of its annexing edge.
//	Order       - annexed member IDs in annex order (Root excluded).
type Result struct {
	Root        uint64
	TotalWeight float64
	Edges       []Edge
	Parent      map[uint64]uint64
	Order       []uint64
}

// Annexed reports whether id belongs to the grown tree (Root included).
func (r *Result) Annexed(id uint64) bool {
	if id == r.Root {
		return true
	}
	_, ok := r.Parent[id]

	return ok
}

// PathTo returns the Root→dest path along tree edges, or ErrNoPath.
func (r *Result) PathTo(dest uint64) ([]uint64, error) {
	if !r.Annexed(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	var rev []uint64
	for cur := dest; cur != r.Root; cur = r.Parent[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, r.Root)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}
