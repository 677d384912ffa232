// Package dfs defines types and options for the depth-bounded,
// iterative-deepening path search.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to FindPathBounded.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNegativeBound indicates a maxBound below zero.
	ErrNegativeBound = errors.New("dfs: negative bound")
)

// Option configures optional behavior of FindPathBounded.
type Option func(*Options)

// Options holds configurable parameters for the bounded search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per stack step.
	Ctx context.Context

	// OnDeepen, if non-nil, is invoked before each depth-bounded pass
	// with the bound about to be tried (0, 1, 2, ...).
	OnDeepen func(bound int)
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnDeepen: nil,
	}
}

// WithContext sets the context used for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnDeepen registers a hook run at the start of every pass.
func WithOnDeepen(fn func(bound int)) Option {
	return func(o *Options) {
		o.OnDeepen = fn
	}
}

// PathResult reports the outcome of FindPathBounded.
//   - Found:    target was reached within the bound.
//   - Path:     root→target member IDs when Found, nil otherwise.
//   - Bound:    the bound of the successful pass, or the last bound tried.
//   - Expanded: members entered across all passes (work counter).
type PathResult struct {
	Root     uint64
	Target   uint64
	Found    bool
	Path     []uint64
	Bound    int
	Expanded int
}

// Hops returns the number of connections on Path, or -1 when not found.
func (r *PathResult) Hops() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}
