// Package dfs defines types and options for depth-first search over
// implicit state graphs, including cancellation, pre-/post-order hooks and
// depth limiting.
package dfs

import (
	"context"

	"github.com/pkg/errors"
)

// VertexState represents the DFS visitation state of a state key.
const (
	White = iota // White: the state has not been visited yet.
	Gray         // Gray: the state is on the recursion stack (visiting).
	Black        // Black: the state and all its descendants have been fully explored.
)

// State is the node contract shared with package bfs: Key identifies the
// node, Successors lists the states one step away.
type State[S any] interface {
	Key() string
	Successors() []S
}

var (
	// ErrNoPath is returned by LongestPath when no goal state is reachable.
	ErrNoPath = errors.New("dfs: no path to goal")

	// ErrOptionViolation is returned when a nil predicate is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of a search.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort the search early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon entering a state (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(key string, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a state
	// have been explored (post-order). Returning an error aborts traversal.
	OnExit func(key string, depth int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start state. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(key string, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(key string, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start state is visited; a negative limit
// disables the bound.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of Walk.
type DFSResult struct {
	// Order records state keys in the sequence they finished (post-order).
	Order []string

	// Depth maps each key to its depth in the DFS tree (not necessarily
	// the shortest distance).
	Depth map[string]int

	// Parent maps each key to the key it was first discovered from.
	// The start state does not appear in this map.
	Parent map[string]string
}

func applyOptions(opts []Option) DFSOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func cancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
