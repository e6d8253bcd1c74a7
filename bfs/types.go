// Package bfs provides the state contract, tunable options and error
// definitions for breadth-first search over implicit state graphs.
package bfs

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// State is the capability set a node of an implicit graph must satisfy.
//
// Key returns the canonical representation of the state. Two states are the
// same node iff their keys are identical; equality and hashing are derived
// from it, so states that are interchangeable for shortest-path purposes must
// produce the same key.
//
// Successors returns the states reachable in exactly one unit step. It must
// not mutate the receiver. Duplicates are tolerated (the search collapses
// them by key) and moves known to be globally suboptimal may be omitted.
type State[S any] interface {
	Key() string
	Successors() []S
}

// Sentinel errors for BFS execution.
var (
	// ErrNoPath is returned when the search space is exhausted without
	// reaching the goal. It is a legitimate outcome, not a failure.
	ErrNoPath = errors.New("bfs: no path to goal")

	// ErrOptionViolation is returned when an invalid Option or argument is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStateLimit is returned when more states are discovered than WithMaxStates allows.
	ErrStateLimit = errors.New("bfs: state limit exceeded")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. It may also carry a logger
	// (see internal/logging).
	Ctx context.Context

	// OnEnqueue is called when a state is first discovered and enqueued.
	// Receives the state key and its depth from the start.
	OnEnqueue func(key string, depth int)

	// OnDequeue is called immediately before expanding a state.
	OnDequeue func(key string, depth int)

	// OnVisit is called when expanding a state. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(key string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxStates, if > 0, bounds the number of discovered states.
	MaxStates int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no-op hooks,
// no depth limit and no state limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
		OnVisit:   func(string, int) error { return nil },
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

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(key string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(key string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(key string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: states deeper than d are never discovered
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates aborts the search with ErrStateLimit once more than n
// states would be discovered. n == 0 disables the limit.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// Result holds the outcome of Explore:
//   - Order: state keys in expansion sequence.
//   - Depth: map from state key to its distance (in steps) from the start.
//   - Parent: map from state key to its predecessor in the BFS tree.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the key path from the start state to dest.
// Returns an error wrapping ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Wrapf(ErrNoPath, "no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
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
