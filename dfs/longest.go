package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/sirupsen/logrus"

	"github.com/moink/AoC2016/internal/logging"
)

// pathWalker enumerates simple paths from the start state.
type pathWalker[S State[S]] struct {
	opts   DFSOptions
	isGoal func(S) bool
	onPath *hashset.Set
	best   int
	goals  int
}

// LongestPath returns the length of the longest simple path from start to
// any state satisfying isGoal. Goal states end a path: the walk never
// continues through one. A state already on the current path is not
// re-entered, so cyclic state graphs terminate, but the search is
// exhaustive and exponential in the worst case; bound it with
// WithMaxDepth where the space is large.
//
// A start state that is itself a goal yields 0. If no goal is reachable
// it returns -1 and ErrNoPath.
func LongestPath[S State[S]](start S, isGoal func(S) bool, opts ...Option) (int, error) {
	if isGoal == nil {
		return -1, fmt.Errorf("%w: goal predicate is nil", ErrOptionViolation)
	}
	w := &pathWalker[S]{
		opts:   applyOptions(opts),
		isGoal: isGoal,
		onPath: hashset.New(),
		best:   -1,
	}
	if err := w.extend(start, start.Key(), 0); err != nil {
		return -1, err
	}

	logging.Logger(w.opts.Ctx).WithFields(logrus.Fields{
		"goals_reached": w.goals,
		"longest":       w.best,
	}).Debug("dfs: path enumeration complete")

	if w.best < 0 {
		return -1, ErrNoPath
	}
	return w.best, nil
}

func (w *pathWalker[S]) extend(s S, key string, depth int) error {
	if err := cancelled(w.opts.Ctx); err != nil {
		return err
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(key, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", key, err)
		}
	}
	if w.isGoal(s) {
		w.goals++
		if depth > w.best {
			w.best = depth
		}
		return nil
	}
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	w.onPath.Add(key)
	for _, next := range s.Successors() {
		nkey := next.Key()
		if w.onPath.Contains(nkey) {
			continue
		}
		if err := w.extend(next, nkey, depth+1); err != nil {
			return err
		}
	}
	w.onPath.Remove(key)

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(key, depth); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", key, err)
		}
	}
	return nil
}
