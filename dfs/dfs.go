package dfs

import (
	"fmt"
)

// dfsWalker encapsulates state during a traversal.
type dfsWalker[S State[S]] struct {
	opts DFSOptions
	res  *DFSResult
}

// Walk performs a depth-first traversal from start, visiting every
// reachable state once. Successors are explored in the order the state
// returns them. Returns DFSResult or error if aborted by context or hook;
// on a hook error Order is cleared.
func Walk[S State[S]](start S, opts ...Option) (*DFSResult, error) {
	w := &dfsWalker[S]{
		opts: applyOptions(opts),
		res: &DFSResult{
			Order:  []string{},
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	if err := w.traverse(start, start.Key(), 0); err != nil {
		return w.res, err
	}
	return w.res, nil
}

// traverse visits s at the given depth, recursing into undiscovered successors.
func (w *dfsWalker[S]) traverse(s S, key string, depth int) error {
	if err := cancelled(w.opts.Ctx); err != nil {
		return err
	}
	w.res.Depth[key] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(key, depth); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", key, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, next := range s.Successors() {
			nkey := next.Key()
			if _, seen := w.res.Depth[nkey]; seen {
				continue
			}
			w.res.Parent[nkey] = key
			if err := w.traverse(next, nkey, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(key, depth); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %q: %w", key, err)
		}
	}
	w.res.Order = append(w.res.Order, key)

	return nil
}
