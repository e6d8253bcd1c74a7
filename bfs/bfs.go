package bfs

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/sirupsen/logrus"

	"github.com/moink/AoC2016/internal/logging"
)

// queueItem pairs a state with its key and BFS depth.
type queueItem[S any] struct {
	state S
	key   string
	depth int
}

// walker encapsulates mutable BFS state. Each search owns its walker.
type walker[S State[S]] struct {
	opts       Options
	queue      *linkedlistqueue.Queue
	discovered map[string]int
	res        *Result // nil unless the caller wants Order/Parent
}

func newWalker[S State[S]](opts []Option, track bool) (*walker[S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	w := &walker[S]{
		opts:       o,
		queue:      linkedlistqueue.New(),
		discovered: make(map[string]int),
	}
	if track {
		w.res = &Result{
			Order:  []string{},
			Depth:  w.discovered,
			Parent: make(map[string]string),
		}
	}
	return w, nil
}

// StepsBetween returns the minimum number of unit steps from start to goal.
// Goal detection compares keys and happens eagerly when a successor is
// generated. StepsBetween(s, s) is 0. If the goal cannot be reached it
// returns -1 and ErrNoPath; other errors come from cancellation, hooks,
// WithMaxStates, or invalid options.
func StepsBetween[S State[S]](start, goal S, opts ...Option) (int, error) {
	goalKey := goal.Key()
	return search(start, func(key string, _ S) bool { return key == goalKey }, opts)
}

// StepsUntil is StepsBetween with a goal predicate instead of a goal state.
// It returns the depth of the first state for which isGoal reports true.
func StepsUntil[S State[S]](start S, isGoal func(S) bool, opts ...Option) (int, error) {
	if isGoal == nil {
		return -1, fmt.Errorf("%w: goal predicate is nil", ErrOptionViolation)
	}
	return search(start, func(_ string, s S) bool { return isGoal(s) }, opts)
}

// CountReachableWithin returns the number of distinct states, start
// included, reachable from start in at most maxSteps steps. States at depth
// maxSteps are counted but not expanded.
func CountReachableWithin[S State[S]](start S, maxSteps int, opts ...Option) (int, error) {
	if maxSteps < 0 {
		return 0, fmt.Errorf("%w: maxSteps cannot be negative (%d)", ErrOptionViolation, maxSteps)
	}
	w, err := newWalker[S](opts, false)
	if err != nil {
		return 0, err
	}
	if err = w.enqueue(start, start.Key(), 0, ""); err != nil {
		return 0, err
	}
	for !w.queue.Empty() {
		if err = w.cancelled(); err != nil {
			return 0, err
		}
		item := w.dequeue()
		if err = w.visit(item); err != nil {
			return 0, err
		}
		if item.depth >= maxSteps {
			continue
		}
		for _, next := range item.state.Successors() {
			key := next.Key()
			if _, seen := w.discovered[key]; seen {
				continue
			}
			if err = w.enqueue(next, key, item.depth+1, item.key); err != nil {
				return 0, err
			}
		}
	}

	logging.Logger(w.opts.Ctx).WithFields(logrus.Fields{
		"max_steps": maxSteps,
		"reachable": len(w.discovered),
	}).Debug("bfs: reachability count complete")

	return len(w.discovered), nil
}

// Explore runs a full traversal from start and returns visit order, depths
// and parent links keyed by state key. Use WithMaxDepth to bound it; an
// unbounded Explore over an infinite state space never returns unless the
// context is cancelled or WithMaxStates is set.
func Explore[S State[S]](start S, opts ...Option) (*Result, error) {
	w, err := newWalker[S](opts, true)
	if err != nil {
		return nil, err
	}
	if err = w.enqueue(start, start.Key(), 0, ""); err != nil {
		return nil, err
	}
	for !w.queue.Empty() {
		if err = w.cancelled(); err != nil {
			return w.res, err
		}
		item := w.dequeue()
		if err = w.visit(item); err != nil {
			return w.res, err
		}
		if err = w.expand(item); err != nil {
			return w.res, err
		}
	}
	return w.res, nil
}

// search drives the goal-directed traversal shared by StepsBetween and StepsUntil.
func search[S State[S]](start S, match func(key string, s S) bool, opts []Option) (int, error) {
	w, err := newWalker[S](opts, false)
	if err != nil {
		return -1, err
	}
	startKey := start.Key()
	if match(startKey, start) {
		return 0, nil
	}
	if err = w.enqueue(start, startKey, 0, ""); err != nil {
		return -1, err
	}
	log := logging.Logger(w.opts.Ctx)

	for !w.queue.Empty() {
		if err = w.cancelled(); err != nil {
			return -1, err
		}
		item := w.dequeue()
		if err = w.visit(item); err != nil {
			return -1, err
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, next := range item.state.Successors() {
			key := next.Key()
			if match(key, next) {
				log.WithFields(logrus.Fields{
					"steps":      nextDepth,
					"discovered": len(w.discovered),
				}).Debug("bfs: goal reached")
				return nextDepth, nil
			}
			if _, seen := w.discovered[key]; seen {
				continue
			}
			if err = w.enqueue(next, key, nextDepth, item.key); err != nil {
				return -1, err
			}
		}
	}

	log.WithField("discovered", len(w.discovered)).Debug("bfs: search space exhausted")
	return -1, ErrNoPath
}

// enqueue records key at depth d, calls OnEnqueue, records its parent when
// tracking, and adds the state to the queue.
func (w *walker[S]) enqueue(s S, key string, d int, parent string) error {
	if w.opts.MaxStates > 0 && len(w.discovered) >= w.opts.MaxStates {
		return fmt.Errorf("%w: %d states discovered", ErrStateLimit, len(w.discovered))
	}
	w.discovered[key] = d
	if w.res != nil && parent != "" {
		w.res.Parent[key] = parent
	}
	w.opts.OnEnqueue(key, d)
	w.queue.Enqueue(queueItem[S]{state: s, key: key, depth: d})
	return nil
}

// dequeue pops the first item and invokes OnDequeue. The queue must be non-empty.
func (w *walker[S]) dequeue() queueItem[S] {
	v, _ := w.queue.Dequeue()
	item := v.(queueItem[S])
	w.opts.OnDequeue(item.key, item.depth)
	return item
}

// visit records the key in Order (when tracking) and calls OnVisit.
func (w *walker[S]) visit(item queueItem[S]) error {
	if w.res != nil {
		w.res.Order = append(w.res.Order, item.key)
	}
	if err := w.opts.OnVisit(item.key, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.key, err)
	}
	return nil
}

// expand enqueues each unseen successor of item within MaxDepth.
func (w *walker[S]) expand(item queueItem[S]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, next := range item.state.Successors() {
		key := next.Key()
		if _, seen := w.discovered[key]; seen {
			continue
		}
		if err := w.enqueue(next, key, nextDepth, item.key); err != nil {
			return err
		}
	}
	return nil
}

// cancelled reports the context error, if any.
func (w *walker[S]) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}
