// Package bfs provides breadth-first search over implicit, lazily generated
// state graphs, returning unweighted shortest-path step counts and bounded
// reachability counts.
//
// What
//
//   - Any type implementing State[S] (Key + Successors) can be searched;
//     no graph has to be materialised up front.
//   - StepsBetween(start, goal): fewest unit steps from start to goal.
//   - StepsUntil(start, isGoal): same, with a goal predicate.
//   - CountReachableWithin(start, n): distinct states within n steps.
//   - Explore(start): full traversal with Order, Depth and Parent links.
//   - Set[S]: insertion-ordered, key-deduplicated successor collection.
//
// Identity
//
//	Two states are one node iff Key() returns the same string. To merge
//	symmetric configurations (e.g. interchangeable labels), canonicalize in
//	Key(); the search will then visit each equivalence class exactly once.
//
// Correctness
//
//	All edges cost one step, and the FIFO queue explores states in
//	non-decreasing depth, so the first time the goal is generated as a
//	successor its depth is minimal. Rediscovered states are ignored, never
//	re-scored. Pruning in Successors is the state author's responsibility:
//	omitting a move that a shortest path needs silently yields a larger
//	answer or ErrNoPath.
//
// Complexity (V = states discovered, E = successor edges generated)
//
//   - Time:   O(V + E) Key/Successors calls
//   - Memory: O(V) for queue and discovered map
//
// Usage
//
//	steps, err := bfs.StepsBetween(start, goal)
//	switch {
//	case errors.Is(err, bfs.ErrNoPath):
//	    // goal is in a different component
//	case err != nil:
//	    // cancellation, hook error, ErrStateLimit or ErrOptionViolation
//	}
//
//	n, err := bfs.CountReachableWithin(start, 50,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxStates(1_000_000),
//	)
//
// Errors
//
//   - ErrNoPath           goal unreachable (a legitimate outcome).
//   - ErrOptionViolation  negative MaxDepth/MaxStates/maxSteps, nil predicate.
//   - ErrStateLimit       more states than WithMaxStates allows.
//   - context errors      when the context is done.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
