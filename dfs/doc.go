// Package dfs implements depth-first search over implicit state graphs:
// any type with Key and Successors, the same contract package bfs uses.
//
// What:
//
//   - Walk: explores as far as possible along each branch before
//     backtracking, visiting each reachable state once. Supports
//     pre-order and post-order hooks, cancellation and depth limiting.
//   - LongestPath: exhaustive simple-path enumeration that reports the
//     longest path ending in a goal state. Goal states are terminal and a
//     state on the current path is never re-entered.
//   - FindCycle: three-color (White, Gray, Black) back-edge detection.
//
// Complexity:
//
//   - Walk:        Time O(V+E), Memory O(V)
//   - FindCycle:   Time O(V+E), Memory O(V)
//   - LongestPath: Time O(number of simple paths), Memory O(depth)
//
// Errors:
//
//   - ErrNoPath               LongestPath reached no goal
//   - ErrOptionViolation      nil goal predicate
//   - context.Canceled        search canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
