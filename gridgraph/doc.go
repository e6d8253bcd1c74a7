// Package gridgraph treats a 2D maze of cells as an implicit graph whose
// open cells are search states for the bfs and dfs packages.
//
// What:
//
//   - Parse builds a finite Maze from text rows ('#' wall, digits are markers).
//   - FromFunc builds an unbounded oracle Maze from a wall predicate.
//   - Location (an open cell) implements State: Key "x,y", Successors the
//     open neighbours under Conn4 or Conn8.
//   - Steps, MarkerSteps, ReachableWithin: shortest paths and bounded reach.
//   - MarkerDistances: pairwise marker distances.
//   - MarkerTour: shortest walk visiting every marker, optionally returning.
//   - ConnectedComponents and ToCoreGraph for bounded mazes.
//
// Complexity:
//
//   - Steps/ReachableWithin: O(cells reached × d).
//   - MarkerDistances:       O(M × W×H×d) for M markers.
//   - MarkerTour:            O(2^M × W×H×d).
//   - ConnectedComponents:   O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrDuplicateMarker: Parse input.
//   - ErrMarkerNotFound: unknown marker name.
//   - ErrWall: requested cell is a wall or off the maze.
//   - ErrUnbounded: whole-maze operation on an oracle maze.
//   - bfs.ErrNoPath: target not reachable.
package gridgraph
