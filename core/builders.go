// builders.go: deterministic fixture graphs.
//
// Contract:
//   • Vertex IDs are "v0".."v{n-1}" for Path/Cycle and "r,c" for Grid.
//   • Edges are emitted in ascending index order; orientation follows opts.
//   • Sizes below the minimum return ErrTooFewVertices.

package core

import (
	"fmt"
)

const (
	minPathNodes  = 1
	minCycleNodes = 3
	minGridDim    = 1
	pathIDFmt     = "v%d"
	gridIDFmt     = "%d,%d"
)

// PathID returns the vertex ID Path and Cycle use for index i.
func PathID(i int) string { return fmt.Sprintf(pathIDFmt, i) }

// GridID returns the vertex ID Grid uses for row r, column c.
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Path builds v0 - v1 - ... - v{n-1}.
func Path(n int, opts ...GraphOption) (*Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	g := NewGraph(opts...)
	_ = g.AddVertex(PathID(0))
	for i := 1; i < n; i++ {
		if err := g.AddEdge(PathID(i-1), PathID(i)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Cycle builds the ring v0 - v1 - ... - v{n-1} - v0.
func Cycle(n int, opts ...GraphOption) (*Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	g := NewGraph(opts...)
	for i := 0; i < n; i++ {
		if err := g.AddEdge(PathID(i), PathID((i+1)%n)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Grid builds a rows×cols orthogonal grid with right and bottom edges.
// In directed graphs the reverse arcs are added as well.
func Grid(rows, cols int, opts ...GraphOption) (*Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
			rows, cols, minGridDim, ErrTooFewVertices)
	}
	g := NewGraph(opts...)
	link := func(a, b string) error {
		if err := g.AddEdge(a, b); err != nil {
			return err
		}
		if g.directed {
			return g.AddEdge(b, a)
		}
		return nil
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := GridID(r, c)
			_ = g.AddVertex(id)
			if c+1 < cols {
				if err := link(id, GridID(r, c+1)); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := link(id, GridID(r+1, c)); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}
