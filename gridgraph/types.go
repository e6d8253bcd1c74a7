// Package gridgraph defines core types, options, and sentinel errors
// for character-grid mazes whose cells are searchable graph states.
package gridgraph

import (
	"strconv"

	"github.com/pkg/errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrDuplicateMarker indicates the same marker appears twice.
	ErrDuplicateMarker = errors.New("gridgraph: duplicate marker")
	// ErrMarkerNotFound indicates a requested marker is not in the maze.
	ErrMarkerNotFound = errors.New("gridgraph: marker not found")
	// ErrWall indicates a location was requested on a wall or off the grid.
	ErrWall = errors.New("gridgraph: location is a wall")
	// ErrUnbounded indicates an operation that needs finite extent was
	// called on an oracle maze.
	ErrUnbounded = errors.New("gridgraph: operation requires a bounded maze")
)

// Wall is the cell character that blocks movement in parsed mazes.
const Wall = '#'

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for maze construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Point is a cell coordinate. X grows to the right, Y downwards.
type Point struct {
	X, Y int
}

// String formats the point as "x,y", the same text used for state keys.
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Maze is a grid of open cells and walls. A parsed maze is finite and
// immutable once built; an oracle maze (FromFunc) covers the whole
// non-negative quadrant and asks a function which cells are walls.
type Maze struct {
	Width, Height   int // zero for oracle mazes
	cells           [][]byte
	isWall          func(x, y int) bool
	markers         map[string]Point
	conn            Connectivity
	neighborOffsets [][2]int
}

// Location is an open maze cell. It satisfies bfs.State[Location] and
// dfs.State[Location]; its key is "x,y".
type Location struct {
	maze *Maze
	Point
}
