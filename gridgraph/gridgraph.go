package gridgraph

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/moink/AoC2016/core"
)

// Parse constructs a Maze from text rows. '#' is a wall and any other
// character is open; the digits 0-9 additionally name marker cells.
// Trailing carriage returns are ignored.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs and ErrDuplicateMarker if a
// digit occurs twice.
// Algorithmic complexity: O(W×H) time and memory.
func Parse(lines []string, opts GridOptions) (*Maze, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(strings.TrimRight(lines[0], "\r"))
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]byte, len(lines))
	markers := make(map[string]Point)
	for y, raw := range lines {
		row := strings.TrimRight(raw, "\r")
		if len(row) != w {
			return nil, errors.Wrapf(ErrNonRectangular, "row %d has length %d, want %d", y, len(row), w)
		}
		cells[y] = []byte(row)
		for x := 0; x < w; x++ {
			c := row[x]
			if c < '0' || c > '9' {
				continue
			}
			name := string(c)
			if _, dup := markers[name]; dup {
				return nil, errors.Wrapf(ErrDuplicateMarker, "%q at %d,%d", name, x, y)
			}
			markers[name] = Point{X: x, Y: y}
		}
	}
	m := newMaze(opts)
	m.Width, m.Height = w, len(lines)
	m.cells = cells
	m.markers = markers
	return m, nil
}

// FromFunc constructs an unbounded oracle maze over x, y ≥ 0. isWall is
// consulted lazily for every cell a search touches; cells with a negative
// coordinate are always walls. Oracle mazes have no markers.
func FromFunc(isWall func(x, y int) bool, opts GridOptions) *Maze {
	m := newMaze(opts)
	m.isWall = isWall
	m.markers = map[string]Point{}
	return m
}

func newMaze(opts GridOptions) *Maze {
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	return &Maze{conn: opts.Conn, neighborOffsets: offsets}
}

// Bounded reports whether the maze has finite extent.
func (m *Maze) Bounded() bool { return m.cells != nil }

// InBounds reports whether (x,y) lies within the maze. Oracle mazes
// cover the non-negative quadrant.
// Complexity: O(1).
func (m *Maze) InBounds(x, y int) bool {
	if !m.Bounded() {
		return x >= 0 && y >= 0
	}
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsWall reports whether (x,y) blocks movement. Cells outside the maze
// count as walls.
func (m *Maze) IsWall(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	if m.Bounded() {
		return m.cells[y][x] == Wall
	}
	return m.isWall(x, y)
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (m *Maze) NeighborOffsets() [][2]int {
	return m.neighborOffsets
}

// At returns the location of the open cell (x,y), or ErrWall.
func (m *Maze) At(x, y int) (Location, error) {
	if m.IsWall(x, y) {
		return Location{}, errors.Wrapf(ErrWall, "%d,%d", x, y)
	}
	return Location{maze: m, Point: Point{X: x, Y: y}}, nil
}

// Marker returns the location of the named marker.
func (m *Maze) Marker(name string) (Location, error) {
	p, ok := m.markers[name]
	if !ok {
		return Location{}, errors.Wrapf(ErrMarkerNotFound, "%q", name)
	}
	return Location{maze: m, Point: p}, nil
}

// Markers returns the marker names in ascending order.
func (m *Maze) Markers() []string {
	names := make([]string, 0, len(m.markers))
	for name := range m.markers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Key returns "x,y".
func (l Location) Key() string { return l.Point.String() }

// Successors returns the open neighbouring cells in offset order.
func (l Location) Successors() []Location {
	if l.maze == nil {
		return nil
	}
	out := make([]Location, 0, len(l.maze.neighborOffsets))
	for _, d := range l.maze.neighborOffsets {
		nx, ny := l.X+d[0], l.Y+d[1]
		if l.maze.IsWall(nx, ny) {
			continue
		}
		out = append(out, Location{maze: l.maze, Point: Point{X: nx, Y: ny}})
	}
	return out
}

// ToCoreGraph converts a bounded maze into an undirected *core.Graph.
// Each open cell (x,y) becomes a vertex with ID "x,y" and edges connect
// neighbouring open cells according to the maze connectivity.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (m *Maze) ToCoreGraph() (*core.Graph, error) {
	if !m.Bounded() {
		return nil, ErrUnbounded
	}
	g := core.NewGraph()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.IsWall(x, y) {
				continue
			}
			loc := Location{maze: m, Point: Point{X: x, Y: y}}
			if err := g.AddVertex(loc.Key()); err != nil {
				return nil, err
			}
			for _, next := range loc.Successors() {
				if err := g.AddEdge(loc.Key(), next.Key()); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}
