package gridgraph

import (
	"context"
	"strconv"
	"strings"

	"github.com/moink/AoC2016/bfs"
)

// ConnectedComponents finds all contiguous regions of open cells according
// to the maze connectivity. Components are listed in row-major order of
// their first cell; cells within a component are in BFS order from it.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (m *Maze) ConnectedComponents(ctx context.Context) ([][]Point, error) {
	if !m.Bounded() {
		return nil, ErrUnbounded
	}
	seen := make(map[string]struct{})
	var comps [][]Point

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.IsWall(x, y) {
				continue
			}
			start := Location{maze: m, Point: Point{X: x, Y: y}}
			if _, ok := seen[start.Key()]; ok {
				continue
			}
			res, err := bfs.Explore(start, bfs.WithContext(ctx))
			if err != nil {
				return nil, err
			}
			comp := make([]Point, 0, len(res.Order))
			for _, key := range res.Order {
				seen[key] = struct{}{}
				comp = append(comp, parseKey(key))
			}
			comps = append(comps, comp)
		}
	}
	return comps, nil
}

// parseKey is the inverse of Point.String.
func parseKey(key string) Point {
	xs, ys, _ := strings.Cut(key, ",")
	x, _ := strconv.Atoi(xs)
	y, _ := strconv.Atoi(ys)
	return Point{X: x, Y: y}
}
