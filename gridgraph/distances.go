package gridgraph

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/moink/AoC2016/bfs"
	"github.com/moink/AoC2016/internal/logging"
)

// MarkerSteps returns the fewest moves between two markers, or an error
// wrapping bfs.ErrNoPath if they are not connected.
func (m *Maze) MarkerSteps(ctx context.Context, from, to string) (int, error) {
	src, err := m.Marker(from)
	if err != nil {
		return -1, err
	}
	dst, err := m.Marker(to)
	if err != nil {
		return -1, err
	}
	return bfs.StepsBetween(src, dst, bfs.WithContext(ctx))
}

// MarkerDistances returns the pairwise step counts between all markers of
// a bounded maze, computed with one traversal per marker. Pairs that are
// not connected are absent; every marker maps to itself with 0.
func (m *Maze) MarkerDistances(ctx context.Context) (map[string]map[string]int, error) {
	if !m.Bounded() {
		return nil, ErrUnbounded
	}
	names := m.Markers()
	dist := make(map[string]map[string]int, len(names))
	for _, from := range names {
		src, _ := m.Marker(from)
		res, err := bfs.Explore(src, bfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		row := make(map[string]int, len(names))
		for _, to := range names {
			if d, ok := res.Depth[m.markers[to].String()]; ok {
				row[to] = d
			}
		}
		dist[from] = row
	}
	return dist, nil
}

// tourState is a position plus the set of markers already visited.
type tourState struct {
	loc     Location
	visited uint32
	index   map[Point]uint
}

func (s tourState) Key() string {
	return s.loc.Key() + "|" + strconv.FormatUint(uint64(s.visited), 16)
}

func (s tourState) Successors() []tourState {
	next := s.loc.Successors()
	out := make([]tourState, len(next))
	for i, loc := range next {
		v := s.visited
		if bit, ok := s.index[loc.Point]; ok {
			v |= 1 << bit
		}
		out[i] = tourState{loc: loc, visited: v, index: s.index}
	}
	return out
}

// MarkerTour returns the fewest moves that start at marker start and visit
// every marker at least once, optionally ending back at start. It searches
// the product of positions and visited-marker sets, so the maze need not
// be bounded as long as every marker is reachable.
func (m *Maze) MarkerTour(ctx context.Context, start string, returnToStart bool) (int, error) {
	src, err := m.Marker(start)
	if err != nil {
		return -1, err
	}
	index := make(map[Point]uint, len(m.markers))
	for i, name := range m.Markers() {
		index[m.markers[name]] = uint(i)
	}
	all := uint32(1)<<uint(len(index)) - 1
	first := tourState{loc: src, visited: 1 << index[src.Point], index: index}

	steps, err := bfs.StepsUntil(first, func(s tourState) bool {
		return s.visited == all && (!returnToStart || s.loc.Point == src.Point)
	}, bfs.WithContext(ctx))
	if err != nil {
		return -1, err
	}
	logging.Logger(ctx).WithFields(logrus.Fields{
		"start":   start,
		"markers": len(index),
		"return":  returnToStart,
		"steps":   steps,
	}).Debug("gridgraph: marker tour found")
	return steps, nil
}

// ReachableWithin counts the open cells at most n moves from (x,y).
func (m *Maze) ReachableWithin(ctx context.Context, x, y, n int) (int, error) {
	src, err := m.At(x, y)
	if err != nil {
		return 0, err
	}
	return bfs.CountReachableWithin(src, n, bfs.WithContext(ctx))
}

// Steps returns the fewest moves between two open cells.
func (m *Maze) Steps(ctx context.Context, from, to Point) (int, error) {
	src, err := m.At(from.X, from.Y)
	if err != nil {
		return -1, err
	}
	dst, err := m.At(to.X, to.Y)
	if err != nil {
		return -1, err
	}
	return bfs.StepsBetween(src, dst, bfs.WithContext(ctx))
}
