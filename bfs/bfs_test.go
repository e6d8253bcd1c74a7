package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moink/AoC2016/bfs"
	"github.com/moink/AoC2016/core"
)

// lineState is a point on the unbounded integer line.
type lineState int

func (s lineState) Key() string { return strconv.Itoa(int(s)) }

func (s lineState) Successors() []lineState { return []lineState{s - 1, s + 1} }

// pairState holds two interchangeable counters: (a,b) and (b,a) are one node.
type pairState struct {
	a, b, limit int
}

func (p pairState) Key() string {
	lo, hi := p.a, p.b
	if lo > hi {
		lo, hi = hi, lo
	}
	return fmt.Sprintf("%d|%d", lo, hi)
}

func (p pairState) Successors() []pairState {
	var out []pairState
	if p.a < p.limit {
		out = append(out, pairState{a: p.a + 1, b: p.b, limit: p.limit})
	}
	if p.b < p.limit {
		out = append(out, pairState{a: p.a, b: p.b + 1, limit: p.limit})
	}
	return out
}

// bruteForceDistance enumerates every simple path from→to and returns the
// shortest length, or -1 if none exists.
func bruteForceDistance(g *core.Graph, from, to string) int {
	if from == to {
		return 0
	}
	best := -1
	onPath := map[string]bool{from: true}
	var walk func(cur string, d int)
	walk = func(cur string, d int) {
		if cur == to {
			if best < 0 || d < best {
				best = d
			}
			return
		}
		nbrs, _ := g.NeighborIDs(cur)
		for _, n := range nbrs {
			if onPath[n] {
				continue
			}
			onPath[n] = true
			walk(n, d+1)
			onPath[n] = false
		}
	}
	walk(from, 0)
	return best
}

// TestStepsBetween_Chain covers the basic shortest distance on a path graph.
func TestStepsBetween_Chain(t *testing.T) {
	g, err := core.Path(5)
	require.NoError(t, err)

	steps, err := bfs.StepsBetween(g.MustNode("v0"), g.MustNode("v4"))
	require.NoError(t, err)
	assert.Equal(t, 4, steps)

	steps, err = bfs.StepsBetween(g.MustNode("v3"), g.MustNode("v1"))
	require.NoError(t, err)
	assert.Equal(t, 2, steps)
}

// TestStepsBetween_SameState returns zero without expanding anything.
func TestStepsBetween_SameState(t *testing.T) {
	g, err := core.Cycle(4)
	require.NoError(t, err)

	expanded := 0
	steps, err := bfs.StepsBetween(g.MustNode("v2"), g.MustNode("v2"),
		bfs.WithOnVisit(func(string, int) error { expanded++; return nil }))
	require.NoError(t, err)
	assert.Equal(t, 0, steps)
	assert.Zero(t, expanded)
}

// TestStepsBetween_Unreachable reports ErrNoPath instead of looping.
func TestStepsBetween_Unreachable(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("X", "Y"))
	require.NoError(t, g.AddEdge("P", "Q"))

	steps, err := bfs.StepsBetween(g.MustNode("X"), g.MustNode("Q"))
	require.ErrorIs(t, err, bfs.ErrNoPath)
	assert.Equal(t, -1, steps)

	dg := core.NewGraph(core.WithDirected())
	require.NoError(t, dg.AddEdge("A", "B"))
	_, err = bfs.StepsBetween(dg.MustNode("B"), dg.MustNode("A"))
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestStepsBetween_MatchesBruteForce compares BFS against exhaustive simple
// path enumeration on small random directed graphs.
func TestStepsBetween_MatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(2016))
	const vertices, edges, graphs = 7, 10, 25

	for gi := 0; gi < graphs; gi++ {
		g := core.NewGraph(core.WithDirected())
		for i := 0; i < vertices; i++ {
			require.NoError(t, g.AddVertex(core.PathID(i)))
		}
		for k := 0; k < edges; k++ {
			u, v := rnd.Intn(vertices), rnd.Intn(vertices)
			if u == v {
				continue
			}
			require.NoError(t, g.AddEdge(core.PathID(u), core.PathID(v)))
		}

		for _, from := range g.Vertices() {
			for _, to := range g.Vertices() {
				want := bruteForceDistance(g, from, to)
				got, err := bfs.StepsBetween(g.MustNode(from), g.MustNode(to))
				if want < 0 {
					require.ErrorIs(t, err, bfs.ErrNoPath, "graph %d %s→%s", gi, from, to)
					continue
				}
				require.NoError(t, err, "graph %d %s→%s", gi, from, to)
				require.Equal(t, want, got, "graph %d %s→%s", gi, from, to)
			}
		}
	}
}

// TestStepsBetween_EagerGoalCheck ensures the goal is detected when generated,
// so it is never dequeued.
func TestStepsBetween_EagerGoalCheck(t *testing.T) {
	g, err := core.Path(5)
	require.NoError(t, err)

	var dequeued []string
	steps, err := bfs.StepsBetween(g.MustNode("v0"), g.MustNode("v4"),
		bfs.WithOnDequeue(func(key string, _ int) { dequeued = append(dequeued, key) }))
	require.NoError(t, err)
	assert.Equal(t, 4, steps)
	assert.Equal(t, []string{"v0", "v1", "v2", "v3"}, dequeued)
}

// TestStepsBetween_InfiniteSpace searches an unbounded state space.
func TestStepsBetween_InfiniteSpace(t *testing.T) {
	steps, err := bfs.StepsBetween(lineState(-3), lineState(12))
	require.NoError(t, err)
	assert.Equal(t, 15, steps)
}

// TestCanonicalKeysMergeEquivalentStates checks that states with equal keys
// are a single node: each equivalence class is expanded exactly once.
func TestCanonicalKeysMergeEquivalentStates(t *testing.T) {
	start := pairState{limit: 2}
	visits := map[string]int{}
	res, err := bfs.Explore(start, bfs.WithOnVisit(func(key string, _ int) error {
		visits[key]++
		return nil
	}))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6, "unordered pairs over {0,1,2}")
	for key, n := range visits {
		assert.Equal(t, 1, n, "class %s visited more than once", key)
	}

	steps, err := bfs.StepsBetween(start, pairState{a: 2, b: 1, limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)
	mirrored, err := bfs.StepsBetween(start, pairState{a: 1, b: 2, limit: 2})
	require.NoError(t, err)
	assert.Equal(t, steps, mirrored)
}

// TestStepsUntil covers the predicate form.
func TestStepsUntil(t *testing.T) {
	steps, err := bfs.StepsUntil(lineState(0), func(s lineState) bool { return s*s == 49 })
	require.NoError(t, err)
	assert.Equal(t, 7, steps)

	steps, err = bfs.StepsUntil(lineState(5), func(s lineState) bool { return s == 5 })
	require.NoError(t, err)
	assert.Equal(t, 0, steps)

	_, err = bfs.StepsUntil[lineState](lineState(0), nil)
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.StepsUntil(lineState(0), func(s lineState) bool { return s == 9 }, bfs.WithMaxDepth(5))
	require.ErrorIs(t, err, bfs.ErrNoPath, "goal beyond MaxDepth is not reachable")
}

// TestCountReachableWithin covers zero steps, exact counts and monotonicity.
func TestCountReachableWithin(t *testing.T) {
	for _, start := range []lineState{0, -4, 17} {
		n, err := bfs.CountReachableWithin(start, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	}

	prev := 0
	for steps := 0; steps <= 12; steps++ {
		n, err := bfs.CountReachableWithin(lineState(0), steps)
		require.NoError(t, err)
		assert.Equal(t, 2*steps+1, n)
		assert.GreaterOrEqual(t, n, prev)
		prev = n
	}

	g, err := core.Grid(3, 3)
	require.NoError(t, err)
	prev = 0
	for steps := 0; steps <= 6; steps++ {
		n, err := bfs.CountReachableWithin(g.MustNode(core.GridID(0, 0)), steps)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, prev)
		prev = n
	}
	assert.Equal(t, 9, prev, "the whole grid is within 4 steps")

	_, err = bfs.CountReachableWithin(lineState(0), -1)
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestCountReachableWithin_DoesNotExpandFrontier ensures states at the bound
// are counted but never expanded.
func TestCountReachableWithin_DoesNotExpandFrontier(t *testing.T) {
	var deepest int
	_, err := bfs.CountReachableWithin(lineState(0), 3, bfs.WithOnVisit(func(_ string, d int) error {
		if d > deepest {
			deepest = d
		}
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, deepest, "frontier states are dequeued")

	expanded := 0
	_, err = bfs.CountReachableWithin(lineState(0), 3, bfs.WithOnEnqueue(func(_ string, d int) {
		if d > 3 {
			expanded++
		}
	}))
	require.NoError(t, err)
	assert.Zero(t, expanded)
}

// TestExplore covers order, depth, parents and path reconstruction.
func TestExplore(t *testing.T) {
	g, err := core.Grid(3, 3)
	require.NoError(t, err)

	res, err := bfs.Explore(g.MustNode("0,0"))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "0,1", "1,0", "0,2", "1,1", "2,0", "1,2", "2,1", "2,2"}, res.Order)
	assert.Equal(t, 4, res.Depth["2,2"])

	path, err := res.PathTo("2,2")
	require.NoError(t, err)
	assert.Len(t, path, 5)
	assert.Equal(t, "0,0", path[0])
	assert.Equal(t, "2,2", path[4])

	path, err = res.PathTo("0,0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0"}, path)

	_, err = res.PathTo("9,9")
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestExplore_MaxDepth limits traversal on a chain.
func TestExplore_MaxDepth(t *testing.T) {
	g, err := core.Path(10)
	require.NoError(t, err)

	res, err := bfs.Explore(g.MustNode("v0"), bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, res.Order)

	res, err = bfs.Explore(g.MustNode("v0"), bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 10, "0 means no limit")
}

// TestOptions_Errors verifies that invalid options are rejected.
func TestOptions_Errors(t *testing.T) {
	_, err := bfs.StepsBetween(lineState(0), lineState(1), bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Explore(lineState(0), bfs.WithMaxStates(-5))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestMaxStates bounds a search that would otherwise run for a long time.
func TestMaxStates(t *testing.T) {
	_, err := bfs.StepsBetween(lineState(0), lineState(1000), bfs.WithMaxStates(50))
	require.ErrorIs(t, err, bfs.ErrStateLimit)

	_, err = bfs.Explore(lineState(0), bfs.WithMaxStates(10))
	require.ErrorIs(t, err, bfs.ErrStateLimit)
}

// TestCancellation verifies that a cancelled context halts the search promptly.
func TestCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.StepsBetween(lineState(0), lineState(10), bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, err = bfs.CountReachableWithin(lineState(0), 10, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestOnVisitError aborts the search and wraps the hook error.
func TestOnVisitError(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.StepsBetween(lineState(0), lineState(10), bfs.WithOnVisit(func(key string, _ int) error {
		if key == "2" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"2"`)
}
