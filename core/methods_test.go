package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/moink/AoC2016/core"
)

// GraphSuite groups tests for Graph construction and queries.
type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestAddVertex() {
	g := core.NewGraph()
	require.ErrorIs(s.T(), g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(s.T(), g.AddVertex("A"))
	require.NoError(s.T(), g.AddVertex("A"), "AddVertex must be idempotent")
	require.True(s.T(), g.HasVertex("A"))
	require.False(s.T(), g.HasVertex(""))
	require.Equal(s.T(), 1, g.VertexCount())
}

func (s *GraphSuite) TestAddEdgeUndirectedMirrors() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddEdge("A", "B"))
	require.True(s.T(), g.HasEdge("A", "B"))
	require.True(s.T(), g.HasEdge("B", "A"))
	require.False(s.T(), g.Directed())
}

func (s *GraphSuite) TestAddEdgeDirected() {
	g := core.NewGraph(core.WithDirected())
	require.NoError(s.T(), g.AddEdge("A", "B"))
	require.True(s.T(), g.HasEdge("A", "B"))
	require.False(s.T(), g.HasEdge("B", "A"))
	require.True(s.T(), g.HasVertex("B"), "endpoints are created implicitly")
}

func (s *GraphSuite) TestLoops() {
	g := core.NewGraph()
	require.ErrorIs(s.T(), g.AddEdge("A", "A"), core.ErrLoopNotAllowed)

	gl := core.NewGraph(core.WithLoops())
	require.NoError(s.T(), gl.AddEdge("A", "A"))
	require.True(s.T(), gl.HasEdge("A", "A"))
}

func (s *GraphSuite) TestNeighborIDsSorted() {
	g := core.NewGraph()
	for _, v := range []string{"D", "B", "C"} {
		require.NoError(s.T(), g.AddEdge("A", v))
	}
	nbrs, err := g.NeighborIDs("A")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"B", "C", "D"}, nbrs)

	_, err = g.NeighborIDs("missing")
	require.True(s.T(), errors.Is(err, core.ErrVertexNotFound))
}

func (s *GraphSuite) TestVerticesSorted() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddEdge("b", "a"))
	require.NoError(s.T(), g.AddVertex("c"))
	require.Equal(s.T(), []string{"a", "b", "c"}, g.Vertices())
}

func (s *GraphSuite) TestNodeSuccessors() {
	g := core.NewGraph(core.WithDirected())
	require.NoError(s.T(), g.AddEdge("A", "C"))
	require.NoError(s.T(), g.AddEdge("A", "B"))

	n, err := g.Node("A")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "A", n.Key())

	var keys []string
	for _, next := range n.Successors() {
		keys = append(keys, next.Key())
	}
	require.Equal(s.T(), []string{"B", "C"}, keys)
	require.Empty(s.T(), g.MustNode("B").Successors())

	_, err = g.Node("Z")
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)
	require.Panics(s.T(), func() { g.MustNode("Z") })
	require.Nil(s.T(), core.Node{ID: "loose"}.Successors())
}

func (s *GraphSuite) TestConcurrentAddEdge() {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = g.AddEdge(core.PathID(i), core.PathID(100+j))
			}
		}(i)
	}
	wg.Wait()
	require.Equal(s.T(), 8+50, g.VertexCount())
}
