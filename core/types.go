package core

import (
	"sync"

	"github.com/pkg/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrTooFewVertices indicates a builder was asked for a graph below its minimum size.
	ErrTooFewVertices = errors.New("core: too few vertices")
)

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected makes AddEdge store edges in one direction only.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an unweighted adjacency-list graph.
// adjacency[from] holds the set of vertices reachable from "from" in one step.
type Graph struct {
	mu         sync.RWMutex
	directed   bool
	allowLoops bool
	adjacency  map[string]map[string]struct{}
}

// NewGraph creates an empty Graph configured by opts.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[string]map[string]struct{})}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Node is a search handle on one vertex of a Graph. It is a small value
// type; Successors builds new Nodes and never mutates the graph.
type Node struct {
	g  *Graph
	ID string
}
