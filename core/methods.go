package core

import (
	"sort"

	"github.com/pkg/errors"
)

// AddVertex inserts a vertex if missing. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)
	return nil
}

// AddEdge connects from→to (and to→from unless the graph is directed),
// creating missing endpoints. Repeated edges collapse.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return errors.Wrapf(ErrLoopNotAllowed, "AddEdge(%s→%s)", from, to)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(from)
	g.ensureVertex(to)
	g.adjacency[from][to] = struct{}{}
	if !g.directed {
		g.adjacency[to][from] = struct{}{}
	}
	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]
	return ok
}

// HasEdge reports whether to is one step from from.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]
	return ok
}

// NeighborIDs returns the sorted IDs one step from id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "NeighborIDs(%q)", id)
	}
	out := make([]string, 0, len(nbrs))
	for nbr := range nbrs {
		out = append(out, nbr)
	}
	sort.Strings(out)
	return out, nil
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adjacency)
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Node returns the search handle for id.
func (g *Graph) Node(id string) (Node, error) {
	if !g.HasVertex(id) {
		return Node{}, errors.Wrapf(ErrVertexNotFound, "Node(%q)", id)
	}
	return Node{g: g, ID: id}, nil
}

// MustNode is Node for fixtures; it panics on unknown IDs.
func (g *Graph) MustNode(id string) Node {
	n, err := g.Node(id)
	if err != nil {
		panic(err)
	}
	return n
}

// Key returns the vertex ID.
func (n Node) Key() string { return n.ID }

// Successors returns the neighbors of n in sorted order.
// A Node not bound to a graph has no successors.
func (n Node) Successors() []Node {
	if n.g == nil {
		return nil
	}
	ids, err := n.g.NeighborIDs(n.ID)
	if err != nil {
		return nil
	}
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = Node{g: n.g, ID: id}
	}
	return out
}

// ensureVertex creates the adjacency bucket for id. Caller holds mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]struct{})
	}
}
