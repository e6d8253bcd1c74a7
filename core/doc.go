// Package core provides a small, thread-safe, explicit adjacency-list graph
// whose vertices can be searched as implicit states.
//
// Most searches in this module run over lazily generated state spaces, but
// fixed graphs are still handy: as fixtures, as brute-force oracles in
// tests, and for inputs that arrive as an edge list. core.Graph covers that
// case and exposes each vertex as a Node, which satisfies the bfs and dfs
// State contract (Key + Successors) without either package importing core.
//
// Configuration Options (GraphOption):
//
//	– WithDirected()
//	    Edges are stored only as from→to. Without it every edge is mirrored.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	AddVertex(id string) error          // O(1), idempotent
//	AddEdge(from, to string) error      // O(1), creates missing vertices
//	HasVertex(id string) bool           // O(1)
//	HasEdge(from, to string) bool       // O(1)
//	NeighborIDs(id string) ([]string, error) // O(d log d), sorted
//	Vertices() []string                 // O(V log V), sorted
//	Node(id string) (Node, error)       // search handle
//
// Builders:
//
//	Path(n), Cycle(n), Grid(w, h) produce deterministic fixture graphs.
//
// Determinism:
//
//	Vertices(), NeighborIDs() and Node.Successors() return sorted results,
//	so traversal order over a core.Graph is reproducible.
package core
