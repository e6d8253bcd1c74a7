package bfs_test

import (
	"testing"

	"github.com/moink/AoC2016/bfs"
	"github.com/moink/AoC2016/core"
)

// BenchmarkStepsBetween_Grid runs corner-to-corner search on an M×M grid.
func BenchmarkStepsBetween_Grid(b *testing.B) {
	const M = 60
	g, err := core.Grid(M, M)
	if err != nil {
		b.Fatal(err)
	}
	start := g.MustNode(core.GridID(0, 0))
	goal := g.MustNode(core.GridID(M-1, M-1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.StepsBetween(start, goal)
	}
}

// BenchmarkCountReachableWithin_Line measures the bounded count on an
// unbounded implicit state space.
func BenchmarkCountReachableWithin_Line(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.CountReachableWithin(lineState(0), 5000)
	}
}

// BenchmarkExplore_Chain measures full traversal with tracking on a chain.
func BenchmarkExplore_Chain(b *testing.B) {
	g, err := core.Path(10000)
	if err != nil {
		b.Fatal(err)
	}
	start := g.MustNode("v0")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Explore(start)
	}
}
