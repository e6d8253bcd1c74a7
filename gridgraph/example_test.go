package gridgraph_test

import (
	"context"
	"fmt"

	"github.com/moink/AoC2016/gridgraph"
)

// ExampleMaze_MarkerTour parses a small duct map and asks for the shortest
// walk from marker 0 through every other marker, first as an open route
// and then returning to 0.
func ExampleMaze_MarkerTour() {
	m, err := gridgraph.Parse([]string{
		"###########",
		"#0.1.....2#",
		"#.#######.#",
		"#4.......3#",
		"###########",
	}, gridgraph.DefaultGridOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	open, _ := m.MarkerTour(context.Background(), "0", false)
	closed, _ := m.MarkerTour(context.Background(), "0", true)
	fmt.Println(open, closed)
	// Output: 14 20
}

// ExampleFromFunc searches an unbounded maze whose walls come from a
// checkerboard-with-corridors predicate.
func ExampleFromFunc() {
	m := gridgraph.FromFunc(func(x, y int) bool {
		return x%2 == 1 && y%2 == 1
	}, gridgraph.DefaultGridOptions())
	steps, err := m.Steps(context.Background(), gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 4, Y: 4})
	fmt.Println(steps, err)
	// Output: 8 <nil>
}
