package bfs_test

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/moink/AoC2016/bfs"
	"github.com/moink/AoC2016/core"
)

// floors models items spread over four floors with an elevator. Items of the
// same kind are interchangeable, so the key only records how many of each
// kind sit on each floor.
type floors struct {
	elevator int
	items    [4][]string
}

func (f floors) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "E%d", f.elevator)
	for i, items := range f.items {
		sorted := append([]string(nil), items...)
		sort.Strings(sorted)
		fmt.Fprintf(&b, "|%d:%s", i, strings.Join(sorted, ","))
	}
	return b.String()
}

func (f floors) Successors() []floors {
	set := bfs.NewSet[floors]()
	here := f.items[f.elevator]
	for _, dir := range []int{-1, 1} {
		to := f.elevator + dir
		if to < 0 || to > 3 {
			continue
		}
		for i := range here {
			set.Add(f.move(to, i))
			for j := i + 1; j < len(here); j++ {
				set.Add(f.move(to, i, j))
			}
		}
	}
	return set.Slice()
}

// move carries the items at the given indexes from the elevator floor to
// floor to, copying only the two floors that change.
func (f floors) move(to int, idx ...int) floors {
	next := floors{elevator: to, items: f.items}
	carried := map[int]bool{}
	for _, i := range idx {
		carried[i] = true
	}
	var stay []string
	moved := append([]string(nil), f.items[to]...)
	for i, item := range f.items[f.elevator] {
		if carried[i] {
			moved = append(moved, item)
		} else {
			stay = append(stay, item)
		}
	}
	next.items[f.elevator] = stay
	next.items[to] = moved
	return next
}

// ExampleStepsBetween carries three identical crates from the ground floor
// to the top floor in an elevator that holds one or two of them.
func ExampleStepsBetween() {
	start := floors{items: [4][]string{{"crate", "crate", "crate"}}}
	goal := floors{elevator: 3, items: [4][]string{3: {"crate", "crate", "crate"}}}

	steps, err := bfs.StepsBetween(start, goal)
	fmt.Println(steps, err)
	// Output:
	// 9 <nil>
}

// ExampleCountReachableWithin counts grid cells within two steps of a corner.
func ExampleCountReachableWithin() {
	g, _ := core.Grid(4, 4)
	n, _ := bfs.CountReachableWithin(g.MustNode(core.GridID(0, 0)), 2)
	fmt.Println(n)
	// Output:
	// 6
}

// ExampleStepsBetween_unreachable shows that a disconnected goal is a
// regular outcome, not a failure.
func ExampleStepsBetween_unreachable() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddVertex("island")

	_, err := bfs.StepsBetween(g.MustNode("A"), g.MustNode("island"))
	fmt.Println(errors.Is(err, bfs.ErrNoPath))
	// Output:
	// true
}

// ExampleExplore reconstructs a fewest-hop route in a small network where
// two competing routes exist from "A" to "K".
func ExampleExplore() {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "K"},
		{"A", "E"}, {"E", "F"}, {"F", "K"},
		{"C", "G"}, {"D", "I"},
	} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, _ := bfs.Explore(g.MustNode("A"))
	path, _ := res.PathTo("K")
	fmt.Println(path)
	// Output:
	// [A E F K]
}
