package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moink/AoC2016/gridgraph"
	"github.com/moink/AoC2016/internal/logging"
)

func mazeCmd(ctx context.Context, input *Input) *cobra.Command {
	c := &cobra.Command{
		Use:   "maze GRIDFILE",
		Short: "Shortest paths between the digit markers of a '#'-walled maze.",
		Args:  cobra.ExactArgs(1),
		RunE:  newMazeCommand(ctx, input),
	}
	c.Flags().StringVar(&input.from, "from", "0", "start marker")
	c.Flags().StringVar(&input.to, "to", "1", "target marker")
	c.Flags().IntVar(&input.within, "within", -1, "count open cells at most N moves from --from instead")
	c.Flags().BoolVar(&input.tour, "tour", false, "fewest moves from --from through every marker")
	c.Flags().BoolVar(&input.returnHome, "return", false, "with --tour, end back at --from")
	c.Flags().BoolVar(&input.distances, "distances", false, "print the pairwise marker distance table")
	return c
}

func newMazeCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithLogger(ctx, newLogger(input, cmd.ErrOrStderr()))
		maze, err := readMaze(input.resolve(args[0]))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		switch {
		case input.distances:
			dist, err := maze.MarkerDistances(ctx)
			if err != nil {
				return err
			}
			names := maze.Markers()
			fmt.Fprintf(out, "  %s\n", strings.Join(names, " "))
			for _, from := range names {
				row := make([]string, len(names))
				for i, to := range names {
					if d, ok := dist[from][to]; ok {
						row[i] = fmt.Sprint(d)
					} else {
						row[i] = "-"
					}
				}
				fmt.Fprintf(out, "%s %s\n", from, strings.Join(row, " "))
			}
			return nil
		case input.tour:
			steps, err := maze.MarkerTour(ctx, input.from, input.returnHome)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, steps)
			return nil
		case input.within >= 0:
			start, err := maze.Marker(input.from)
			if err != nil {
				return err
			}
			n, err := maze.ReachableWithin(ctx, start.X, start.Y, input.within)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, n)
			return nil
		}

		steps, err := maze.MarkerSteps(ctx, input.from, input.to)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, steps)
		return nil
	}
}

func readMaze(path string) (*gridgraph.Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return gridgraph.Parse(lines, gridgraph.DefaultGridOptions())
}
