package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/catalog"
	"github.com/katalvlaran/gridstar/render"
)

type demoFlags struct {
	pace    time.Duration
	pause   time.Duration
	noColor bool
}

// demoCase is one walkthrough search.
type demoCase struct {
	mapID     string
	from, to  astar.Coord
	heuristic astar.Heuristic
}

var demoCases = []demoCase{
	{"a", astar.Coord{X: 1, Y: 1}, astar.Coord{X: 8, Y: 8}, astar.Manhattan},
	{"a", astar.Coord{X: 1, Y: 1}, astar.Coord{X: 8, Y: 8}, astar.Euclidean},
	{"c", astar.Coord{X: 0, Y: 0}, astar.Coord{X: 19, Y: 19}, astar.Manhattan},
	{"c", astar.Coord{X: 0, Y: 0}, astar.Coord{X: 19, Y: 19}, astar.Euclidean},
	{"e", astar.Coord{X: 1, Y: 1}, astar.Coord{X: 30, Y: 15}, astar.Manhattan},
	{"e", astar.Coord{X: 1, Y: 1}, astar.Coord{X: 30, Y: 15}, astar.Euclidean},
}

func newDemoCmd() *cobra.Command {
	var flags demoFlags
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Animated walkthrough over three maps and two heuristics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, flags)
		},
	}
	f := cmd.Flags()
	f.DurationVar(&flags.pace, "pace", 30*time.Millisecond, "Delay after each frame")
	f.DurationVar(&flags.pause, "pause", 2*time.Second, "Delay between examples")
	f.BoolVar(&flags.noColor, "no-color", false, "Disable ANSI colours")

	return cmd
}

func runDemo(cmd *cobra.Command, flags demoFlags) error {
	out := cmd.OutOrStdout()
	term := render.NewTerminal(out, render.WithColor(!flags.noColor))
	summaries := make([]string, 0, len(demoCases))

	for i, dc := range demoCases {
		e, err := astar.NewFromProvider(catalog.Default(), dc.mapID,
			astar.WithContext(cmd.Context()),
			astar.WithHeuristic(dc.heuristic),
			astar.WithRenderer(term),
			astar.WithPace(flags.pace),
		)
		if err != nil {
			return err
		}
		res, err := e.Find(dc.from, dc.to, true)
		if err != nil {
			return fmt.Errorf("example %d: %w", i+1, err)
		}
		line := fmt.Sprintf("example %d: map %s %v → %v (%s): cost %d, %d steps",
			i+1, dc.mapID, dc.from, dc.to, dc.heuristic, res.Cost, res.Steps)
		summaries = append(summaries, line)
		fmt.Fprintln(out, line)

		if flags.pause > 0 && i < len(demoCases)-1 {
			select {
			case <-time.After(flags.pause):
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
		}
	}

	if err := term.ClearScreen(); err != nil {
		return err
	}
	for _, s := range summaries {
		fmt.Fprintln(out, s)
	}

	return nil
}
