package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/dijkstra"
	"github.com/katalvlaran/gridstar/internal/config"
	"github.com/katalvlaran/gridstar/internal/logging"
	"github.com/katalvlaran/gridstar/render"
)

type findFlags struct {
	mapFlags
	from      string
	to        string
	heuristic string
	live      bool
	pace      time.Duration
	noCorners bool
	reference bool
	maxSteps  int
	verify    bool
	showOpen  bool
	noColor   bool
}

func newFindCmd() *cobra.Command {
	var flags findFlags
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Search one route and print the map with the path",
		Example: "  gridstar find --map a --from 1,1 --to 8,8\n" +
			"  gridstar find --map e --from 1,1 --to 30,15 --heuristic euclidean --live --pace 20ms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFind(cmd, &flags)
		},
	}
	flags.register(cmd)
	f := cmd.Flags()
	f.StringVar(&flags.from, "from", "", "Start cell as x,y (required)")
	f.StringVar(&flags.to, "to", "", "Goal cell as x,y (required)")
	f.StringVar(&flags.heuristic, "heuristic", "manhattan", "manhattan, euclidean or octile")
	f.BoolVar(&flags.live, "live", false, "Draw every expansion")
	f.DurationVar(&flags.pace, "pace", 50*time.Millisecond, "Delay after each live frame")
	f.BoolVar(&flags.noCorners, "no-corners", false, "Forbid diagonal moves past wall corners")
	f.BoolVar(&flags.reference, "reference", false, "Never re-route open cells (first discovery wins)")
	f.IntVar(&flags.maxSteps, "max-steps", 0, "Abort after N expansions (0 = unlimited)")
	f.BoolVar(&flags.verify, "verify", false, "Compare the cost with Dijkstra")
	f.BoolVar(&flags.showOpen, "show-open", false, "Overlay the final open set")
	f.BoolVar(&flags.noColor, "no-color", false, "Disable ANSI colours")

	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runFind(cmd *cobra.Command, flags *findFlags) error {
	log := logging.New("find")
	out := cmd.OutOrStdout()

	g, err := flags.grid()
	if err != nil {
		return err
	}
	from, err := config.ParseCoord(flags.from)
	if err != nil {
		return err
	}
	to, err := config.ParseCoord(flags.to)
	if err != nil {
		return err
	}
	h, err := astar.ParseHeuristic(flags.heuristic)
	if err != nil {
		return err
	}

	e, err := astar.NewFromGrid(g,
		astar.WithContext(cmd.Context()),
		astar.WithHeuristic(h),
		astar.WithRenderer(render.NewTerminal(out, render.WithColor(!flags.noColor))),
		astar.WithPace(flags.pace),
		astar.WithRelaxation(!flags.reference),
		astar.WithCornerCutting(!flags.noCorners),
		astar.WithMaxSteps(flags.maxSteps),
	)
	if err != nil {
		return err
	}

	res, err := e.Find(from, to, flags.live)
	if errors.Is(err, astar.ErrNoPathFound) {
		explainNoPath(cmd, e, from, to, res.Steps)
		return err
	}
	if err != nil {
		return err
	}
	log.Info("route found", "map", flags.label(), "heuristic", h.String(), "cost", res.Cost, "steps", res.Steps)

	final := render.NewTerminal(out, render.WithColor(!flags.noColor), render.WithClear(false))
	if err := e.PrintMap(final, flags.showOpen); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %v → %v (%s): cost %d, %d steps, %d cells\n",
		flags.label(), from, to, h, res.Cost, res.Steps, res.Path.Len())

	if flags.verify {
		best, ok := dijkstra.Distance(g, from, to, dijkstra.WithCornerCutting(!flags.noCorners))
		switch {
		case !ok:
			fmt.Fprintln(out, "dijkstra: unreachable")
		case best == res.Cost:
			fmt.Fprintf(out, "dijkstra: %d (optimal)\n", best)
		default:
			fmt.Fprintf(out, "dijkstra: %d (A* is %d over)\n", best, res.Cost-best)
		}
	}

	return nil
}

// explainNoPath prints the map and the fewest walls that separate the endpoints.
func explainNoPath(cmd *cobra.Command, e *astar.Engine, from, to astar.Coord, steps int) {
	out := cmd.OutOrStdout()
	g := e.Grid()
	fmt.Fprintf(out, "no path from %v to %v after %d steps\n", from, to, steps)

	route, walls, err := g.MinBreach(from, to)
	if err != nil {
		return
	}
	fmt.Fprintf(out, "clearing %d wall(s) would connect them: %v\n", walls, g.Walls(route))
}
