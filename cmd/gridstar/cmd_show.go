package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/render"
)

type showFlags struct {
	mapFlags
	noColor bool
}

func newShowCmd() *cobra.Command {
	var flags showFlags
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := flags.grid()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.Frame(g, astar.Path{}, nil, !flags.noColor))
			fmt.Fprintf(out, "%s: %dx%d, %d passable, %d region(s)\n",
				flags.label(), g.Width, g.Height, g.PassableCount(), len(g.Regions()))

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable ANSI colours")

	return cmd
}
