package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:   "gridstar",
		Short: "A* path search over occupancy grids",
		Long:  "gridstar finds cheapest 8-way routes on 2D grids with A*,\noptionally drawing every expansion in the terminal.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Init(logging.ParseLevel(flags.logLevel), flags.logFormat, cmd.ErrOrStderr())
		},
	}
	root.Version = version

	pf := root.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "text", "Log format: text or json")

	root.AddCommand(newFindCmd())
	root.AddCommand(newMapsCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newDemoCmd())

	return root
}
