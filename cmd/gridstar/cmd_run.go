package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/catalog"
	"github.com/katalvlaran/gridstar/internal/config"
	"github.com/katalvlaran/gridstar/internal/logging"
	"github.com/katalvlaran/gridstar/render"
)

func newRunCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a batch scenario file",
		Long:  "Run every query of a YAML scenario concurrently and print a summary table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logging.New("run")

			s, err := config.Load(path)
			if err != nil {
				return err
			}
			g, err := s.Grid(catalog.Default())
			if err != nil {
				return err
			}
			outcomes, err := astar.SearchMany(cmd.Context(), g, s.SearchQueries(), s.Limit, s.Options()...)
			if err != nil {
				return err
			}
			render.Summary(cmd.OutOrStdout(), outcomes)
			log.Info("batch finished", "scenario", path, "queries", len(outcomes))

			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "Scenario YAML (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
