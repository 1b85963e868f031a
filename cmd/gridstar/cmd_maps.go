package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/catalog"
	"github.com/katalvlaran/gridstar/render"
)

func newMapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maps",
		Short: "List built-in maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := catalog.Default()
			var rows []render.MapInfo
			for _, id := range cat.IDs() {
				entry, _ := cat.Entry(id)
				g, err := cat.Grid(id)
				if err != nil {
					return err
				}
				rows = append(rows, render.MapInfo{
					ID:       id,
					Name:     entry.Name,
					Width:    g.Width,
					Height:   g.Height,
					Passable: g.PassableCount(),
					Regions:  len(g.Regions()),
				})
			}
			render.Maps(cmd.OutOrStdout(), rows)

			return nil
		},
	}
}
