package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/catalog"
	"github.com/katalvlaran/gridstar/gridgraph"
)

// mapFlags selects a grid by catalog id or by file.
type mapFlags struct {
	id   string
	file string
}

func (m *mapFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&m.id, "map", "m", "a", "Built-in map id (see 'gridstar maps')")
	f.StringVar(&m.file, "file", "", "Text or YAML map file; overrides --map")
}

// grid resolves the selected map.
func (m *mapFlags) grid() (*gridgraph.Grid, error) {
	if m.file != "" {
		return catalog.LoadFile(m.file)
	}

	return catalog.Default().Grid(m.id)
}

// label names the selected map in output.
func (m *mapFlags) label() string {
	if m.file != "" {
		return m.file
	}

	return "map " + m.id
}
