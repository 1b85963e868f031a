package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/gridstar/astar"
)

// MapInfo is one row of the catalog listing.
type MapInfo struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Passable int
	Regions  int
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	return tw
}

// Maps prints the catalog listing.
func Maps(w io.Writer, maps []MapInfo) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"ID", "Name", "Size", "Passable", "Regions"})
	for _, m := range maps {
		tw.AppendRow(table.Row{m.ID, m.Name, fmt.Sprintf("%dx%d", m.Width, m.Height), m.Passable, m.Regions})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	tw.Render()
}

// Summary prints one row per batch outcome with a found/total footer.
func Summary(w io.Writer, outcomes []astar.Outcome) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"#", "From", "To", "Cost", "Steps", "Length", "Status"})
	found := 0
	for i, o := range outcomes {
		cost := "-"
		if o.Result.Found {
			found++
			cost = fmt.Sprint(o.Result.Cost)
		}
		tw.AppendRow(table.Row{i + 1, o.Query.Start, o.Query.Goal, cost, o.Result.Steps, o.Result.Path.Len(), status(o.Err)})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "", "found", fmt.Sprintf("%d/%d", found, len(outcomes))})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	tw.Render()
}

func status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, astar.ErrNoPathFound):
		return "no path"
	case errors.Is(err, astar.ErrStepLimit):
		return "step limit"
	case errors.Is(err, astar.ErrInvalidCoordinate):
		return "invalid"
	default:
		return err.Error()
	}
}
