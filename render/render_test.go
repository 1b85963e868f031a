package render_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/gridgraph"
	"github.com/katalvlaran/gridstar/render"
)

// searched runs one Octile search on
//
//	. . .
//	. # .
//	. . .
func searched(t *testing.T) (*astar.Engine, astar.Result) {
	t.Helper()
	e, err := astar.New([][]bool{
		{false, false, false},
		{false, true, false},
		{false, false, false},
	}, astar.WithHeuristic(astar.Octile))
	require.NoError(t, err)
	res, err := e.Find(astar.Coord{X: 0, Y: 0}, astar.Coord{X: 2, Y: 0}, false)
	require.NoError(t, err)

	return e, res
}

func TestFrame_Plain(t *testing.T) {
	e, res := searched(t)

	got := render.Frame(e.Grid(), res.Path, nil, false)
	want := "" +
		"██████\n" +
		"  ▒▒  \n" +
		"      \n"
	assert.Equal(t, want, got)
}

func TestFrame_OpenOverlay(t *testing.T) {
	e, res := searched(t)
	open := []astar.Coord{{X: 0, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: 1}}

	got := render.Frame(e.Grid(), res.Path, open, false)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "██████", lines[0], "path wins over open")
	assert.Equal(t, "░░▒▒  ", lines[1], "blocked wins over open")
}

func TestFrame_ColorStripsToPlain(t *testing.T) {
	e, res := searched(t)
	plain := render.Frame(e.Grid(), res.Path, nil, false)
	colored := render.Frame(e.Grid(), res.Path, nil, true)
	assert.Equal(t, plain, text.StripEscape(colored))
}

func TestTerminal_Render(t *testing.T) {
	e, res := searched(t)

	var buf bytes.Buffer
	term := render.NewTerminal(&buf, render.WithColor(false))
	require.NoError(t, term.Render(e.Grid(), res.Path, nil))
	assert.True(t, strings.HasPrefix(buf.String(), "\x1b[H\x1b[2J"))
	assert.Equal(t, render.Frame(e.Grid(), res.Path, nil, false), strings.TrimPrefix(buf.String(), "\x1b[H\x1b[2J"))

	buf.Reset()
	quiet := render.NewTerminal(&buf, render.WithColor(false), render.WithClear(false))
	require.NoError(t, e.PrintMap(quiet, false))
	assert.Equal(t, render.Frame(e.Grid(), res.Path, nil, false), buf.String())

	buf.Reset()
	require.NoError(t, term.ClearScreen())
	assert.Equal(t, "\x1b[H\x1b[2J", buf.String())
}

type failWriter struct{}

var errWrite = errors.New("disk full")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

// TestTerminal_WriteError aborts a live search.
func TestTerminal_WriteError(t *testing.T) {
	term := render.NewTerminal(failWriter{})
	assert.ErrorIs(t, term.ClearScreen(), errWrite)

	e, err := astar.New([][]bool{{false, false}}, astar.WithRenderer(term))
	require.NoError(t, err)
	_, err = e.Find(astar.Coord{X: 0, Y: 0}, astar.Coord{X: 1, Y: 0}, true)
	assert.ErrorIs(t, err, errWrite)
}

// TestTerminal_LiveFrames counts one clear sequence per expansion.
func TestTerminal_LiveFrames(t *testing.T) {
	var buf bytes.Buffer
	g, err := gridgraph.New([][]bool{
		{false, false, false},
		{false, false, false},
		{false, false, false},
	})
	require.NoError(t, err)
	e, err := astar.NewFromGrid(g, astar.WithRenderer(render.NewTerminal(&buf, render.WithColor(false))))
	require.NoError(t, err)

	res, err := e.Find(astar.Coord{X: 0, Y: 0}, astar.Coord{X: 2, Y: 2}, true)
	require.NoError(t, err)
	assert.Equal(t, res.Steps, strings.Count(buf.String(), "\x1b[H\x1b[2J"))
}

func TestMaps(t *testing.T) {
	var buf bytes.Buffer
	render.Maps(&buf, []render.MapInfo{
		{ID: "a", Name: "maze", Width: 10, Height: 10, Passable: 40, Regions: 1},
		{ID: "e", Name: "labyrinth", Width: 32, Height: 17, Passable: 249, Regions: 2},
	})
	out := buf.String()
	for _, s := range []string{"ID", "NAME", "SIZE", "maze", "10x10", "labyrinth", "32x17", "249"} {
		assert.Contains(t, out, s)
	}
}

func TestSummary(t *testing.T) {
	g, err := gridgraph.New([][]bool{
		{false, true, false},
		{false, true, false},
	})
	require.NoError(t, err)
	queries := []astar.Query{
		{Start: astar.Coord{X: 0, Y: 0}, Goal: astar.Coord{X: 0, Y: 1}},
		{Start: astar.Coord{X: 0, Y: 0}, Goal: astar.Coord{X: 2, Y: 1}},
		{Start: astar.Coord{X: 1, Y: 0}, Goal: astar.Coord{X: 0, Y: 0}},
	}
	out, err := astar.SearchMany(context.Background(), g, queries, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	render.Summary(&buf, out)
	s := buf.String()
	assert.Contains(t, s, "COST")
	assert.Contains(t, s, "(0,1)")
	assert.Contains(t, s, "ok")
	assert.Contains(t, s, "no path")
	assert.Contains(t, s, "invalid")
	assert.Contains(t, s, "1/3")
}
