package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/catalog"
	"github.com/katalvlaran/gridstar/internal/config"
)

// execute runs the CLI with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestFind_Maze(t *testing.T) {
	out, _, err := execute(t, "find", "--map", "a", "--from", "1,1", "--to", "8,8", "--no-color", "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "map a (1,1) → (8,8) (manhattan): cost 116, 18 steps, 11 cells")
	assert.Contains(t, out, "dijkstra: 116 (optimal)")
	assert.Contains(t, out, "██")
	assert.NotContains(t, out, "\x1b[H\x1b[2J", "no clear without --live")
}

func TestFind_ReferenceAndVerify(t *testing.T) {
	out, _, err := execute(t, "find", "-m", "a", "--from", "1,1", "--to", "8,8", "--reference", "--no-color", "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "cost 124")
	assert.Contains(t, out, "dijkstra: 116 (A* is 8 over)")
}

func TestFind_NoCorners(t *testing.T) {
	out, _, err := execute(t, "find", "--from", "1,1", "--to", "8,8", "--no-corners", "--heuristic", "octile", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "(octile): cost 140")
}

func TestFind_Live(t *testing.T) {
	out, _, err := execute(t, "find", "-m", "d", "--from", "1,1", "--to", "3,3", "--live", "--pace", "0s", "--no-color")
	require.NoError(t, err)
	assert.Equal(t, 4, bytes.Count([]byte(out), []byte("\x1b[H\x1b[2J")), "one frame per expansion")
	assert.Contains(t, out, "cost 34, 4 steps")
}

func TestFind_NoPathExplains(t *testing.T) {
	out, _, err := execute(t, "find", "-m", "e", "--from", "1,1", "--to", "8,8", "--no-color")
	require.ErrorIs(t, err, astar.ErrNoPathFound)
	assert.Contains(t, out, "no path from (1,1) to (8,8) after 243 steps")
	assert.Contains(t, out, "clearing 1 wall(s)")
}

func TestFind_Errors(t *testing.T) {
	_, _, err := execute(t, "find", "--from", "x", "--to", "8,8")
	assert.ErrorIs(t, err, config.ErrBadCoord)

	_, _, err = execute(t, "find", "--from", "0,0", "--to", "8,8")
	assert.ErrorIs(t, err, astar.ErrInvalidCoordinate)

	_, _, err = execute(t, "find", "--from", "1,1", "--to", "8,8", "--heuristic", "zigzag")
	assert.ErrorIs(t, err, astar.ErrUnknownHeuristic)

	_, _, err = execute(t, "find", "-m", "zz", "--from", "1,1", "--to", "8,8")
	assert.ErrorIs(t, err, catalog.ErrUnknownMap)

	_, _, err = execute(t, "find", "--from", "1,1", "--to", "8,8", "--max-steps", "3")
	assert.ErrorIs(t, err, astar.ErrStepLimit)

	_, _, err = execute(t, "find", "--from", "1,1")
	assert.Error(t, err, "--to is required")
}

func TestFind_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corridor.txt")
	require.NoError(t, os.WriteFile(path, []byte("// corridor\n.....\n"), 0o644))

	out, _, err := execute(t, "find", "--file", path, "--from", "0,0", "--to", "4,0", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "cost 40, 5 steps, 5 cells")
	assert.Contains(t, out, path)
}

func TestMaps(t *testing.T) {
	out, _, err := execute(t, "maps")
	require.NoError(t, err)
	for _, s := range []string{"maze", "wall", "rooms", "ring", "labyrinth", "32x17"} {
		assert.Contains(t, out, s)
	}
}

func TestShow(t *testing.T) {
	out, _, err := execute(t, "show", "-m", "d", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "▒▒▒▒▒▒▒▒▒▒\n")
	assert.Contains(t, out, "map d: 5x5, 8 passable, 1 region(s)")
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.yaml")
	scenario := `map: a
heuristic: octile
limit: 2
queries:
  - from: [1, 1]
    to: [8, 8]
  - from: [0, 0]
    to: [8, 8]
`
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	out, _, err := execute(t, "run", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "116")
	assert.Contains(t, out, "invalid")
	assert.Contains(t, out, "1/2")

	_, _, err = execute(t, "run", "-f", filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "demo", "--pace", "0s", "--pause", "0s", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "example 1: map a (1,1) → (8,8) (manhattan): cost 116, 18 steps")
	assert.Contains(t, out, "example 4: map c (0,0) → (19,19) (euclidean): cost 302, 155 steps")
	assert.Contains(t, out, "example 6: map e (1,1) → (30,15) (euclidean): cost 424, 71 steps")
}

func TestLogLevel(t *testing.T) {
	_, errOut, err := execute(t, "--log-level", "info", "find", "--from", "1,1", "--to", "8,8", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, errOut, "route found")
	assert.Contains(t, errOut, "component=find")
}
