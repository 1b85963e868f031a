package astar_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/catalog"
	"github.com/katalvlaran/gridstar/gridgraph"
)

type C = astar.Coord

// rows turns '#'/'.' strings into rows[y][x].
func rows(lines ...string) [][]bool {
	out := make([][]bool, len(lines))
	for y, l := range lines {
		out[y] = make([]bool, len(l))
		for x, ch := range l {
			out[y][x] = ch == '#'
		}
	}

	return out
}

// openGrid returns an all-passable w×h grid.
func openGrid(t testing.TB, w, h int) *gridgraph.Grid {
	t.Helper()
	cells := make([][]bool, h)
	for y := range cells {
		cells[y] = make([]bool, w)
	}
	g, err := gridgraph.New(cells)
	require.NoError(t, err)

	return g
}

// builtin loads a catalog map by id.
func builtin(t testing.TB, id string) *gridgraph.Grid {
	t.Helper()
	g, err := catalog.Default().Grid(id)
	require.NoError(t, err)

	return g
}

// frame is one recorded Render call.
type frame struct {
	path []C
	open []C
}

// recorder is a Renderer that keeps every frame.
type recorder struct {
	mu     sync.Mutex
	frames []frame
	failAt int // 1-based frame that returns errRender; 0 never fails
}

var errRender = errors.New("render failed")

func (r *recorder) Render(_ *gridgraph.Grid, path astar.Path, open []C) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, frame{path: path.Cells(), open: append([]C(nil), open...)})
	if r.failAt > 0 && len(r.frames) == r.failAt {
		return errRender
	}

	return nil
}
