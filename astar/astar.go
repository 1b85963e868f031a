package astar

import (
	"container/heap"
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/gridstar/gridgraph"
)

// Engine runs A* queries against one immutable grid.
// An Engine is not safe for concurrent use; the grid it wraps is, so
// independent engines may share it (see SearchMany).
type Engine struct {
	grid *gridgraph.Grid
	opts Options

	// retained from the most recent Find, for PrintMap only
	lastPath Path
	lastOpen []Coord
}

// New builds an Engine from rows[y][x] (true = blocked).
// Empty or ragged rows fail with ErrInvalidGrid wrapping the gridgraph error.
func New(rows [][]bool, opts ...Option) (*Engine, error) {
	g, err := gridgraph.New(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, err)
	}

	return NewFromGrid(g, opts...)
}

// NewFromGrid builds an Engine over an existing grid without copying it.
func NewFromGrid(g *gridgraph.Grid, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrInvalidGrid)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Engine{grid: g, opts: cfg}, nil
}

// NewFromProvider resolves id through p and builds an Engine over the result.
// Provider failures are returned wrapped in ErrInvalidGrid.
func NewFromProvider(p GridProvider, id string, opts ...Option) (*Engine, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: provider is nil", ErrInvalidGrid)
	}
	g, err := p.Grid(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, err)
	}

	return NewFromGrid(g, opts...)
}

// Grid returns the grid the engine searches.
func (e *Engine) Grid() *gridgraph.Grid { return e.grid }

// Width returns the grid width.
func (e *Engine) Width() int { return e.grid.Width }

// Height returns the grid height.
func (e *Engine) Height() int { return e.grid.Height }

// Heuristic returns the heuristic used by subsequent Find calls.
func (e *Engine) Heuristic() Heuristic { return e.opts.Heuristic }

// SetHeuristic changes the heuristic for subsequent Find calls.
// Unknown values are rejected and leave the engine unchanged.
func (e *Engine) SetHeuristic(h Heuristic) error {
	if !h.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownHeuristic, int(h))
	}
	e.opts.Heuristic = h

	return nil
}

// SetPace changes the delay after each live frame.
func (e *Engine) SetPace(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: pace cannot be negative (%s)", ErrOptionViolation, d)
	}
	e.opts.Pace = d

	return nil
}

// LastPath returns the path found by the most recent Find (empty on failure).
func (e *Engine) LastPath() Path { return e.lastPath }

// LastOpen returns the open set left by the most recent Find, row-major sorted.
func (e *Engine) LastOpen() []Coord {
	out := make([]Coord, len(e.lastOpen))
	copy(out, e.lastOpen)

	return out
}

// PrintMap renders the grid with the last path, and the last open set when
// overlay is true. A nil r falls back to the configured renderer.
func (e *Engine) PrintMap(r Renderer, overlay bool) error {
	if r == nil {
		r = e.opts.Renderer
	}
	if r == nil {
		return ErrNoRenderer
	}
	var open []Coord
	if overlay {
		open = e.LastOpen()
	}

	return r.Render(e.grid, e.lastPath, open)
}

// Find searches for the cheapest route from start to goal.
//
// Preconditions (in order):
//  1. The configured heuristic is valid (ErrUnknownHeuristic).
//  2. start and goal are in bounds and passable (ErrInvalidCoordinate).
//
// With live set and a renderer configured, every expansion is rendered
// and followed by the configured pace.
//
// Failure modes after the search started: ErrNoPathFound (exhausted),
// ErrStepLimit, context errors and renderer errors. Result.Steps is filled
// in for all of them.
func (e *Engine) Find(start, goal Coord, live bool) (Result, error) {
	e.lastPath, e.lastOpen = Path{}, nil

	if !e.opts.Heuristic.Valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownHeuristic, int(e.opts.Heuristic))
	}
	if err := e.checkEndpoint("start", start); err != nil {
		return Result{}, err
	}
	if err := e.checkEndpoint("goal", goal); err != nil {
		return Result{}, err
	}

	log := e.opts.Logger.With("start", start.String(), "goal", goal.String(), "heuristic", e.opts.Heuristic.String())
	log.Debug("search started")

	r := newRunner(e, goal, live)
	res, err := r.run(start)
	e.lastPath = res.Path
	e.lastOpen = r.openCells()

	if err != nil {
		log.Debug("search failed", "steps", res.Steps, "err", err)
		return res, err
	}
	log.Debug("search finished", "steps", res.Steps, "cost", res.Cost, "length", res.Path.Len())

	return res, nil
}

// checkEndpoint validates a query endpoint.
func (e *Engine) checkEndpoint(role string, c Coord) error {
	if !e.grid.InBounds(c) {
		return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidCoordinate, role, c, e.grid.Width, e.grid.Height)
	}
	if e.grid.Blocked(c) {
		return fmt.Errorf("%w: %s %v is blocked", ErrInvalidCoordinate, role, c)
	}

	return nil
}

// node is an immutable search record. parent is an arena index, -1 for the start.
type node struct {
	g, h, f uint
	pos     Coord
	parent  int
}

// runner holds the mutable state for a single Find execution.
type runner struct {
	e    *Engine
	goal Coord
	live bool

	arena  []node         // every node created, in insertion order
	pq     nodePQ         // min-heap over arena indices
	open   map[Coord]int  // cell → arena index of its current best node
	closed map[Coord]bool // fully expanded cells
	steps  int            // non-stale pops
}

func newRunner(e *Engine, goal Coord, live bool) *runner {
	return &runner{
		e:      e,
		goal:   goal,
		live:   live,
		open:   make(map[Coord]int),
		closed: make(map[Coord]bool),
	}
}

// push appends n to the arena, marks its cell open and queues it.
func (r *runner) push(n node) {
	r.arena = append(r.arena, n)
	idx := len(r.arena) - 1
	r.open[n.pos] = idx
	heap.Push(&r.pq, pqEntry{f: n.f, idx: idx})
}

// run executes the main loop from start.
func (r *runner) run(start Coord) (Result, error) {
	cfg := r.e.opts
	h := cfg.Heuristic.Estimate(start, r.goal)
	heap.Init(&r.pq)
	r.push(node{g: 0, h: h, f: h, pos: start, parent: -1})

	for r.pq.Len() > 0 {
		// 1) Pop the smallest f; drop stale entries.
		idx := heap.Pop(&r.pq).(pqEntry).idx
		cur := r.arena[idx]
		if r.closed[cur.pos] || r.open[cur.pos] != idx {
			continue
		}

		// 2) Count the expansion, honouring the ceiling and the context.
		if cfg.MaxSteps > 0 && r.steps >= cfg.MaxSteps {
			return Result{Steps: r.steps}, fmt.Errorf("%w: %d", ErrStepLimit, cfg.MaxSteps)
		}
		if err := cfg.Ctx.Err(); err != nil {
			return Result{Steps: r.steps}, fmt.Errorf("astar: search aborted after %d steps: %w", r.steps, err)
		}
		r.steps++

		// 3) Live frame.
		if r.live && cfg.Renderer != nil {
			if err := cfg.Renderer.Render(r.e.grid, r.pathTo(idx), r.openCells()); err != nil {
				return Result{Steps: r.steps}, fmt.Errorf("astar: render step %d: %w", r.steps, err)
			}
			if cfg.Pace > 0 {
				time.Sleep(cfg.Pace)
			}
		}

		// 4) Goal reached.
		if cur.pos == r.goal {
			cfg.OnStep(Step{Index: r.steps, Current: cur.pos, G: cur.g, H: cur.h, F: cur.f, OpenLen: len(r.open) - 1})
			return Result{Path: r.pathTo(idx), Cost: cur.g, Steps: r.steps, Found: true}, nil
		}

		// 5) Move to the closed set.
		delete(r.open, cur.pos)
		r.closed[cur.pos] = true
		cfg.OnStep(Step{Index: r.steps, Current: cur.pos, G: cur.g, H: cur.h, F: cur.f, OpenLen: len(r.open)})

		// 6) Expand neighbours.
		r.expand(idx)
	}

	return Result{Steps: r.steps}, fmt.Errorf("%w: search exhausted after %d steps", ErrNoPathFound, r.steps)
}

// expand discovers the neighbours of arena node idx.
func (r *runner) expand(idx int) {
	cfg := r.e.opts
	cur := r.arena[idx]
	for _, n := range r.e.grid.Neighbors(cur.pos, cfg.CornerCutting) {
		if r.closed[n] {
			continue
		}
		h := cfg.Heuristic.Estimate(n, r.goal)
		g := cur.g + gridgraph.MoveCost(cur.pos, n)

		if best, seen := r.open[n]; seen {
			// Without relaxation the first discovery is final.
			if !cfg.Relaxation || g >= r.arena[best].g {
				continue
			}
		}
		r.push(node{g: g, h: h, f: g + h, pos: n, parent: idx})
	}
}

// pathTo walks parent links from arena node idx back to the start.
func (r *runner) pathTo(idx int) Path {
	var cells []Coord
	for i := idx; i >= 0; i = r.arena[i].parent {
		cells = append(cells, r.arena[i].pos)
	}

	return newPath(cells)
}

// openCells returns the open set sorted row-major.
func (r *runner) openCells() []Coord {
	cells := make([]Coord, 0, len(r.open))
	for c := range r.open {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})

	return cells
}
