package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridstar/gridgraph"
	"github.com/katalvlaran/gridstar/internal/logging"
)

// Sentinel errors returned by the search engine.
var (
	// ErrInvalidGrid indicates the engine could not be built from the given grid.
	ErrInvalidGrid = errors.New("astar: invalid grid")

	// ErrInvalidCoordinate indicates start or goal is out of bounds or blocked.
	ErrInvalidCoordinate = errors.New("astar: invalid coordinate")

	// ErrNoPathFound indicates the open set emptied before reaching the goal.
	ErrNoPathFound = errors.New("astar: no path found")

	// ErrUnknownHeuristic indicates a Heuristic value outside the enumeration.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")

	// ErrStepLimit indicates MaxSteps expansions happened without reaching the goal.
	ErrStepLimit = errors.New("astar: step limit reached")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNoRenderer indicates PrintMap was called with no renderer available.
	ErrNoRenderer = errors.New("astar: no renderer configured")
)

// Coord is re-exported so callers rarely need to import gridgraph directly.
type Coord = gridgraph.Coord

// Renderer draws the grid with the current best path and, optionally, the
// open set. It is called synchronously and must not retain path or open.
type Renderer interface {
	Render(g *gridgraph.Grid, path Path, open []Coord) error
}

// GridProvider resolves a symbolic map identifier into a grid.
type GridProvider interface {
	Grid(id string) (*gridgraph.Grid, error)
}

// Result is the outcome of a single Find call.
type Result struct {
	Path  Path // goal-to-start cells; empty unless Found
	Cost  uint // g of the goal node
	Steps int  // expanded (non-stale) nodes, including the goal
	Found bool
}

// Step is a snapshot handed to the OnStep hook for every expanded node.
type Step struct {
	Index   int // 1-based expansion counter
	Current Coord
	G, H, F uint
	OpenLen int // open cells after Current was removed from the open set
}

// Options configures the behavior of the Engine.
type Options struct {
	// Ctx allows cancellation between expansions.
	Ctx context.Context

	// Heuristic estimates the remaining cost to the goal.
	Heuristic Heuristic

	// Renderer receives per-step frames when Find is called with live=true.
	Renderer Renderer

	// Pace is slept after every live frame.
	Pace time.Duration

	// Relaxation lets a cheaper route replace an open entry.
	Relaxation bool

	// CornerCutting allows diagonal moves past a blocked orthogonal neighbour.
	CornerCutting bool

	// MaxSteps, if > 0, aborts the search after that many expansions.
	MaxSteps int

	// Logger receives debug records for each search.
	Logger *slog.Logger

	// OnStep is called for every expanded node, live or not.
	OnStep func(Step)

	// internal error recorded during option parsing
	err error
}

// Option configures the Engine via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation
// by the constructors.
type Option func(*Options)

// DefaultOptions returns Options with defaults:
//   - context.Background()
//   - Manhattan heuristic
//   - no renderer, no pacing
//   - relaxation and corner cutting enabled
//   - no step limit
//   - logger tagged component=astar
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Heuristic:     Manhattan,
		Relaxation:    true,
		CornerCutting: true,
		Logger:        logging.New("astar"),
		OnStep:        func(Step) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic selects the heuristic used by Find.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if !h.Valid() {
			o.err = fmt.Errorf("%w: %w: %d", ErrOptionViolation, ErrUnknownHeuristic, int(h))
			return
		}
		o.Heuristic = h
	}
}

// WithRenderer sets the live-render target.
func WithRenderer(r Renderer) Option {
	return func(o *Options) { o.Renderer = r }
}

// WithPace sets the delay after each live frame. Negative values are invalid.
func WithPace(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: pace cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Pace = d
	}
}

// WithRelaxation toggles replacing open entries by cheaper routes.
// Disabled, the first discovery of a cell is final until it is expanded.
func WithRelaxation(enabled bool) Option {
	return func(o *Options) { o.Relaxation = enabled }
}

// WithCornerCutting toggles diagonal moves that clip a wall corner.
func WithCornerCutting(enabled bool) Option {
	return func(o *Options) { o.CornerCutting = enabled }
}

// WithMaxSteps limits the number of expansions.
//
//	n > 0: limit to n
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithLogger replaces the default component logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnStep registers a callback run for every expanded node.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
