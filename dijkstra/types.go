// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-distance search on occupancy grids.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridstar/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceOutOfBounds indicates the source cell lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source out of bounds")

	// ErrSourceBlocked indicates the source cell is a wall.
	ErrSourceBlocked = errors.New("dijkstra: source cell is blocked")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance reported for cells with no route from Source.
const Unreachable = uint(math.MaxUint)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source        – starting cell (must be in bounds and passable).
// ReturnPath    – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance   – optional cap on distances to explore (cells beyond are skipped).
// CornerCutting – allow diagonal steps past a wall corner (default true).
type Options struct {
	Source        gridgraph.Coord // The starting cell
	ReturnPath    bool            // Whether to return the predecessor map
	MaxDistance   uint            // Maximum distance to explore
	CornerCutting bool            // Diagonal squeeze rule, as in the A* engine
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell.
func Source(c gridgraph.Coord) Option {
	return func(o *Options) {
		o.Source = c
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = uint(max)
	}
}

// WithCornerCutting toggles diagonal steps past a blocked orthogonal neighbour.
func WithCornerCutting(enabled bool) Option {
	return func(o *Options) {
		o.CornerCutting = enabled
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:        (0,0) (validated in Dijkstra).
//   - ReturnPath:    false.
//   - MaxDistance:   Unreachable (no cap).
//   - CornerCutting: true.
func DefaultOptions() Options {
	return Options{
		ReturnPath:    false,
		MaxDistance:   Unreachable,
		CornerCutting: true,
	}
}
