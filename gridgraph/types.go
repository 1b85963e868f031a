// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridstar.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrNoPath indicates no route exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)

// Step costs. Distances are scaled by 10 so that they stay integral;
// the diagonal cost is sqrt(2)*10 truncated once.
const (
	OrthogonalCost uint = 10
	DiagonalCost   uint = 14
)

// Coord identifies a grid cell. X is the column, Y the row.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c shifted by the offset d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// neighborOffsets lists the 8 moves in expansion order: the three cells to
// the right, the three to the left, then straight up and down.
var neighborOffsets = [8]Coord{
	{1, -1}, {1, 0}, {1, 1},
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
}

// MoveCost returns the cost of a single step from a to b:
// DiagonalCost when both axes change, OrthogonalCost otherwise.
// a and b are expected to be neighbours.
func MoveCost(a, b Coord) uint {
	if abs(a.X-b.X)+abs(a.Y-b.Y) == 2 {
		return DiagonalCost
	}

	return OrthogonalCost
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Grid is an immutable occupancy grid. cells[y][x] is true when (x,y) is blocked.
type Grid struct {
	Width, Height int
	cells         [][]bool
}
