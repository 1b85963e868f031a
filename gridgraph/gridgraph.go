// Package gridgraph provides utilities to treat a 2D occupancy grid as a graph.
// It supports:
//
//   - Bounds and passability checks
//   - Eight-neighbour enumeration with optional corner cutting
//   - Identification of connected regions of passable cells
//   - Minimal wall-breach routes between two cells
//
// Cells marked true are blocked; cells marked false are passable.
package gridgraph

// New constructs a Grid from a non-empty, rectangular 2D slice where
// rows[y][x] reports whether cell (x,y) is blocked.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func New(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		copy(cells[y], rows[y])
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Blocked reports whether c is a wall. Out-of-bounds cells count as blocked.
func (g *Grid) Blocked(c Coord) bool {
	if !g.InBounds(c) {
		return true
	}

	return g.cells[c.Y][c.X]
}

// Passable reports whether c is inside the grid and not blocked.
func (g *Grid) Passable(c Coord) bool {
	return !g.Blocked(c)
}

// Offsets returns the 8 neighbour offsets in expansion order.
// The returned array is a copy.
func (g *Grid) Offsets() [8]Coord {
	return neighborOffsets
}

// Neighbors returns the passable neighbours of c in expansion order.
// With cornerCutting disabled, a diagonal step is dropped when either of
// the two orthogonal cells it squeezes between is blocked.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord, cornerCutting bool) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := c.Add(d)
		if g.Blocked(n) {
			continue
		}
		if !cornerCutting && d.X != 0 && d.Y != 0 {
			if g.Blocked(Coord{c.X + d.X, c.Y}) || g.Blocked(Coord{c.X, c.Y + d.Y}) {
				continue
			}
		}
		out = append(out, n)
	}

	return out
}

// Rows returns a deep copy of the underlying cells, rows[y][x].
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.Height)
	for y := range rows {
		rows[y] = make([]bool, g.Width)
		copy(rows[y], g.cells[y])
	}

	return rows
}

// PassableCount returns the number of passable cells.
func (g *Grid) PassableCount() int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.cells[y][x] {
				n++
			}
		}
	}

	return n
}

// index maps c to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(c Coord) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row‑major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.Width, Y: idx / g.Width}
}
