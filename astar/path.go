package astar

// Path holds the cells visited by walking parent links from the goal back to
// the start. It answers set membership and both traversal orders.
// The zero value is an empty path.
type Path struct {
	cells []Coord
	set   map[Coord]struct{}
}

func newPath(cells []Coord) Path {
	set := make(map[Coord]struct{}, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}

	return Path{cells: cells, set: set}
}

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p.cells) }

// Empty reports whether the path has no cells.
func (p Path) Empty() bool { return len(p.cells) == 0 }

// Contains reports whether c lies on the path.
func (p Path) Contains(c Coord) bool {
	_, ok := p.set[c]
	return ok
}

// Cells returns the cells in parent-walk order: goal first, start last.
func (p Path) Cells() []Coord {
	out := make([]Coord, len(p.cells))
	copy(out, p.cells)

	return out
}

// Route returns the cells in travel order: start first, goal last.
func (p Path) Route() []Coord {
	out := make([]Coord, len(p.cells))
	for i, c := range p.cells {
		out[len(p.cells)-1-i] = c
	}

	return out
}
