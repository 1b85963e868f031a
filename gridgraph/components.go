package gridgraph

// Regions finds all contiguous regions of passable cells under
// 8-connectivity (corner cutting allowed, matching the default search).
// Regions are returned in row-major order of their first cell; cells inside
// a region are in BFS discovery order.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]Coord {
	seen := make([]bool, g.Width*g.Height)
	var regions [][]Coord

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c0 := Coord{x, y}
			if g.cells[y][x] || seen[g.index(c0)] {
				continue
			}
			// BFS to collect region
			queue := []Coord{c0}
			seen[g.index(c0)] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range g.Neighbors(queue[qi], true) {
					if i := g.index(n); !seen[i] {
						seen[i] = true
						queue = append(queue, n)
					}
				}
			}
			regions = append(regions, queue)
		}
	}

	return regions
}

// RegionLabels returns, for every cell in row-major order, the index of its
// region in Regions(), or -1 for blocked cells.
func (g *Grid) RegionLabels() []int {
	labels := make([]int, g.Width*g.Height)
	for i := range labels {
		labels[i] = -1
	}
	for r, cells := range g.Regions() {
		for _, c := range cells {
			labels[g.index(c)] = r
		}
	}

	return labels
}

// Connected reports whether a and b are passable and lie in the same region.
// It runs a single BFS from a and stops as soon as b is reached.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, g.Width*g.Height)
	seen[g.index(a)] = true
	queue := []Coord{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi], true) {
			if n == b {
				return true
			}
			if i := g.index(n); !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}

	return false
}
