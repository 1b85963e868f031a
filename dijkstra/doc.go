// Package dijkstra computes exact shortest distances on a gridgraph.Grid.
//
// Overview:
//
//   - Dijkstra expands cells in order of increasing distance from a single
//     source, using the same 8-neighbour order and 10/14 move costs as the
//     A* engine, so its distances are the ground truth A* results are
//     checked against.
//   - It relies on a min-heap with lazy decrease-key: a shorter distance
//     pushes a duplicate entry and stale entries are skipped when popped.
//
// When to use:
//
//   - Verifying that an A* configuration returned an optimal route.
//   - Measuring heuristic admissibility: h(a, b) ≤ Distance(a, b).
//   - Distance fields from one cell to every reachable cell.
//
// Options:
//
//   - Source(c):              required starting cell.
//   - WithReturnPath():       also return the predecessor map.
//   - WithMaxDistance(d):     stop once the frontier passes d.
//   - WithCornerCutting(b):   mirror the A* corner-cutting rule (default true).
//
// Complexity:
//
//   - Time:  O(N log N), N = passable cells × 8 (heap pushes).
//   - Space: O(W×H).
//
// Errors (sentinel):
//
//   - ErrNilGrid:           nil grid.
//   - ErrSourceOutOfBounds: Source lies outside the grid.
//   - ErrSourceBlocked:     Source is a wall.
//   - ErrBadMaxDistance:    panic value when WithMaxDistance gets a negative value.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g,
//	    dijkstra.Source(gridgraph.Coord{X: 1, Y: 1}),
//	    dijkstra.WithReturnPath(),
//	)
package dijkstra
