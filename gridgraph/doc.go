// Package gridgraph treats a 2D occupancy grid as an implicit 8-connected
// graph and provides the cell-level primitives the search packages build on.
//
// What:
//
//   - Grid wraps a rectangular [][]bool (true = blocked) and is immutable once built.
//   - Neighbors enumerates the 8 surrounding cells in a fixed order, with an
//     optional corner-cutting rule for diagonal steps.
//   - MoveCost prices a single step: 10 orthogonal, 14 diagonal.
//   - Regions finds 8-connected components of passable cells.
//   - MinBreach finds the fewest blocked cells that would have to be cleared
//     to connect two cells (0-1 BFS).
//
// Why:
//
//   - A* and Dijkstra share one neighbour order and one cost model, so their
//     results are directly comparable.
//   - Region lookups answer "is there any route at all" in O(1) after one pass.
//
// Complexity:
//
//   - New:       O(W×H) time and memory (deep copy).
//   - Regions:   O(W×H×8), Memory: O(W×H).
//   - MinBreach: O(W×H×8) on average, Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrNoPath: no route exists even when walls may be cleared (never for
//     in-bounds endpoints; kept for callers that restrict the search).
package gridgraph
