// Package dijkstra implements Dijkstra's algorithm over occupancy grids.
//
// Notes on implementation choices:
//
//   - Distances live in row-major slices, not maps, while running.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/gridstar/gridgraph"
)

// Dijkstra computes shortest distances from Options.Source to every
// reachable passable cell of g.
//
// Returns:
//
//   - dist: cell → minimum distance; unreachable cells are absent.
//   - prev: optional predecessor map if ReturnPath (nil otherwise).
//     prev[v] == u means the shortest route to v arrives from u.
//     The source has no entry.
//   - err:  ErrNilGrid, ErrSourceOutOfBounds or ErrSourceBlocked.
//
// Complexity:
//
//   - Time:  O(N log N)
//   - Space: O(W×H)
func Dijkstra(g *gridgraph.Grid, opts ...Option) (map[gridgraph.Coord]uint, map[gridgraph.Coord]gridgraph.Coord, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if !g.InBounds(cfg.Source) {
		return nil, nil, ErrSourceOutOfBounds
	}
	if g.Blocked(cfg.Source) {
		return nil, nil, ErrSourceBlocked
	}

	// 3) Run
	r := newRunner(g, cfg)
	r.init()
	r.process()

	// 4) Export reached cells only.
	dist := make(map[gridgraph.Coord]uint)
	var prev map[gridgraph.Coord]gridgraph.Coord
	if cfg.ReturnPath {
		prev = make(map[gridgraph.Coord]gridgraph.Coord)
	}
	for i, d := range r.dist {
		if !r.visited[i] {
			continue
		}
		c := g.Coordinate(i)
		dist[c] = d
		if prev != nil && r.prev[i] >= 0 {
			prev[c] = g.Coordinate(r.prev[i])
		}
	}

	return dist, prev, nil
}

// Distance returns the shortest distance from a to b and whether b is
// reachable. Invalid endpoints are reported as unreachable.
func Distance(g *gridgraph.Grid, a, b gridgraph.Coord, opts ...Option) (uint, bool) {
	if g == nil || !g.Passable(b) {
		return Unreachable, false
	}
	all := append(make([]Option, 0, len(opts)+1), opts...)
	dist, _, err := Dijkstra(g, append(all, Source(a))...)
	if err != nil {
		return Unreachable, false
	}
	d, ok := dist[b]
	if !ok {
		return Unreachable, false
	}

	return d, true
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Grid // The input grid; read-only within Dijkstra.
	options Options         // Configuration options.
	dist    []uint          // Row-major cell → current best distance.
	prev    []int           // Row-major cell → predecessor index, -1 if none.
	visited []bool          // Tracks if a cell's distance is finalized.
	pq      nodePQ          // Min-heap of *nodeItem for lazy priority queue.
}

func newRunner(g *gridgraph.Grid, cfg Options) *runner {
	n := g.Width * g.Height

	return &runner{
		g:       g,
		options: cfg,
		dist:    make([]uint, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// index maps c to its row-major slot.
func (r *runner) index(c gridgraph.Coord) int {
	return c.Y*r.g.Width + c.X
}

// init sets dist to Unreachable everywhere and pushes Source=0 into the heap.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Unreachable
		r.prev[i] = -1
	}
	src := r.index(r.options.Source)
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process repeatedly extracts the closest cell and relaxes its neighbours.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable cells processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Skip stale heap entries.
		if r.visited[item.idx] {
			continue
		}

		// 3) Past the cap: nothing closer remains.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize and relax.
		r.visited[item.idx] = true
		r.relax(item.idx)
	}
}

// relax tries to improve the distances of the neighbours of cell u.
func (r *runner) relax(u int) {
	uc := r.g.Coordinate(u)
	for _, vc := range r.g.Neighbors(uc, r.options.CornerCutting) {
		v := r.index(vc)
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + gridgraph.MoveCost(uc, vc)
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	idx  int  // row-major cell index
	dist uint // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
