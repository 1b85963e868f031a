package astar

// pqEntry references an arena node by index. f is copied in so ordering
// does not need the arena.
type pqEntry struct {
	f   uint
	idx int
}

// nodePQ is a min-heap of arena entries ordered by f ascending, then by
// arena index ascending, so equal-f nodes leave in insertion order.
// Superseded entries are left in place and skipped when popped.
type nodePQ []pqEntry

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f, then by insertion.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type pqEntry.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(pqEntry)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
