package bestfirst

import "github.com/katalvlaran/gridpath/grid"

// openItem is a cell in the open set. index is its heap slot, or -1 once
// popped; seq is the insertion order, used as the last tie-breaker.
type openItem struct {
	cell  *grid.Cell
	index int
	seq   int
}

// openSet is a min-heap of *openItem ordered by cell FCost ascending.
// Unlike a lazy-decrease-key heap, an improved entry is reordered in place
// with heap.Fix, so a cell appears at most once.
//
// Equal FCost resolves by lower HCost, then by insertion order. Callers must
// not depend on this order.
type openSet []*openItem

// Len returns the number of items in the heap.
func (pq openSet) Len() int { return len(pq) }

// Less orders by FCost, then HCost, then insertion sequence.
func (pq openSet) Less(i, j int) bool {
	a, b := pq[i].cell, pq[j].cell
	if a.FCost != b.FCost {
		return a.FCost < b.FCost
	}
	if a.HCost != b.HCost {
		return a.HCost < b.HCost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap and keeps their indices current.
func (pq openSet) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x onto the heap. Called by heap.Push; x must be *openItem.
func (pq *openSet) Push(x interface{}) {
	it := x.(*openItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *openSet) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // drop reference
	it.index = -1
	*pq = old[:n-1]

	return it
}
