package bestfirst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/path"
	"github.com/katalvlaran/gridpath/trace"
)

// Walker encapsulates mutable best-first state: the open set keyed by
// FCost, one heap slot per discovered cell, and the partial result.
//
// The walker writes Visited, Predecessor, GCost, HCost and FCost on the
// grid cells; the caller must hold the grid lease for its lifetime.
type Walker struct {
	grid       *grid.Grid
	opts       Options
	start, end *grid.Cell
	open       openSet
	slots      []*openItem // by grid index; nil until discovered
	seq        int
	res        *Result
	done       bool
	err        error
}

// New validates input, resets the grid search state and seeds the open set
// with the start cell (GCost 0), reporting trace.Start for it.
// Returns ErrGridNil or ErrInvalidInput (wrapped) without emitting events.
func New(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	startCell, ok := g.At(start)
	if !ok {
		return nil, fmt.Errorf("%w: start %s", ErrInvalidInput, start)
	}
	endCell, ok := g.At(end)
	if !ok {
		return nil, fmt.Errorf("%w: end %s", ErrInvalidInput, end)
	}

	g.ResetSearchState()
	w := &Walker{
		grid:  g,
		opts:  o,
		start: startCell,
		end:   endCell,
		open:  make(openSet, 0, g.Size()*4),
		slots: make([]*openItem, g.Len()),
		res:   &Result{},
	}

	startCell.GCost = 0
	startCell.HCost = o.Heuristic(start, end)
	startCell.FCost = startCell.HCost
	w.push(startCell)
	trace.Emit(o.Observer, start, trace.Start)

	return w, nil
}

// Search runs best-first search from start to end on g until the end cell
// is extracted or the open set empties. An unreachable end is reported as
// Result.Found=false, not as an error.
//
// Errors: ErrGridNil, ErrInvalidInput, context errors, path.ErrBrokenChain.
// Complexity: O(N log N) time, O(N) memory, N = size².
func Search(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	w, err := New(g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	for {
		done, err := w.Step()
		if err != nil {
			return w.res, err
		}
		if done {
			return w.res, nil
		}
	}
}

// Step extracts the lowest-FCost cell and relaxes its neighbors.
// It returns done=true once the search has terminated; further calls are
// no-ops returning the same state.
func (w *Walker) Step() (done bool, err error) {
	if w.done {
		return true, w.err
	}
	if err := w.opts.Ctx.Err(); err != nil {
		return w.finish(err)
	}
	if w.open.Len() == 0 {
		return w.finish(nil)
	}

	cur := heap.Pop(&w.open).(*openItem).cell
	if cur == w.end {
		route, err := path.Reconstruct(cur, w.start, w.grid.Len(), w.opts.Observer)
		if err != nil {
			return w.finish(fmt.Errorf("bestfirst: %w", err))
		}
		w.res.Found = true
		w.res.Path = path.Coords(route)
		w.res.Cost = cur.GCost

		return w.finish(nil)
	}

	cur.Visited = true
	w.res.Expanded++
	if w.ordinary(cur) {
		trace.Emit(w.opts.Observer, cur.Coord(), trace.Explored)
	}
	w.relax(cur)

	return false, nil
}

// Result returns the (possibly partial) result.
func (w *Walker) Result() *Result { return w.res }

// Done reports whether the search has terminated.
func (w *Walker) Done() bool { return w.done }

// relax offers cur+StepCost to every unfinalized passable neighbor. A new
// cell is pushed and reported as trace.Frontier; a known open cell with a
// worse GCost is re-parented and reordered in place.
func (w *Walker) relax(cur *grid.Cell) {
	goal := w.end.Coord()
	for _, nbr := range w.grid.NeighborsOf(cur) {
		if nbr.Visited || nbr.IsObstacle() {
			continue
		}
		tentative := cur.GCost + StepCost
		slot := w.slots[w.grid.Index(nbr.Coord())]
		inOpen := slot != nil && slot.index >= 0
		if inOpen && tentative >= nbr.GCost {
			continue
		}

		nbr.GCost = tentative
		nbr.HCost = w.opts.Heuristic(nbr.Coord(), goal)
		nbr.FCost = nbr.GCost + nbr.HCost
		nbr.Predecessor = cur

		if inOpen {
			heap.Fix(&w.open, slot.index)
			continue
		}
		w.push(nbr)
		if w.ordinary(nbr) {
			trace.Emit(w.opts.Observer, nbr.Coord(), trace.Frontier)
		}
	}
}

// push inserts c into the open set and records its slot.
func (w *Walker) push(c *grid.Cell) {
	it := &openItem{cell: c, seq: w.seq}
	w.seq++
	w.slots[w.grid.Index(c.Coord())] = it
	heap.Push(&w.open, it)
}

// ordinary reports whether c is neither the start nor the end identity.
func (w *Walker) ordinary(c *grid.Cell) bool {
	return c != w.start && c != w.end
}

func (w *Walker) finish(err error) (bool, error) {
	w.done = true
	w.err = err
	w.open = nil
	w.slots = nil

	return true, err
}
