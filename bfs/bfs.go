// Package bfs provides breadth-first search over a grid.Grid, reporting
// every discovery and finalization as a cell-status event.
//
// BFS explores cells in increasing step distance from the start under
// 8-connectivity, treating obstacles as impassable, and stops as soon as
// the end cell is dequeued.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/path"
	"github.com/katalvlaran/gridpath/trace"
)

// Walker encapsulates mutable BFS state. It is a resumable state machine:
// each Step performs one dequeue and its neighbor discoveries.
//
// The walker writes Visited, Predecessor and GCost (used as depth) on the
// grid cells; the caller must hold the grid lease for its lifetime.
type Walker struct {
	grid       *grid.Grid
	opts       Options
	start, end *grid.Cell
	queue      []*grid.Cell
	head       int
	res        *Result
	done       bool
	err        error
}

// New validates input, resets the grid search state and seeds the queue
// with the start cell, reporting trace.Start for it.
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
		queue: make([]*grid.Cell, 0, g.Len()),
		res:   &Result{Order: make([]grid.Coord, 0, g.Len())},
	}

	// Seed queue with start cell (no predecessor)
	startCell.Visited = true
	startCell.GCost = 0
	w.queue = append(w.queue, startCell)
	trace.Emit(o.Observer, start, trace.Start)

	return w, nil
}

// Search runs BFS from start to end on g until the end cell is dequeued or
// the queue empties. An unreachable end is reported as Result.Found=false,
// not as an error.
//
// Errors: ErrGridNil, ErrInvalidInput, context errors, path.ErrBrokenChain.
// Complexity: O(size²) time and memory.
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

// Step advances the search by one dequeue. It returns done=true once the
// search has terminated (found, exhausted or failed); further calls are
// no-ops returning the same state.
func (w *Walker) Step() (done bool, err error) {
	if w.done {
		return true, w.err
	}
	// cancellation check (once per step)
	if err := w.opts.Ctx.Err(); err != nil {
		return w.finish(err)
	}
	if w.head == len(w.queue) {
		return w.finish(nil)
	}

	cur := w.dequeue()
	if cur == w.end {
		route, err := path.Reconstruct(cur, w.start, w.grid.Len(), w.opts.Observer)
		if err != nil {
			return w.finish(fmt.Errorf("bfs: %w", err))
		}
		w.res.Found = true
		w.res.Path = path.Coords(route)

		return w.finish(nil)
	}

	w.enqueueNeighbors(cur)
	if w.ordinary(cur) {
		trace.Emit(w.opts.Observer, cur.Coord(), trace.Explored)
		w.res.Explored++
	}

	return false, nil
}

// Result returns the (possibly partial) result.
func (w *Walker) Result() *Result { return w.res }

// Done reports whether the search has terminated.
func (w *Walker) Done() bool { return w.done }

// dequeue pops the head of the queue, records it and invokes OnDequeue.
func (w *Walker) dequeue() *grid.Cell {
	cur := w.queue[w.head]
	w.queue[w.head] = nil
	w.head++
	w.res.Order = append(w.res.Order, cur.Coord())
	w.opts.OnDequeue(cur.Coord(), int(cur.GCost))

	return cur
}

// enqueueNeighbors marks and enqueues every unseen, passable neighbor of
// cur, reporting trace.Frontier for each.
func (w *Walker) enqueueNeighbors(cur *grid.Cell) {
	for _, nbr := range w.grid.NeighborsOf(cur) {
		if nbr.Visited || nbr.IsObstacle() {
			continue
		}
		nbr.Visited = true
		nbr.Predecessor = cur
		nbr.GCost = cur.GCost + 1
		w.queue = append(w.queue, nbr)
		if w.ordinary(nbr) {
			trace.Emit(w.opts.Observer, nbr.Coord(), trace.Frontier)
		}
	}
}

// ordinary reports whether c is neither the start nor the end identity,
// whose markers observers keep painted.
func (w *Walker) ordinary(c *grid.Cell) bool {
	return c != w.start && c != w.end
}

func (w *Walker) finish(err error) (bool, error) {
	w.done = true
	w.err = err
	w.queue = nil

	return true, err
}
