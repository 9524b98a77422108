// Package bfs provides tunable options and error definitions
// for breadth-first search over a grid.Grid.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/trace"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrInvalidInput is returned when the start or end coordinate does not
	// resolve to a cell. No events are emitted in that case.
	ErrInvalidInput = errors.New("bfs: start or end outside the grid")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation; it is checked at every step boundary.
	Ctx context.Context

	// Observer receives cell-status events in emission order.
	Observer trace.Observer

	// OnDequeue is called when a cell leaves the queue, with its depth
	// (edge count) from the start.
	OnDequeue func(c grid.Coord, depth int)
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - events discarded
//   - no-op OnDequeue
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Observer:  trace.Discard,
		OnDequeue: func(grid.Coord, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObserver routes cell-status events to obs.
func WithObserver(obs trace.Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a BFS run:
//   - Found: whether the end cell was dequeued.
//   - Path: start→end route when Found, nil otherwise.
//   - Order: cells in dequeue order.
//   - Explored: number of Explored events emitted.
type Result struct {
	Found    bool
	Path     []grid.Coord
	Order    []grid.Coord
	Explored int
}

// Steps returns the edge count of the found path.
func (r *Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
