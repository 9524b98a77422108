// Package bestfirst defines options, results and sentinel errors for the
// cost-based best-first search over a grid.Grid.
package bestfirst

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/trace"
)

// Sentinel errors returned by the best-first implementation.
var (
	// ErrGridNil indicates that a nil *grid.Grid was passed.
	ErrGridNil = errors.New("bestfirst: grid is nil")

	// ErrInvalidInput indicates a start or end coordinate outside the grid.
	ErrInvalidInput = errors.New("bestfirst: start or end outside the grid")
)

// StepCost is the cost of every move, orthogonal or diagonal.
const StepCost = 1.0

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b grid.Coord) float64

// Euclidean is the straight-line distance between two coordinates.
// It never overestimates the true step count under 8-connectivity, but is
// paired with a uniform StepCost, so the search is approximate rather than
// exact A*.
func Euclidean(a, b grid.Coord) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)

	return math.Sqrt(dr*dr + dc*dc)
}

// Options configures a best-first search.
//
// Ctx       – checked at every step boundary.
// Observer  – receives cell-status events in emission order.
// Heuristic – remaining-cost estimate; Euclidean by default.
type Options struct {
	Ctx       context.Context
	Observer  trace.Observer
	Heuristic Heuristic
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns Options with a background context, a discarding
// observer and the Euclidean heuristic.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Observer:  trace.Discard,
		Heuristic: Euclidean,
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

// WithHeuristic replaces the Euclidean heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// Result holds the outcome of a best-first run.
type Result struct {
	// Found reports whether the end cell was extracted from the open set.
	Found bool
	// Path is the start→end route when Found.
	Path []grid.Coord
	// Cost is the accumulated GCost of the end cell (one per step).
	Cost float64
	// Expanded counts cells extracted and finalized.
	Expanded int
}

// Steps returns the edge count of the found path.
func (r *Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
