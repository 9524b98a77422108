// Package replan defines the options, states and results of the
// replanning controller.
package replan

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/trace"
)

var (
	// ErrReplanLimit is returned when a disruption arrives after the
	// configured number of replans has been spent.
	ErrReplanLimit = errors.New("replan: replan limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("replan: invalid option supplied")
)

// DefaultMaxReplans bounds replanning when WithMaxReplans is not given.
const DefaultMaxReplans = 32

// MoveHook is called before each walk move with the 1-based move number
// across the whole run, the current cell and the cell about to be entered.
// It may change the grid; the obstacle check happens after it returns.
// It must not block at or any cell already walked, since those cells are
// part of the reported route.
type MoveHook func(step int, at, next grid.Coord)

// Option configures the controller via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds controller parameters.
type Options struct {
	// Ctx is checked at every step boundary.
	Ctx context.Context
	// Observer receives search and walk events in emission order.
	Observer trace.Observer
	// MaxReplans caps the searches restarted after a disruption.
	// 0 means any disruption fails the run.
	MaxReplans int
	// BeforeMove runs ahead of each walk move.
	BeforeMove MoveHook

	err error
}

// DefaultOptions returns a background context, a discarding observer,
// DefaultMaxReplans and a no-op move hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Observer:   trace.Discard,
		MaxReplans: DefaultMaxReplans,
		BeforeMove: func(int, grid.Coord, grid.Coord) {},
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

// WithMaxReplans bounds the number of replans.
//
//	n >= 0: at most n searches after the first
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxReplans(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxReplans cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxReplans = n
	}
}

// WithBeforeMove installs fn as the move hook.
func WithBeforeMove(fn MoveHook) Option {
	return func(o *Options) {
		if fn != nil {
			o.BeforeMove = fn
		}
	}
}

// State is a controller phase.
type State int

const (
	// Searching runs a best-first search toward the goal.
	Searching State = iota
	// PathFound holds a fresh plan about to be walked.
	PathFound
	// Walking moves along the plan one cell per step.
	Walking
	// Disrupted means an obstacle blocks the next cell of the plan.
	Disrupted
	// DestinationReached is terminal: the walk entered the goal.
	DestinationReached
	// NoPathFound is terminal: the last search exhausted its open set.
	NoPathFound
)

var stateNames = [...]string{
	Searching:          "searching",
	PathFound:          "path-found",
	Walking:            "walking",
	Disrupted:          "disrupted",
	DestinationReached: "destination-reached",
	NoPathFound:        "no-path-found",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

// Terminal reports whether no further transition exists from s.
func (s State) Terminal() bool {
	return s == DestinationReached || s == NoPathFound
}

// Disruption marks a walk stopped in front of an obstacle.
type Disruption struct {
	// At is the last valid cell reached; the next search starts here.
	At grid.Coord
	// Blocked is the obstacle that stopped the walk.
	Blocked grid.Coord
}

// Result summarizes a controller run.
type Result struct {
	// Reached reports whether the walk entered the goal.
	Reached bool
	// Path is the most recent plan, start→goal; nil if no search succeeded.
	Path []grid.Coord
	// Route lists every cell actually walked, origin first, without repeats
	// at replan points.
	Route []grid.Coord
	// Replans counts searches restarted after a disruption.
	Replans int
	// Disruptions holds the At cell of each disruption, in order.
	Disruptions []grid.Coord
	// Expanded sums the cells finalized by every search.
	Expanded int
}
