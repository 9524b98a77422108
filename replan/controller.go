package replan

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bestfirst"
	"github.com/katalvlaran/gridpath/grid"
)

// Controller drives best-first search and path walking as an explicit
// state machine:
//
//	Searching → PathFound → Walking → DestinationReached
//	                           ↓
//	                       Disrupted → Searching
//	Searching → NoPathFound
//
// Every disruption restarts a full search from the last valid cell. The
// number of restarts is bounded by Options.MaxReplans; there is no
// recursion.
//
// The controller owns the grid search state for its lifetime; the caller
// must hold the grid lease.
type Controller struct {
	g     *grid.Grid
	goal  grid.Coord
	opts  Options
	state State

	search *bestfirst.Walker
	walk   *walker
	last   *Disruption
	moves  int

	res  *Result
	done bool
	err  error
}

// New validates options and coordinates and starts the first search, which
// reports trace.Start for start. Invalid coordinates return
// bestfirst.ErrInvalidInput (wrapped) before any event.
func New(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Controller, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	c := &Controller{g: g, goal: end, opts: o, state: Searching, res: &Result{}}
	if err := c.startSearch(start); err != nil {
		return nil, err
	}

	return c, nil
}

// Run drives a new controller to a terminal state.
// Errors: those of New, context errors, path.ErrBrokenChain, ErrReplanLimit.
func Run(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	c, err := New(g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	for {
		done, err := c.Step()
		if err != nil {
			return c.res, err
		}
		if done {
			return c.res, nil
		}
	}
}

// Step performs one transition: a search step, the hand-over of a fresh
// plan, one walk move, or a restart. It returns done=true in a terminal
// state or after a fault; further calls return the same values.
func (c *Controller) Step() (done bool, err error) {
	if c.done {
		return true, c.err
	}
	if err := c.opts.Ctx.Err(); err != nil {
		return c.fail(err)
	}

	switch c.state {
	case Searching:
		return c.stepSearch()
	case PathFound:
		c.walk = newWalker(c.g, c.res.Path, c.opts.Observer, c.opts.BeforeMove, c.moves)
		c.state = Walking
		return false, nil
	case Walking:
		return c.stepWalk()
	case Disrupted:
		if c.res.Replans >= c.opts.MaxReplans {
			return c.fail(fmt.Errorf("%w: %d replans, blocked at %s",
				ErrReplanLimit, c.res.Replans, c.last.Blocked))
		}
		c.res.Replans++
		if err := c.startSearch(c.last.At); err != nil {
			return c.fail(err)
		}
		c.state = Searching
		return false, nil
	default:
		c.done = true
		return true, nil
	}
}

// State returns the current phase.
func (c *Controller) State() State { return c.state }

// Result returns the (possibly partial) result.
func (c *Controller) Result() *Result { return c.res }

// Done reports whether the controller has stopped.
func (c *Controller) Done() bool { return c.done }

func (c *Controller) startSearch(from grid.Coord) error {
	w, err := bestfirst.New(c.g, from, c.goal,
		bestfirst.WithContext(c.opts.Ctx),
		bestfirst.WithObserver(c.opts.Observer),
	)
	if err != nil {
		return err
	}
	c.search = w

	return nil
}

func (c *Controller) stepSearch() (bool, error) {
	done, err := c.search.Step()
	if err != nil {
		return c.fail(err)
	}
	if !done {
		return false, nil
	}

	r := c.search.Result()
	c.res.Expanded += r.Expanded
	c.search = nil
	if !r.Found {
		c.state = NoPathFound
		c.done = true
		return true, nil
	}
	c.res.Path = r.Path
	c.state = PathFound

	return false, nil
}

func (c *Controller) stepWalk() (bool, error) {
	at, done := c.walk.step()
	if n := len(c.res.Route); n == 0 || c.res.Route[n-1] != at {
		c.res.Route = append(c.res.Route, at)
	}
	if !done {
		return false, nil
	}

	c.moves += c.walk.moves()
	if d := c.walk.disruption; d != nil {
		c.last = d
		c.res.Disruptions = append(c.res.Disruptions, d.At)
		c.state = Disrupted
		c.walk = nil
		return false, nil
	}
	c.walk = nil
	c.res.Reached = true
	c.state = DestinationReached
	c.done = true

	return true, nil
}

func (c *Controller) fail(err error) (bool, error) {
	c.done = true
	c.err = err
	c.search = nil
	c.walk = nil

	return true, err
}
