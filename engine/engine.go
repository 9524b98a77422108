package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/replan"
	"github.com/katalvlaran/gridpath/trace"
)

var (
	// ErrGridNil indicates that a nil *grid.Grid was passed.
	ErrGridNil = errors.New("engine: grid is nil")

	// ErrUnknownStrategy indicates a strategy outside the closed set.
	ErrUnknownStrategy = errors.New("engine: unknown strategy")
)

// machine is a resumable search: bfs.Walker or replan.Controller.
type machine interface {
	Step() (done bool, err error)
}

// session is one leased run of a strategy on a grid.
type session struct {
	strategy Strategy
	machine  machine
	outcome  func() Outcome
	release  func()
	log      logrus.FieldLogger
}

// open validates input, takes the grid lease and builds the strategy's
// machine with obs wired in. A nil session with a nil error carries an
// InvalidInput outcome.
func open(ctx context.Context, s Strategy, g *grid.Grid, start, end grid.Coord, obs trace.Observer, o Options) (*session, Outcome, error) {
	if g == nil {
		return nil, Outcome{}, ErrGridNil
	}
	if !s.Valid() {
		return nil, Outcome{}, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if obs == nil {
		obs = trace.Discard
	}
	log := o.Logger.WithFields(logrus.Fields{
		"strategy": s.String(),
		"start":    start.String(),
		"end":      end.String(),
	})
	if out, ok := validate(s, g, start, end); !ok {
		log.WithField("reason", out.Reason).Debug("invalid input")
		return nil, out, nil
	}

	release, err := g.Acquire()
	if err != nil {
		return nil, Outcome{}, fmt.Errorf("engine: %w", err)
	}

	explored := 0
	counted := trace.Multi(obs, trace.Func(func(_, _ int, st trace.Status) {
		if st == trace.Explored {
			explored++
		}
	}))
	sess := &session{strategy: s, release: release, log: log}

	switch s {
	case BFS:
		w, err := bfs.New(g, start, end, bfs.WithContext(ctx), bfs.WithObserver(counted))
		if err != nil {
			release()
			return nil, Outcome{}, err
		}
		sess.machine = w
		sess.outcome = func() Outcome {
			res := w.Result()
			out := Outcome{Kind: NoPathFound, Strategy: s, Explored: explored}
			if res.Found {
				out.Kind = PathFound
				out.Path = res.Path
			}
			return out
		}
	case BestFirst:
		c, err := replan.New(g, start, end,
			replan.WithContext(ctx),
			replan.WithObserver(counted),
			replan.WithMaxReplans(o.MaxReplans),
			replan.WithBeforeMove(o.BeforeMove),
		)
		if err != nil {
			release()
			return nil, Outcome{}, err
		}
		sess.machine = c
		sess.outcome = func() Outcome {
			res := c.Result()
			out := Outcome{
				Kind:        NoPathFound,
				Strategy:    s,
				Route:       res.Route,
				Replans:     res.Replans,
				Disruptions: res.Disruptions,
				Explored:    explored,
			}
			if res.Reached {
				out.Kind = PathFound
				out.Path = res.Path
			}
			return out
		}
	}

	return sess, Outcome{}, nil
}

// finish releases the lease, logs and returns the outcome.
func (s *session) finish(err error) Outcome {
	s.release()
	out := s.outcome()
	entry := s.log.WithFields(logrus.Fields{
		"kind":     out.Kind.String(),
		"explored": out.Explored,
		"replans":  out.Replans,
		"steps":    out.Steps(),
	})
	if err != nil {
		entry.WithError(err).Debug("search failed")
	} else {
		entry.Debug("search finished")
	}

	return out
}

// RunSearch runs strategy s from start to end on g, reporting every cell
// status change to onCellStatus in algorithm order, and returns when the
// search (and for BestFirst, the walk) has terminated.
//
// Out-of-range coordinates yield Kind InvalidInput with no events, and an
// unreachable end yields Kind NoPathFound; neither is an error. Errors are
// reserved for faults: ErrGridNil, ErrUnknownStrategy, grid.ErrBusy when
// another run holds the grid, replan.ErrReplanLimit,
// replan.ErrOptionViolation, path.ErrBrokenChain and context errors. On a
// fault the partial outcome is still returned.
//
// The grid lease is held for the whole run and search state is reset
// before it starts; cell types are never changed.
func RunSearch(ctx context.Context, s Strategy, g *grid.Grid, start, end grid.Coord, onCellStatus trace.Observer, opts ...Option) (Outcome, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sess, out, err := open(ctx, s, g, start, end, onCellStatus, o)
	if sess == nil {
		return out, err
	}
	for {
		done, err := sess.machine.Step()
		if err != nil {
			return sess.finish(err), err
		}
		if done {
			return sess.finish(nil), nil
		}
	}
}

// Run is RunSearch between the grid's own start and end markers.
// A grid without either marker yields Kind InvalidInput.
func Run(ctx context.Context, s Strategy, g *grid.Grid, onCellStatus trace.Observer, opts ...Option) (Outcome, error) {
	if g == nil {
		return Outcome{}, ErrGridNil
	}
	start, ok := g.StartCoord()
	if !ok {
		return invalid(s, "grid has no start marker"), nil
	}
	end, ok := g.EndCoord()
	if !ok {
		return invalid(s, "grid has no end marker"), nil
	}

	return RunSearch(ctx, s, g, start, end, onCellStatus, opts...)
}
