package replan

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/trace"
)

// walker moves along a planned route one cell per step.
//
// Each step reports trace.Current for the cell entered and trace.Cleared for
// the cell left, then looks at the next route cell: an obstacle there ends
// the walk with a Disruption. Cell types are never modified.
type walker struct {
	g      *grid.Grid
	route  []grid.Coord
	obs    trace.Observer
	before MoveHook
	offset int // moves completed by earlier walks

	pos        int
	done       bool
	disruption *Disruption
}

func newWalker(g *grid.Grid, route []grid.Coord, obs trace.Observer, before MoveHook, offset int) *walker {
	if before == nil {
		before = func(int, grid.Coord, grid.Coord) {}
	}

	return &walker{g: g, route: route, obs: obs, before: before, offset: offset}
}

// step enters route[pos]. It returns the entered cell and done=true when the
// walk ended, either at the goal or in front of an obstacle.
func (w *walker) step() (at grid.Coord, done bool) {
	if w.done || len(w.route) == 0 {
		w.done = true
		return grid.Coord{}, true
	}

	at = w.route[w.pos]
	trace.Emit(w.obs, at, trace.Current)
	if w.pos > 0 {
		trace.Emit(w.obs, w.route[w.pos-1], trace.Cleared)
	}
	if w.pos == len(w.route)-1 {
		w.done = true
		return at, true
	}

	next := w.route[w.pos+1]
	w.before(w.offset+w.pos+1, at, next)
	if cell, ok := w.g.At(next); !ok || cell.IsObstacle() {
		w.done = true
		w.disruption = &Disruption{At: at, Blocked: next}
		return at, true
	}
	w.pos++

	return at, false
}

// moves returns the number of moves completed.
func (w *walker) moves() int { return w.pos }

// Walk moves along route until the goal or the first obstacle, reporting
// events to obs. It returns nil when the last cell was entered.
func Walk(g *grid.Grid, route []grid.Coord, obs trace.Observer) *Disruption {
	if obs == nil {
		obs = trace.Discard
	}
	w := newWalker(g, route, obs, nil, 0)
	for {
		if _, done := w.step(); done {
			return w.disruption
		}
	}
}
