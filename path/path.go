// Package path rebuilds routes from the predecessor links a search leaves
// on grid cells, and checks routes for adjacency and passability.
package path

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/trace"
)

// Sentinel errors for path reconstruction and verification.
var (
	// ErrBrokenChain indicates a predecessor chain that never reaches the
	// start cell. Searches only reconstruct after reaching the goal, so this
	// is an internal invariant violation.
	ErrBrokenChain = errors.New("path: predecessor chain does not reach start")
	// ErrNilCell indicates a nil goal or start cell.
	ErrNilCell = errors.New("path: nil cell")
	// ErrNotAdjacent indicates two consecutive route cells that are not
	// 8-connected neighbors.
	ErrNotAdjacent = errors.New("path: consecutive cells are not adjacent")
	// ErrBlocked indicates an obstacle on a route.
	ErrBlocked = errors.New("path: route crosses an obstacle")
)

// Reconstruct follows Predecessor links from goal back to start and returns
// the route in start→goal order.
//
// While walking it reports trace.Path for every intermediate cell in
// goal→start order; start and goal themselves are never reported. Observers
// therefore see the route painted backwards from the goal.
//
// limit bounds the walk (use the grid cell count); a longer chain can only
// be a cycle. Returns ErrBrokenChain and a nil route if start is not reached.
// Complexity: O(len(route)).
func Reconstruct(goal, start *grid.Cell, limit int, obs trace.Observer) ([]*grid.Cell, error) {
	if goal == nil || start == nil {
		return nil, ErrNilCell
	}
	if obs == nil {
		obs = trace.Discard
	}

	route := []*grid.Cell{goal}
	for cur := goal; cur != start; {
		prev := cur.Predecessor
		if prev == nil || len(route) > limit {
			return nil, fmt.Errorf("%w: stopped at %s", ErrBrokenChain, cur.Coord())
		}
		if prev != start {
			trace.Emit(obs, prev.Coord(), trace.Path)
		}
		route = append(route, prev)
		cur = prev
	}
	reverse(route)

	return route, nil
}

// Coords extracts the coordinates of a route.
func Coords(route []*grid.Cell) []grid.Coord {
	out := make([]grid.Coord, len(route))
	for i, c := range route {
		out[i] = c.Coord()
	}

	return out
}

// Steps returns the edge count of a route (0 for a single cell or none).
func Steps[T any](route []T) int {
	if len(route) == 0 {
		return 0
	}

	return len(route) - 1
}

// Chebyshev returns the 8-connected step distance between a and b.
func Chebyshev(a, b grid.Coord) int {
	return max(abs(a.Row-b.Row), abs(a.Col-b.Col))
}

// Verify checks that every coordinate of route lies in g, no coordinate is
// an obstacle, and each consecutive pair is 8-adjacent.
func Verify(g *grid.Grid, route []grid.Coord) error {
	for i, c := range route {
		cell, ok := g.At(c)
		if !ok {
			return fmt.Errorf("%w: %s", grid.ErrOutOfRange, c)
		}
		if cell.IsObstacle() {
			return fmt.Errorf("%w: %s", ErrBlocked, c)
		}
		if i > 0 && Chebyshev(route[i-1], c) != 1 {
			return fmt.Errorf("%w: %s → %s", ErrNotAdjacent, route[i-1], c)
		}
	}

	return nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
