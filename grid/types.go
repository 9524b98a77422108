// Package grid defines core types, sentinel errors and the square cell
// arrangement searched by the gridpath strategies.
package grid

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// Sentinel errors for grid operations.
var (
	// ErrBadSize indicates a grid size below 1.
	ErrBadSize = errors.New("grid: size must be at least 1")
	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrBusy indicates that another search already holds the grid lease.
	ErrBusy = errors.New("grid: grid is leased by another search")
	// ErrNonSquare indicates a layout whose rows differ from its height.
	ErrNonSquare = errors.New("grid: layout must be square")
	// ErrBadGlyph indicates an unknown character in a layout.
	ErrBadGlyph = errors.New("grid: unknown layout glyph")
	// ErrTooLarge indicates a grid size above MaxSize.
	ErrTooLarge = errors.New("grid: size exceeds limit")
	// ErrDuplicateMarker indicates a layout with more than one start or end.
	ErrDuplicateMarker = errors.New("grid: duplicate start or end marker")
	// ErrMarkerProtected indicates an obstacle toggle on a START or END cell.
	ErrMarkerProtected = errors.New("grid: start and end cells cannot become obstacles")
)

// CellType is the static classification of a cell. It is owned by the
// caller placing start, end and obstacles; searches only read it.
type CellType int32

const (
	// None is a plain, passable cell.
	None CellType = iota
	// Obstacle is impassable.
	Obstacle
	// Start marks the search origin.
	Start
	// End marks the search goal.
	End
)

// String returns the lower-case name of the type.
func (t CellType) String() string {
	switch t {
	case None:
		return "none"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("CellType(%d)", int32(t))
	}
}

// Coord addresses a cell by 1-based row and column.
// Row 1 is the bottom row in any visual mapping.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is a single grid cell: a fixed identity, a static type and the
// search-local state rewritten by every search invocation.
//
// Cells live inside a Grid and are always handled by pointer.
type Cell struct {
	Row, Col int

	kind atomic.Int32

	// Visited is set once a search has finalized the cell.
	Visited bool
	// Predecessor is the cell this one was reached from, nil for the origin
	// and for cells not reached yet.
	Predecessor *Cell
	// GCost is the cost from the origin (+Inf until reached).
	GCost float64
	// HCost is the heuristic estimate to the goal.
	HCost float64
	// FCost is GCost + HCost.
	FCost float64
}

// Coord returns the cell identity as a Coord.
func (c *Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

// Type returns the current static type. Safe to call while another
// goroutine changes the type through Grid.SetType.
func (c *Cell) Type() CellType {
	return CellType(c.kind.Load())
}

// IsObstacle reports whether the cell is currently impassable.
func (c *Cell) IsObstacle() bool {
	return c.Type() == Obstacle
}

// reset clears search-local state.
func (c *Cell) reset() {
	c.Visited = false
	c.Predecessor = nil
	c.GCost = math.Inf(1)
	c.HCost = 0
	c.FCost = math.Inf(1)
}
