package grid

import (
	"fmt"
	"sync"
)

// neighborOffsets is the fixed 8-connected neighbor order: orthogonal
// first, then diagonals. Searches emit events in this order.
var neighborOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Grid is a square size×size arrangement of cells stored row-major.
// Its size is fixed once built.
//
// Concurrency: type reads and writes are atomic per cell; start/end markers
// are guarded by muMark. Search-local state (visited, costs, predecessor) is
// owned by whoever holds the lease returned by Acquire.
type Grid struct {
	size  int
	cells []Cell

	lease sync.Mutex

	muMark     sync.Mutex
	start, end int // linear index, -1 if unset
}

// MaxSize is the largest side length New accepts.
const MaxSize = 1024

// New builds an empty size×size grid with every cell typed None.
// Returns ErrBadSize if size < 1 and ErrTooLarge if size > MaxSize.
// Complexity: O(size²).
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	if size > MaxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, size, MaxSize)
	}
	g := &Grid{
		size:  size,
		cells: make([]Cell, size*size),
		start: -1,
		end:   -1,
	}
	for i := range g.cells {
		c := &g.cells[i]
		c.Row, c.Col = i/size+1, i%size+1
		c.reset()
	}

	return g, nil
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.size }

// Len returns the number of cells (size²).
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && row <= g.size && col >= 1 && col <= g.size
}

// Index maps a coordinate to its row-major index (row-1)*size + (col-1).
// The result is meaningless for out-of-range coordinates.
func (g *Grid) Index(c Coord) int {
	return (c.Row-1)*g.size + (c.Col - 1)
}

// Coordinate converts a row-major index back to a coordinate.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx/g.size + 1, Col: idx%g.size + 1}
}

// CellAt returns the cell at (row,col), or false when out of range.
// It never panics.
func (g *Grid) CellAt(row, col int) (*Cell, bool) {
	if g == nil || !g.InBounds(row, col) {
		return nil, false
	}

	return &g.cells[(row-1)*g.size+(col-1)], true
}

// At is CellAt for a Coord.
func (g *Grid) At(c Coord) (*Cell, bool) {
	return g.CellAt(c.Row, c.Col)
}

// NeighborsOf returns the in-range 8-connected neighbors of cell in the
// fixed offset order. Obstacles are included; filtering is up to the caller.
// Complexity: O(1).
func (g *Grid) NeighborsOf(cell *Cell) []*Cell {
	out := make([]*Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if n, ok := g.CellAt(cell.Row+d[0], cell.Col+d[1]); ok {
			out = append(out, n)
		}
	}

	return out
}

// SetType changes the static type of the cell at c.
//
// Setting Start or End moves that marker: the previous holder reverts to
// None, so at most one start and one end exist. Overwriting a marker cell
// with another type clears the marker.
func (g *Grid) SetType(c Coord, t CellType) error {
	cell, ok := g.At(c)
	if !ok {
		return ErrOutOfRange
	}
	idx := g.Index(c)

	g.muMark.Lock()
	defer g.muMark.Unlock()

	if g.start == idx && t != Start {
		g.start = -1
	}
	if g.end == idx && t != End {
		g.end = -1
	}
	switch t {
	case Start:
		if g.start >= 0 && g.start != idx {
			g.cells[g.start].kind.Store(int32(None))
		}
		g.start = idx
	case End:
		if g.end >= 0 && g.end != idx {
			g.cells[g.end].kind.Store(int32(None))
		}
		g.end = idx
	}
	cell.kind.Store(int32(t))

	return nil
}

// ToggleObstacle flips the cell at c between None and Obstacle.
// START and END cells are refused with ErrMarkerProtected.
func (g *Grid) ToggleObstacle(c Coord) error {
	cell, ok := g.At(c)
	if !ok {
		return ErrOutOfRange
	}

	g.muMark.Lock()
	defer g.muMark.Unlock()

	switch cell.Type() {
	case Start, End:
		return ErrMarkerProtected
	case Obstacle:
		cell.kind.Store(int32(None))
	default:
		cell.kind.Store(int32(Obstacle))
	}

	return nil
}

// StartCoord returns the current start marker, if any.
func (g *Grid) StartCoord() (Coord, bool) {
	g.muMark.Lock()
	defer g.muMark.Unlock()
	if g.start < 0 {
		return Coord{}, false
	}

	return g.Coordinate(g.start), true
}

// EndCoord returns the current end marker, if any.
func (g *Grid) EndCoord() (Coord, bool) {
	g.muMark.Lock()
	defer g.muMark.Unlock()
	if g.end < 0 {
		return Coord{}, false
	}

	return g.Coordinate(g.end), true
}

// Obstacles returns the coordinates of all obstacle cells in index order.
func (g *Grid) Obstacles() []Coord {
	var out []Coord
	for i := range g.cells {
		if g.cells[i].IsObstacle() {
			out = append(out, g.cells[i].Coord())
		}
	}

	return out
}

// ResetSearchState clears visited flags and predecessors and sets every
// cost to +Inf. Static types are untouched.
// Complexity: O(size²).
func (g *Grid) ResetSearchState() {
	for i := range g.cells {
		g.cells[i].reset()
	}
}

// Acquire takes the exclusive search lease. The returned release func is
// idempotent. Returns ErrBusy if another search holds the lease.
func (g *Grid) Acquire() (release func(), err error) {
	if !g.lease.TryLock() {
		return nil, ErrBusy
	}
	var once sync.Once

	return func() { once.Do(g.lease.Unlock) }, nil
}
