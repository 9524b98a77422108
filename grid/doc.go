// Package grid is the square cell model searched by the gridpath strategies.
//
// What:
//
//   - Grid holds size×size cells addressed by 1-based (row, col), stored
//     row-major at index (row-1)*size + (col-1).
//   - Each Cell carries a static CellType (None, Obstacle, Start, End) owned
//     by the caller, plus search-local state (Visited, Predecessor, GCost,
//     HCost, FCost) that every search resets.
//   - NeighborsOf enumerates the fixed 8-connected neighborhood.
//   - FromLayout / Layout convert to and from a text map.
//
// Why:
//
//   - Searches borrow the grid for one invocation through Acquire instead
//     of sharing ambient mutable state with a renderer.
//   - Obstacles may still be dropped while a search walks its path; cell
//     types are atomic, so this is race-free.
//
// Neighbor order:
//
//	(-1,0) (1,0) (0,-1) (0,1) (-1,-1) (-1,1) (1,-1) (1,1)
//
// The order only affects the order of reported events, never correctness.
//
// Complexity:
//
//   - CellAt, At, Index, Coordinate, InBounds: O(1).
//   - NeighborsOf: O(1), at most 8 cells.
//   - New, ResetSearchState, FromLayout, Layout: O(size²).
//
// Errors:
//
//   - ErrBadSize:         size < 1 (or an empty layout).
//   - ErrTooLarge:        size > MaxSize.
//   - ErrDuplicateMarker: layout with two S or two E glyphs.
//   - ErrOutOfRange:      coordinate outside the grid.
//   - ErrBusy:            lease already held.
//   - ErrNonSquare:       layout rows differ from the row count.
//   - ErrBadGlyph:        unknown layout character.
//   - ErrMarkerProtected: obstacle toggle on a start or end cell.
package grid
