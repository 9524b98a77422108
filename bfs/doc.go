// Package bfs provides breadth-first search over a grid.Grid, returning the
// fewest-step route under 8-connectivity and reporting the search as an
// ordered stream of cell-status events.
//
// What
//
//   - FIFO search from a start coordinate to an end coordinate.
//   - Obstacles are impassable; a cell is enqueued at most once.
//   - Events, in emission order:
//   - trace.Start    for the start cell when the search is created
//   - trace.Frontier for each newly discovered passable neighbor
//   - trace.Explored for each dequeued cell, after its neighbors
//   - trace.Path     for each intermediate route cell, goal→start order
//   - Start and end identities never receive Frontier or Explored.
//
// Why
//
//   - All moves cost one step, so BFS returns a shortest route in edge
//     count; on an empty grid that is the Chebyshev distance.
//
// Stepping
//
//	New returns a Walker whose Step performs one dequeue. Drivers that pace
//	a visualization call Step between frames; Search simply loops.
//
// Outcomes
//
//	An unreachable end is Result.Found == false, never an error. Invalid
//	coordinates return ErrInvalidInput before any event is emitted.
//
// Complexity (N = size²)
//
//   - Time:   O(N)   (each cell enqueued once, at most 8 neighbors each)
//   - Memory: O(N)   (queue and per-cell state)
//
// Usage
//
//	res, err := bfs.Search(g, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 3, Col: 3},
//	    bfs.WithContext(ctx),
//	    bfs.WithObserver(trace.Func(paint)),
//	)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrInvalidInput     if start or end is outside the grid.
//   - context errors      if the context is done at a step boundary.
//   - path.ErrBrokenChain (wrapped) on a corrupted predecessor chain.
package bfs
