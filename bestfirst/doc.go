// Package bestfirst implements cost-ordered best-first search over a
// grid.Grid: an A*-shaped expansion with a Euclidean heuristic and a
// uniform step cost of one.
//
// What
//
//   - Open set ordered by FCost = GCost + HCost, lowest first.
//   - GCost counts steps; every move (orthogonal or diagonal) costs 1.
//   - HCost is the Euclidean distance to the end cell.
//   - An open cell reached more cheaply is re-parented and reordered in
//     place; finalized cells are never reopened.
//   - Events, in emission order:
//   - trace.Start    for the start cell when the search is created
//   - trace.Frontier when a passable cell first enters the open set
//   - trace.Explored when a cell is extracted and finalized
//   - trace.Path     for each intermediate route cell, goal→start order
//
// Why approximate
//
//	Euclidean distance exceeds the step count along diagonals-plus-straights
//	(it is not admissible for unit diagonal cost), so the route may be longer
//	than the BFS route. It is always a valid, obstacle-free, 8-connected
//	route. WithHeuristic(func(a, b grid.Coord) float64 { return 0 }) turns the
//	walker into uniform-cost search, which is exact.
//
// Ties
//
//	Equal FCost prefers the lower HCost, then earlier insertion. The order is
//	deterministic but not part of the contract.
//
// Complexity (N = size²)
//
//   - Time:   O(N log N)  (each push, pop and Fix is O(log N))
//   - Memory: O(N)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrInvalidInput     if start or end is outside the grid.
//   - context errors      if the context is done at a step boundary.
//   - path.ErrBrokenChain (wrapped) on a corrupted predecessor chain.
package bestfirst
