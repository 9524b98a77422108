// Package gridpath is a step-by-step pathfinding engine for square grids,
// built so that every decision a search makes can be watched while it runs.
//
// What is gridpath?
//
//	A small, context-aware library that brings together:
//		• Grid model: 1-based coordinates, 8-connected neighbours, markers & obstacles
//		• Traversals: breadth-first search (unweighted, shortest by steps)
//		• Heuristic search: best-first with Euclidean guidance and unit step cost
//		• Replanning: walk the found route, re-search when the way gets blocked
//		• Event stream: every status change (start, frontier, explored, path, current)
//
// Why choose gridpath?
//
//   - Resumable – every search is a state machine advanced one Step at a time
//   - Observable – a single Observer callback receives an ordered event stream
//   - Safe – one search per grid at a time, enforced by a lease
//   - Scriptable – HCL scenarios, a terminal view and a WebSocket API
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/        Grid, Cell & Coord types, layouts, neighbour expansion, leases
//	trace/       Status values, Event, Observer & Recorder
//	path/        predecessor-chain reconstruction and path checks
//	bfs/         breadth-first Walker
//	bestfirst/   best-first Walker over a binary-heap open set
//	replan/      Controller that alternates searching and walking
//	engine/      RunSearch entry point, Outcome & Stepper
//	scenario/    HCL scenario files
//	render/      text and tcell terminal views
//	server/      HTTP and WebSocket API
//
// Quick ASCII example (S start, E end, # obstacle, * path):
//
//	. . . . E
//	. # # * .
//	. # * # .
//	. * . . .
//	S . . . .
//
//	go run ./cmd/gridpath scenario/testdata/maze.hcl
package gridpath
