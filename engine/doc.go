// Package engine is the single entry point for running a grid search: it
// selects a strategy, validates input, takes exclusive use of the grid and
// reports progress as cell-status events.
//
// Strategies
//
//   - BFS        fewest-step route; the search stops at reconstruction.
//   - BestFirst  Euclidean best-first search whose plan is then walked by
//     the replanning controller, restarting around obstacles that appear
//     ahead of the walker.
//
// Driving
//
//	RunSearch runs to completion and pushes events to an Observer.
//	NewStepper returns a pull iterator yielding one event per Next call;
//	drivers that animate a view sleep between calls. Neither spawns
//	goroutines.
//
// Outcomes and faults
//
//	InvalidInput and NoPathFound are outcomes with a nil error. Errors mean
//	a fault: a busy grid, an exhausted replan budget, a cancelled context or
//	a corrupted predecessor chain. Faults still return the partial Outcome.
//
// Logging
//
//	Pass WithLogger to receive a debug entry per run on a logrus logger;
//	the default logger discards.
//
// Example
//
//	g, _ := grid.New(3)
//	out, err := engine.RunSearch(ctx, engine.BFS, g,
//	    grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 3, Col: 3},
//	    trace.Func(paint))
package engine
