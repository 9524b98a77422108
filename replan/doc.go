// Package replan walks a best-first plan cell by cell and replans when an
// obstacle appears ahead of the walker.
//
// What
//
//   - Walk moves along a route reporting trace.Current for the entered cell
//     and trace.Cleared for the cell left; before each move it checks the
//     next cell and stops with a Disruption if that cell is an obstacle.
//   - Controller chains searches and walks. On a Disruption it resets the
//     grid search state and runs a fresh best-first search from the last
//     valid cell toward the same goal.
//
// States
//
//	Searching → PathFound → Walking → DestinationReached
//	Walking → Disrupted → Searching
//	Searching → NoPathFound
//
//	DestinationReached and NoPathFound are terminal.
//
// Bounds
//
//	Replanning is iterative. WithMaxReplans(n) caps restarts (default
//	DefaultMaxReplans); the disruption that would need restart n+1 fails
//	the run with ErrReplanLimit.
//
// Obstacles during the walk
//
//	WithBeforeMove installs a hook called ahead of every move with the
//	1-based move number. A move blocked by a disruption is retried under
//	the same number by the next walk. Drivers use the hook to drop obstacles
//	onto the grid mid-walk; the controller never changes cell types itself.
//
// Errors
//
//   - ErrOptionViolation for invalid options, from New.
//   - bestfirst.ErrGridNil, bestfirst.ErrInvalidInput from New.
//   - ErrReplanLimit, context errors, path.ErrBrokenChain from Step.
package replan
