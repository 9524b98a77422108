// Package trace carries the cell-status events a search reports to its
// observer, in the exact order the search produces them.
package trace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrUnknownStatus is returned when decoding an unrecognized status name.
var ErrUnknownStatus = errors.New("trace: unknown status")

// Status is the state a cell is painted with.
type Status int

const (
	// Cleared resets a cell to no status.
	Cleared Status = iota
	// Start marks the cell a search starts from.
	Start
	// Frontier marks a discovered, not yet finalized cell.
	Frontier
	// Explored marks a finalized cell.
	Explored
	// Path marks a cell on the reconstructed route.
	Path
	// Current marks the walker position during replanning walks.
	Current
)

var statusNames = [...]string{
	Cleared:  "none",
	Start:    "start",
	Frontier: "frontier",
	Explored: "explored",
	Path:     "path",
	Current:  "current",
}

// String returns the wire name of the status.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(statusNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, int(s))
	}

	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	name := string(b)
	for i, n := range statusNames {
		if n == name {
			*s = Status(i)
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownStatus, name)
}

// Event is a single cell-status change.
type Event struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Status Status `json:"status"`
}

// Coord returns the event cell.
func (e Event) Coord() grid.Coord { return grid.Coord{Row: e.Row, Col: e.Col} }

// String formats the event as "status(row,col)".
func (e Event) String() string {
	return fmt.Sprintf("%s(%d,%d)", e.Status, e.Row, e.Col)
}

// Observer receives cell-status changes.
type Observer interface {
	OnCellStatus(row, col int, status Status)
}

// Func adapts a plain callback to Observer.
type Func func(row, col int, status Status)

// OnCellStatus calls f.
func (f Func) OnCellStatus(row, col int, status Status) { f(row, col, status) }

// Discard drops every event.
var Discard Observer = Func(func(int, int, Status) {})

// Multi fans each event out to every observer, in argument order.
// Nil observers are skipped.
func Multi(observers ...Observer) Observer {
	list := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}

	return Func(func(row, col int, status Status) {
		for _, o := range list {
			o.OnCellStatus(row, col, status)
		}
	})
}

// Emit reports status for cell c to o.
func Emit(o Observer, c grid.Coord, status Status) {
	o.OnCellStatus(c.Row, c.Col, status)
}

// Recorder keeps every event in arrival order.
// The zero value is ready to use; it is not safe for concurrent use.
type Recorder struct {
	events []Event
}

// OnCellStatus appends the event.
func (r *Recorder) OnCellStatus(row, col int, status Status) {
	r.events = append(r.events, Event{Row: row, Col: col, Status: status})
}

// Events returns the recorded events. The slice is shared; do not modify.
func (r *Recorder) Events() []Event { return r.events }

// Len returns the number of recorded events.
func (r *Recorder) Len() int { return len(r.events) }

// Reset drops all recorded events.
func (r *Recorder) Reset() { r.events = r.events[:0] }

// Count returns how many events carry status.
func (r *Recorder) Count(status Status) int {
	n := 0
	for _, e := range r.events {
		if e.Status == status {
			n++
		}
	}

	return n
}

// Filter returns the cells reported with status, in arrival order.
func (r *Recorder) Filter(status Status) []grid.Coord {
	var out []grid.Coord
	for _, e := range r.events {
		if e.Status == status {
			out = append(out, e.Coord())
		}
	}

	return out
}

// Last returns the most recent status reported for c.
func (r *Recorder) Last(c grid.Coord) (Status, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if e := r.events[i]; e.Row == c.Row && e.Col == c.Col {
			return e.Status, true
		}
	}

	return Cleared, false
}
