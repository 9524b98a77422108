package engine

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Kind classifies how a run ended.
type Kind int

const (
	// NoPathFound means the end cell is unreachable. It is a result, not
	// a fault.
	NoPathFound Kind = iota
	// PathFound means a route exists; for BestFirst it was also walked.
	PathFound
	// InvalidInput means start or end was missing or outside the grid.
	// No event was emitted.
	InvalidInput
)

var kindNames = [...]string{
	NoPathFound:  "no-path-found",
	PathFound:    "path-found",
	InvalidInput: "invalid-input",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}

	return fmt.Errorf("engine: unknown outcome kind %q", b)
}

// Outcome is the result of one run.
type Outcome struct {
	Kind     Kind     `json:"kind"`
	Strategy Strategy `json:"strategy,omitempty"`
	// Path is the found route, start→end; set only for PathFound. For
	// BestFirst it is the last plan.
	Path []grid.Coord `json:"path,omitempty"`
	// Route lists the cells walked by BestFirst, origin first.
	Route []grid.Coord `json:"route,omitempty"`
	// Replans counts BestFirst restarts after disruptions.
	Replans int `json:"replans"`
	// Disruptions holds the cell each disrupted walk stopped at.
	Disruptions []grid.Coord `json:"disruptions,omitempty"`
	// Explored counts trace.Explored events.
	Explored int `json:"explored"`
	// Reason explains InvalidInput.
	Reason string `json:"reason,omitempty"`
}

// Steps returns the edge count of Path.
func (o Outcome) Steps() int {
	if len(o.Path) == 0 {
		return 0
	}

	return len(o.Path) - 1
}

func invalid(s Strategy, format string, args ...interface{}) Outcome {
	return Outcome{Kind: InvalidInput, Strategy: s, Reason: fmt.Sprintf(format, args...)}
}

// validate checks both coordinates against g and returns the InvalidInput
// outcome for the first one out of range.
func validate(s Strategy, g *grid.Grid, start, end grid.Coord) (Outcome, bool) {
	if !g.InBounds(start.Row, start.Col) {
		return invalid(s, "start %s outside %dx%d grid", start, g.Size(), g.Size()), false
	}
	if !g.InBounds(end.Row, end.Col) {
		return invalid(s, "end %s outside %dx%d grid", end, g.Size(), g.Size()), false
	}

	return Outcome{}, true
}
