package server

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/replan"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/trace"
)

var (
	// ErrTooLarge rejects grids above the configured size limit.
	ErrTooLarge = errors.New("server: grid too large")
	// ErrMissingEndpoint rejects requests without start or end.
	ErrMissingEndpoint = errors.New("server: start and end required")
)

// Request describes a search to run. Either Size or Layout sets the grid;
// Start and End override layout markers.
type Request struct {
	Strategy    string       `json:"strategy"`
	Size        int          `json:"size,omitempty"`
	Layout      []string     `json:"layout,omitempty"`
	Start       *grid.Coord  `json:"start,omitempty"`
	End         *grid.Coord  `json:"end,omitempty"`
	Obstacles   []grid.Coord `json:"obstacles,omitempty"`
	Disruptions []Disruption `json:"disruptions,omitempty"`
	MaxReplans  *int         `json:"max_replans,omitempty"`
}

// Disruption drops an obstacle on (Row,Col) before walk move Step.
type Disruption struct {
	Step int `json:"step"`
	Row  int `json:"row"`
	Col  int `json:"col"`
}

// Response is the body of POST /api/search.
type Response struct {
	Outcome engine.Outcome `json:"outcome"`
	Events  []trace.Event  `json:"events"`
	Error   string         `json:"error,omitempty"`
}

// Final is the last websocket message of a streamed search.
type Final struct {
	Outcome engine.Outcome `json:"outcome"`
	Error   string         `json:"error,omitempty"`
}

// run is a validated request bound to a fresh grid.
type run struct {
	strategy   engine.Strategy
	g          *grid.Grid
	start, end grid.Coord
	opts       []engine.Option
}

// prepare validates r and builds its grid. Start and end are passed to the
// engine as given, so out-of-range endpoints become an InvalidInput
// outcome rather than a request error.
func (r *Request) prepare(maxSize int) (*run, error) {
	strategy := scenario.DefaultStrategy
	if r.Strategy != "" {
		s, err := engine.ParseStrategy(r.Strategy)
		if err != nil {
			return nil, err
		}
		strategy = s
	}

	size := r.Size
	if r.Layout != nil {
		size = len(r.Layout)
	}
	if size > maxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, size, maxSize)
	}

	var (
		g   *grid.Grid
		err error
	)
	if r.Layout != nil {
		g, err = grid.FromLayout(r.Layout)
	} else {
		g, err = grid.New(size)
	}
	if err != nil {
		return nil, err
	}
	for _, c := range r.Obstacles {
		if err := g.SetType(c, grid.Obstacle); err != nil {
			return nil, fmt.Errorf("obstacle %s: %w", c, err)
		}
	}

	start, hasStart := g.StartCoord()
	if r.Start != nil {
		start, hasStart = *r.Start, true
	}
	end, hasEnd := g.EndCoord()
	if r.End != nil {
		end, hasEnd = *r.End, true
	}
	if !hasStart || !hasEnd {
		return nil, ErrMissingEndpoint
	}

	sc := &scenario.Scenario{Size: size}
	for _, d := range r.Disruptions {
		sc.Disruptions = append(sc.Disruptions, scenario.Disruption{
			Step: d.Step,
			At:   grid.Coord{Row: d.Row, Col: d.Col},
		})
	}
	maxReplans := replan.DefaultMaxReplans
	if r.MaxReplans != nil {
		maxReplans = *r.MaxReplans
	}

	return &run{
		strategy: strategy,
		g:        g,
		start:    start,
		end:      end,
		opts: []engine.Option{
			engine.WithMaxReplans(maxReplans),
			engine.WithBeforeMove(sc.MoveHook(g)),
		},
	}, nil
}
