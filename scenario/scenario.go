// Package scenario loads search scenarios from HCL files: the grid, its
// start and end markers, static obstacles, the strategy, and obstacles
// dropped onto the grid while a best-first walk is underway.
//
// Coordinates may use the variable size and the functions min and max, so
// a scenario can address the far corner as
//
//	end {
//	  row = size
//	  col = size
//	}
package scenario

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/replan"
)

var (
	// ErrNoStart indicates a scenario without a start cell.
	ErrNoStart = errors.New("scenario: no start cell")
	// ErrNoEnd indicates a scenario without an end cell.
	ErrNoEnd = errors.New("scenario: no end cell")
	// ErrNoSize indicates neither size nor layout was given.
	ErrNoSize = errors.New("scenario: size or layout required")
	// ErrSizeMismatch indicates a size attribute disagreeing with layout.
	ErrSizeMismatch = errors.New("scenario: size does not match layout")
	// ErrBadDelay indicates an unparsable delay attribute.
	ErrBadDelay = errors.New("scenario: invalid delay")
)

// DefaultStrategy is used when the file names none.
const DefaultStrategy = engine.BestFirst

// Disruption drops an obstacle on At before walk move Step.
type Disruption struct {
	Step int
	At   grid.Coord
}

// Scenario is a decoded scenario file.
type Scenario struct {
	Name        string
	Size        int
	Strategy    engine.Strategy
	Delay       time.Duration
	MaxReplans  int
	Layout      []string
	Start, End  *grid.Coord
	Obstacles   []grid.Coord
	Disruptions []Disruption
}

// header is decoded first so size is known before the rest of the body is
// evaluated.
var header = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "size"},
		{Name: "layout"},
	},
}

type coordBlock struct {
	Row int `hcl:"row"`
	Col int `hcl:"col"`
}

func (c coordBlock) coord() grid.Coord { return grid.Coord{Row: c.Row, Col: c.Col} }

type disruptionBlock struct {
	Step int `hcl:"step"`
	Row  int `hcl:"row"`
	Col  int `hcl:"col"`
}

type hclBody struct {
	Strategy    *string           `hcl:"strategy,optional"`
	Delay       *string           `hcl:"delay,optional"`
	MaxReplans  *int              `hcl:"max_replans,optional"`
	Start       *coordBlock       `hcl:"start,block"`
	End         *coordBlock       `hcl:"end,block"`
	Obstacles   []coordBlock      `hcl:"obstacle,block"`
	Disruptions []disruptionBlock `hcl:"disruption,block"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	return Parse(src, path)
}

// Parse decodes HCL source. filename is used in diagnostics and as Name.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", filename, diags)
	}

	content, remain, diags := file.Body.PartialContent(header)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", filename, diags)
	}

	sc := &Scenario{Name: filename, Strategy: DefaultStrategy, MaxReplans: replan.DefaultMaxReplans}
	if attr, ok := content.Attributes["layout"]; ok {
		if diags := gohcl.DecodeExpression(attr.Expr, nil, &sc.Layout); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode layout in %s: %w", filename, diags)
		}
		sc.Size = len(sc.Layout)
	}
	if attr, ok := content.Attributes["size"]; ok {
		var size int
		if diags := gohcl.DecodeExpression(attr.Expr, nil, &size); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode size in %s: %w", filename, diags)
		}
		if sc.Layout != nil && size != len(sc.Layout) {
			return nil, fmt.Errorf("%w: size %d, layout has %d rows", ErrSizeMismatch, size, len(sc.Layout))
		}
		sc.Size = size
	}
	if sc.Size == 0 {
		return nil, ErrNoSize
	}

	var body hclBody
	if diags := gohcl.DecodeBody(remain, evalContext(sc.Size), &body); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", filename, diags)
	}
	if err := sc.apply(&body); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", filename, err)
	}

	return sc, nil
}

// evalContext exposes size and a few numeric helpers to expressions.
func evalContext(size int) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"size": cty.NumberIntVal(int64(size)),
		},
		Functions: map[string]function.Function{
			"min": stdlib.MinFunc,
			"max": stdlib.MaxFunc,
		},
	}
}

func (sc *Scenario) apply(b *hclBody) error {
	if b.Strategy != nil {
		s, err := engine.ParseStrategy(*b.Strategy)
		if err != nil {
			return err
		}
		sc.Strategy = s
	}
	if b.Delay != nil {
		d, err := time.ParseDuration(*b.Delay)
		if err != nil || d < 0 {
			return fmt.Errorf("%w: %q", ErrBadDelay, *b.Delay)
		}
		sc.Delay = d
	}
	if b.MaxReplans != nil {
		sc.MaxReplans = *b.MaxReplans
	}
	if b.Start != nil {
		c := b.Start.coord()
		sc.Start = &c
	}
	if b.End != nil {
		c := b.End.coord()
		sc.End = &c
	}
	for _, o := range b.Obstacles {
		sc.Obstacles = append(sc.Obstacles, o.coord())
	}
	for _, d := range b.Disruptions {
		sc.Disruptions = append(sc.Disruptions, Disruption{
			Step: d.Step,
			At:   grid.Coord{Row: d.Row, Col: d.Col},
		})
	}

	return nil
}

// Build creates the grid: the layout (if any), then explicit start and end
// blocks, then obstacle blocks.
// Returns ErrNoStart or ErrNoEnd when a marker is missing and
// grid.ErrOutOfRange or grid.ErrMarkerProtected (wrapped) for bad cells.
func (sc *Scenario) Build() (*grid.Grid, error) {
	var (
		g   *grid.Grid
		err error
	)
	if sc.Layout != nil {
		g, err = grid.FromLayout(sc.Layout)
	} else {
		g, err = grid.New(sc.Size)
	}
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	if sc.Start != nil {
		if err := g.SetType(*sc.Start, grid.Start); err != nil {
			return nil, fmt.Errorf("scenario %s: start %s: %w", sc.Name, *sc.Start, err)
		}
	}
	if sc.End != nil {
		if err := g.SetType(*sc.End, grid.End); err != nil {
			return nil, fmt.Errorf("scenario %s: end %s: %w", sc.Name, *sc.End, err)
		}
	}
	for _, c := range sc.Obstacles {
		if err := placeObstacle(g, c); err != nil {
			return nil, fmt.Errorf("scenario %s: obstacle %s: %w", sc.Name, c, err)
		}
	}

	if _, ok := g.StartCoord(); !ok {
		return nil, ErrNoStart
	}
	if _, ok := g.EndCoord(); !ok {
		return nil, ErrNoEnd
	}

	return g, nil
}

// MoveHook returns a hook dropping each disruption on g once, before the
// first walk move numbered at least its Step. Disruptions aimed at start or
// end markers, or at a cell the walker has already stood on, are ignored:
// those cells belong to the reported route.
func (sc *Scenario) MoveHook(g *grid.Grid) replan.MoveHook {
	pending := append([]Disruption(nil), sc.Disruptions...)
	trail := make(map[grid.Coord]struct{})

	return func(step int, at, _ grid.Coord) {
		trail[at] = struct{}{}
		kept := pending[:0]
		for _, d := range pending {
			if step < d.Step {
				kept = append(kept, d)
				continue
			}
			if _, walked := trail[d.At]; walked {
				continue
			}
			_ = placeObstacle(g, d.At)
		}
		pending = kept
	}
}

// EngineOptions returns the engine options the scenario implies for g.
func (sc *Scenario) EngineOptions(g *grid.Grid) []engine.Option {
	return []engine.Option{
		engine.WithMaxReplans(sc.MaxReplans),
		engine.WithBeforeMove(sc.MoveHook(g)),
	}
}

func placeObstacle(g *grid.Grid, c grid.Coord) error {
	cell, ok := g.At(c)
	if !ok {
		return grid.ErrOutOfRange
	}
	switch cell.Type() {
	case grid.Start, grid.End:
		return grid.ErrMarkerProtected
	}

	return g.SetType(c, grid.Obstacle)
}
