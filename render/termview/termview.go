// Package termview paints a grid and its cell-status events on a tcell
// screen. Each cell is two columns wide and row 1 is the bottom line.
package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/trace"
)

// CellWidth is the number of screen columns per grid cell.
const CellWidth = 2

// Palette maps statuses to cell background colors.
type Palette map[trace.Status]tcell.Color

// DefaultPalette is the classic visualizer palette.
func DefaultPalette() Palette {
	return Palette{
		trace.Cleared:  tcell.ColorWhite,
		trace.Start:    tcell.ColorBlue,
		trace.Frontier: tcell.ColorYellow,
		trace.Explored: tcell.ColorOrange,
		trace.Path:     tcell.ColorGreen,
		trace.Current:  tcell.ColorBlue,
	}
}

// Static type colors.
var (
	ObstacleColor = tcell.ColorBlack
	StartColor    = tcell.ColorBlue
	EndColor      = tcell.ColorRed
)

// View implements trace.Observer on a tcell.Screen. Events only update the
// back buffer; call Show to flush.
type View struct {
	screen  tcell.Screen
	g       *grid.Grid
	x, y    int
	palette Palette
}

// New returns a View drawing g with its top-left corner at screen (x,y).
func New(screen tcell.Screen, g *grid.Grid, x, y int) *View {
	return &View{screen: screen, g: g, x: x, y: y, palette: DefaultPalette()}
}

// WithPalette replaces the palette; missing statuses fall back to the
// default.
func (v *View) WithPalette(p Palette) *View {
	merged := DefaultPalette()
	for k, c := range p {
		merged[k] = c
	}
	v.palette = merged

	return v
}

// Origin returns the screen position of the left column of cell c.
func (v *View) Origin(c grid.Coord) (x, y int) {
	return v.x + (c.Col-1)*CellWidth, v.y + v.g.Size() - c.Row
}

// Size returns the screen area the grid covers.
func (v *View) Size() (w, h int) {
	return v.g.Size() * CellWidth, v.g.Size()
}

// DrawGrid paints every cell by its static type.
func (v *View) DrawGrid() {
	n := v.g.Size()
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			coord := grid.Coord{Row: r, Col: c}
			v.fill(coord, v.baseColor(coord))
		}
	}
}

// OnCellStatus paints (row,col) with the palette color for status.
// Obstacles keep their color; out-of-range events are ignored.
func (v *View) OnCellStatus(row, col int, status trace.Status) {
	cell, ok := v.g.CellAt(row, col)
	if !ok || cell.IsObstacle() {
		return
	}
	color, ok := v.palette[status]
	if !ok {
		return
	}
	v.fill(cell.Coord(), color)
}

// Status writes msg on the line below the grid, clearing the rest of it.
func (v *View) Status(msg string) {
	w, h := v.screen.Size()
	row := v.y + v.g.Size() + 1
	if row >= h {
		return
	}
	col := v.x
	for _, r := range msg {
		if col >= w {
			break
		}
		v.screen.SetContent(col, row, r, nil, tcell.StyleDefault)
		col++
	}
	for ; col < w; col++ {
		v.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
	}
}

// Show flushes pending drawing to the terminal.
func (v *View) Show() { v.screen.Show() }

func (v *View) baseColor(c grid.Coord) tcell.Color {
	cell, _ := v.g.At(c)
	switch cell.Type() {
	case grid.Obstacle:
		return ObstacleColor
	case grid.Start:
		return StartColor
	case grid.End:
		return EndColor
	}

	return v.palette[trace.Cleared]
}

func (v *View) fill(c grid.Coord, color tcell.Color) {
	x, y := v.Origin(c)
	style := tcell.StyleDefault.Background(color).Foreground(color)
	for i := 0; i < CellWidth; i++ {
		v.screen.SetContent(x+i, y, ' ', nil, style)
	}
}
