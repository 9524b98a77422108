// Package textview renders a grid and the latest status of each cell as
// plain text, one line per row with the top row first.
//
//	#  obstacle        S  start marker, or a search origin
//	E  end marker      +  frontier
//	o  explored        *  path
//	@  walker          .  empty
package textview

import (
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/trace"
)

// Glyphs for statuses. Static cell types use the grid layout glyphs.
const (
	GlyphFrontier = '+'
	GlyphExplored = 'o'
	GlyphPath     = '*'
	GlyphCurrent  = '@'
)

// View is a trace.Observer keeping the last status per cell.
// It is not safe for concurrent use.
type View struct {
	g      *grid.Grid
	status []trace.Status
}

// New returns a View over g with every cell cleared.
func New(g *grid.Grid) *View {
	return &View{g: g, status: make([]trace.Status, g.Len())}
}

// OnCellStatus records status for (row,col); out-of-range events are
// ignored.
func (v *View) OnCellStatus(row, col int, status trace.Status) {
	if !v.g.InBounds(row, col) {
		return
	}
	v.status[v.g.Index(grid.Coord{Row: row, Col: col})] = status
}

// Reset clears every recorded status.
func (v *View) Reset() {
	for i := range v.status {
		v.status[i] = trace.Cleared
	}
}

// Glyph returns the character drawn for c.
//
// Obstacles always show as '#', and the walker shows over markers. Start
// and end markers show over search statuses, which never target them.
func (v *View) Glyph(c grid.Coord) rune {
	cell, ok := v.g.At(c)
	if !ok {
		return ' '
	}
	st := v.status[v.g.Index(c)]
	switch {
	case cell.IsObstacle():
		return grid.GlyphObstacle
	case st == trace.Current:
		return GlyphCurrent
	case cell.Type() == grid.Start || st == trace.Start:
		return grid.GlyphStart
	case cell.Type() == grid.End:
		return grid.GlyphEnd
	}
	switch st {
	case trace.Frontier:
		return GlyphFrontier
	case trace.Explored:
		return GlyphExplored
	case trace.Path:
		return GlyphPath
	}

	return grid.GlyphNone
}

// Lines renders the grid top row first.
func (v *View) Lines() []string {
	n := v.g.Size()
	lines := make([]string, 0, n)
	row := make([]rune, n)
	for r := n; r >= 1; r-- {
		for c := 1; c <= n; c++ {
			row[c-1] = v.Glyph(grid.Coord{Row: r, Col: c})
		}
		lines = append(lines, string(row))
	}

	return lines
}

// String renders the grid with a trailing newline per row.
func (v *View) String() string {
	var b strings.Builder
	for _, line := range v.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

// Render writes String to w.
func (v *View) Render(w io.Writer) error {
	_, err := io.WriteString(w, v.String())
	return err
}
