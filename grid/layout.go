package grid

import (
	"fmt"
	"strings"
)

// Layout glyphs.
const (
	GlyphNone     = '.'
	GlyphObstacle = '#'
	GlyphStart    = 'S'
	GlyphEnd      = 'E'
)

// FromLayout builds a grid from a square text map, one string per row.
// The first line is the top row (row = size) and the last line is row 1,
// matching the upward row mapping. Surrounding whitespace on each line is
// ignored.
//
// Returns ErrBadSize for no lines, ErrTooLarge past MaxSize lines,
// ErrNonSquare if any line length differs from the line count,
// ErrBadGlyph for unknown glyphs and ErrDuplicateMarker for a second S or E.
func FromLayout(lines []string) (*Grid, error) {
	size := len(lines)
	g, err := New(size)
	if err != nil {
		return nil, err
	}
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if len(line) != size {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonSquare, i+1, len(line), size)
		}
		row := size - i
		for j, ch := range line {
			t, ok := typeOfGlyph(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at line %d col %d", ErrBadGlyph, ch, i+1, j+1)
			}
			if t == None {
				continue
			}
			c := Coord{Row: row, Col: j + 1}
			if seen, ok := marker(g, t); ok {
				return nil, fmt.Errorf("%w: %q at %s and %s", ErrDuplicateMarker, ch, seen, c)
			}
			if err := g.SetType(c, t); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Layout renders the static types back to the text form read by FromLayout.
func (g *Grid) Layout() []string {
	out := make([]string, 0, g.size)
	var b strings.Builder
	for row := g.size; row >= 1; row-- {
		b.Reset()
		for col := 1; col <= g.size; col++ {
			c, _ := g.CellAt(row, col)
			b.WriteRune(GlyphOf(c.Type()))
		}
		out = append(out, b.String())
	}

	return out
}

// GlyphOf returns the layout glyph for a cell type.
func GlyphOf(t CellType) rune {
	switch t {
	case Obstacle:
		return GlyphObstacle
	case Start:
		return GlyphStart
	case End:
		return GlyphEnd
	default:
		return GlyphNone
	}
}

// marker returns the coordinate already holding t when t is a marker type.
func marker(g *Grid, t CellType) (Coord, bool) {
	switch t {
	case Start:
		return g.StartCoord()
	case End:
		return g.EndCoord()
	}

	return Coord{}, false
}

func typeOfGlyph(ch rune) (CellType, bool) {
	switch ch {
	case GlyphNone:
		return None, true
	case GlyphObstacle:
		return Obstacle, true
	case GlyphStart:
		return Start, true
	case GlyphEnd:
		return End, true
	}

	return None, false
}
