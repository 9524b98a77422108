package bestfirst_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/bestfirst"
	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkSearch_OpenGrid measures best-first corner to corner on an empty
// N×N grid, where the heuristic keeps expansion close to the diagonal.
func BenchmarkSearch_OpenGrid(b *testing.B) {
	const n = 200
	g, err := grid.New(n)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	start, end := grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: n, Col: n}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bestfirst.Search(g, start, end)
	}
}

// BenchmarkSearch_Wall forces a detour around a wall spanning most of the grid.
func BenchmarkSearch_Wall(b *testing.B) {
	const n = 200
	g, err := grid.New(n)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	for col := 1; col < n; col++ {
		_ = g.SetType(grid.Coord{Row: n / 2, Col: col}, grid.Obstacle)
	}
	start, end := grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: n, Col: 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bestfirst.Search(g, start, end)
	}
}
