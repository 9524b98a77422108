package bfs_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkSearch_OpenGrid measures BFS corner to corner on an empty N×N grid.
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
		_, _ = bfs.Search(g, start, end)
	}
}

// BenchmarkSearch_Unreachable explores the whole grid with the goal walled off.
func BenchmarkSearch_Unreachable(b *testing.B) {
	const n = 200
	g, err := grid.New(n)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	for _, c := range []grid.Coord{{Row: n - 1, Col: n}, {Row: n, Col: n - 1}, {Row: n - 1, Col: n - 1}} {
		_ = g.SetType(c, grid.Obstacle)
	}
	start, end := grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: n, Col: n}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, start, end)
	}
}
