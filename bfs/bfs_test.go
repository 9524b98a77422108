package bfs_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/path"
	"github.com/katalvlaran/gridpath/trace"
)

func at(row, col int) grid.Coord { return grid.Coord{Row: row, Col: col} }

func newGrid(t *testing.T, n int) *grid.Grid {
	t.Helper()
	g, err := grid.New(n)
	require.NoError(t, err)
	return g
}

// TestSearch_Errors verifies that invalid inputs are rejected without events.
func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(nil, at(1, 1), at(1, 1))
	assert.ErrorIs(t, err, bfs.ErrGridNil)

	g := newGrid(t, 3)
	var rec trace.Recorder
	for _, tc := range []struct{ start, end grid.Coord }{
		{at(0, 1), at(3, 3)},
		{at(1, 1), at(4, 3)},
		{at(1, 1), at(3, -1)},
	} {
		res, err := bfs.Search(g, tc.start, tc.end, bfs.WithObserver(&rec))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, bfs.ErrInvalidInput)
	}
	assert.Zero(t, rec.Len(), "invalid input must not emit events")
}

// TestSearch_ThreeByThreeDiagonal pins the full event stream of the
// 3×3 (1,1)→(3,3) open grid.
func TestSearch_ThreeByThreeDiagonal(t *testing.T) {
	g := newGrid(t, 3)
	var rec trace.Recorder

	res, err := bfs.Search(g, at(1, 1), at(3, 3), bfs.WithObserver(&rec))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []grid.Coord{at(1, 1), at(2, 2), at(3, 3)}, res.Path)
	assert.Equal(t, 2, res.Steps())

	ev := func(r, c int, s trace.Status) trace.Event { return trace.Event{Row: r, Col: c, Status: s} }
	assert.Equal(t, []trace.Event{
		ev(1, 1, trace.Start),
		ev(2, 1, trace.Frontier), ev(1, 2, trace.Frontier), ev(2, 2, trace.Frontier),
		ev(3, 1, trace.Frontier), ev(3, 2, trace.Frontier), ev(2, 1, trace.Explored),
		ev(1, 3, trace.Frontier), ev(2, 3, trace.Frontier), ev(1, 2, trace.Explored),
		ev(2, 2, trace.Explored),
		ev(3, 1, trace.Explored),
		ev(3, 2, trace.Explored),
		ev(1, 3, trace.Explored),
		ev(2, 3, trace.Explored),
		ev(2, 2, trace.Path),
	}, rec.Events())
	assert.Equal(t, 7, res.Explored)
}

func TestSearch_StartIsEnd(t *testing.T) {
	g := newGrid(t, 4)
	var rec trace.Recorder

	res, err := bfs.Search(g, at(2, 3), at(2, 3), bfs.WithObserver(&rec))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []grid.Coord{at(2, 3)}, res.Path)
	assert.Zero(t, rec.Count(trace.Frontier))
	assert.Zero(t, rec.Count(trace.Path))
	assert.Equal(t, []trace.Event{{Row: 2, Col: 3, Status: trace.Start}}, rec.Events())
}

// TestSearch_EnclosedGoal walls off the end cell and checks every reachable
// ordinary cell is explored exactly once.
//
//	...#E  row 5
//	...##  row 4
//	.....  row 3
//	.S...  row 2
//	.....  row 1
func TestSearch_EnclosedGoal(t *testing.T) {
	g, err := grid.FromLayout([]string{
		"...#E",
		"...##",
		".....",
		".S...",
		".....",
	})
	require.NoError(t, err)
	start, _ := g.StartCoord()
	end, _ := g.EndCoord()

	var rec trace.Recorder
	res, err := bfs.Search(g, start, end, bfs.WithObserver(&rec))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Zero(t, rec.Count(trace.Path))

	explored := rec.Filter(trace.Explored)
	seen := map[grid.Coord]int{}
	for _, c := range explored {
		seen[c]++
	}
	// 25 cells − 3 obstacles − end − start
	assert.Len(t, explored, 20)
	for c, n := range seen {
		assert.Equal(t, 1, n, "cell %s explored %d times", c, n)
		assert.NotEqual(t, start, c)
	}
}

// TestSearch_ChebyshevOnOpenGrids checks BFS optimality on obstacle-free grids.
func TestSearch_ChebyshevOnOpenGrids(t *testing.T) {
	for n := 1; n <= 6; n++ {
		g := newGrid(t, n)
		for _, s := range []grid.Coord{at(1, 1), at(n, 1), at((n+1)/2, n)} {
			for _, e := range []grid.Coord{at(n, n), at(1, n), at(1, 1), at(n/2+1, n/2+1)} {
				res, err := bfs.Search(g, s, e)
				require.NoError(t, err)
				require.True(t, res.Found, "n=%d %s→%s", n, s, e)
				assert.Equal(t, path.Chebyshev(s, e), res.Steps(), "n=%d %s→%s", n, s, e)
				assert.NoError(t, path.Verify(g, res.Path))
			}
		}
	}
}

// TestSearch_RandomObstacles checks that no obstacle ever lies on a route
// and no cell is explored twice.
func TestSearch_RandomObstacles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 12
	for trial := 0; trial < 40; trial++ {
		g := newGrid(t, n)
		for i := 0; i < n*n/3; i++ {
			c := at(rng.Intn(n)+1, rng.Intn(n)+1)
			if c == at(1, 1) || c == at(n, n) {
				continue
			}
			require.NoError(t, g.SetType(c, grid.Obstacle))
		}

		var rec trace.Recorder
		res, err := bfs.Search(g, at(1, 1), at(n, n), bfs.WithObserver(&rec))
		require.NoError(t, err)
		if res.Found {
			assert.NoError(t, path.Verify(g, res.Path), "trial %d", trial)
			assert.GreaterOrEqual(t, res.Steps(), n-1)
		}

		seen := map[grid.Coord]bool{}
		for _, c := range rec.Filter(trace.Explored) {
			assert.False(t, seen[c], "trial %d: %s explored twice", trial, c)
			seen[c] = true
		}
		assert.LessOrEqual(t, len(seen), n*n-len(g.Obstacles()))
	}
}

func TestWalker_StepAndDepths(t *testing.T) {
	g := newGrid(t, 5)
	var depths []int
	w, err := bfs.New(g, at(1, 1), at(5, 5),
		bfs.WithOnDequeue(func(_ grid.Coord, d int) { depths = append(depths, d) }),
	)
	require.NoError(t, err)

	steps := 0
	for !w.Done() {
		_, err := w.Step()
		require.NoError(t, err)
		steps++
	}
	assert.True(t, w.Result().Found)
	assert.Equal(t, len(w.Result().Order), steps)
	for i := 1; i < len(depths); i++ {
		assert.LessOrEqual(t, depths[i-1], depths[i], "depths must be non-decreasing")
	}

	// further steps are no-ops
	done, err := w.Step()
	assert.True(t, done)
	assert.NoError(t, err)
}

func TestSearch_Cancelled(t *testing.T) {
	g := newGrid(t, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := bfs.Search(g, at(1, 1), at(8, 8), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.False(t, res.Found)
}

func TestSearch_DetourThroughGap(t *testing.T) {
	// wall with a single gap forces a detour through (3,4)
	g, err := grid.FromLayout([]string{
		"E....",
		".....",
		"###.#",
		".....",
		"....S",
	})
	require.NoError(t, err)
	start, _ := g.StartCoord()
	end, _ := g.EndCoord()

	res, err := bfs.Search(g, start, end)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Contains(t, res.Path, at(3, 4))
	assert.NoError(t, path.Verify(g, res.Path))
}
