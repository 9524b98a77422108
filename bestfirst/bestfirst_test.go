package bestfirst_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bestfirst"
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

func TestEuclidean(t *testing.T) {
	assert.Equal(t, 0.0, bestfirst.Euclidean(at(2, 2), at(2, 2)))
	assert.Equal(t, 5.0, bestfirst.Euclidean(at(1, 1), at(4, 5)))
	assert.InDelta(t, math.Sqrt2, bestfirst.Euclidean(at(3, 3), at(2, 2)), 1e-12)
}

func TestSearch_Errors(t *testing.T) {
	_, err := bestfirst.Search(nil, at(1, 1), at(1, 1))
	assert.ErrorIs(t, err, bestfirst.ErrGridNil)

	g := newGrid(t, 3)
	var rec trace.Recorder
	_, err = bestfirst.Search(g, at(1, 1), at(3, 4), bestfirst.WithObserver(&rec))
	assert.ErrorIs(t, err, bestfirst.ErrInvalidInput)
	_, err = bestfirst.Search(g, at(0, 0), at(3, 3), bestfirst.WithObserver(&rec))
	assert.ErrorIs(t, err, bestfirst.ErrInvalidInput)
	assert.Zero(t, rec.Len())
}

// TestSearch_ThreeByThreeDiagonal pins the event stream: the diagonal
// (2,2) has the lowest FCost after the start and leads straight to the goal.
func TestSearch_ThreeByThreeDiagonal(t *testing.T) {
	g := newGrid(t, 3)
	var rec trace.Recorder

	res, err := bestfirst.Search(g, at(1, 1), at(3, 3), bestfirst.WithObserver(&rec))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []grid.Coord{at(1, 1), at(2, 2), at(3, 3)}, res.Path)
	assert.Equal(t, 2.0, res.Cost)
	assert.Equal(t, 2, res.Expanded)

	ev := func(r, c int, s trace.Status) trace.Event { return trace.Event{Row: r, Col: c, Status: s} }
	assert.Equal(t, []trace.Event{
		ev(1, 1, trace.Start),
		ev(2, 1, trace.Frontier), ev(1, 2, trace.Frontier), ev(2, 2, trace.Frontier),
		ev(2, 2, trace.Explored),
		ev(3, 2, trace.Frontier), ev(2, 3, trace.Frontier), ev(1, 3, trace.Frontier), ev(3, 1, trace.Frontier),
		ev(2, 2, trace.Path),
	}, rec.Events())
}

func TestSearch_StartIsEnd(t *testing.T) {
	g := newGrid(t, 2)
	var rec trace.Recorder

	res, err := bestfirst.Search(g, at(1, 2), at(1, 2), bestfirst.WithObserver(&rec))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []grid.Coord{at(1, 2)}, res.Path)
	assert.Equal(t, 1, rec.Len())
}

func TestSearch_Unreachable(t *testing.T) {
	g, err := grid.FromLayout([]string{
		"..#E",
		"..##",
		"....",
		"S...",
	})
	require.NoError(t, err)
	start, _ := g.StartCoord()
	end, _ := g.EndCoord()

	var rec trace.Recorder
	res, err := bestfirst.Search(g, start, end, bestfirst.WithObserver(&rec))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Zero(t, rec.Count(trace.Path))
	// 16 cells − 3 obstacles − end
	assert.Equal(t, 12, res.Expanded)
	assert.Len(t, rec.Filter(trace.Explored), 11)
}

// TestSearch_AgainstBFS compares best-first with BFS on random maps: both
// agree on reachability, best-first never beats BFS, and the zero heuristic
// matches BFS exactly.
func TestSearch_AgainstBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	zero := bestfirst.WithHeuristic(func(_, _ grid.Coord) float64 { return 0 })
	const n = 14

	for trial := 0; trial < 50; trial++ {
		g := newGrid(t, n)
		for i := 0; i < n*n/3; i++ {
			c := at(rng.Intn(n)+1, rng.Intn(n)+1)
			if c == at(1, 1) || c == at(n, n) {
				continue
			}
			require.NoError(t, g.SetType(c, grid.Obstacle))
		}

		want, err := bfs.Search(g, at(1, 1), at(n, n))
		require.NoError(t, err)

		var rec trace.Recorder
		got, err := bestfirst.Search(g, at(1, 1), at(n, n), bestfirst.WithObserver(&rec))
		require.NoError(t, err)
		require.Equal(t, want.Found, got.Found, "trial %d", trial)

		exact, err := bestfirst.Search(g, at(1, 1), at(n, n), zero)
		require.NoError(t, err)

		if !want.Found {
			continue
		}
		assert.NoError(t, path.Verify(g, got.Path), "trial %d", trial)
		assert.GreaterOrEqual(t, got.Steps(), want.Steps(), "trial %d", trial)
		assert.Equal(t, float64(got.Steps()), got.Cost)
		assert.Equal(t, want.Steps(), exact.Steps(), "trial %d", trial)

		frontier := map[grid.Coord]int{}
		for _, c := range rec.Filter(trace.Frontier) {
			frontier[c]++
		}
		for c, k := range frontier {
			assert.Equal(t, 1, k, "trial %d: %s entered the open set %d times", trial, c, k)
		}
	}
}

func TestWalker_Step(t *testing.T) {
	g := newGrid(t, 6)
	w, err := bestfirst.New(g, at(6, 1), at(1, 6))
	require.NoError(t, err)

	for i := 0; !w.Done(); i++ {
		require.Less(t, i, g.Len()+1, "walker must terminate")
		_, err := w.Step()
		require.NoError(t, err)
	}
	res := w.Result()
	require.True(t, res.Found)
	assert.Equal(t, 5, res.Steps())

	done, err := w.Step()
	assert.True(t, done)
	assert.NoError(t, err)
}

func TestSearch_Cancelled(t *testing.T) {
	g := newGrid(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := bestfirst.Search(g, at(1, 1), at(5, 5), bestfirst.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.False(t, res.Found)
}
