package trace_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/trace"
)

func TestStatus_TextRoundTrip(t *testing.T) {
	for _, s := range []trace.Status{trace.Cleared, trace.Start, trace.Frontier, trace.Explored, trace.Path, trace.Current} {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var back trace.Status
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, s, back)
	}

	var s trace.Status
	assert.ErrorIs(t, s.UnmarshalText([]byte("purple")), trace.ErrUnknownStatus)
	_, err := trace.Status(42).MarshalText()
	assert.ErrorIs(t, err, trace.ErrUnknownStatus)
	assert.Equal(t, "Status(42)", trace.Status(42).String())
}

func TestEvent_JSON(t *testing.T) {
	b, err := json.Marshal(trace.Event{Row: 2, Col: 3, Status: trace.Frontier})
	require.NoError(t, err)
	assert.JSONEq(t, `{"row":2,"col":3,"status":"frontier"}`, string(b))

	var e trace.Event
	require.NoError(t, json.Unmarshal([]byte(`{"row":1,"col":1,"status":"path"}`), &e))
	assert.Equal(t, trace.Event{Row: 1, Col: 1, Status: trace.Path}, e)
	assert.Equal(t, "path(1,1)", e.String())
}

func TestRecorder_OrderAndQueries(t *testing.T) {
	var r trace.Recorder
	trace.Emit(&r, grid.Coord{Row: 1, Col: 1}, trace.Start)
	r.OnCellStatus(1, 2, trace.Frontier)
	r.OnCellStatus(1, 2, trace.Explored)
	r.OnCellStatus(2, 2, trace.Frontier)

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 2, r.Count(trace.Frontier))
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 2}}, r.Filter(trace.Frontier))

	last, ok := r.Last(grid.Coord{Row: 1, Col: 2})
	require.True(t, ok)
	assert.Equal(t, trace.Explored, last)
	_, ok = r.Last(grid.Coord{Row: 3, Col: 3})
	assert.False(t, ok)

	r.Reset()
	assert.Zero(t, r.Len())
}

func TestMulti_FansOutInOrder(t *testing.T) {
	var a, b trace.Recorder
	var seen []string
	tag := trace.Func(func(row, col int, s trace.Status) { seen = append(seen, s.String()) })

	m := trace.Multi(&a, nil, tag, &b)
	m.OnCellStatus(1, 1, trace.Start)
	m.OnCellStatus(1, 2, trace.Path)

	assert.Equal(t, a.Events(), b.Events())
	assert.Equal(t, []string{"start", "path"}, seen)
	trace.Discard.OnCellStatus(1, 1, trace.Start)
}
