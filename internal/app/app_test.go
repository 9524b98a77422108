package app

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	c, err := NewConfig(cfg)
	require.NoError(t, err)
	var out, logs bytes.Buffer
	return NewApp(&out, &logs, c), &out, &logs
}

func TestNewConfig(t *testing.T) {
	c, err := NewConfig(Config{ScenarioPath: "x.hcl"})
	require.NoError(t, err)
	assert.Equal(t, ViewText, c.View)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)

	for name, bad := range map[string]Config{
		"empty":    {},
		"view":     {ScenarioPath: "x.hcl", View: "gui"},
		"strategy": {ScenarioPath: "x.hcl", Strategy: "greedy"},
		"level":    {ScenarioPath: "x.hcl", LogLevel: "loud"},
		"format":   {ScenarioPath: "x.hcl", LogFormat: "xml"},
	} {
		_, err := NewConfig(bad)
		assert.Error(t, err, name)
	}

	_, err = NewConfig(Config{Addr: ":0"})
	assert.NoError(t, err, "serve mode needs no scenario")
}

func TestRun_TextView(t *testing.T) {
	a, out, logs := newTestApp(t, Config{
		ScenarioPath: filepath.Join("testdata", "diagonal.hcl"),
		Delay:        -1,
		LogFormat:    "json",
	})
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "++@\n+.+\nS++\nbestfirst: path-found steps=2 explored=1 replans=0\n", out.String())

	var entry map[string]interface{}
	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	assert.Equal(t, "search finished", entry["msg"])
	assert.Equal(t, "path-found", entry["kind"])
}

func TestRun_TextViewSealed(t *testing.T) {
	a, out, _ := newTestApp(t, Config{ScenarioPath: filepath.Join("testdata", "sealed.hcl"), Delay: -1})
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "oo#E\noo##\noooo\nSooo\nbfs: no-path-found steps=0 explored=11 replans=0\n", out.String())
}

func TestRun_EventsView(t *testing.T) {
	a, out, _ := newTestApp(t, Config{
		ScenarioPath: filepath.Join("testdata", "diagonal.hcl"),
		Strategy:     "bfs",
		View:         ViewEvents,
	})
	require.NoError(t, a.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 17)
	assert.Equal(t, "start(1,1)", lines[0])
	assert.Equal(t, "path(2,2)", lines[15])
	assert.Equal(t, "bfs: path-found steps=2 explored=7 replans=0", lines[16])
}

func TestRun_Cancelled(t *testing.T) {
	a, _, _ := newTestApp(t, Config{
		ScenarioPath: filepath.Join("testdata", "diagonal.hcl"),
		View:         ViewEvents,
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, a.Run(ctx), context.Canceled)
}

func TestRun_MissingScenario(t *testing.T) {
	a, _, _ := newTestApp(t, Config{ScenarioPath: filepath.Join("testdata", "nope.hcl")})
	assert.Error(t, a.Run(context.Background()))
}

// keepScreen defers Fini so the painted cells can be inspected.
type keepScreen struct{ tcell.SimulationScreen }

func (keepScreen) Fini() {}

func TestRun_TermView(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	t.Cleanup(sim.Fini)

	a, _, _ := newTestApp(t, Config{
		ScenarioPath: filepath.Join("testdata", "diagonal.hcl"),
		View:         ViewTerm,
	})
	a.WithScreen(func() (tcell.Screen, error) { return keepScreen{sim}, nil })
	require.NoError(t, a.Run(context.Background()))

	cells, w, _ := sim.GetContents()
	var status []rune
	for x := 0; x < w; x++ {
		status = append(status, cells[4*w+x].Runes...)
	}
	assert.True(t, strings.HasPrefix(string(status), "bestfirst: path-found steps=2"), string(status))

	_, bg, _ := cells[0*w+4].Style.Decompose() // (3,3): walker ended on the goal
	assert.Equal(t, tcell.ColorBlue, bg)
}
