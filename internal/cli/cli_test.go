package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/app"
)

func TestParse(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{
		"-strategy", "astar", "-view", "EVENTS", "-delay", "20ms", "-log-level", "debug", "maze.hcl",
	}, &out)
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, &app.Config{
		ScenarioPath: "maze.hcl",
		Strategy:     "astar",
		View:         app.ViewEvents,
		Delay:        20 * time.Millisecond,
		Hold:         true,
		LogFormat:    "text",
		LogLevel:     "debug",
	}, cfg)
}

func TestParse_DefaultDelayFromScenario(t *testing.T) {
	cfg, _, err := Parse([]string{"maze.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), cfg.Delay)
	assert.Equal(t, app.ViewText, cfg.View)
}

func TestParse_Serve(t *testing.T) {
	cfg, exit, err := Parse([]string{"-serve", ":9090"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestParse_UsageAndHelp(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out)
	assert.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "gridpath [options] SCENARIO.hcl")

	_, exit, err = Parse([]string{"-h"}, &bytes.Buffer{})
	assert.NoError(t, err)
	assert.True(t, exit)
}

func TestParse_Errors(t *testing.T) {
	for name, args := range map[string][]string{
		"flag":     {"-bogus", "x.hcl"},
		"delay":    {"-delay", "soon", "x.hcl"},
		"negative": {"-delay", "-5ms", "x.hcl"},
		"view":     {"-view", "gui", "x.hcl"},
		"strategy": {"-strategy", "greedy", "x.hcl"},
		"format":   {"-log-format", "xml", "x.hcl"},
	} {
		_, _, err := Parse(args, &bytes.Buffer{})
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr, name)
		assert.Equal(t, 2, exitErr.Code, name)
	}
}
