package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/engine"
)

// Views.
const (
	ViewText   = "text"
	ViewTerm   = "term"
	ViewEvents = "events"
)

// Config holds everything an App needs to run.
type Config struct {
	ScenarioPath string // .hcl scenario; unused when Addr is set
	Strategy     string // overrides the scenario strategy when set
	View         string
	Delay        time.Duration // pacing between events; negative uses the scenario delay
	Addr         string        // serve HTTP on this address instead of running a scenario
	Hold         bool          // keep the terminal view open until a key is pressed

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenarioPath == "" && cfg.Addr == "" {
		return nil, errors.New("a scenario path or a serve address is required")
	}
	switch cfg.View {
	case "":
		cfg.View = ViewText
	case ViewText, ViewTerm, ViewEvents:
	default:
		return nil, fmt.Errorf("invalid view %q: must be 'text', 'term' or 'events'", cfg.View)
	}
	if cfg.Strategy != "" {
		if _, err := engine.ParseStrategy(cfg.Strategy); err != nil {
			return nil, err
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log-level: %w", err)
	}
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}
