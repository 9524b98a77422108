package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/internal/app"
)

// ExitError is an error carrying a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the validated Config,
// whether the program should exit cleanly (help or no arguments), or an
// *ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridpath - grid pathfinding with BFS and replanning best-first search.

Usage:
  gridpath [options] SCENARIO.hcl
  gridpath -serve :8080

Options:
`)
		flagSet.PrintDefaults()
	}

	strategyFlag := flagSet.String("strategy", "", "Override the scenario strategy: 'bfs', 'bestfirst' (aliases 'astar', 'dstar').")
	viewFlag := flagSet.String("view", app.ViewText, "Output view: 'text', 'term' or 'events'.")
	delayFlag := flagSet.String("delay", "", "Pause between events, e.g. '50ms'. Defaults to the scenario delay.")
	serveFlag := flagSet.String("serve", "", "Serve the HTTP API on this address instead of running a scenario.")
	holdFlag := flagSet.Bool("hold", true, "Keep the term view open until a key is pressed.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := flagSet.Arg(0)
	if path == "" && *serveFlag == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	delay := time.Duration(-1)
	if *delayFlag != "" {
		d, err := time.ParseDuration(*delayFlag)
		if err != nil || d < 0 {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid delay %q", *delayFlag)}
		}
		delay = d
	}

	config, err := app.NewConfig(app.Config{
		ScenarioPath: path,
		Strategy:     *strategyFlag,
		View:         strings.ToLower(*viewFlag),
		Delay:        delay,
		Addr:         *serveFlag,
		Hold:         *holdFlag,
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
