package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render/termview"
	"github.com/katalvlaran/gridpath/render/textview"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/server"
	"github.com/katalvlaran/gridpath/trace"
)

// App runs one configured scenario or the HTTP server.
type App struct {
	outW      io.Writer
	logger    *logrus.Logger
	config    *Config
	newScreen func() (tcell.Screen, error)
}

// NewApp builds an App writing views to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("logger configured")

	return &App{outW: outW, logger: logger, config: cfg, newScreen: tcell.NewScreen}
}

// WithScreen replaces the terminal screen constructor used by the term view.
func (a *App) WithScreen(fn func() (tcell.Screen, error)) *App {
	if fn != nil {
		a.newScreen = fn
	}

	return a
}

// Logger returns the application logger.
func (a *App) Logger() *logrus.Logger { return a.logger }

// prepared is a loaded scenario bound to its grid.
type prepared struct {
	sc       *scenario.Scenario
	g        *grid.Grid
	strategy engine.Strategy
	delay    time.Duration
	opts     []engine.Option
}

// Run executes the configured mode until it completes or ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a.config.Addr != "" {
		srv := server.New(
			server.WithLogger(a.logger),
			server.WithDelay(max(a.config.Delay, 0)),
		)
		return srv.ListenAndServe(ctx, a.config.Addr)
	}

	p, err := a.prepare()
	if err != nil {
		return err
	}
	log := a.logger.WithFields(logrus.Fields{
		"scenario": p.sc.Name,
		"strategy": p.strategy.String(),
		"size":     p.g.Size(),
		"view":     a.config.View,
	})
	log.Debug("scenario loaded")

	var out engine.Outcome
	switch a.config.View {
	case ViewEvents:
		out, err = a.runEvents(ctx, p)
	case ViewTerm:
		out, err = a.runTerm(ctx, p)
	default:
		out, err = a.runText(ctx, p)
	}
	if err != nil {
		log.WithError(err).Error("search failed")
		return err
	}
	log.WithFields(logrus.Fields{
		"kind":     out.Kind.String(),
		"steps":    out.Steps(),
		"explored": out.Explored,
		"replans":  out.Replans,
	}).Info("search finished")

	return nil
}

func (a *App) prepare() (*prepared, error) {
	sc, err := scenario.Load(a.config.ScenarioPath)
	if err != nil {
		return nil, err
	}
	g, err := sc.Build()
	if err != nil {
		return nil, err
	}

	p := &prepared{sc: sc, g: g, strategy: sc.Strategy, delay: sc.Delay}
	if a.config.Strategy != "" {
		if p.strategy, err = engine.ParseStrategy(a.config.Strategy); err != nil {
			return nil, err
		}
	}
	if a.config.Delay >= 0 {
		p.delay = a.config.Delay
	}
	p.opts = append(sc.EngineOptions(g), engine.WithLogger(a.logger))

	return p, nil
}

func (a *App) runText(ctx context.Context, p *prepared) (engine.Outcome, error) {
	view := textview.New(p.g)
	out, err := engine.Run(ctx, p.strategy, p.g, view, p.opts...)
	if err != nil {
		return out, err
	}
	if err := view.Render(a.outW); err != nil {
		return out, err
	}
	fmt.Fprintln(a.outW, summary(out))

	return out, nil
}

func (a *App) runEvents(ctx context.Context, p *prepared) (engine.Outcome, error) {
	out, err := a.step(ctx, p, func(ev trace.Event) {
		fmt.Fprintln(a.outW, ev)
	})
	if err != nil {
		return out, err
	}
	fmt.Fprintln(a.outW, summary(out))

	return out, nil
}

// runTerm paints the run on a terminal screen. Escape, q or Ctrl-C stop it;
// a stop is not an error.
func (a *App) runTerm(ctx context.Context, p *prepared) (engine.Outcome, error) {
	s, err := a.newScreen()
	if err != nil {
		return engine.Outcome{}, fmt.Errorf("terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return engine.Outcome{}, fmt.Errorf("terminal: %w", err)
	}
	defer s.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		for {
			switch ev := s.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					cancel()
					return
				}
			}
		}
	}()

	view := termview.New(s, p.g, 0, 0)
	view.DrawGrid()
	view.Show()

	out, err := a.step(ctx, p, func(ev trace.Event) {
		view.OnCellStatus(ev.Row, ev.Col, ev.Status)
		view.Show()
	})
	if errors.Is(err, context.Canceled) {
		return out, nil
	}
	if err != nil {
		return out, err
	}

	view.Status(summary(out) + "  (q to quit)")
	view.Show()
	if a.config.Hold {
		<-ctx.Done()
	}

	return out, nil
}

// step pulls events from a stepper, handing each to onEvent and pausing
// p.delay between them.
func (a *App) step(ctx context.Context, p *prepared, onEvent func(trace.Event)) (engine.Outcome, error) {
	start, _ := p.g.StartCoord()
	end, _ := p.g.EndCoord()
	st, err := engine.NewStepper(ctx, p.strategy, p.g, start, end, p.opts...)
	if err != nil {
		return engine.Outcome{}, err
	}
	defer st.Close()

	for {
		ev, ok, err := st.Next()
		if err != nil {
			return st.Outcome(), err
		}
		if !ok {
			return st.Outcome(), nil
		}
		onEvent(ev)
		if err := pause(ctx, p.delay); err != nil {
			return st.Outcome(), err
		}
	}
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func summary(out engine.Outcome) string {
	return fmt.Sprintf("%s: %s steps=%d explored=%d replans=%d",
		out.Strategy, out.Kind, out.Steps(), out.Explored, out.Replans)
}
