package engine

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/replan"
)

// Options configures RunSearch and NewStepper.
type Options struct {
	// Logger receives one debug entry per outcome and per fault.
	Logger logrus.FieldLogger
	// MaxReplans caps replanning for BestFirst.
	MaxReplans int
	// BeforeMove is called ahead of each walk move for BestFirst.
	BeforeMove replan.MoveHook
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger and
// replan.DefaultMaxReplans.
func DefaultOptions() Options {
	return Options{
		Logger:     discardLogger(),
		MaxReplans: replan.DefaultMaxReplans,
	}
}

// WithLogger routes run diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxReplans bounds BestFirst replanning; see replan.WithMaxReplans.
func WithMaxReplans(n int) Option {
	return func(o *Options) { o.MaxReplans = n }
}

// WithBeforeMove installs a BestFirst walk hook; see replan.WithBeforeMove.
func WithBeforeMove(fn replan.MoveHook) Option {
	return func(o *Options) { o.BeforeMove = fn }
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
