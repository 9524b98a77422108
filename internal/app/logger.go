package app

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger creates an isolated logrus logger; the global logger is left
// untouched. Unknown levels fall back to info.
func newLogger(levelStr, formatStr string, outW io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(outW)

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if formatStr == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	return l
}
