// Package log provides the leveled logger used by the treefilter CLI.
//
// The library packages under internal/ are log-free; only the CLI layer
// writes log output.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the leveled, structured logger threaded through the CLI commands.
type Logger = *logrus.Entry

// New creates a Logger that writes to w at the given level.
func New(w io.Writer, level logrus.Level) Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	return logrus.NewEntry(logger)
}

// ParseLevel converts a level name such as "debug" into a level New accepts.
func ParseLevel(str string) (logrus.Level, error) {
	return logrus.ParseLevel(str)
}
