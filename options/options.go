// Package options defines the runtime dependencies shared by all CLI commands.
package options

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/treefilter/treefilter/pkg/log"
)

// Options carries the logger, streams, and settings threaded into every
// command.
type Options struct {
	Logger    log.Logger
	Writer    io.Writer
	ErrWriter io.Writer
	Reader    io.Reader
	Aliases   map[string]string
	NoColor   bool
}

// NewOptions creates Options wired to the standard streams.
func NewOptions() *Options {
	return &Options{
		Logger:    log.New(os.Stderr, logrus.InfoLevel),
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Reader:    os.Stdin,
		Aliases:   map[string]string{},
	}
}

// UseColor reports whether diagnostics written to ErrWriter should be
// colored: color must not be disabled and ErrWriter must be a terminal.
func (opts *Options) UseColor() bool {
	if opts.NoColor {
		return false
	}

	file, ok := opts.ErrWriter.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// ExpandAlias resolves '@name' filter shorthands from the configured alias
// table. Any other filter string is returned unchanged.
func (opts *Options) ExpandAlias(filterString string) string {
	if len(filterString) < 2 || filterString[0] != '@' {
		return filterString
	}

	if expanded, ok := opts.Aliases[filterString[1:]]; ok {
		return expanded
	}

	return filterString
}
