// Package cli assembles the treefilter command line application.
package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/treefilter/treefilter/cli/commands/check"
	"github.com/treefilter/treefilter/cli/commands/match"
	"github.com/treefilter/treefilter/config"
	"github.com/treefilter/treefilter/options"
	"github.com/treefilter/treefilter/pkg/log"
)

// NewApp creates the treefilter CLI application.
func NewApp(opts *options.Options) *cli.App {
	app := &cli.App{
		Name:      "treefilter",
		Usage:     "Match hierarchical test node paths against filter expressions",
		UsageText: "treefilter <command> [options]",
		Writer:    opts.Writer,
		ErrWriter: opts.ErrWriter,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored diagnostics",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
			},
		},
		Before: beforeRunningCommand(opts),
		Commands: []*cli.Command{
			check.NewCommand(opts),
			match.NewCommand(opts),
		},
	}

	return app
}

// beforeRunningCommand loads the configuration file and applies it, together
// with the global flags, to the shared options.
func beforeRunningCommand(opts *options.Options) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		opts.Aliases = cfg.Aliases
		opts.NoColor = ctx.Bool("no-color") || cfg.Color == "never"

		levelName := cfg.Logging.Level
		if ctx.IsSet("log-level") {
			levelName = ctx.String("log-level")
		}

		level, err := log.ParseLevel(levelName)
		if err != nil {
			return err
		}

		opts.Logger = log.New(opts.ErrWriter, level)

		return nil
	}
}
