// Package check implements the 'treefilter check' command.
package check

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/treefilter/treefilter/internal/errors"
	"github.com/treefilter/treefilter/internal/filter"
	"github.com/treefilter/treefilter/options"
)

// NewCommand creates the check command.
func NewCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Parse a filter expression and print its structure",
		ArgsUsage: "<filter>",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 1 {
				return cli.Exit("check expects exactly one filter argument", 1)
			}

			return Run(opts, ctx.Args().First())
		},
	}
}

// Run parses filterString and prints the per-segment expressions, or a
// positioned diagnostic if the filter is invalid.
func Run(opts *options.Options, filterString string) error {
	filterString = opts.ExpandAlias(filterString)

	parsed, err := filter.Parse(filterString)
	if err != nil {
		parseErr := filter.ParseError{}
		if errors.As(err, &parseErr) {
			fmt.Fprint(opts.ErrWriter, filter.FormatDiagnostic(&parseErr, opts.UseColor()))
			return cli.Exit("", 1)
		}

		return err
	}

	for i, expr := range parsed.Expressions() {
		fmt.Fprintf(opts.Writer, "segment %d: %s\n", i+1, expr)
	}

	return nil
}
