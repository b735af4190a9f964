// Package match implements the 'treefilter match' command.
package match

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/urfave/cli/v2"

	"github.com/treefilter/treefilter/internal/errors"
	"github.com/treefilter/treefilter/internal/filter"
	"github.com/treefilter/treefilter/internal/properties"
	"github.com/treefilter/treefilter/options"
)

// NewCommand creates the match command.
func NewCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:      "match",
		Usage:     "Print the candidate node paths that satisfy a filter",
		ArgsUsage: "<filter> [path...]",
		Description: "Candidate paths are taken from the arguments, or read from stdin one per line.\n" +
			"Every path must start with '/'.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "trait",
				Usage: "key=value property attached to every candidate node (repeatable)",
			},
			&cli.StringFlag{
				Name:  "only",
				Usage: "glob pre-selecting candidate paths before filter matching",
			},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() < 1 {
				return cli.Exit("match expects a filter argument", 1)
			}

			return Run(opts, ctx.Args().First(), ctx.Args().Tail(), ctx.StringSlice("trait"), ctx.String("only"))
		},
	}
}

// Run matches the candidate paths against filterString and prints each match.
// Returns a non-zero exit when nothing matched.
func Run(opts *options.Options, filterString string, paths, traits []string, onlyPattern string) error {
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

	bag, err := buildBag(traits)
	if err != nil {
		return err
	}

	var only glob.Glob

	if onlyPattern != "" {
		only, err = glob.Compile(onlyPattern, '/')
		if err != nil {
			return errors.WithStackTrace(err)
		}
	}

	matched, err := matchPaths(opts, parsed, bag, paths, only)
	if err != nil {
		return err
	}

	opts.Logger.Debugf("%d path(s) matched filter %q", matched, parsed.String())

	if matched == 0 {
		return cli.Exit("", 1)
	}

	return nil
}

// buildBag parses repeated key=value trait flags into a property bag.
func buildBag(traits []string) (properties.Bag, error) {
	var props []properties.Property

	for _, trait := range traits {
		key, value, found := strings.Cut(trait, "=")
		if !found || key == "" {
			return nil, errors.Errorf("trait %q must have the form key=value", trait)
		}

		props = append(props, properties.KeyValue{Key: key, Value: value})
	}

	return properties.NewBag(props...), nil
}

// matchPaths runs the filter over every candidate path and prints the matches.
func matchPaths(opts *options.Options, parsed *filter.Filter, bag properties.Bag, paths []string, only glob.Glob) (int, error) {
	matched := 0

	report := func(path string) error {
		if only != nil && !only.Match(path) {
			return nil
		}

		ok, err := parsed.Matches(path, bag)
		if err != nil {
			return err
		}

		if ok {
			matched++
			fmt.Fprintln(opts.Writer, path)
		}

		return nil
	}

	if len(paths) > 0 {
		for _, path := range paths {
			if err := report(path); err != nil {
				return matched, err
			}
		}

		return matched, nil
	}

	scanner := bufio.NewScanner(opts.Reader)
	for scanner.Scan() {
		path := strings.TrimSpace(scanner.Text())
		if path == "" {
			continue
		}

		if err := report(path); err != nil {
			return matched, err
		}
	}

	return matched, errors.WithStackTrace(scanner.Err())
}
