package main

import (
	"os"

	"github.com/treefilter/treefilter/cli"
	"github.com/treefilter/treefilter/internal/errors"
	"github.com/treefilter/treefilter/options"
	"github.com/treefilter/treefilter/pkg/log"
)

// The main entrypoint for treefilter
func main() {
	opts := options.NewOptions()

	defer errors.Recover(checkForErrorsAndExit(opts.Logger))

	app := cli.NewApp(opts)
	err := app.Run(os.Args)

	checkForErrorsAndExit(opts.Logger)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(logger log.Logger) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		if msg := err.Error(); msg != "" {
			logger.Error(msg)
		}

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		os.Exit(1)
	}
}
