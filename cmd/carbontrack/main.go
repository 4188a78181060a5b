// Command carbontrack is the CLI entry point for the personal carbon
// footprint tracker.
package main

import (
	"os"

	"github.com/rshade/carbontrack/internal/cli"
	"github.com/rshade/carbontrack/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps errors to an exit code. Cobra
// already prints the error, so run only translates the outcome.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
