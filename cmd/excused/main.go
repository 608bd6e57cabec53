// Command excused serves the excuse generation HTTP API.
//
// Subcommands:
//
//	serve     run the HTTP server (default)
//	generate  print a single excuse to stdout
//	version   print build information
//
// Configuration is read from --config, CONFIG_PATH or ./config.yaml, with
// environment variables taking priority.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
