// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --verbose and --version

package main

import "flag"

type cliArgs struct {
	verbose bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging on stderr")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
