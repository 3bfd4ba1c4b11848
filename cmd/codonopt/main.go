/*
codonopt is the command-line entry point for the reverse-translation
codon optimizer: submit a protein for optimization, poll a job's
status, or run the worker daemon.

Initial arg parsing is done entirely through urfave/cli/v2, the same
template poly's own main.go/commands.go use: an &cli.App{} with a
Commands slice, each subcommand owning its flags; the shared
process-level flags in flags.go fall back to environment variables.
*/
package main

import (
	"log"
	"os"
)

func main() {
	run(os.Args)
}

// run is separated from main for testability, matching poly/main.go's
// run(args []string) split.
func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}
