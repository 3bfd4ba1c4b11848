package main

import "github.com/urfave/cli/v2"

// application defines the top-level &cli.App{}, the same pattern
// poly/main.go uses: one struct literal naming the app and its
// subcommands, each subcommand owning the flags it needs.
func application() *cli.App {
	return &cli.App{
		Name:  "codonopt",
		Usage: "Reverse-translation codon optimizer: submit proteins, poll job status, run the worker.",
		Commands: []*cli.Command{
			submitCommand(),
			statusCommand(),
			runCommand(),
		},
	}
}
