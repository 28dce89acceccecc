// Command fbd prints dashboard reports from already fetched financial JSON.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/finboard/cmd"
	"github.com/google/subcommands"
)

func main() {
	// only acts when the shell asks for a completion, then exits.
	cmd.Completion().Complete("fbd")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	cmd.Register(subcommands.DefaultCommander)

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
