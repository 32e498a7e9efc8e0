// Command selftrack keeps a student portfolio: profile, achievements,
// experiences, GPA history and hobbies.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/selftrack/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Shell completion, when invoked by the shell.
	cmd.Completion().Complete("selftrack")

	commander := subcommands.NewCommander(flag.CommandLine, "selftrack")
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging(*cmd.Verbose)

	if name := flag.Arg(0); name != "" && !cmd.Known(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
