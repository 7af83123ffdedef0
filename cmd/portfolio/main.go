package main

import (
	"context"
	"flag"
	"os"
	"path"

	"birikim/internal/cli"

	"github.com/google/subcommands"
)

func main() {
	cli.Completion().Complete("portfolio")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cli.Commands(os.Stdout) {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
