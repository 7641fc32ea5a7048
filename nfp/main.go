// Command nfp computes the nature footprint of loan portfolios.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/footprint/cmd"
	"github.com/google/subcommands"
)

func main() {
	// exits when called by the shell to complete the command line.
	cmd.Completion(flag.CommandLine).Complete("nfp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	if err := cmd.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	if name := flag.Arg(0); name != "" && !isCommand(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			cmd.Sync()
			os.Exit(code)
		}
	}

	status := commander.Execute(context.Background())
	cmd.Sync()
	os.Exit(int(status))
}

// isCommand reports whether name is a builtin subcommand.
func isCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range cmd.Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}
