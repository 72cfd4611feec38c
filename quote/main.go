// Command quote builds tile and marble quotations and exports them as PDF.
//
// Usage:
//
//	quote [-f session.jsonl] <command> [flags] [args]
//	quote shell
//
// Run "quote help" for the list of commands.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/quotation/cmd"
	"github.com/google/subcommands"
)

func main() {
	// handles the shell completion request, if any, and exits.
	cmd.Completion(flag.CommandLine).Complete("quote")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	flag.Parse()

	config := cmd.FlagConfig()
	cmd.SetupLog(config)

	app, err := cmd.NewApp(config, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	status := commander.Execute(context.Background(), app)
	if status == subcommands.ExitSuccess {
		if err := app.Flush(); err != nil {
			fmt.Fprintln(os.Stderr, "Error saving session:", err)
			status = subcommands.ExitFailure
		}
	}
	os.Exit(int(status))
}
