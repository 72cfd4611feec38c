package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/quotation/renderer"
	"github.com/google/subcommands"
)

type lsCmd struct{}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list the items of the quotation" }
func (*lsCmd) Usage() string {
	return `quote ls

  Lists the items in the order they were added, with the item count and the grand total.
`
}

func (*lsCmd) SetFlags(_ *flag.FlagSet) {}

func (*lsCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app := appFrom(args)
	l := app.Session.Ledger
	app.printMarkdown(renderer.Listing(l.Snapshot(), l.Total()))
	return subcommands.ExitSuccess
}

type totalCmd struct{}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "print the grand total" }
func (*totalCmd) Usage() string {
	return `quote total

  Prints the sum of the item totals.
`
}

func (*totalCmd) SetFlags(_ *flag.FlagSet) {}

func (*totalCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app := appFrom(args)
	fmt.Fprintf(app.Out, "Grand Total: %s\n", app.Session.Ledger.Total())
	return subcommands.ExitSuccess
}
