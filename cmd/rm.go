package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/quotation"
	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove items from the quotation" }
func (*rmCmd) Usage() string {
	return `quote rm <id>...

  Removes the items with those ids. Unknown ids are reported and ignored,
  the ids of the remaining items do not change.
`
}

func (*rmCmd) SetFlags(_ *flag.FlagSet) {}

func (*rmCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app := appFrom(args)
	if f.NArg() == 0 {
		fmt.Fprintln(app.Err, "Error: at least one item id is required")
		return subcommands.ExitUsageError
	}

	ids := make([]quotation.ID, 0, f.NArg())
	for _, arg := range f.Args() {
		id, err := quotation.ParseID(arg)
		if err != nil {
			fmt.Fprintf(app.Err, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		ids = append(ids, id)
	}

	for _, id := range ids {
		if !app.Session.Ledger.Remove(id) {
			fmt.Fprintf(app.Err, "Warning: no item #%v\n", id)
			continue
		}
		app.changed = true
		fmt.Fprintf(app.Out, "Removed #%v\n", id)
	}
	return subcommands.ExitSuccess
}
