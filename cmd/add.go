package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/quotation"
	"github.com/google/subcommands"
)

type addCmd struct {
	draft quotation.Draft
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an item to the quotation" }
func (*addCmd) Usage() string {
	return `quote add -name <name> -size <size> -box <boxes> [-sqft <area>] -rate <rate> [-remarks <text>]

  Adds an item at the end of the quotation.

  The item total is sqft x rate when an area is given and not zero, and
  box x rate otherwise. Numbers may use ',' or '_' as thousands separators.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.draft.Name, "name", "", "Item name (required)")
	f.StringVar(&c.draft.Size, "size", "", "Item size, e.g. 2x2 (required)")
	f.StringVar(&c.draft.Boxes, "box", "", "Number of boxes (required)")
	f.StringVar(&c.draft.Area, "sqft", "", "Area in square feet")
	f.StringVar(&c.draft.Rate, "rate", "", "Price per sqft, or per box without an area (required)")
	f.StringVar(&c.draft.Remarks, "remarks", "", "Free text printed in the remarks column")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app := appFrom(args)
	if f.NArg() > 0 {
		fmt.Fprintf(app.Err, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	return app.add(c.draft)
}

// add adds the draft to the ledger and prints the result.
func (a *App) add(d quotation.Draft) subcommands.ExitStatus {
	it, err := a.Session.Ledger.Add(d)
	if err != nil {
		printDraftError(a, err)
		return subcommands.ExitFailure
	}
	a.changed = true
	fmt.Fprintf(a.Out, "Added #%v %s (%s): %s\n", it.ID(), it.Name(), it.Size(), it.Total())
	return subcommands.ExitSuccess
}

// printDraftError prints one line per rejected field.
func printDraftError(a *App, err error) {
	var fields []error
	if joined, ok := errors.Unwrap(err).(interface{ Unwrap() []error }); ok {
		fields = joined.Unwrap()
	}
	if len(fields) == 0 {
		fmt.Fprintf(a.Err, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.Err, "Error: invalid item:")
	for _, e := range fields {
		fmt.Fprintf(a.Err, "  - %v\n", e)
	}
}
