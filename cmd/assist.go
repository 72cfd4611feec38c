package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/quotation"
	"github.com/etnz/quotation/assist"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	dryRun bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "add an item described in free text" }
func (*assistCmd) Usage() string {
	return `quote assist [-n] <text>

  Asks Gemini to read the item description, e.g.
    quote assist "10 boxes of 2x2 Tile A, 100 sqft at 50"
  and adds the item exactly as 'add' would, with the same validation.

  The Gemini API key is read from GEMINI_API_KEY or GOOGLE_API_KEY.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "n", false, "only print the understood item, do not add it")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app := appFrom(args)
	text := strings.TrimSpace(strings.Join(f.Args(), " "))
	if text == "" {
		fmt.Fprintln(app.Err, "Error: describe the item to add")
		return subcommands.ExitUsageError
	}

	if app.Drafter == nil {
		client, err := genai.NewClient(ctx, nil)
		if err != nil {
			fmt.Fprintln(app.Err, "Error initializing Gemini's client:", err)
			return subcommands.ExitFailure
		}
		d := assist.NewDrafter(app.Model, func() []quotation.LineItem {
			return app.Session.Ledger.Snapshot()
		})
		if err := d.Start(ctx, client); err != nil {
			fmt.Fprintln(app.Err, "Error:", err)
			return subcommands.ExitFailure
		}
		app.Drafter = d
	}

	draft, err := app.Drafter.Draft(ctx, text)
	if err != nil {
		fmt.Fprintln(app.Err, "Error: assistant failed:", err)
		return subcommands.ExitFailure
	}
	printDraft(app, draft)
	if c.dryRun {
		return subcommands.ExitSuccess
	}
	return app.add(draft)
}

func printDraft(a *App, d quotation.Draft) {
	fmt.Fprintf(a.Out, "Understood: name=%q size=%q box=%q sqft=%q rate=%q remarks=%q\n",
		d.Name, d.Size, d.Boxes, d.Area, d.Rate, d.Remarks)
}
