package cmd

import (
	"context"
	"flag"

	"github.com/etnz/quotation/renderer"
	"github.com/google/subcommands"
)

type previewCmd struct{}

func (*previewCmd) Name() string     { return "preview" }
func (*previewCmd) Synopsis() string { return "display the quotation document" }
func (*previewCmd) Usage() string {
	return `quote preview

  Displays the quotation as it will be exported: seller header, client
  details, items, total and terms.
`
}

func (*previewCmd) SetFlags(_ *flag.FlagSet) {}

func (*previewCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app := appFrom(args)
	app.printMarkdown(renderer.Markdown(app.Quote()))
	return subcommands.ExitSuccess
}
