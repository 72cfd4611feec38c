package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/quotation/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show the user manual" }
func (*topicCmd) Usage() string {
	return `quote topic [<topic>...]

  Shows the user manual for the given topics, '*' for all of them.
  Without a topic, shows the list of topics.
`
}

func (*topicCmd) SetFlags(_ *flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app := appFrom(args)
	doc, err := docs.Read(f.Args()...)
	if err != nil {
		fmt.Fprintf(app.Err, "Error: %v, see 'quote topic' for the list\n", err)
		return subcommands.ExitFailure
	}
	app.printMarkdown(doc)
	return subcommands.ExitSuccess
}
