package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/etnz/quotation/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	dir    string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the quotation document to a file" }
func (*exportCmd) Usage() string {
	return `quote export [-format pdf|md] [-o <dir>]

  Writes the quotation to <dir>/quotation-<date>.<format> and prints the path.
  The quotation itself is not modified, a failed export can be retried.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", renderer.FormatPDF, fmt.Sprintf("Document format, one of %s", strings.Join(renderer.Formats(), ", ")))
	f.StringVar(&c.dir, "o", "", "Output directory. Defaults to the global -o.")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app := appFrom(args)
	dir := c.dir
	if dir == "" {
		dir = app.OutputDir
	}

	path, err := renderer.Export(dir, c.format, app.Quote())
	if errors.Is(err, renderer.ErrUnknownFormat) {
		fmt.Fprintf(app.Err, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		log.Printf("export failed: %v", err)
		fmt.Fprintf(app.Err, "Failed to generate %s. Please try again.\n", strings.ToUpper(c.format))
		return subcommands.ExitFailure
	}
	fmt.Fprintf(app.Out, "Saved %s\n", path)
	return subcommands.ExitSuccess
}
