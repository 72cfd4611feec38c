package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/quotation"
	"github.com/google/subcommands"
)

// readSession decodes a session file.
func readSession(name string) (*quotation.Session, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := quotation.DecodeSession(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// writeSession encodes the session into a temporary file renamed over name,
// so a failure never leaves a truncated session file.
func writeSession(name string, s *quotation.Session) error {
	tmp, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := quotation.EncodeSession(tmp, s); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}

type saveCmd struct{}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "save the quotation to a session file" }
func (*saveCmd) Usage() string {
	return `quote save [<file>]

  Saves the quotation, items and client details, as JSON lines.
  Without a file, saves to the current session file.
`
}

func (*saveCmd) SetFlags(_ *flag.FlagSet) {}

func (*saveCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app := appFrom(args)
	name := app.SessionFile
	switch f.NArg() {
	case 0:
	case 1:
		name = f.Arg(0)
	default:
		fmt.Fprintln(app.Err, "Error: save takes at most one file")
		return subcommands.ExitUsageError
	}
	if name == "" {
		fmt.Fprintln(app.Err, "Error: no session file, give one")
		return subcommands.ExitUsageError
	}

	if err := writeSession(name, app.Session); err != nil {
		fmt.Fprintf(app.Err, "Error saving session: %v\n", err)
		return subcommands.ExitFailure
	}
	app.SessionFile = name
	app.changed = false
	fmt.Fprintf(app.Out, "Saved %d items to %s\n", app.Session.Ledger.Len(), name)
	return subcommands.ExitSuccess
}

type openCmd struct{}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "replace the quotation with a saved one" }
func (*openCmd) Usage() string {
	return `quote open <file>

  Replaces the current quotation with the one saved in file. Totals are
  checked against their items, a file with an inconsistent total is refused.
`
}

func (*openCmd) SetFlags(_ *flag.FlagSet) {}

func (*openCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app := appFrom(args)
	if f.NArg() != 1 {
		fmt.Fprintln(app.Err, "Error: open takes exactly one file")
		return subcommands.ExitUsageError
	}

	s, err := readSession(f.Arg(0))
	if err != nil {
		fmt.Fprintf(app.Err, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}
	app.Session = s
	app.SessionFile = f.Arg(0)
	app.changed = false
	fmt.Fprintf(app.Out, "Opened %s: %d items, Grand Total: %s\n", f.Arg(0), s.Ledger.Len(), s.Ledger.Total())
	return subcommands.ExitSuccess
}
