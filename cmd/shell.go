package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "build a quotation interactively" }
func (*shellCmd) Usage() string {
	return `quote shell

  Starts an interactive session. Each line is a quote command without the
  program name, e.g.
    add -name "Tile A" -size 2x2 -box 10 -sqft 100 -rate 50
    ls
    export
  Double quotes group words. 'help' lists the commands, 'quit', 'exit' or
  Ctrl+D ends the session.
`
}

func (*shellCmd) SetFlags(_ *flag.FlagSet) {}

const prompt = "quote> "

func (*shellCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app := appFrom(args)
	if app.inShell {
		fmt.Fprintln(app.Err, "Error: already in a shell")
		return subcommands.ExitFailure
	}
	app.inShell = true
	defer func() { app.inShell = false }()

	if err := app.Shell(ctx); err != nil {
		fmt.Fprintln(app.Err, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Shell runs the REPL until quit or the end of the input.
func (a *App) Shell(ctx context.Context) error {
	r := bufio.NewReader(a.In)
	fmt.Fprintf(a.Out, "Quotation %s. Type 'help' for commands, 'quit' to exit.\n", a.Session.Reference)

	for {
		fmt.Fprint(a.Out, prompt)
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := err != nil

		words, serr := splitWords(line)
		switch {
		case serr != nil:
			fmt.Fprintln(a.Err, "Error:", serr)
		case len(words) == 0:
		case words[0] == "quit" || words[0] == "exit":
			return nil
		default:
			a.Dispatch(ctx, words)
		}

		if eof {
			fmt.Fprintln(a.Out)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// splitWords splits a line into words separated by spaces. Double quotes
// group words, a backslash escapes the next character.
func splitWords(line string) ([]string, error) {
	var words []string
	var cur strings.Builder
	inWord, quoted, escaped := false, false, false

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped, inWord = true, true
		case r == '"':
			quoted, inWord = !quoted, true
		case unicode.IsSpace(r) && !quoted:
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if quoted {
		return nil, errors.New("unterminated quote")
	}
	if escaped {
		return nil, errors.New("trailing backslash")
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words, nil
}
