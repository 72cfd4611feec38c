// Package cmd implements the quote command line application.
//
// Every command runs against an *App, passed as the first argument of
// subcommands.Commander.Execute. The App owns the session being built: in a
// shell it lives for the whole interactive session, in one-shot mode it can
// be loaded from and saved to a session file with -f.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/quotation"
	"github.com/etnz/quotation/assist"
	"github.com/etnz/quotation/date"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	currencyFlag = flag.String("currency", os.Getenv("QUOTE_CURRENCY"), "ISO code of rates and totals. Defaults to the seller's currency. Env QUOTE_CURRENCY.")
	sellerFlag   = flag.String("seller", os.Getenv("QUOTE_SELLER_FILE"), "JSON seller profile printed in the document header. Env QUOTE_SELLER_FILE.")
	outputFlag   = flag.String("o", envOr("QUOTE_OUTPUT_DIR", "."), "Directory of exported documents. Env QUOTE_OUTPUT_DIR.")
	fileFlag     = flag.String("f", os.Getenv("QUOTE_SESSION_FILE"), "Session file loaded before the command and saved after a change. Env QUOTE_SESSION_FILE.")
	styleFlag    = flag.String("style", envOr("QUOTE_STYLE", "auto"), "Terminal style of markdown output: auto, dark, light, notty or plain. Env QUOTE_STYLE.")
	modelFlag    = flag.String("model", envOr("QUOTE_MODEL", assist.DefaultModel), "Gemini model used by assist. Env QUOTE_MODEL.")
	verboseFlag  = flag.Bool("v", envBool("QUOTE_VERBOSE"), "Print diagnostics to stderr. Env QUOTE_VERBOSE.")
)

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

// Config is the application configuration.
type Config struct {
	Currency    string // ISO code, empty for the seller's currency
	SellerFile  string // JSON seller profile, empty for the default seller
	OutputDir   string // directory of exported documents
	SessionFile string // session file, empty for an in-memory session
	Style       string // glamour style name, "auto" or "plain"
	Model       string // Gemini model
	Verbose     bool
}

// FlagConfig returns the configuration set by the global flags. It must be
// called after flag.Parse.
func FlagConfig() Config {
	return Config{
		Currency:    *currencyFlag,
		SellerFile:  *sellerFlag,
		OutputDir:   *outputFlag,
		SessionFile: *fileFlag,
		Style:       *styleFlag,
		Model:       *modelFlag,
		Verbose:     *verboseFlag,
	}
}

// SetupLog sends diagnostics to stderr in verbose mode and discards them otherwise.
func SetupLog(c Config) {
	log.SetFlags(0)
	log.SetPrefix("quote: ")
	if !c.Verbose {
		log.SetOutput(io.Discard)
	}
}

// Drafter reads a free text item description.
type Drafter interface {
	Draft(ctx context.Context, text string) (quotation.Draft, error)
}

// App is the state shared by the commands.
type App struct {
	Config
	Session *quotation.Session
	Seller  quotation.Seller
	Drafter Drafter // nil until the first assist command
	Today   func() date.Date

	In       io.Reader
	Out, Err io.Writer

	changed bool // session changed since loaded
	inShell bool
}

// NewApp creates the application: it reads the seller profile and the
// session file when configured.
func NewApp(c Config, in io.Reader, out, errw io.Writer) (*App, error) {
	seller := quotation.DefaultSeller()
	if c.SellerFile != "" {
		f, err := os.Open(c.SellerFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if seller, err = quotation.DecodeSeller(f); err != nil {
			return nil, fmt.Errorf("%s: %w", c.SellerFile, err)
		}
	}
	if c.Currency == "" {
		c.Currency = seller.Currency
	}
	if err := quotation.CheckCurrency(c.Currency); err != nil {
		return nil, fmt.Errorf("-currency: %w", err)
	}

	app := &App{
		Config: c,
		Seller: seller,
		Today:  date.Today,
		In:     in,
		Out:    out,
		Err:    errw,
	}
	if c.SessionFile == "" {
		app.Session = quotation.NewSession(c.Currency)
		return app, nil
	}

	s, err := readSession(c.SessionFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("session file %q does not exist, starting a new quotation", c.SessionFile)
		s, err = quotation.NewSession(c.Currency), nil
	}
	if err != nil {
		return nil, err
	}
	app.Session = s
	return app, nil
}

// Flush saves the session to the session file if it changed.
func (a *App) Flush() error {
	if !a.changed || a.SessionFile == "" {
		return nil
	}
	if err := writeSession(a.SessionFile, a.Session); err != nil {
		return err
	}
	a.changed = false
	log.Printf("saved session to %s", a.SessionFile)
	return nil
}

// Quote takes a snapshot of the session for rendering.
func (a *App) Quote() *quotation.Quotation {
	return a.Session.Quote(a.Seller, a.Today())
}

// printMarkdown writes md to the output, rendered for the terminal unless
// the style is "plain".
func (a *App) printMarkdown(md string) {
	if a.Style == "plain" {
		fmt.Fprint(a.Out, md)
		return
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(120)}
	if a.Style == "" || a.Style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(a.Style))
	}
	out, err := func() (string, error) {
		r, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return "", err
		}
		return r.Render(md)
	}()
	if err != nil {
		log.Printf("rendering markdown: %v", err)
		out = md
	}
	fmt.Fprint(a.Out, out)
}

// appFrom returns the *App passed to Commander.Execute.
func appFrom(args []interface{}) *App {
	for _, arg := range args {
		if app, ok := arg.(*App); ok {
			return app
		}
	}
	panic("cmd: command executed without an *App")
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&addCmd{}, "quotation")
	c.Register(&rmCmd{}, "quotation")
	c.Register(&lsCmd{}, "quotation")
	c.Register(&totalCmd{}, "quotation")
	c.Register(&clientCmd{}, "quotation")
	c.Register(&previewCmd{}, "quotation")
	c.Register(&exportCmd{}, "quotation")

	c.Register(&saveCmd{}, "session")
	c.Register(&openCmd{}, "session")
	c.Register(&shellCmd{}, "session")

	c.Register(&assistCmd{}, "assistant")

	c.Register(&topicCmd{}, "help")
}

// Dispatch runs the command line args, without the program name, against the app.
func (a *App) Dispatch(ctx context.Context, args []string) subcommands.ExitStatus {
	top := flag.NewFlagSet("quote", flag.ContinueOnError)
	top.SetOutput(a.Err)
	if err := top.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	c := subcommands.NewCommander(top, "quote")
	c.Output = a.Out
	c.Error = a.Err
	Register(c)
	return c.Execute(ctx, a)
}
