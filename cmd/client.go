package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/quotation"
	"github.com/google/subcommands"
)

type clientCmd struct {
	name  string
	phone string
}

func (*clientCmd) Name() string     { return "client" }
func (*clientCmd) Synopsis() string { return "set or print the client details" }
func (*clientCmd) Usage() string {
	return `quote client [-name <name>] [-phone <phone>]

  Sets the client name and contact number printed on the quotation.
  Without flags, prints them. An empty value clears the detail.
`
}

func (c *clientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Client name")
	f.StringVar(&c.phone, "phone", "", "Client contact number")
}

func (c *clientCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app := appFrom(args)
	client := &app.Session.Client

	set := 0
	f.Visit(func(fl *flag.Flag) {
		set++
		switch fl.Name {
		case "name":
			client.Name = strings.TrimSpace(c.name)
		case "phone":
			client.Phone = strings.TrimSpace(c.phone)
		}
	})
	if set > 0 {
		app.changed = true
	}
	fmt.Fprintf(app.Out, "Client Name: %s\n", quotation.OrNA(client.Name))
	fmt.Fprintf(app.Out, "Contact Number: %s\n", quotation.OrNA(client.Phone))
	return subcommands.ExitSuccess
}
