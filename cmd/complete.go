package cmd

import (
	"flag"

	"github.com/etnz/quotation/docs"
	"github.com/etnz/quotation/renderer"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors completes flag values, by command name and flag name. Other
// flags accept anything, boolean flags take no value.
var flagPredictors = map[string]map[string]complete.Predictor{
	"": {
		"currency": predict.Set{"INR", "EUR", "USD", "GBP", "AED"},
		"seller":   predict.Files("*.json"),
		"o":        predict.Dirs("*"),
		"f":        predict.Files("*.jsonl"),
		"style":    predict.Set{"auto", "dark", "light", "notty", "plain"},
	},
	"export": {
		"format": predict.Set(renderer.Formats()),
		"o":      predict.Dirs("*"),
	},
}

// argPredictors completes positional arguments, by command name.
var argPredictors = map[string]complete.Predictor{
	"save": predict.Files("*.jsonl"),
	"open": predict.Files("*.jsonl"),
}

// Completion returns the shell completion tree of the commands registered
// by Register and the global flags of top.
func Completion(top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagsOf(top, flagPredictors[""]),
	}

	c := subcommands.NewCommander(flag.NewFlagSet("quote", flag.ContinueOnError), "quote")
	Register(c)
	var names []string
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		root.Sub[cmd.Name()] = &complete.Command{
			Flags: flagsOf(fs, flagPredictors[cmd.Name()]),
			Args:  argPredictors[cmd.Name()],
		}
		names = append(names, cmd.Name())
	})
	root.Sub["help"].Args = predict.Set(names)
	root.Sub["topic"].Args = predict.Set(append(docs.Names(), docs.All))
	return root
}

type boolFlag interface{ IsBoolFlag() bool }

func flagsOf(fs *flag.FlagSet, predictors map[string]complete.Predictor) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := predictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(boolFlag); ok && b.IsBoolFlag() {
			flags[f.Name] = nil
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
