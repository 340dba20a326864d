// Command perf compares the performance of bitcoin and traditional asset
// classes, and follows the bitcoin price.
//
// Unknown subcommands are delegated to a perf-<subcommand> executable in the PATH.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/perfcompare/cmd"
	"github.com/etnz/perfcompare/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Exits when invoked by the shell for completion.
	completion(commander).Complete("perf")

	flag.Parse()
	if cmd.ConfigErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", cmd.ConfigErr)
	}

	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(commander *subcommands.Commander, name string) (found bool) {
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		found = found || c.Name() == name
	})
	return
}

// predictors of the flag values, by flag name.
var predictors = map[string]complete.Predictor{
	"period":        predict.Set{"all", "1y", "3y", "5y", "10y"},
	"scale":         predict.Set{"log", "linear"},
	"type":          predict.Set{"line", "bar"},
	"distinguished": predict.Set{"bitcoin", "sp500", "nasdaq", "gold", "bonds", "realestate"},
	"baseline":      predict.Set{"bitcoin", "sp500", "nasdaq", "gold", "bonds", "realestate"},
	"dataset":       predict.Files("*.json"),
	"i":             predict.Files("*.json"),
	"o":             predict.Files("*"),
}

// flags returns the completion of every flag of fs.
func flags(fs *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			m[f.Name] = nil // no value
			return
		}
		if p, ok := predictors[f.Name]; ok {
			m[f.Name] = p
			return
		}
		m[f.Name] = predict.Something
	})
	return m
}

// completion describes the command line of commander.
func completion(commander *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flags(flag.CommandLine),
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: flags(fs)}
	})
	if topic, ok := root.Sub["topic"]; ok {
		names, _ := docs.GetAllTopics()
		topic.Args = predict.Set(names)
	}
	return root
}
