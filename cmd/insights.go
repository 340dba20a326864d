package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfcompare/renderer"
	"github.com/google/subcommands"
)

type insightsCmd struct {
	json bool
}

func (*insightsCmd) Name() string { return "insights" }
func (*insightsCmd) Synopsis() string {
	return "display the key insights about the distinguished asset"
}
func (*insightsCmd) Usage() string {
	return `perf insights [-json]

  Displays how many years the distinguished asset led, what $100 became
  compared to the baseline, and how many times faster it grew than the
  best other asset. Select the assets with the global -distinguished and
  -baseline flags.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the insights as JSON.")
}

func (c *insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, opts, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	hero := renderer.NewHero(d, opts)
	in := renderer.NewInsights(d, opts)
	if c.json {
		if err := printJSON(struct {
			Hero     renderer.Hero     `json:"hero"`
			Insights renderer.Insights `json:"insights"`
		}{hero, in}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.HeroMarkdown(hero) + "\n\n" + renderer.InsightsMarkdown(in))
	return subcommands.ExitSuccess
}
