package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfcompare/renderer"
	"github.com/google/subcommands"
)

type heatmapCmd struct {
	json bool
}

func (*heatmapCmd) Name() string     { return "heatmap" }
func (*heatmapCmd) Synopsis() string { return "display the year by year returns" }
func (*heatmapCmd) Usage() string {
	return `perf heatmap [-json]

  Displays the yearly return of every asset, newest year first. The best
  asset of each year is in bold. See 'perf topic heatmap'.
`
}

func (c *heatmapCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the heatmap as JSON, with the color bucket of each cell.")
}

func (c *heatmapCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, _, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	h := renderer.NewHeatmap(d)
	if c.json {
		if err := printJSON(h); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown("## Year by Year\n\n" + renderer.HeatmapMarkdown(h))
	return subcommands.ExitSuccess
}
