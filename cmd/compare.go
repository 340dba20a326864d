package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/perfcompare"
	"github.com/etnz/perfcompare/renderer"
	"github.com/google/subcommands"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	period string
	json   bool
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the assets performance over a period" }
func (*compareCmd) Usage() string {
	return `perf compare [-period <period>] [-json]

  Displays the total return, CAGR, best and worst year of every asset over
  the period, and the growth of $100 for each year.

  See 'perf topic periods' for the supported periods.

Usage Examples:
# Compare the assets over the last 5 years.
$ perf compare -period 5y

`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "all", "Period of the comparison: all, or a number of years like 5y.")
	f.BoolVar(&c.json, "json", false, "Print the view as JSON.")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, opts, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	state := perfcompare.DefaultViewState().WithPeriod(perfcompare.ParsePeriod(c.period))
	view := renderer.Render(d, state, opts)

	if c.json {
		if err := printJSON(view); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Performance %s\n\n", view.Range)
	fmt.Fprintln(&b, renderer.KPITableMarkdown(view.KPIs))
	if growth := renderer.GrowthMarkdown(view.Chart); growth != "" {
		fmt.Fprintf(&b, "## Growth of $100\n\n%s\n", growth)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
