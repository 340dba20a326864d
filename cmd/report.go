package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfcompare/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	period    string
	scale     string
	chartType string
	html      bool
	output    string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "produce the full comparison report" }
func (*reportCmd) Usage() string {
	return `perf report [-period <period>] [-html] [-o <file>]

  Produces the whole comparison: the headline, the KPI table and the growth
  of $100 over the period, the year by year heatmap and the insights.
  The heatmap and the insights always cover every year of the dataset.

Usage Examples:
# Write a standalone HTML page.
$ perf report -html -o report.html

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "all", "Period of the comparison: all, or a number of years like 5y.")
	f.StringVar(&c.scale, "scale", "log", "Scale of the growth chart: log or linear.")
	f.StringVar(&c.chartType, "type", "line", "Chart type: line or bar.")
	f.BoolVar(&c.html, "html", false, "Produce an HTML page instead of markdown.")
	f.StringVar(&c.output, "o", "", "Output file. Prints to the terminal if empty.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := viewState(c.period, c.scale, c.chartType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	d, opts, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	report := renderer.NewReport(d, state, opts)

	content := report.Markdown()
	if c.html {
		if content, err = report.HTML(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	switch {
	case c.output != "":
		if err := os.WriteFile(c.output, []byte(content), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "✅ Report written to %s\n", c.output)
	case c.html:
		fmt.Print(content)
	default:
		printMarkdown(content)
	}
	return subcommands.ExitSuccess
}
