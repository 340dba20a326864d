package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfcompare"
	"github.com/etnz/perfcompare/chart"
	"github.com/etnz/perfcompare/renderer"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	period    string
	scale     string
	chartType string
	output    string
	json      bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the growth of $100 chart" }
func (*chartCmd) Usage() string {
	return `perf chart [-period <period>] [-scale log|linear] [-type line|bar] [-o <file>] [-json]

  Draws the growth of $100 of every asset over the period. The image format
  follows the extension of the output file: .png, or SVG otherwise.
  With -json, prints the chart specification instead of drawing it.

Usage Examples:
# Draw the last 10 years as bars, on a linear scale.
$ perf chart -period 10y -scale linear -type bar -o growth.png

`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "all", "Period of the chart: all, or a number of years like 5y.")
	f.StringVar(&c.scale, "scale", perfcompare.Log.String(), "Y axis scale: log or linear.")
	f.StringVar(&c.chartType, "type", perfcompare.Line.String(), "Chart type: line or bar.")
	f.StringVar(&c.output, "o", "growth.svg", "Output file.")
	f.BoolVar(&c.json, "json", false, "Print the chart specification as JSON.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := viewState(c.period, c.scale, c.chartType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	d, opts, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	view := renderer.Render(d, state, opts)

	if c.json {
		if err := printJSON(view.Chart); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	var buf bytes.Buffer
	if err := chart.Render(view.Chart, chart.FormatOf(c.output), &buf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Chart %s written to %s\n", view.Range, c.output)
	return subcommands.ExitSuccess
}

// viewState parses the controls of the view.
func viewState(period, scale, chartType string) (perfcompare.ViewState, error) {
	state := perfcompare.DefaultViewState().WithPeriod(perfcompare.ParsePeriod(period))
	sc, err := perfcompare.ParseScale(scale)
	if err != nil {
		return state, fmt.Errorf("invalid -scale: %w", err)
	}
	t, err := perfcompare.ParseChartType(chartType)
	if err != nil {
		return state, fmt.Errorf("invalid -type: %w", err)
	}
	return state.WithScale(sc).WithChartType(t), nil
}
