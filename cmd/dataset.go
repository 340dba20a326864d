package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfcompare"
	"github.com/google/subcommands"
)

type datasetCmd struct {
	output string
}

func (*datasetCmd) Name() string     { return "dataset" }
func (*datasetCmd) Synopsis() string { return "export the dataset of yearly returns" }
func (*datasetCmd) Usage() string {
	return `perf dataset [-o <file>]

  Validates and exports the dataset selected by -dataset, the built-in one
  by default. The exported file can be edited and loaded back with
  'perf -dataset <file>'. See 'perf topic dataset' for the format.
`
}

func (c *datasetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Prints to the terminal if empty.")
}

func (c *datasetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := loadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	var buf bytes.Buffer
	if err := perfcompare.EncodeDataset(&buf, d); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output == "" {
		os.Stdout.Write(buf.Bytes())
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing dataset: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Dataset %d-%d written to %s\n", d.FirstYear(), d.LastYear(), c.output)
	return subcommands.ExitSuccess
}
