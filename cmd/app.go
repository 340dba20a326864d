// Package cmd implements the perf CLI application comparing asset performance.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/perfcompare"
	"github.com/etnz/perfcompare/renderer"
	"github.com/google/subcommands"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&compareCmd{}, "performance")
	c.Register(&chartCmd{}, "performance")
	c.Register(&heatmapCmd{}, "performance")
	c.Register(&insightsCmd{}, "performance")
	c.Register(&reportCmd{}, "performance")
	c.Register(&datasetCmd{}, "performance")

	c.Register(&priceCmd{}, "bitcoin")
	c.Register(&watchCmd{}, "bitcoin")
	c.Register(&networthCmd{}, "bitcoin")

	c.Register(&assistCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// config is loaded before the flags, so that it provides their defaults.
var config, ConfigErr = LoadConfig()

var datasetFile = flag.String("dataset", config.Dataset, "JSON dataset of yearly returns, the built-in one if empty. Defaults to $"+EnvDataset)
var distinguished = flag.String("distinguished", config.Distinguished.String(), "Asset the insights are about")
var baseline = flag.String("baseline", config.Baseline.String(), "Asset the distinguished one is compared to")
var Verbose = flag.Bool("v", false, "Verbose logging")

// loadDataset returns the dataset selected by the -dataset flag.
func loadDataset() (*perfcompare.Dataset, error) {
	if *datasetFile == "" {
		return perfcompare.Default(), nil
	}
	d, err := perfcompare.LoadDataset(*datasetFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("dataset %q does not exist, export the built-in one with 'perf dataset -o %s'", *datasetFile, *datasetFile)
	}
	return d, err
}

// options returns the assets selected by the global flags. They must be in d.
func options(d *perfcompare.Dataset) (renderer.Options, error) {
	var opts renderer.Options
	var err error
	if opts.Distinguished, err = perfcompare.ParseAssetKey(*distinguished); err != nil {
		return opts, fmt.Errorf("invalid -distinguished: %w", err)
	}
	if opts.Baseline, err = perfcompare.ParseAssetKey(*baseline); err != nil {
		return opts, fmt.Errorf("invalid -baseline: %w", err)
	}
	for _, k := range []perfcompare.AssetKey{opts.Distinguished, opts.Baseline} {
		if !d.Has(k) {
			return opts, fmt.Errorf("asset %s is not in the dataset", k)
		}
	}
	return opts, nil
}

// setup loads the dataset and the options, reporting errors on stderr.
func setup() (*perfcompare.Dataset, renderer.Options, subcommands.ExitStatus) {
	d, err := loadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, renderer.Options{}, subcommands.ExitFailure
	}
	opts, err := options(d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, opts, subcommands.ExitUsageError
	}
	return d, opts, subcommands.ExitSuccess
}

// newLogger returns the logger of the application, on stderr.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if *Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// isTerminal reports whether f is a terminal rather than a file or a pipe.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// renderMarkdown styles markdown for the terminal. Redirected output is
// left as plain markdown.
func renderMarkdown(md string) string {
	if !isTerminal(os.Stdout) {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func printMarkdown(md string) { fmt.Print(renderMarkdown(md)) }

// printJSON prints v as indented JSON, colored on a terminal.
func printJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot encode JSON: %w", err)
	}
	data = pretty.Pretty(data)
	if isTerminal(os.Stdout) {
		data = pretty.Color(data, nil)
	}
	_, err = os.Stdout.Write(data)
	return err
}
