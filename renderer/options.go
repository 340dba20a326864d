package renderer

import "github.com/etnz/perfcompare"

// Options selects the assets the comparison is about.
type Options struct {
	// Distinguished is the asset the insights are about. It is drawn with
	// a heavier line and its KPI card is highlighted.
	Distinguished perfcompare.AssetKey
	// Baseline is the asset the distinguished one is compared to in the
	// growth of $100 insight.
	Baseline perfcompare.AssetKey
}

// DefaultOptions compares Bitcoin against the S&P 500.
func DefaultOptions() Options {
	return Options{Distinguished: perfcompare.Bitcoin, Baseline: perfcompare.SP500}
}
