// Package perfcompare compares the historical performance of asset classes
// from their annual percentage returns.
//
// The core functionalities include:
//   - Return Dataset: a fixed year axis and, for every tracked asset, one
//     annual percentage return per year (see Default for the embedded table).
//   - Growth Engine: compounding growth curves normalized to 100, total
//     return, CAGR, best and worst years, and the yearly cross-asset leader.
//   - Period Selection: resolving a lookback window ("all", "5", "10", ...)
//     into a concrete YearRange within the dataset bounds.
//   - View State: the immutable (period, scale, chart type) triple that drives
//     a render.
//
// Every computation is a pure function of the dataset. Degenerate inputs never
// fail: a range outside the year axis yields an empty curve and zero
// aggregates, and a wiped out asset has a CAGR of exactly -100%.
//
// Presentation lives in the renderer package, chart drawing in the chart
// package, and the `perf` command-line tool in cmd.
package perfcompare
