package renderer

import (
	"math"

	"github.com/etnz/perfcompare"
)

// placeholder is displayed instead of a value that cannot be computed.
const placeholder = "--"

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// FormatNumber returns a compact number: "1.5M", "12.3K" or "950".
func FormatNumber(v float64) string {
	if !finite(v) {
		return placeholder
	}
	switch abs := math.Abs(v); {
	case abs >= 1e6:
		return perfcompare.FormatFixed(v/1e6, 1) + "M"
	case abs >= 1e3:
		return perfcompare.FormatFixed(v/1e3, 1) + "K"
	default:
		return perfcompare.FormatFixed(v, 0)
	}
}

// FormatPercent formats a percentage for display.
// Huge values are compact ("1.5M%"), values of at least 100 are whole
// ("+250%"), smaller ones keep one decimal ("+12.3%"). Zero is "+0.0%".
func FormatPercent[T float64 | perfcompare.Percent](p T) string {
	v := float64(p)
	if !finite(v) {
		return placeholder
	}
	abs := math.Abs(v)
	if abs >= 10000 {
		return FormatNumber(v) + "%"
	}
	sign := ""
	if v >= 0 {
		sign = "+"
	}
	if abs >= 100 {
		return sign + perfcompare.FormatFixed(v, 0) + "%"
	}
	return sign + perfcompare.FormatFixed(v, 1) + "%"
}

// FormatDollar formats a dollar amount: "$1.2B", "$3.4M" or "$999.50".
// Amounts in thousands are counted in thousands without a unit, 12345.6
// is "$12" and 999600 is "$1,000".
func FormatDollar(v float64) string {
	if !finite(v) {
		return placeholder
	}
	switch {
	case v >= 1e9:
		return "$" + perfcompare.FormatFixed(v/1e9, 1) + "B"
	case v >= 1e6:
		return "$" + perfcompare.FormatFixed(v/1e6, 1) + "M"
	case v >= 1e3:
		return perfcompare.USD(v / 1e3).Whole()
	default:
		return "$" + perfcompare.FormatFixed(v, 2)
	}
}

// FormatHeatValue formats a yearly return for a heatmap cell: always signed,
// compact from 1000% on ("+5.5K%"), one decimal otherwise ("-3.7%").
func FormatHeatValue(v float64) string {
	if !finite(v) {
		return placeholder
	}
	sign := ""
	if v >= 0 {
		sign = "+"
	}
	if math.Abs(v) >= 1000 {
		return sign + FormatNumber(v) + "%"
	}
	return sign + perfcompare.FormatFixed(v, 1) + "%"
}
