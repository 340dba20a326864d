package pricefeed

import (
	"fmt"
	"math"
	"time"

	"github.com/etnz/perfcompare"
)

// FormatPrice formats a price to the dollar: "$97,123".
func FormatPrice(v float64) string { return perfcompare.USD(v).Whole() }

// FormatLargeNumber formats a market cap or a volume: "$1.92T", "$35.40B",
// "$12.00M" or "$950,000".
func FormatLargeNumber(v float64) string {
	switch {
	case v >= 1e12:
		return "$" + perfcompare.FormatFixed(v/1e12, 2) + "T"
	case v >= 1e9:
		return "$" + perfcompare.FormatFixed(v/1e9, 2) + "B"
	case v >= 1e6:
		return "$" + perfcompare.FormatFixed(v/1e6, 2) + "M"
	default:
		return perfcompare.USD(v).Whole()
	}
}

// FormatChange formats a 24h change: "+1.23%" or "-0.50%".
func FormatChange(change float64) string {
	sign := ""
	if change >= 0 {
		sign = "+"
	}
	return sign + perfcompare.FormatFixed(change, 2) + "%"
}

// Arrow points up for a positive or null change, down otherwise.
func Arrow(change float64) string {
	if change >= 0 {
		return "▲"
	}
	return "▼"
}

// TimeSince describes the age of an update.
func TimeSince(elapsed time.Duration) string {
	seconds := int(math.Floor(elapsed.Seconds()))
	switch {
	case seconds < 10:
		return "Updated just now"
	case seconds < 60:
		return fmt.Sprintf("Updated %ds ago", seconds)
	default:
		return fmt.Sprintf("Updated %dm ago", seconds/60)
	}
}

// String is the one line display of the update.
func (u Update) String() string {
	line := fmt.Sprintf("BTC %s %s %s", FormatPrice(u.Price), Arrow(u.Change24h), FormatChange(u.Change24h))
	if u.MarketCap > 0 {
		line += "  cap " + FormatLargeNumber(u.MarketCap)
	}
	if u.Volume24h > 0 {
		line += "  vol " + FormatLargeNumber(u.Volume24h)
	}
	return line
}
