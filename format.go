package perfcompare

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatFixed formats v with exactly 'places' decimals, rounding half away
// from zero. Like a browser, a negative value that rounds to zero keeps its
// sign ("-0.0").
func FormatFixed(v float64, places int32) string {
	s := decimal.NewFromFloat(v).StringFixed(places)
	if v < 0 && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}
