package perfcompare

import (
	"strconv"
	"strings"
)

// Period is a lookback window: either the whole year axis or the last N years.
// The zero value is All.
type Period struct {
	years int // 0 means all
}

// All covers the whole year axis.
var All = Period{}

// LastYears returns the lookback window of the last n years.
// n <= 0 is the same as All.
func LastYears(n int) Period {
	if n <= 0 {
		return All
	}
	return Period{years: n}
}

// ParsePeriod parses "all" or a number of years. It never fails: anything
// that is not a positive integer falls back to All. "7.9" is not truncated
// to 7 years, it is All.
func ParsePeriod(s string) Period {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "all" || s == "" {
		return All
	}
	s = strings.TrimSuffix(strings.TrimSuffix(s, "y"), " years")
	n, err := strconv.Atoi(s)
	if err != nil {
		return All
	}
	return LastYears(n)
}

// IsAll returns true if the period covers the whole year axis.
func (p Period) IsAll() bool { return p.years <= 0 }

// Years returns the lookback length, 0 for All.
func (p Period) Years() int { return p.years }

func (p Period) String() string {
	if p.IsAll() {
		return "all"
	}
	return strconv.Itoa(p.years)
}

// Label returns a short human name like "All" or "5Y".
func (p Period) Label() string {
	if p.IsAll() {
		return "All"
	}
	return strconv.Itoa(p.years) + "Y"
}

func (p Period) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Period) UnmarshalText(text []byte) error {
	*p = ParsePeriod(string(text))
	return nil
}

// ResolvePeriod maps the period onto the year axis. The range always ends on
// the last year; a lookback that reaches before the first year is clamped to
// it. An empty axis resolves to the zero YearRange.
func ResolvePeriod(p Period, years []int) YearRange {
	if len(years) == 0 {
		return YearRange{}
	}
	first, end := years[0], years[len(years)-1]
	if p.IsAll() {
		return YearRange{Start: first, End: end}
	}
	start := end - p.years + 1
	if start < first {
		start = first
	}
	return YearRange{Start: start, End: end}
}
