package perfcompare

import (
	"fmt"
	"iter"
)

// YearRange is an inclusive range of years.
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewYearRange creates a new year range. If 'start' is after 'end', they are swapped.
func NewYearRange(start, end int) YearRange {
	if start > end {
		start, end = end, start
	}
	return YearRange{Start: start, End: end}
}

// Contains return true if year is included in the range (boundaries included).
func (r YearRange) Contains(year int) bool { return year >= r.Start && year <= r.End }

// Len returns the number of years in the range.
func (r YearRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Years returns an iterator that yields each year within the range, inclusive.
func (r YearRange) Years() iter.Seq[int] {
	return func(yield func(int) bool) {
		for y := r.Start; y <= r.End; y++ {
			if !yield(y) {
				return
			}
		}
	}
}

func (r YearRange) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}
