package renderer

import "fmt"

// Heat is the color bucket of a yearly return.
type Heat int

const (
	VeryNegative Heat = iota
	Negative
	SlightNegative
	Neutral
	SlightPositive
	Positive
	VeryPositive
	ExtremePositive
)

// Classify buckets a percent return. Thresholds are exclusive: 100% is
// VeryPositive, only values above it are ExtremePositive.
func Classify(v float64) Heat {
	switch {
	case v > 100:
		return ExtremePositive
	case v > 30:
		return VeryPositive
	case v > 10:
		return Positive
	case v > 0:
		return SlightPositive
	case v == 0:
		return Neutral
	case v > -10:
		return SlightNegative
	case v > -20:
		return Negative
	default:
		return VeryNegative
	}
}

func (h Heat) String() string {
	switch h {
	case ExtremePositive:
		return "extreme-positive"
	case VeryPositive:
		return "very-positive"
	case Positive:
		return "positive"
	case SlightPositive:
		return "slight-positive"
	case Neutral:
		return "neutral"
	case SlightNegative:
		return "slight-negative"
	case Negative:
		return "negative"
	case VeryNegative:
		return "very-negative"
	default:
		panic(fmt.Sprintf("unknown heat %d", int(h)))
	}
}

// Class returns the CSS class of the bucket.
func (h Heat) Class() string { return "perf-heat-" + h.String() }

func (h Heat) MarshalText() ([]byte, error) { return []byte(h.String()), nil }
