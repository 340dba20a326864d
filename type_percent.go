package perfcompare

import "fmt"

// Percent is a percentage return, 12.5 means +12.5%.
type Percent float64

// percentPrecision is the tolerance of Equal, returns are published with
// one decimal.
const percentPrecision = 0.0001

// Equal reports whether p and q are the same return, within rounding noise.
func (p Percent) Equal(q Percent) bool {
	diff := float64(p - q)
	return diff < percentPrecision && diff > -percentPrecision
}

// Multiple returns the growth multiple of the return, 1.1 for 10%.
func (p Percent) Multiple() float64 { return 1 + float64(p)/100 }

// Compound applies the return to value.
func (p Percent) Compound(value float64) float64 { return value * p.Multiple() }

// IsGain reports whether the return is not a loss. A flat year counts as a gain.
func (p Percent) IsGain() bool { return p >= 0 }

func (p Percent) String() string { return fmt.Sprintf("%+.1f%%", float64(p)) }
