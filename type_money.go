package perfcompare

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an amount of US dollars.
type Money struct {
	value decimal.Decimal
}

// USD creates a Money from a dollar amount.
func USD[T float64 | int | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

func (m Money) Decimal() decimal.Decimal    { return m.value }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) IsPositive() bool            { return m.value.IsPositive() }
func (m Money) IsNegative() bool            { return m.value.IsNegative() }
func (m Money) Add(n Money) Money           { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money           { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q decimal.Decimal) Money { return Money{value: m.value.Mul(q)} }
func (m Money) Neg() Money                  { return Money{value: m.value.Neg()} }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) }
func (m Money) LessThan(n Money) bool       { return m.value.LessThan(n.value) }

// Deprecated: AsFloat should only be used for ratios, calculations must stay exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Format returns the amount rounded to 'fraction' digits, with comma grouped
// thousands, like "$1,234.50" or "-$1,234".
func (m Money) Format(fraction int) string {
	f := money.NewFormatter(fraction, ".", ",", "$", "$1")
	return f.Format(m.value.Round(int32(fraction)).Shift(int32(fraction)).IntPart())
}

// String returns the amount with cents.
func (m Money) String() string { return m.Format(2) }

// Whole returns the amount rounded to the dollar.
func (m Money) Whole() string { return m.Format(0) }

// MarshalJSON encodes the amount as a decimal string, like decimal.Decimal.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }
