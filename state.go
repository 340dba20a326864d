package perfcompare

import (
	"fmt"
	"strings"
)

// Scale is the value axis scale of the growth chart.
type Scale int

const (
	Log Scale = iota
	Linear
)

func (s Scale) String() string {
	switch s {
	case Log:
		return "log"
	case Linear:
		return "linear"
	default:
		panic(fmt.Sprintf("unknown scale %d", int(s)))
	}
}

func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "log", "logarithmic":
		return Log, nil
	case "linear", "lin":
		return Linear, nil
	default:
		return Log, fmt.Errorf("unknown scale %q", s)
	}
}

func (s Scale) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Scale) UnmarshalText(text []byte) error {
	v, err := ParseScale(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ChartType is the kind of growth chart.
type ChartType int

const (
	Line ChartType = iota
	Bar
)

func (t ChartType) String() string {
	switch t {
	case Line:
		return "line"
	case Bar:
		return "bar"
	default:
		panic(fmt.Sprintf("unknown chart type %d", int(t)))
	}
}

func ParseChartType(s string) (ChartType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return Line, nil
	case "bar":
		return Bar, nil
	default:
		return Line, fmt.Errorf("unknown chart type %q", s)
	}
}

func (t ChartType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *ChartType) UnmarshalText(text []byte) error {
	v, err := ParseChartType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ViewState is the state of the comparison controls. It is a value: every
// control change returns a new state that differs in exactly one dimension.
type ViewState struct {
	Period    Period
	Scale     Scale
	ChartType ChartType
}

// DefaultViewState is the state on first display: all years, log scale, lines.
func DefaultViewState() ViewState {
	return ViewState{Period: All, Scale: Log, ChartType: Line}
}

func (s ViewState) WithPeriod(p Period) ViewState       { s.Period = p; return s }
func (s ViewState) WithScale(sc Scale) ViewState        { s.Scale = sc; return s }
func (s ViewState) WithChartType(t ChartType) ViewState { s.ChartType = t; return s }

func (s ViewState) String() string {
	return fmt.Sprintf("period=%s scale=%s type=%s", s.Period, s.Scale, s.ChartType)
}
