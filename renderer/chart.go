package renderer

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/etnz/perfcompare"
)

// ChartSpec is everything a chart library needs to draw the growth chart:
// labels, datasets and the axis scale. It carries no drawing logic.
type ChartSpec struct {
	Type   perfcompare.ChartType `json:"type"`
	Scale  perfcompare.Scale     `json:"scale"`
	Range  perfcompare.YearRange `json:"range"`
	Labels []string              `json:"labels"`
	Series []Series              `json:"series,omitempty"` // line charts
	Bars   []BarValue            `json:"bars,omitempty"`   // bar charts
}

// Series is the growth curve of one asset.
type Series struct {
	Key         perfcompare.AssetKey `json:"asset"`
	Label       string               `json:"label"`
	Color       string               `json:"color"`
	Values      []float64            `json:"values"`
	Width       int                  `json:"width"`
	PointRadius int                  `json:"pointRadius"`
}

// BarValue is the final growth value of one asset.
type BarValue struct {
	Key   perfcompare.AssetKey `json:"asset"`
	Label string               `json:"label"`
	Color string               `json:"color"`
	Value float64              `json:"value"`
}

// Return is the percent return of the bar, derived from its value.
func (b BarValue) Return() perfcompare.Percent { return perfcompare.Return(b.Value) }

// LineChart builds one series per asset. The first label is the year before
// the range, when the base value is invested.
func LineChart(d *perfcompare.Dataset, r perfcompare.YearRange, scale perfcompare.Scale, opts Options) ChartSpec {
	spec := ChartSpec{Type: perfcompare.Line, Scale: scale, Range: r}
	spec.Labels = append(spec.Labels, strconv.Itoa(r.Start-1))
	for y := range r.Years() {
		if d.IndexOf(y) != -1 {
			spec.Labels = append(spec.Labels, strconv.Itoa(y))
		}
	}
	for _, a := range d.Assets {
		g := d.Growth(a.Key, r.Start, r.End)
		s := Series{
			Key:         a.Key,
			Label:       a.Name,
			Color:       a.Color,
			Values:      g,
			Width:       2,
			PointRadius: 2,
		}
		if a.Key == opts.Distinguished {
			s.Width = 3
		}
		if len(g) <= 16 {
			s.PointRadius = 4
		}
		spec.Series = append(spec.Series, s)
	}
	return spec
}

// BarChart builds one bar per asset holding its value at the end of the range.
func BarChart(d *perfcompare.Dataset, r perfcompare.YearRange, scale perfcompare.Scale) ChartSpec {
	spec := ChartSpec{Type: perfcompare.Bar, Scale: scale, Range: r}
	for _, a := range d.Assets {
		spec.Labels = append(spec.Labels, a.Name)
		spec.Bars = append(spec.Bars, BarValue{
			Key:   a.Key,
			Label: a.Name,
			Color: a.Color,
			Value: d.Growth(a.Key, r.Start, r.End).Final(),
		})
	}
	return spec
}

// LogTicks are the only values labelled on a logarithmic axis.
var LogTicks = []float64{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000}

// TickLabel returns the axis label of value, "" when the tick is not labelled.
func (c ChartSpec) TickLabel(value float64) string {
	if c.Scale == perfcompare.Log && !slices.Contains(LogTicks, value) {
		return ""
	}
	return "$" + FormatNumber(value)
}

// TooltipTitle is the title of a line chart tooltip.
func TooltipTitle(label string) string { return "End of " + label }

// TooltipLabel describes a value of a dataset: " Bitcoin: $1,234 (+1134%)".
func TooltipLabel(label string, value float64) string {
	return fmt.Sprintf(" %s: %s (%s)", label, FormatDollar(value), FormatPercent(perfcompare.Return(value)))
}

// BarLabel is the text drawn at the tip of a bar.
func BarLabel(value float64) string { return FormatPercent(perfcompare.Return(value)) }
