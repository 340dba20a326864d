// Package chart draws the growth chart datasets computed by the renderer
// package as SVG or PNG images.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/perfcompare"
	"github.com/etnz/perfcompare/renderer"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is the image format of a drawn chart.
type Format int

const (
	SVG Format = iota
	PNG
)

func (f Format) String() string {
	switch f {
	case SVG:
		return "svg"
	case PNG:
		return "png"
	default:
		panic(fmt.Sprintf("unknown chart format %d", int(f)))
	}
}

// ParseFormat parses "svg" or "png".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "svg":
		return SVG, nil
	case "png":
		return PNG, nil
	default:
		return SVG, fmt.Errorf("unknown chart format %q: must be svg or png", s)
	}
}

// FormatOf guesses the format from a file extension, SVG by default.
func FormatOf(filename string) Format {
	if strings.EqualFold(filepath.Ext(filename), ".png") {
		return PNG
	}
	return SVG
}

func (f Format) provider() gochart.RendererProvider {
	if f == PNG {
		return gochart.PNG
	}
	return gochart.SVG
}

// Size of the drawn image in pixels.
const (
	Width  = 1024
	Height = 512
)

// ErrEmpty is returned when a spec holds nothing to draw.
var ErrEmpty = errors.New("nothing to draw")

// Render draws spec to w.
// On a log scale values are plotted as their base 10 logarithm and only the
// powers of ten are labelled.
func Render(spec renderer.ChartSpec, format Format, w io.Writer) error {
	var err error
	switch spec.Type {
	case perfcompare.Bar:
		err = renderBars(spec, format, w)
	default:
		err = renderLines(spec, format, w)
	}
	if err != nil {
		return fmt.Errorf("cannot draw %s chart: %w", spec.Type, err)
	}
	return nil
}

func renderLines(spec renderer.ChartSpec, format Format, w io.Writer) error {
	if len(spec.Series) == 0 || len(spec.Series[0].Values) < 2 {
		return ErrEmpty
	}
	var xticks []gochart.Tick
	xvalues := make([]float64, len(spec.Labels))
	for i, label := range spec.Labels {
		x, err := strconv.Atoi(label)
		if err != nil {
			return fmt.Errorf("invalid year label %q: %w", label, err)
		}
		xvalues[i] = float64(x)
		xticks = append(xticks, gochart.Tick{Value: float64(x), Label: label})
	}

	var series []gochart.Series
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range spec.Series {
		ys := make([]float64, len(s.Values))
		for i, v := range s.Values {
			ys[i] = project(spec.Scale, v)
			lo, hi = math.Min(lo, ys[i]), math.Max(hi, ys[i])
		}
		col := color(s.Color)
		series = append(series, gochart.ContinuousSeries{
			Name: s.Label,
			Style: gochart.Style{
				StrokeColor: col,
				StrokeWidth: float64(s.Width),
				DotColor:    col,
				DotWidth:    float64(s.PointRadius),
			},
			XValues: xvalues[:len(ys)],
			YValues: ys,
		})
	}

	ch := gochart.Chart{
		Title:      "Growth of $100 " + spec.Range.String(),
		Width:      Width,
		Height:     Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      gochart.XAxis{Ticks: xticks},
		YAxis:      yaxis(spec, lo, hi),
		Series:     series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	return ch.Render(format.provider(), w)
}

func renderBars(spec renderer.ChartSpec, format Format, w io.Writer) error {
	if len(spec.Bars) == 0 {
		return ErrEmpty
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	var bars []gochart.Value
	for _, b := range spec.Bars {
		y := project(spec.Scale, b.Value)
		lo, hi = math.Min(lo, y), math.Max(hi, y)
		col := color(b.Color)
		bars = append(bars, gochart.Value{
			Label: b.Label + " " + renderer.BarLabel(b.Value),
			Value: y,
			Style: gochart.Style{FillColor: col, StrokeColor: col},
		})
	}
	// bars grow from the axis origin
	lo = math.Min(lo, 0)

	ch := gochart.BarChart{
		Title:      "Value of $100 " + spec.Range.String(),
		Width:      Width,
		Height:     Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		BarWidth:   80,
		BarSpacing: 20,
		YAxis:      yaxis(spec, lo, hi),
		Bars:       bars,
	}
	return ch.Render(format.provider(), w)
}

// project maps a growth value to the plotted coordinate.
// Values that cannot be drawn on a log scale are pinned at $1.
func project(scale perfcompare.Scale, v float64) float64 {
	if scale != perfcompare.Log {
		return v
	}
	if v <= 1 {
		return 0
	}
	return math.Log10(v)
}

// yaxis builds the value axis covering [lo, hi] in plotted coordinates.
func yaxis(spec renderer.ChartSpec, lo, hi float64) gochart.YAxis {
	if spec.Scale != perfcompare.Log {
		if hi <= lo {
			hi = lo + 1
		}
		return gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return spec.TickLabel(f)
				}
				return ""
			},
		}
	}
	from, to := math.Floor(lo), math.Ceil(hi)
	if to <= from {
		to = from + 1
	}
	var ticks []gochart.Tick
	for e := from; e <= to; e++ {
		ticks = append(ticks, gochart.Tick{Value: e, Label: spec.TickLabel(math.Pow10(int(e)))})
	}
	return gochart.YAxis{
		Range: &gochart.ContinuousRange{Min: from, Max: to},
		Ticks: ticks,
	}
}

// color converts a "#rrggbb" display color.
func color(hex string) drawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if hex == "" {
		return gochart.ColorAlternateGray
	}
	return drawing.ColorFromHex(hex)
}
