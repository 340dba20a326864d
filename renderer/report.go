package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/perfcompare"
	md "github.com/nao1215/markdown"
)

// Report gathers every section of the comparison.
// The hero, heatmap and insights always cover the whole year axis, only the
// view follows the controls.
type Report struct {
	Hero     Hero     `json:"hero"`
	View     View     `json:"view"`
	Heatmap  Heatmap  `json:"heatmap"`
	Insights Insights `json:"insights"`
}

// NewReport computes the full report for state.
func NewReport(d *perfcompare.Dataset, state perfcompare.ViewState, opts Options) Report {
	return Report{
		Hero:     NewHero(d, opts),
		View:     Render(d, state, opts),
		Heatmap:  NewHeatmap(d),
		Insights: NewInsights(d, opts),
	}
}

// Markdown renders the whole report.
func (r Report) Markdown() string {
	var buf bytes.Buffer
	r.write(&buf, false)
	return buf.String()
}

func (r Report) write(w io.Writer, rawHeatmap bool) {
	fmt.Fprintf(w, "# %s Performance Compared\n\n", r.Hero.Name)
	fmt.Fprintf(w, "%s\n\n", HeroMarkdown(r.Hero))

	fmt.Fprintf(w, "## Performance %s\n\n", r.View.Range)
	fmt.Fprintln(w, KPITableMarkdown(r.View.KPIs))

	section(w, "Growth of $100", GrowthMarkdown(r.View.Chart))

	var heatmap string
	switch {
	case len(r.Heatmap.Rows) == 0:
	case rawHeatmap:
		heatmap = HeatmapHTML(r.Heatmap)
	default:
		heatmap = HeatmapMarkdown(r.Heatmap)
	}
	section(w, "Year by Year", heatmap)

	section(w, "Insights", InsightsMarkdown(r.Insights))
}

// KPITableMarkdown renders one row per KPI card.
func KPITableMarkdown(cards []KPICard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Asset", "Total Return", "CAGR", "Best Year", "Worst Year"},
		Rows:      [][]string{},
	}
	for _, c := range cards {
		name := c.Name
		if c.Distinguished {
			name = "**" + name + "**"
		}
		table.Rows = append(table.Rows, []string{name, c.TotalReturn.Value, c.CAGR.Value, c.BestYear.Value, c.WorstYear.Value})
	}
	doc.Table(table)
	return doc.String()
}

// GrowthMarkdown renders the chart datasets as a table: one row per year for
// a line chart, one row per asset for a bar chart. It returns "" when there
// is nothing to show.
func GrowthMarkdown(c ChartSpec) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	switch c.Type {
	case perfcompare.Bar:
		if len(c.Bars) == 0 {
			return ""
		}
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Asset", "Value", "Return"},
			Rows:      [][]string{},
		}
		for _, b := range c.Bars {
			table.Rows = append(table.Rows, []string{b.Label, FormatDollar(b.Value), BarLabel(b.Value)})
		}
		doc.Table(table)
	default:
		if len(c.Series) == 0 || len(c.Series[0].Values) == 0 {
			return ""
		}
		table := md.TableSet{
			Header: []string{"Year"},
			Rows:   [][]string{},
		}
		table.Alignment = append(table.Alignment, md.AlignLeft)
		for _, s := range c.Series {
			table.Header = append(table.Header, s.Label)
			table.Alignment = append(table.Alignment, md.AlignRight)
		}
		for i, label := range c.Labels {
			row := []string{label}
			for _, s := range c.Series {
				if i < len(s.Values) {
					row = append(row, FormatDollar(s.Values[i]))
				} else {
					row = append(row, placeholder)
				}
			}
			table.Rows = append(table.Rows, row)
		}
		doc.Table(table)
	}
	return doc.String()
}

// HeatmapMarkdown renders the heatmap, the yearly leader in bold.
func HeatmapMarkdown(h Heatmap) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	table := md.TableSet{
		Header: append([]string{"Year"}, h.Assets...),
		Rows:   [][]string{},
	}
	table.Alignment = append(table.Alignment, md.AlignLeft)
	for range h.Assets {
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	for _, row := range h.Rows {
		cells := []string{strconv.Itoa(row.Year)}
		for _, c := range row.Cells {
			if c.Best {
				cells = append(cells, "**"+c.Display+"**")
			} else {
				cells = append(cells, c.Display)
			}
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)
	return doc.String()
}
