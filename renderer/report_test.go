package renderer

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/etnz/perfcompare"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// countTables parses markdown and counts its GFM tables.
func countTables(t *testing.T, markdown string) int {
	t.Helper()
	source := []byte(markdown)
	doc := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser().Parse(text.NewReader(source))
	count := 0
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == east.KindTable {
			count++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("cannot walk markdown: %v", err)
	}
	return count
}

func TestReport_Markdown(t *testing.T) {
	d := perfcompare.Default()
	r := NewReport(d, perfcompare.DefaultViewState(), DefaultOptions())
	got := r.Markdown()

	for _, want := range []string{
		"# Bitcoin Performance Compared",
		"**Bitcoin** returned **29.2M%** overall",
		"## Performance 2011-2025",
		"## Growth of $100",
		"## Year by Year",
		"## Insights",
		"**11 of 15 Years**",
		"**8x Higher CAGR**",
		"$720.21",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report does not contain %q", want)
		}
	}
	// KPI, growth and heatmap
	if n := countTables(t, got); n != 3 {
		t.Errorf("report has %d tables, want 3", n)
	}
}

func TestReport_HTML(t *testing.T) {
	d := perfcompare.Default()
	r := NewReport(d, perfcompare.DefaultViewState().WithPeriod(perfcompare.LastYears(5)), DefaultOptions())
	page, err := r.HTML()
	if err != nil {
		t.Fatalf("HTML() failed: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("cannot parse HTML: %v", err)
	}
	if got := doc.Find("title").Text(); got != "Bitcoin Performance Compared" {
		t.Errorf("title = %q", got)
	}
	heatmap := doc.Find("table.perf-heatmap-table")
	if heatmap.Length() != 1 {
		t.Fatalf("found %d heatmap tables, want 1", heatmap.Length())
	}
	if n := heatmap.Find("tbody tr").Length(); n != 15 {
		t.Errorf("heatmap has %d rows, want 15", n)
	}
	if n := heatmap.Find("td.perf-heatmap-best").Length(); n != 15 {
		t.Errorf("heatmap has %d leaders, want 15", n)
	}
	if got := heatmap.Find("td.perf-heat-extreme-positive").Length(); got == 0 {
		t.Errorf("no extreme positive cell")
	}
	if got := doc.Find("h2").First().Text(); got != "Performance 2021-2025" {
		t.Errorf("first section = %q", got)
	}
}

func TestGrowthMarkdown_Empty(t *testing.T) {
	if got := GrowthMarkdown(ChartSpec{}); got != "" {
		t.Errorf("GrowthMarkdown() = %q, want empty", got)
	}
	if got := GrowthMarkdown(ChartSpec{Type: perfcompare.Bar}); got != "" {
		t.Errorf("GrowthMarkdown() = %q, want empty", got)
	}
}

func TestKPIListMarkdown(t *testing.T) {
	d := perfcompare.Default()
	cards := KPICards(d, perfcompare.YearRange{Start: 2025, End: 2025}, DefaultOptions())
	got := KPIListMarkdown(cards[:1])
	want := "- **Bitcoin** ★: Total Return -6.3%; CAGR -6.3%; Best Year -6.3% (2025); Worst Year -6.3% (2025);\n"
	if got != want {
		t.Errorf("KPIListMarkdown() = %q, want %q", got, want)
	}
}
