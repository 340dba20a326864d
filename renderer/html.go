package renderer

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// HTML converts markdown, including GitHub tables, to an HTML fragment.
// Raw HTML blocks are kept.
func HTML(markdown string) (string, error) {
	conv := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
	var buf bytes.Buffer
	if err := conv.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("cannot convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

// HeatmapHTML renders the heatmap as an HTML table whose cells carry their
// heat classes. It holds no blank line so that it stays a single HTML block
// inside markdown.
func HeatmapHTML(h Heatmap) string {
	var b strings.Builder
	b.WriteString(`<table class="perf-heatmap-table">`)
	b.WriteString("\n<thead><tr><th>Year</th>")
	for _, name := range h.Assets {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(name))
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	for _, row := range h.Rows {
		fmt.Fprintf(&b, "<tr><td>%d</td>", row.Year)
		for _, c := range row.Cells {
			fmt.Fprintf(&b, `<td class="%s">%s</td>`, c.Class(), html.EscapeString(c.Display))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>")
	return b.String()
}

const pageStyle = `body{font-family:Inter,sans-serif;background:#0a0a0f;color:#f0f0f5;max-width:960px;margin:2em auto}
table{border-collapse:collapse}td,th{padding:4px 10px;text-align:right}
.perf-heat-extreme-positive{background:#15803d}.perf-heat-very-positive{background:#16a34a}
.perf-heat-positive{background:#22c55e55}.perf-heat-slight-positive{background:#22c55e22}
.perf-heat-neutral{background:#6a6a8022}.perf-heat-slight-negative{background:#ef444422}
.perf-heat-negative{background:#ef444455}.perf-heat-very-negative{background:#b91c1c}
.perf-heatmap-best{font-weight:700;outline:2px solid #f7931a}`

// HTML renders the whole report as a standalone HTML page.
func (r Report) HTML() (string, error) {
	var buf bytes.Buffer
	r.write(&buf, true)
	body, err := HTML(buf.String())
	if err != nil {
		return "", err
	}
	title := html.EscapeString(r.Hero.Name + " Performance Compared")
	return fmt.Sprintf("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>\n%s\n</style>\n</head>\n<body>\n%s</body>\n</html>\n", title, pageStyle, body), nil
}
