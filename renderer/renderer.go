// Package renderer turns engine results into display-ready structures and
// renders them as markdown or HTML.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// funcs are available to every template.
var funcs = template.FuncMap{
	"percent": func(v float64) string { return FormatPercent(v) },
	"dollar":  FormatDollar,
}

// renderTemplate renders the template 'name' defined in one of the given template files.
// Errors are rendered in place of the content, a report is never aborted.
func renderTemplate(name string, data any, files ...string) string {
	tmpl := template.New("renderer").Funcs(funcs)
	for _, file := range files {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading template %q: %v", file, err)
		}
		if _, err := tmpl.Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing template %q: %v", file, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}

// HeroMarkdown renders the headline sentence.
func HeroMarkdown(h Hero) string { return renderTemplate("hero", h, "hero.md") }

// InsightsMarkdown renders the insight cards as a bullet list.
func InsightsMarkdown(in Insights) string { return renderTemplate("insights", in, "insights.md") }

// KPIListMarkdown renders the KPI cards as a compact bullet list.
func KPIListMarkdown(cards []KPICard) string { return renderTemplate("kpi", cards, "kpi.md") }
