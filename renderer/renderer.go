// Package renderer turns engine results into markdown documents, the only
// presentation format the qpr tool speaks. The aggregation rules (monthly
// compounding in particular) stay in the engine; this package only formats.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/quantbr/perf"
)

//go:embed templates/*.md
var templates embed.FS

// ReportMarkdown renders a performance report to a markdown string.
func ReportMarkdown(r *perf.PerformanceReport) string {
	partials := map[string]string{
		"report_title":      "templates/report_title.md",
		"report_summary":    "templates/report_summary.md",
		"report_benchmarks": "templates/report_benchmarks.md",
		"report_categories": "templates/report_categories.md",
		"report_heatmap":    "templates/heatmap.md",
	}
	return renderTemplate("report", "templates/report.md", partials, NewReport(r))
}

// HeatmapMarkdown renders a standalone monthly-returns heatmap table.
func HeatmapMarkdown(name string, monthly map[perf.YearMonth]float64) string {
	return renderTemplate("heatmap", "templates/heatmap.md", nil, NewHeatmap(name, monthly))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
