package renderer

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/quantbr/perf"
)

// Report is the view of a perf.PerformanceReport, with every value already
// formatted for the templates.
type Report struct {
	Portfolio    string
	Range        string
	Generated    string
	Observations int

	Start, End string
	Metrics    []MetricRow

	Benchmarks []BenchmarkRow
	Categories []CategoryRow
	Heatmap    *Heatmap
}

// MetricRow is one line of the summary table.
type MetricRow struct{ Name, Value string }

// BenchmarkRow is one line of the benchmark comparison table.
type BenchmarkRow struct{ Name, Cumulative, Relative string }

// CategoryRow is one line of the per-category table.
type CategoryRow struct{ Label, Cumulative string }

// NewReport builds the renderable view of a report.
func NewReport(r *perf.PerformanceReport) *Report {
	view := &Report{
		Portfolio:    r.Portfolio,
		Range:        fmt.Sprintf("%s to %s", r.Aligned.From, r.Aligned.To),
		Generated:    r.Timestamp.Format("2006-01-02 15:04"),
		Observations: r.Observations,
		Start:        r.Start.String(),
		End:          r.End.String(),
		Heatmap:      NewHeatmap(r.Portfolio, r.Monthly),
	}

	view.Metrics = append(view.Metrics, MetricRow{"Cumulative return", r.Cumulative.SignedString()})
	if !r.Volatility.IsNaN() {
		view.Metrics = append(view.Metrics, MetricRow{"Volatility (annualized)", r.Volatility.String()})
	}
	view.Metrics = append(view.Metrics,
		MetricRow{"Sharpe ratio", ratio(r.Sharpe)},
		MetricRow{"Sortino ratio", ratio(r.Sortino)},
	)
	if !r.MaxDrawdown.IsNaN() {
		view.Metrics = append(view.Metrics, MetricRow{"Max drawdown", r.MaxDrawdown.SignedString()})
	}

	for _, b := range r.Benchmarks {
		view.Benchmarks = append(view.Benchmarks, BenchmarkRow{
			Name:       b.Name,
			Cumulative: b.Cumulative.SignedString(),
			Relative:   b.Relative.SignedString(),
		})
	}
	for _, c := range r.Categories {
		view.Categories = append(view.Categories, CategoryRow{
			Label:      c.Label,
			Cumulative: c.Cumulative.SignedString(),
		})
	}
	return view
}

// ratio formats a dimensionless ratio, with the NaN sentinel spelled out.
func ratio(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}

// Heatmap is the renderable monthly-returns matrix: one row per year, one
// cell per month, plus the compounded yearly total.
type Heatmap struct {
	Name string
	Rows []HeatmapRow
}

// HeatmapRow is one year of the heatmap.
type HeatmapRow struct {
	Year  int
	Cells [12]string
	Total string
}

// NewHeatmap builds the renderable view of a monthly matrix.
func NewHeatmap(name string, monthly map[perf.YearMonth]float64) *Heatmap {
	h := &Heatmap{Name: name}
	if len(monthly) == 0 {
		return h
	}

	var years []int
	seen := make(map[int]bool)
	for ym := range monthly {
		if !seen[ym.Year] {
			seen[ym.Year] = true
			years = append(years, ym.Year)
		}
	}
	slices.Sort(years)

	yearly := perf.YearlyReturns(monthly)
	for _, year := range years {
		row := HeatmapRow{Year: year, Total: perf.Fraction(yearly[year]).SignedString()}
		for m := time.January; m <= time.December; m++ {
			if r, ok := monthly[perf.YearMonth{Year: year, Month: m}]; ok {
				row.Cells[m-1] = perf.Fraction(r).SignedString()
			} else {
				row.Cells[m-1] = "·"
			}
		}
		h.Rows = append(h.Rows, row)
	}
	return h
}
