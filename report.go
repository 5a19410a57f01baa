package perf

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"time"
)

// Portfolio is an identified net-asset-value series, optionally partitioned
// by category (each category series living on the same date domain).
type Portfolio struct {
	Name       string
	NAV        *TimeSeries
	Categories map[string]*TimeSeries
}

// Benchmark is a named reference index-level series (e.g. CDI index,
// Ibovespa, IFIX) with the same semantics as a portfolio NAV series.
type Benchmark struct {
	Name   string
	Levels *TimeSeries
}

// ReportConfig enumerates which metrics a report computes and with which
// parameters. Explicit configuration replaces any implicit "current
// portfolio" context: a report is a pure function of its inputs.
type ReportConfig struct {
	// Annualization is the number of periods per year used to scale
	// volatility and ratios. Defaults to [TradingDaysPerYear].
	Annualization float64
	// Currency is the reporting currency code for NAV display.
	Currency string

	Volatility bool
	Sharpe     bool
	Sortino    bool
	Drawdown   bool
}

// DefaultReportConfig returns the configuration the CLI uses: every metric
// enabled, daily data annualized over 252 business days, BRL reporting.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Annualization: TradingDaysPerYear,
		Currency:      "BRL",
		Volatility:    true,
		Sharpe:        true,
		Sortino:       true,
		Drawdown:      true,
	}
}

// BenchmarkComparison is the per-benchmark section of a report.
type BenchmarkComparison struct {
	Name       string
	Cumulative Percent // benchmark cumulative return over the report range
	Relative   Percent // portfolio cumulative minus benchmark cumulative
}

// CategoryReturn is the per-category section of a report.
type CategoryReturn struct {
	Label      string
	Cumulative Percent
}

// PerformanceReport is the immutable result of analysing one portfolio
// against zero or more benchmarks over a date range. It has no lifecycle of
// its own: it is computed on demand from immutable inputs.
type PerformanceReport struct {
	Portfolio string
	Range     Range     // requested range
	Aligned   Range     // actual first/last aligned trading dates
	Timestamp time.Time // report generation time

	Start, End   Money // NAV at the boundaries of the aligned range
	Observations int   // number of aligned trading dates

	Cumulative  Percent
	Volatility  Percent // annualized, NaN when disabled or undefined
	Sharpe      float64 // annualized, NaN when disabled or undefined
	Sortino     float64 // annualized, NaN when disabled or undefined
	MaxDrawdown Percent // ≤ 0, NaN when disabled

	Benchmarks []BenchmarkComparison
	Categories []CategoryReturn
	Monthly    map[YearMonth]float64 // compounded monthly returns
}

// NewPerformanceReport computes a full report for the portfolio over r.
//
// Every input series is first restricted to r and aligned with the others on
// the calendar's trading dates; no ratio is ever computed across misaligned
// dates. riskFree, when not nil, is a period-return series (use
// [CDIDailyReturns] for CDI rates) and benchmarks is the list of index-level
// series to compare against.
//
// It fails with [ErrInvalidRange] when r does not intersect the portfolio
// data, and with the alignment and data errors of the underlying operations.
func NewPerformanceReport(p Portfolio, benchmarks []Benchmark, riskFree *TimeSeries, cal Calendar, r Range, cfg ReportConfig) (*PerformanceReport, error) {
	if cfg.Annualization == 0 {
		cfg.Annualization = TradingDaysPerYear
	}
	if cfg.Currency == "" {
		cfg.Currency = "BRL"
	}

	nav := p.NAV.Between(r)
	if nav.Len() == 0 {
		span, ok := p.NAV.Span()
		if !ok {
			return nil, fmt.Errorf("portfolio %q has no data: %w", p.Name, ErrInvalidRange)
		}
		return nil, fmt.Errorf("range %s..%s outside portfolio %q data %s..%s: %w",
			r.From, r.To, p.Name, span.From, span.To, ErrInvalidRange)
	}

	// Align the NAV with every benchmark over the trading calendar. The
	// portfolio series always comes first in the aligned set.
	levels := make([]*TimeSeries, 0, 1+len(benchmarks))
	levels = append(levels, nav)
	for _, b := range benchmarks {
		levels = append(levels, b.Levels.Between(r))
	}
	aligned, err := Align(cal, levels...)
	if err != nil {
		return nil, fmt.Errorf("report %q over %s..%s: %w", p.Name, r.From, r.To, err)
	}
	nav = aligned[0]

	navReturns, err := PeriodReturns(nav)
	if err != nil {
		return nil, fmt.Errorf("report %q over %s..%s: %w", p.Name, r.From, r.To, err)
	}

	first, startNAV := nav.First()
	last, endNAV := nav.Latest()
	report := &PerformanceReport{
		Portfolio:    p.Name,
		Range:        r,
		Aligned:      Range{From: first, To: last},
		Timestamp:    time.Now(),
		Start:        M(startNAV, cfg.Currency),
		End:          M(endNAV, cfg.Currency),
		Observations: nav.Len(),
		Cumulative:   Fraction(CumulativeReturn(navReturns)),
		Monthly:      MonthlyReturns(navReturns),
	}

	report.Volatility = Percent(nan())
	report.Sharpe = nan()
	report.Sortino = nan()
	report.MaxDrawdown = Percent(nan())
	if cfg.Volatility {
		report.Volatility = Fraction(Volatility(navReturns, cfg.Annualization))
	}
	if cfg.Sharpe {
		report.Sharpe = Sharpe(navReturns, riskFree, cfg.Annualization)
	}
	if cfg.Sortino {
		report.Sortino = Sortino(navReturns, riskFree, cfg.Annualization)
	}
	if cfg.Drawdown {
		dd, err := MaxDrawdown(nav)
		if err != nil {
			return nil, err
		}
		report.MaxDrawdown = Fraction(dd)
	}

	for i, b := range benchmarks {
		bReturns, err := PeriodReturns(aligned[i+1])
		if err != nil {
			return nil, fmt.Errorf("benchmark %q: %w", b.Name, err)
		}
		report.Benchmarks = append(report.Benchmarks, BenchmarkComparison{
			Name:       b.Name,
			Cumulative: Fraction(CumulativeReturn(bReturns)),
			Relative:   Fraction(CompareToBenchmark(navReturns, bReturns)),
		})
	}

	for _, label := range sortedKeys(p.Categories) {
		cs := p.Categories[label].Between(report.Aligned)
		cReturns, err := PeriodReturns(cs)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", label, err)
		}
		report.Categories = append(report.Categories, CategoryReturn{
			Label:      label,
			Cumulative: Fraction(CumulativeReturn(cReturns)),
		})
	}

	return report, nil
}

func nan() float64 { return math.NaN() }

// sortedKeys keeps the category section deterministic.
func sortedKeys(m map[string]*TimeSeries) []string {
	return slices.Sorted(maps.Keys(m))
}
