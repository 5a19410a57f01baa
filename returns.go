package perf

import "fmt"

// PeriodReturns computes the simple return between each adjacent pair of
// values: (v[t]/v[t-1]) - 1, indexed at the date of the later point. The
// result has one point fewer than the input.
//
// It fails with [ErrInsufficientData] when the series has fewer than 2 points.
func PeriodReturns(s *TimeSeries) (*TimeSeries, error) {
	if s.Len() < 2 {
		return nil, fmt.Errorf("period returns need 2 points, got %d: %w", s.Len(), ErrInsufficientData)
	}
	out := NewTimeSeries()
	_, prev := s.At(0)
	for i := 1; i < s.Len(); i++ {
		on, v := s.At(i)
		out.days = append(out.days, on)
		out.values = append(out.values, v/prev-1)
		prev = v
	}
	return out, nil
}

// CumulativeReturn compounds a series of period returns into the total return
// over the whole span: Π(1+r) − 1. An empty series compounds to 0.
func CumulativeReturn(returns *TimeSeries) float64 {
	acc := 1.0
	for _, r := range returns.Values() {
		acc *= 1 + r
	}
	return acc - 1
}

// CompareToBenchmark returns the cumulative portfolio return minus the
// cumulative benchmark return. Both inputs must be period-return series over
// the identical aligned date range; use [Align] first.
func CompareToBenchmark(portfolioReturns, benchmarkReturns *TimeSeries) float64 {
	return CumulativeReturn(portfolioReturns) - CumulativeReturn(benchmarkReturns)
}

// CDIIndex compounds a series of daily CDI rates (in percent per day, as
// published by Banco Central SGS series 12) into an index level series with
// base 100 at the first date. This makes CDI comparable with level benchmarks
// like Ibovespa, following the Brazilian 252-business-day compounding
// convention: the published rate for a day is the full rate accrued on that
// business day.
func CDIIndex(rates *TimeSeries) *TimeSeries {
	out := NewTimeSeries()
	level := 100.0
	for on, r := range rates.Values() {
		level *= 1 + r/100
		out.days = append(out.days, on)
		out.values = append(out.values, level)
	}
	return out
}

// CDIDailyReturns converts daily CDI rates in percent (SGS convention) into
// fractional period returns, suitable as the risk-free series of [Sharpe].
func CDIDailyReturns(rates *TimeSeries) *TimeSeries {
	out := NewTimeSeries()
	for on, r := range rates.Values() {
		out.days = append(out.days, on)
		out.values = append(out.values, r/100)
	}
	return out
}
