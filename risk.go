package perf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear is the Brazilian business-day count convention used to
// annualize daily metrics (252 "dias úteis", the ANBIMA/CDI convention).
const TradingDaysPerYear = 252

// Volatility returns the sample standard deviation of a period-return series,
// scaled by sqrt(annualization). Use [TradingDaysPerYear] for daily returns.
// With fewer than 2 points the standard deviation is undefined and NaN is
// returned.
func Volatility(returns *TimeSeries, annualization float64) float64 {
	if returns.Len() < 2 {
		return math.NaN()
	}
	return stat.StdDev(returns.floats(), nil) * math.Sqrt(annualization)
}

// Sharpe returns the annualized Sharpe ratio: the mean of the excess return
// over the risk-free series, divided by the standard deviation of that
// excess-return series, scaled by sqrt(annualization).
//
// Both inputs must be period-return series over the identical aligned date
// range. When the excess-return volatility is zero (or there are fewer than
// 2 common points) the ratio is undefined and the NaN sentinel is returned,
// never an error. Callers must check with math.IsNaN.
func Sharpe(returns, riskFree *TimeSeries, annualization float64) float64 {
	excess := excessReturns(returns, riskFree)
	if len(excess) < 2 {
		return math.NaN()
	}
	sd := stat.StdDev(excess, nil)
	if sd == 0 {
		return math.NaN()
	}
	return stat.Mean(excess, nil) / sd * math.Sqrt(annualization)
}

// Sortino returns the annualized Sortino ratio: mean excess return over the
// downside deviation (root mean square of negative excess returns). Like
// [Sharpe] it returns the NaN sentinel when undefined.
func Sortino(returns, riskFree *TimeSeries, annualization float64) float64 {
	excess := excessReturns(returns, riskFree)
	if len(excess) < 2 {
		return math.NaN()
	}
	var downsideSquaredSum float64
	downside := 0
	for _, r := range excess {
		if r < 0 {
			downsideSquaredSum += r * r
			downside++
		}
	}
	if downside == 0 {
		return math.NaN()
	}
	dd := math.Sqrt(downsideSquaredSum / float64(downside))
	if dd == 0 {
		return math.NaN()
	}
	return stat.Mean(excess, nil) / dd * math.Sqrt(annualization)
}

// excessReturns computes r - rf on the dates the two series share.
// A nil riskFree series means a zero risk-free rate.
func excessReturns(returns, riskFree *TimeSeries) []float64 {
	excess := make([]float64, 0, returns.Len())
	for on, r := range returns.Values() {
		if riskFree == nil {
			excess = append(excess, r)
			continue
		}
		rf, ok := riskFree.Get(on)
		if !ok {
			continue
		}
		excess = append(excess, r-rf)
	}
	return excess
}

// MaxDrawdown returns the deepest peak-to-trough decline of a level series:
// the minimum over t of v[t]/runningMax(v[0..t]) − 1. It is 0 for a
// monotonically non-decreasing series and always ≤ 0 otherwise.
//
// It fails with [ErrInsufficientData] on an empty series.
func MaxDrawdown(s *TimeSeries) (float64, error) {
	if s.Len() == 0 {
		return 0, fmt.Errorf("max drawdown of an empty series: %w", ErrInsufficientData)
	}
	_, peak := s.First()
	worst := 0.0
	for _, v := range s.Values() {
		if v > peak {
			peak = v
		}
		if dd := v/peak - 1; dd < worst {
			worst = dd
		}
	}
	return worst, nil
}
