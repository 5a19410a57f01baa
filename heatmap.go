package perf

import (
	"fmt"
	"time"
)

// YearMonth identifies one calendar month, the cell key of the monthly
// returns matrix.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (ym YearMonth) String() string { return fmt.Sprintf("%d-%02d", ym.Year, int(ym.Month)) }

// MonthlyReturns aggregates a period-return series into compounded monthly
// returns: within each month the returns compound (Π(1+r) − 1), they are
// never summed. Two 10% returns in the same month aggregate to 21%, not 20%.
//
// This aggregation is the contract presentation layers must rely on instead
// of re-aggregating raw returns themselves.
func MonthlyReturns(returns *TimeSeries) map[YearMonth]float64 {
	out := make(map[YearMonth]float64)
	for on, r := range returns.Values() {
		ym := YearMonth{Year: on.Year(), Month: on.Month()}
		acc, ok := out[ym]
		if !ok {
			acc = 0
		}
		out[ym] = (1+acc)*(1+r) - 1
	}
	return out
}

// YearlyReturns compounds a monthly matrix into per-year returns, for the
// totals column of a heatmap.
func YearlyReturns(monthly map[YearMonth]float64) map[int]float64 {
	out := make(map[int]float64)
	for ym, r := range monthly {
		acc := out[ym.Year]
		out[ym.Year] = (1+acc)*(1+r) - 1
	}
	return out
}
