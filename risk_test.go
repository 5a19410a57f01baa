package perf

import (
	"errors"
	"math"
	"testing"
)

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"strictly increasing", []float64{100, 101, 105, 110}, 0},
		{"flat", []float64{100, 100, 100}, 0},
		// The drawdown is the 100 -> 80 drop, not measured from the later peak.
		{"early drop then recovery", []float64{100, 80, 120}, -0.2},
		{"deepest of two drops", []float64{100, 90, 110, 77}, -0.3},
		{"single point", []float64{42}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewTimeSeries()
			for i, v := range tc.values {
				s.Append(day(3+i), v)
			}
			got, err := MaxDrawdown(s)
			if err != nil {
				t.Fatalf("MaxDrawdown() error = %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("MaxDrawdown(%v) = %v, want %v", tc.values, got, tc.want)
			}
		})
	}
}

func TestMaxDrawdown_Empty(t *testing.T) {
	if _, err := MaxDrawdown(NewTimeSeries()); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("MaxDrawdown(empty) error = %v, want ErrInsufficientData", err)
	}
}

func TestVolatility(t *testing.T) {
	// Returns +1% and -1% have a sample standard deviation of sqrt(2)/100.
	returns := NewTimeSeries().Append(day(4), 0.01).Append(day(5), -0.01)
	got := Volatility(returns, 1)
	want := math.Sqrt2 / 100
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Volatility() = %v, want %v", got, want)
	}

	// Annualization scales by sqrt of the factor.
	annual := Volatility(returns, TradingDaysPerYear)
	if math.Abs(annual-want*math.Sqrt(252)) > 1e-12 {
		t.Errorf("annualized Volatility() = %v, want %v", annual, want*math.Sqrt(252))
	}
}

func TestVolatility_SinglePointIsNaN(t *testing.T) {
	returns := NewTimeSeries().Append(day(4), 0.01)
	if got := Volatility(returns, 1); !math.IsNaN(got) {
		t.Errorf("Volatility(1 point) = %v, want NaN", got)
	}
}

func TestSharpe_ZeroVolatilityReturnsNaN(t *testing.T) {
	// Constant excess returns have zero volatility: the documented sentinel
	// is NaN, never a panic or an error.
	returns := NewTimeSeries().Append(day(4), 0.01).Append(day(5), 0.01).Append(day(6), 0.01)
	if got := Sharpe(returns, nil, TradingDaysPerYear); !math.IsNaN(got) {
		t.Errorf("Sharpe(constant returns) = %v, want NaN", got)
	}
}

func TestSharpe_PositiveExcess(t *testing.T) {
	returns := NewTimeSeries().Append(day(4), 0.02).Append(day(5), 0.00).Append(day(6), 0.02)
	riskFree := NewTimeSeries().Append(day(4), 0.005).Append(day(5), 0.005).Append(day(6), 0.005)

	got := Sharpe(returns, riskFree, 1)
	// Excess returns are {0.015, -0.005, 0.015}: mean ~ 0.008333,
	// sample stddev ~ 0.011547.
	want := 0.008333333333333331 / 0.011547005383792516
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Sharpe() = %v, want %v", got, want)
	}
}

func TestSharpe_NilRiskFreeMeansZeroRate(t *testing.T) {
	returns := NewTimeSeries().Append(day(4), 0.01).Append(day(5), -0.01).Append(day(6), 0.02)
	withZero := NewTimeSeries().Append(day(4), 0.0).Append(day(5), 0.0).Append(day(6), 0.0)

	a := Sharpe(returns, nil, TradingDaysPerYear)
	b := Sharpe(returns, withZero, TradingDaysPerYear)
	if math.Abs(a-b) > 1e-12 {
		t.Errorf("Sharpe(nil) = %v but Sharpe(zero series) = %v", a, b)
	}
}

func TestSortino(t *testing.T) {
	returns := NewTimeSeries().Append(day(4), 0.02).Append(day(5), -0.01).Append(day(6), 0.02)

	got := Sortino(returns, nil, 1)
	// Mean 0.01; only downside excess is -0.01, so downside deviation 0.01.
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Sortino() = %v, want 1.0", got)
	}
}

func TestSortino_NoDownsideReturnsNaN(t *testing.T) {
	returns := NewTimeSeries().Append(day(4), 0.01).Append(day(5), 0.02)
	if got := Sortino(returns, nil, 1); !math.IsNaN(got) {
		t.Errorf("Sortino(no downside) = %v, want NaN", got)
	}
}
