package perf

import (
	"math"
	"testing"
	"time"
)

func TestMonthlyReturns_CompoundsWithinMonth(t *testing.T) {
	// Two 10% returns in the same month compound to 21%, they never sum to 20%.
	returns := NewTimeSeries().
		Append(NewDate(2025, time.March, 10), 0.10).
		Append(NewDate(2025, time.March, 20), 0.10)

	monthly := MonthlyReturns(returns)
	got, ok := monthly[YearMonth{2025, time.March}]
	if !ok {
		t.Fatal("MonthlyReturns() has no entry for 2025-03")
	}
	if math.Abs(got-0.21) > 1e-12 {
		t.Errorf("March 2025 = %v, want 0.21 (compounded, not summed)", got)
	}
}

func TestMonthlyReturns_SplitsAcrossMonths(t *testing.T) {
	returns := NewTimeSeries().
		Append(NewDate(2025, time.March, 31), 0.10).
		Append(NewDate(2025, time.April, 1), -0.05)

	monthly := MonthlyReturns(returns)
	if len(monthly) != 2 {
		t.Fatalf("MonthlyReturns() has %d months, want 2", len(monthly))
	}
	if got := monthly[YearMonth{2025, time.March}]; math.Abs(got-0.10) > 1e-12 {
		t.Errorf("March = %v, want 0.10", got)
	}
	if got := monthly[YearMonth{2025, time.April}]; math.Abs(got-(-0.05)) > 1e-12 {
		t.Errorf("April = %v, want -0.05", got)
	}
}

func TestYearlyReturns(t *testing.T) {
	monthly := map[YearMonth]float64{
		{2025, time.January}:  0.10,
		{2025, time.February}: 0.10,
		{2024, time.December}: 0.05,
	}
	yearly := YearlyReturns(monthly)
	if got := yearly[2025]; math.Abs(got-0.21) > 1e-12 {
		t.Errorf("2025 = %v, want 0.21", got)
	}
	if got := yearly[2024]; math.Abs(got-0.05) > 1e-12 {
		t.Errorf("2024 = %v, want 0.05", got)
	}
}
