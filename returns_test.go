package perf

import (
	"errors"
	"math"
	"testing"
	"time"
)

const tolerance = 1e-12

func day(d int) Date { return NewDate(2025, time.March, d) }

func TestPeriodReturns(t *testing.T) {
	nav := NewTimeSeries().
		Append(day(3), 100).
		Append(day(4), 110).
		Append(day(5), 99)

	returns, err := PeriodReturns(nav)
	if err != nil {
		t.Fatalf("PeriodReturns() error = %v", err)
	}
	if returns.Len() != 2 {
		t.Fatalf("PeriodReturns() has %d points, want 2", returns.Len())
	}
	if r, _ := returns.Get(day(4)); math.Abs(r-0.10) > tolerance {
		t.Errorf("return on %s = %v, want 0.10", day(4), r)
	}
	if r, _ := returns.Get(day(5)); math.Abs(r-(-0.10)) > tolerance {
		t.Errorf("return on %s = %v, want -0.10", day(5), r)
	}
}

func TestPeriodReturns_InsufficientData(t *testing.T) {
	one := NewTimeSeries().Append(day(3), 100)
	if _, err := PeriodReturns(one); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("PeriodReturns(1 point) error = %v, want ErrInsufficientData", err)
	}
	if _, err := PeriodReturns(NewTimeSeries()); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("PeriodReturns(empty) error = %v, want ErrInsufficientData", err)
	}
}

// Compounding period returns must reproduce the overall price move.
func TestCumulativeReturn_ReproducesLastOverFirst(t *testing.T) {
	nav := NewTimeSeries().
		Append(day(3), 100).
		Append(day(4), 103.5).
		Append(day(5), 98.2).
		Append(day(6), 104.1).
		Append(day(7), 101.7)

	returns, err := PeriodReturns(nav)
	if err != nil {
		t.Fatalf("PeriodReturns() error = %v", err)
	}
	got := CumulativeReturn(returns)
	_, first := nav.First()
	_, last := nav.Latest()
	want := last/first - 1
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("CumulativeReturn() = %v, want last/first-1 = %v", got, want)
	}
}

func TestCompareToBenchmark(t *testing.T) {
	// Portfolio 100 -> 110 -> 99 is -1% cumulative; benchmark
	// 100 -> 105 -> 100 is flat. The relative return is -1%.
	nav := NewTimeSeries().Append(day(3), 100).Append(day(4), 110).Append(day(5), 99)
	bench := NewTimeSeries().Append(day(3), 100).Append(day(4), 105).Append(day(5), 100)

	pr, err := PeriodReturns(nav)
	if err != nil {
		t.Fatalf("PeriodReturns(nav) error = %v", err)
	}
	br, err := PeriodReturns(bench)
	if err != nil {
		t.Fatalf("PeriodReturns(bench) error = %v", err)
	}

	if got := CumulativeReturn(pr); math.Abs(got-(-0.01)) > 1e-9 {
		t.Errorf("portfolio cumulative = %v, want -0.01", got)
	}
	if got := CumulativeReturn(br); math.Abs(got) > 1e-9 {
		t.Errorf("benchmark cumulative = %v, want 0", got)
	}
	if got := CompareToBenchmark(pr, br); math.Abs(got-(-0.01)) > 1e-9 {
		t.Errorf("CompareToBenchmark() = %v, want -0.01", got)
	}
}

func TestCDIIndex(t *testing.T) {
	// Two days at 0.05% per day compound off a 100 base.
	rates := NewTimeSeries().Append(day(3), 0.05).Append(day(4), 0.05)
	idx := CDIIndex(rates)

	if idx.Len() != 2 {
		t.Fatalf("CDIIndex() has %d points, want 2", idx.Len())
	}
	if v, _ := idx.Get(day(3)); math.Abs(v-100.05) > 1e-9 {
		t.Errorf("index on day 1 = %v, want 100.05", v)
	}
	if v, _ := idx.Get(day(4)); math.Abs(v-100.05*1.0005) > 1e-9 {
		t.Errorf("index on day 2 = %v, want %v", v, 100.05*1.0005)
	}
}

func TestCDIDailyReturns(t *testing.T) {
	rates := NewTimeSeries().Append(day(3), 0.05)
	returns := CDIDailyReturns(rates)
	if v, _ := returns.Get(day(3)); math.Abs(v-0.0005) > tolerance {
		t.Errorf("CDIDailyReturns() = %v, want 0.0005", v)
	}
}
