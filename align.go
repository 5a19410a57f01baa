package perf

import "fmt"

// Align restricts all input series to the intersection of their dates that
// are valid trading days per cal, in chronological order. The result has one
// series per input, all sharing the exact same date domain.
//
// It fails with [ErrNoOverlap] when the intersection is empty. Alignment is
// the mandatory first step before any metric compares two series: ratios and
// differences are only meaningful over a common set of trading dates.
func Align(cal Calendar, series ...*TimeSeries) ([]*TimeSeries, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("aligning 0 series: %w", ErrNoOverlap)
	}

	// Walk the first series' dates and keep those present everywhere.
	var common []Date
	for on := range series[0].Values() {
		if !cal.IsTradingDay(on) {
			continue
		}
		shared := true
		for _, s := range series[1:] {
			if _, ok := s.Get(on); !ok {
				shared = false
				break
			}
		}
		if shared {
			common = append(common, on)
		}
	}
	if len(common) == 0 {
		return nil, fmt.Errorf("aligning %d series: %w", len(series), ErrNoOverlap)
	}

	aligned := make([]*TimeSeries, len(series))
	for i, s := range series {
		out := NewTimeSeries()
		for _, on := range common {
			v, _ := s.Get(on)
			out.days = append(out.days, on)
			out.values = append(out.values, v)
		}
		aligned[i] = out
	}
	return aligned, nil
}
