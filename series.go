package perf

import (
	"iter"
	"slices"
	"sort"
)

// TimeSeries stores a chronological series of float64 values, each associated
// with a specific date. It ensures that dates are unique and the series is
// always sorted, which is the precondition every metric in this package
// relies on.
//
// A nil or empty TimeSeries is valid and has length 0.
type TimeSeries struct {
	days   []Date
	values []float64
}

// NewTimeSeries returns a new empty series.
func NewTimeSeries() *TimeSeries { return &TimeSeries{} }

// Len returns the number of points in the series.
func (s *TimeSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.days)
}

// chronological is a private implementation to make this series chronologically sorted.
type chronological struct{ *TimeSeries }

func (c chronological) Len() int           { return len(c.days) }
func (c chronological) Less(i, j int) bool { return c.days[i].Before(c.days[j]) }
func (c chronological) Swap(i, j int) {
	c.days[i], c.days[j] = c.days[j], c.days[i]
	c.values[i], c.values[j] = c.values[j], c.values[i]
}

func (s *TimeSeries) sort() { sort.Sort(chronological{s}) }

// Append adds a point to the series. An existing value at that date is
// overwritten, giving higher priority to the last data.
func (s *TimeSeries) Append(on Date, v float64) *TimeSeries {
	if i := slices.Index(s.days, on); i >= 0 {
		s.values[i] = v
		return s
	}
	s.days, s.values = append(s.days, on), append(s.values, v)
	s.sort()
	return s
}

// Get returns the value at 'day' and true, or zero and false.
func (s *TimeSeries) Get(day Date) (float64, bool) {
	i := slices.Index(s.days, day)
	if i >= 0 {
		return s.values[i], true
	}
	return 0, false
}

// ValueAsOf returns the value on a given day, or the most recent value before
// it. It returns the value and true if found, otherwise zero and false.
func (s *TimeSeries) ValueAsOf(day Date) (float64, bool) {
	// The days slice is sorted, so we can use binary search.
	i, found := slices.BinarySearchFunc(s.days, day, func(d, t Date) int {
		if d.After(t) {
			return 1
		}
		if d.Before(t) {
			return -1
		}
		return 0
	})
	if found {
		return s.values[i], true
	}
	// Not found. `i` is the index where `day` would be inserted; the value we
	// want is the last entry before the target date.
	if i == 0 {
		return 0, false // No date on or before the given day.
	}
	return s.values[i-1], true
}

// First returns the earliest date and value. Zero values on an empty series.
func (s *TimeSeries) First() (Date, float64) {
	if s.Len() == 0 {
		return Date{}, 0
	}
	return s.days[0], s.values[0]
}

// Latest returns the latest date and value. Zero values on an empty series.
func (s *TimeSeries) Latest() (Date, float64) {
	last := s.Len() - 1
	if last < 0 {
		return Date{}, 0
	}
	return s.days[last], s.values[last]
}

// At returns the i-th point in chronological order.
func (s *TimeSeries) At(i int) (Date, float64) { return s.days[i], s.values[i] }

// Values returns an iterator over all date/value pairs, in chronological order.
func (s *TimeSeries) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		if s == nil {
			return
		}
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// Between returns a new series restricted to the points within r, inclusive.
func (s *TimeSeries) Between(r Range) *TimeSeries {
	out := NewTimeSeries()
	for on, v := range s.Values() {
		if r.Contains(on) {
			out.days = append(out.days, on)
			out.values = append(out.values, v)
		}
	}
	return out
}

// Span returns the range covered by the series, and false if it is empty.
func (s *TimeSeries) Span() (Range, bool) {
	if s.Len() == 0 {
		return Range{}, false
	}
	return Range{From: s.days[0], To: s.days[len(s.days)-1]}, true
}

// floats returns the raw values in chronological order.
// The returned slice is shared with the series and must not be mutated.
func (s *TimeSeries) floats() []float64 {
	if s == nil {
		return nil
	}
	return s.values
}
