package perf

import (
	"testing"
	"time"
)

func TestTimeSeries_AppendKeepsOrder(t *testing.T) {
	ts := NewTimeSeries()
	ts.Append(NewDate(2025, time.March, 5), 101)
	ts.Append(NewDate(2025, time.March, 3), 100)
	ts.Append(NewDate(2025, time.March, 7), 102)

	if ts.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ts.Len())
	}
	on, v := ts.First()
	if on != NewDate(2025, time.March, 3) || v != 100 {
		t.Errorf("First() = (%s, %v), want (2025-03-03, 100)", on, v)
	}
	on, v = ts.Latest()
	if on != NewDate(2025, time.March, 7) || v != 102 {
		t.Errorf("Latest() = (%s, %v), want (2025-03-07, 102)", on, v)
	}
}

func TestTimeSeries_AppendOverwritesDuplicateDate(t *testing.T) {
	ts := NewTimeSeries()
	on := NewDate(2025, time.March, 3)
	ts.Append(on, 100)
	ts.Append(on, 105)

	if ts.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", ts.Len())
	}
	if v, _ := ts.Get(on); v != 105 {
		t.Errorf("Get(%s) = %v, want the last appended value 105", on, v)
	}
}

func TestTimeSeries_ValueAsOf(t *testing.T) {
	ts := NewTimeSeries()
	ts.Append(NewDate(2025, time.March, 3), 100)
	ts.Append(NewDate(2025, time.March, 7), 102)

	tests := []struct {
		day    Date
		want   float64
		wantOk bool
	}{
		{NewDate(2025, time.March, 3), 100, true},
		{NewDate(2025, time.March, 5), 100, true}, // most recent before
		{NewDate(2025, time.March, 8), 102, true},
		{NewDate(2025, time.March, 1), 0, false}, // before any data
	}
	for _, tc := range tests {
		got, ok := ts.ValueAsOf(tc.day)
		if got != tc.want || ok != tc.wantOk {
			t.Errorf("ValueAsOf(%s) = (%v, %v), want (%v, %v)", tc.day, got, ok, tc.want, tc.wantOk)
		}
	}
}

func TestTimeSeries_Between(t *testing.T) {
	ts := NewTimeSeries()
	for d := 1; d <= 10; d++ {
		ts.Append(NewDate(2025, time.March, d), float64(d))
	}
	got := ts.Between(NewRange(NewDate(2025, time.March, 4), NewDate(2025, time.March, 6)))
	if got.Len() != 3 {
		t.Fatalf("Between() has %d points, want 3", got.Len())
	}
	if on, v := got.First(); on != NewDate(2025, time.March, 4) || v != 4 {
		t.Errorf("Between().First() = (%s, %v), want (2025-03-04, 4)", on, v)
	}
}
