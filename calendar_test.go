package perf

import (
	"testing"
	"time"
)

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year int
		want Date
	}{
		{2024, NewDate(2024, time.March, 31)},
		{2025, NewDate(2025, time.April, 20)},
		{2026, NewDate(2026, time.April, 5)},
	}
	for _, tc := range tests {
		if got := easterSunday(tc.year); got != tc.want {
			t.Errorf("easterSunday(%d) = %s, want %s", tc.year, got, tc.want)
		}
	}
}

func TestB3_Holidays(t *testing.T) {
	holidays := []Date{
		NewDate(2024, time.January, 1),   // Confraternização
		NewDate(2024, time.February, 12), // Carnival Monday
		NewDate(2024, time.February, 13), // Carnival Tuesday
		NewDate(2024, time.March, 29),    // Good Friday
		NewDate(2024, time.May, 30),      // Corpus Christi
		NewDate(2024, time.November, 20), // Consciência Negra
		NewDate(2024, time.December, 25), // Natal
		NewDate(2025, time.March, 4),     // Carnival Tuesday 2025
		NewDate(2025, time.June, 19),     // Corpus Christi 2025
	}
	for _, d := range holidays {
		if B3.IsTradingDay(d) {
			t.Errorf("B3.IsTradingDay(%s) = true, want holiday", d)
		}
	}

	tradingDays := []Date{
		NewDate(2024, time.February, 14), // Ash Wednesday trades
		NewDate(2024, time.March, 28),    // Maundy Thursday trades
		NewDate(2023, time.November, 20), // not national before 2024
	}
	for _, d := range tradingDays {
		if !B3.IsTradingDay(d) {
			t.Errorf("B3.IsTradingDay(%s) = false, want trading day", d)
		}
	}
}

func TestB3_Weekends(t *testing.T) {
	if B3.IsTradingDay(NewDate(2025, time.March, 8)) { // Saturday
		t.Error("B3 trades on Saturday")
	}
	if Weekdays.IsTradingDay(NewDate(2025, time.March, 9)) { // Sunday
		t.Error("Weekdays trades on Sunday")
	}
	if !Weekdays.IsTradingDay(NewDate(2025, time.March, 10)) { // Monday
		t.Error("Weekdays does not trade on Monday")
	}
}

func TestLastTradingDay(t *testing.T) {
	// 2025-04-20 is Easter Sunday; walking back skips Good Friday (04-18)
	// and Saturday down to Thursday 04-17.
	got, err := LastTradingDay(B3, NewDate(2025, time.April, 20))
	if err != nil {
		t.Fatalf("LastTradingDay() error = %v", err)
	}
	if want := NewDate(2025, time.April, 17); got != want {
		t.Errorf("LastTradingDay() = %s, want %s", got, want)
	}
}

func TestPreviousTradingFriday(t *testing.T) {
	// From Wednesday 2025-03-12 the previous week's Friday is 2025-03-07.
	got, err := PreviousTradingFriday(B3, NewDate(2025, time.March, 12))
	if err != nil {
		t.Fatalf("PreviousTradingFriday() error = %v", err)
	}
	if want := NewDate(2025, time.March, 7); got != want {
		t.Errorf("PreviousTradingFriday() = %s, want %s", got, want)
	}
}

func TestTradingDays(t *testing.T) {
	// Week of Carnival 2025: Mon 03-03 and Tue 03-04 are closed.
	r := NewRange(NewDate(2025, time.March, 3), NewDate(2025, time.March, 7))
	var got []Date
	for d := range TradingDays(B3, r) {
		got = append(got, d)
	}
	want := []Date{
		NewDate(2025, time.March, 5),
		NewDate(2025, time.March, 6),
		NewDate(2025, time.March, 7),
	}
	if len(got) != len(want) {
		t.Fatalf("TradingDays() yielded %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TradingDays()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
