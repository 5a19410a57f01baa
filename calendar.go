package perf

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// A Calendar decides which dates are valid trading days. Implementations must
// be stateless or otherwise safe for concurrent use.
type Calendar interface {
	IsTradingDay(d Date) bool
}

// Weekdays is the fallback calendar: every Monday to Friday is a trading day.
var Weekdays Calendar = weekdayCalendar{}

type weekdayCalendar struct{}

func (weekdayCalendar) IsTradingDay(d Date) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// B3 is the trading calendar of the Brazilian exchange (ANBIMA holidays):
// weekdays minus national holidays, including the movable feasts derived
// from Easter (Carnival Monday and Tuesday, Good Friday, Corpus Christi).
var B3 Calendar = b3Calendar{}

type b3Calendar struct{}

func (b3Calendar) IsTradingDay(d Date) bool {
	if !Weekdays.IsTradingDay(d) {
		return false
	}
	return !isB3Holiday(d)
}

func isB3Holiday(d Date) bool {
	switch {
	case d.Month() == time.January && d.Day() == 1: // Confraternização Universal
		return true
	case d.Month() == time.April && d.Day() == 21: // Tiradentes
		return true
	case d.Month() == time.May && d.Day() == 1: // Dia do Trabalho
		return true
	case d.Month() == time.September && d.Day() == 7: // Independência
		return true
	case d.Month() == time.October && d.Day() == 12: // Nossa Senhora Aparecida
		return true
	case d.Month() == time.November && d.Day() == 2: // Finados
		return true
	case d.Month() == time.November && d.Day() == 15: // Proclamação da República
		return true
	case d.Month() == time.November && d.Day() == 20 && d.Year() >= 2024: // Consciência Negra, national since 2024
		return true
	case d.Month() == time.December && d.Day() == 25: // Natal
		return true
	}

	easter := easterSunday(d.Year())
	switch d {
	case easter.Add(-48), easter.Add(-47): // Carnival Monday and Tuesday
		return true
	case easter.Add(-2): // Good Friday
		return true
	case easter.Add(60): // Corpus Christi
		return true
	}
	return false
}

// easterSunday computes the Gregorian Easter date with the anonymous
// Meeus/Jones/Butcher algorithm.
func easterSunday(year int) Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return NewDate(year, time.Month(month), day)
}

// LastTradingDay returns the latest trading day on or before d.
// It gives up after a year of walking back, which only happens with a
// degenerate calendar.
func LastTradingDay(cal Calendar, d Date) (Date, error) {
	for i := 0; i < 366; i++ {
		if cal.IsTradingDay(d) {
			return d, nil
		}
		d = d.Add(-1)
	}
	return Date{}, fmt.Errorf("no trading day in the year before %s", d)
}

// PreviousTradingFriday returns the last trading day on or before the Friday
// of the week preceding d. This anchors week-over-week reports the way the
// B3 weekly convention does: a week's performance is measured from the
// previous week's final close.
func PreviousTradingFriday(cal Calendar, d Date) (Date, error) {
	// Monday of d's week, then back 3 days to the previous week's Friday.
	friday := d.StartOf(Weekly).Add(-3)
	return LastTradingDay(cal, friday)
}

// TradingDays returns an iterator over the trading days of r, in order.
func TradingDays(cal Calendar, r Range) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := range r.Days() {
			if !cal.IsTradingDay(d) {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

// ParseCalendar resolves a calendar by name ("b3" or "weekdays").
func ParseCalendar(name string) (Calendar, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "b3", "":
		return B3, nil
	case "weekdays":
		return Weekdays, nil
	default:
		return nil, fmt.Errorf("unknown calendar %q (want b3 or weekdays)", name)
	}
}
