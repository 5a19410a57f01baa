package perf

import (
	"fmt"
	"math"
)

// Percent is a percentage value (100-based: Percent(1.5) prints "1.50%").
type Percent float64

// Fraction converts a fractional return (0.015) into a Percent (1.5%).
func Fraction(f float64) Percent { return Percent(100 * f) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// IsNaN reports whether the percent carries the not-a-number sentinel.
func (p Percent) IsNaN() bool { return math.IsNaN(float64(p)) }

func (p Percent) String() string {
	if p.IsNaN() {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString formats the percent with an explicit sign, and "-" for zero.
func (p Percent) SignedString() string {
	if p.IsNaN() {
		return "n/a"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
