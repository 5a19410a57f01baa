package perf

import "errors"

// Failure kinds reported by the engine. They are always returned wrapped with
// context and never coerced to zero results; callers test them with
// [errors.Is]. The only numeric convention that is not an error is the NaN
// sentinel returned by Sharpe and Sortino on zero volatility.
var (
	// ErrNoOverlap reports that a set of series has no common trading date.
	ErrNoOverlap = errors.New("no common trading date across series")

	// ErrInsufficientData reports fewer points than the metric requires.
	ErrInsufficientData = errors.New("insufficient data points")

	// ErrInvalidRange reports a requested date range outside the available data.
	ErrInvalidRange = errors.New("date range outside available data")
)
