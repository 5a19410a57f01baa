// Package perf provides a pure, stateless computation engine for
// investment-portfolio performance analysis, designed around the Brazilian
// market conventions (B3 trading calendar, CDI/Ibovespa/IFIX benchmarks,
// 252-business-day annualization).
//
// The core functionalities include:
//   - Time Series: an ordered, date-indexed series of float64 values with
//     strictly increasing, unique dates.
//   - Alignment: restricting a set of series to their common trading dates
//     before any ratio or difference is computed.
//   - Performance Metrics: period and cumulative returns, annualized
//     volatility, Sharpe and Sortino ratios, maximum drawdown, benchmark
//     comparison, and monthly compounded return matrices.
//   - Benchmark Data: fetching CDI daily rates from Banco Central's SGS and
//     index levels from Yahoo Finance, with compounding into index series.
//   - Data Persistence: a human-readable, git-friendly JSONL store for
//     named series.
//
// Every operation takes its inputs explicitly and returns a new result: the
// engine holds no shared mutable state and is safe for concurrent use. All
// blocking I/O (market data fetching) lives in the provider functions, never
// in the metric computations.
//
// This package serves as the foundational logic for the `qpr` command-line
// tool, which renders performance reports from stored series.
package perf
