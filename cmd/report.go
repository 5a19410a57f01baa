package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/quantbr/perf"
	"github.com/quantbr/perf/renderer"
)

// reportCmd computes a performance report over an arbitrary range. The period
// commands (weekly, monthly, ...) embed it and preset the period.
type reportCmd struct {
	series     string
	benchmarks string
	riskFree   string
	date       string
	start      string
	calendar   string
	period     string

	// resolved by init
	cal   perf.Calendar
	r     perf.Range
	store *perf.SeriesStore
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a performance report over an arbitrary range" }
func (*reportCmd) Usage() string {
	return `qpr report [-s <series>] [-b <benchmarks>] [-rf <series>] [-d <date>] [-start <date>|-p <period>]

  Displays a performance report of the portfolio series: cumulative return,
  annualized volatility, Sharpe and Sortino ratios, max drawdown, and the
  comparison against each benchmark series.

Usage Examples:
# Report the current month of the NAV series against CDI and Ibovespa.
$ qpr report -b CDI,IBOV -rf CDI

# Report 2025 so far.
$ qpr report -start 2025-01-01
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.commonFlags(f)
	f.StringVar(&c.start, "start", "", "Start date for the report (overrides -p)")
	f.StringVar(&c.period, "p", "", "Standard period ending at -d (day, week, month, quarter, year)")
}

// commonFlags declares the flags every report-like command shares.
func (c *reportCmd) commonFlags(f *flag.FlagSet) {
	f.StringVar(&c.series, "s", "NAV", "Stored series holding the portfolio value")
	f.StringVar(&c.benchmarks, "b", "", "Comma-separated stored series to compare against")
	f.StringVar(&c.riskFree, "rf", "", "Stored daily-rate series used as the risk-free rate for ratios")
	f.StringVar(&c.date, "d", "", "End date for the report period (defaults to today)")
	f.StringVar(&c.calendar, "cal", "b3", "Trading calendar (b3 or weekdays)")
}

// init resolves the flags and loads the store.
func (c *reportCmd) init() error {
	if err := c.resolveRange(); err != nil {
		return err
	}
	var err error
	c.store, err = DecodeStore()
	return err
}

// resolveRange resolves the calendar and the report range from the flags.
func (c *reportCmd) resolveRange() error {
	var err error
	c.cal, err = perf.ParseCalendar(c.calendar)
	if err != nil {
		return err
	}

	end := perf.Today()
	if c.date != "" {
		if end, err = perf.ParseDate(c.date); err != nil {
			return err
		}
	}
	// Reports always end on a close, snap to the last trading day.
	if end, err = perf.LastTradingDay(c.cal, end); err != nil {
		return err
	}

	switch {
	case c.start != "":
		from, err := perf.ParseDate(c.start)
		if err != nil {
			return err
		}
		c.r = perf.NewRange(from, end)
	case c.period != "":
		p, err := perf.ParsePeriod(c.period)
		if err != nil {
			return err
		}
		from, err := c.anchor(p, end)
		if err != nil {
			return err
		}
		c.r = perf.NewRange(from, end)
	default:
		from, err := c.anchor(perf.Monthly, end)
		if err != nil {
			return err
		}
		c.r = perf.NewRange(from, end)
	}
	return nil
}

// anchor returns the start of a period report ending at end: the previous
// period's last trading close, so that the period's first trading day already
// contributes a return.
func (c *reportCmd) anchor(p perf.Period, end perf.Date) (perf.Date, error) {
	if p == perf.Weekly {
		// A week is measured from the previous week's final Friday close.
		return perf.PreviousTradingFriday(c.cal, end)
	}
	return perf.LastTradingDay(c.cal, end.StartOf(p).Add(-1))
}

// generate computes the report from the resolved flags and the store.
func (c *reportCmd) generate() (*perf.PerformanceReport, error) {
	nav := c.store.Get(c.series)
	if nav == nil {
		return nil, fmt.Errorf("no series %q in store %q, run 'qpr list' to see what is available", c.series, StorePath())
	}

	p := perf.Portfolio{Name: c.series, NAV: nav}
	// Series named "<series>.<label>" are the portfolio's categories.
	prefix := c.series + "."
	for _, name := range c.store.Names() {
		if label, found := strings.CutPrefix(name, prefix); found {
			if p.Categories == nil {
				p.Categories = make(map[string]*perf.TimeSeries)
			}
			p.Categories[label] = c.store.Get(name)
		}
	}

	var benchmarks []perf.Benchmark
	if c.benchmarks != "" {
		names := strings.Split(c.benchmarks, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		var err error
		if benchmarks, err = c.store.Benchmarks(c.r, names...); err != nil {
			return nil, err
		}
	}

	riskFree, err := c.store.RiskFree(c.r, c.riskFree)
	if err != nil {
		return nil, err
	}

	return perf.NewPerformanceReport(p, benchmarks, riskFree, c.cal, c.r, perf.DefaultReportConfig())
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if err := c.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	report, err := c.generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
