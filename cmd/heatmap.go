package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quantbr/perf"
	"github.com/quantbr/perf/renderer"
)

type heatmapCmd struct {
	series   string
	start    string
	date     string
	calendar string
}

func (*heatmapCmd) Name() string     { return "heatmap" }
func (*heatmapCmd) Synopsis() string { return "display the monthly returns heatmap of a series" }
func (*heatmapCmd) Usage() string {
	return `qpr heatmap [-s <series>] [-start <date>] [-d <date>]

  Displays the month-by-month compounded returns of the series as a
  year-by-month table, with a compounded total per year.
`
}

func (c *heatmapCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.series, "s", "NAV", "Stored series holding the portfolio value")
	f.StringVar(&c.start, "start", "", "Start date (defaults to the first stored date)")
	f.StringVar(&c.date, "d", "", "End date (defaults to today)")
	f.StringVar(&c.calendar, "cal", "b3", "Trading calendar (b3 or weekdays)")
}

func (c *heatmapCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	monthly, err := c.generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HeatmapMarkdown(c.series, monthly))
	return subcommands.ExitSuccess
}

func (c *heatmapCmd) generate() (map[perf.YearMonth]float64, error) {
	cal, err := perf.ParseCalendar(c.calendar)
	if err != nil {
		return nil, err
	}
	store, err := DecodeStore()
	if err != nil {
		return nil, err
	}
	nav := store.Get(c.series)
	if nav == nil {
		return nil, fmt.Errorf("no series %q in store %q, run 'qpr list' to see what is available", c.series, StorePath())
	}

	span, ok := nav.Span()
	if !ok {
		return nil, fmt.Errorf("series %q is empty", c.series)
	}
	r := span
	if c.start != "" {
		if r.From, err = perf.ParseDate(c.start); err != nil {
			return nil, err
		}
	}
	if c.date != "" {
		if r.To, err = perf.ParseDate(c.date); err != nil {
			return nil, err
		}
	}

	aligned, err := perf.Align(cal, nav.Between(r))
	if err != nil {
		return nil, fmt.Errorf("heatmap of %q over %s..%s: %w", c.series, r.From, r.To, err)
	}
	returns, err := perf.PeriodReturns(aligned[0])
	if err != nil {
		return nil, fmt.Errorf("heatmap of %q over %s..%s: %w", c.series, r.From, r.To, err)
	}
	return perf.MonthlyReturns(returns), nil
}
