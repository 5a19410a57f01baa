package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/quantbr/perf"
)

type fetchCmd struct {
	start string
	date  string
	only  string
}

func (*fetchCmd) Name() string { return "fetch" }
func (*fetchCmd) Synopsis() string {
	return "download the standard benchmark series into the store"
}
func (*fetchCmd) Usage() string {
	return `qpr fetch [-start <date>] [-d <date>] [-only <names>]

  Downloads the CDI daily rate from Banco Central's SGS service and the
  Ibovespa and IFIX daily closes from Yahoo Finance, and merges them into
  the store under the names CDI, IBOV and IFIX.

  Responses are cached on disk for the day, re-running fetch is cheap.

Usage Examples:
# Refresh the last five years of all three benchmarks.
$ qpr fetch

# Refresh only the CDI for 2025.
$ qpr fetch -only CDI -start 2025-01-01
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "-5y", "Start date of the range to download")
	f.StringVar(&c.date, "d", "", "End date of the range to download (defaults to today)")
	f.StringVar(&c.only, "only", "", "Comma-separated subset of CDI,IBOV,IFIX to download")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	r, err := c.parseRange()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	wanted, err := c.parseOnly()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load store: %v\n", err)
		return subcommands.ExitFailure
	}

	client := perf.DailyClient()
	for _, name := range wanted {
		var ts *perf.TimeSeries
		var err error
		switch name {
		case perf.SeriesCDI:
			ts, err = perf.FetchCDI(client, r)
		case perf.SeriesIbovespa:
			ts, err = perf.FetchYahooDaily(client, perf.YahooIbovespa, r)
		case perf.SeriesIFIX:
			ts, err = perf.FetchYahooDaily(client, perf.YahooIFIX, r)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", name, err)
			return subcommands.ExitFailure
		}
		store.Merge(name, ts)
		fmt.Printf("Fetched %d points of %s\n", ts.Len(), name)
	}

	if err := EncodeStore(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *fetchCmd) parseRange() (perf.Range, error) {
	from, err := perf.ParseDate(c.start)
	if err != nil {
		return perf.Range{}, err
	}
	to := perf.Today()
	if c.date != "" {
		if to, err = perf.ParseDate(c.date); err != nil {
			return perf.Range{}, err
		}
	}
	return perf.NewRange(from, to), nil
}

func (c *fetchCmd) parseOnly() ([]string, error) {
	if c.only == "" {
		return []string{perf.SeriesCDI, perf.SeriesIbovespa, perf.SeriesIFIX}, nil
	}
	var wanted []string
	for _, name := range strings.Split(c.only, ",") {
		name = strings.ToUpper(strings.TrimSpace(name))
		switch name {
		case perf.SeriesCDI, perf.SeriesIbovespa, perf.SeriesIFIX:
			wanted = append(wanted, name)
		default:
			return nil, fmt.Errorf("unknown benchmark %q (want CDI, IBOV or IFIX)", name)
		}
	}
	return wanted, nil
}
