package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/quantbr/perf"
)

func storeFixture() *perf.SeriesStore {
	d1 := perf.NewDate(2025, time.March, 10)
	d2 := perf.NewDate(2025, time.March, 11)
	d3 := perf.NewDate(2025, time.March, 12)

	store := perf.NewSeriesStore()
	store.Add("NAV", perf.NewTimeSeries().Append(d1, 100).Append(d2, 110).Append(d3, 99))
	store.Add("NAV.FIIs", perf.NewTimeSeries().Append(d1, 50).Append(d2, 51).Append(d3, 52))
	store.Add(perf.SeriesCDI, perf.NewTimeSeries().Append(d1, 0.05).Append(d2, 0.05).Append(d3, 0.05))
	return store
}

func TestReportGenerate(t *testing.T) {
	c := reportCmd{
		series:     "NAV",
		benchmarks: "CDI",
		riskFree:   "CDI",
		cal:        perf.B3,
		r:          perf.NewRange(perf.NewDate(2025, time.March, 10), perf.NewDate(2025, time.March, 12)),
		store:      storeFixture(),
	}

	report, err := c.generate()
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}
	if !report.Cumulative.Equal(perf.Percent(-1)) {
		t.Errorf("Cumulative = %s, want -1.00%%", report.Cumulative)
	}
	if len(report.Benchmarks) != 1 || report.Benchmarks[0].Name != "CDI" {
		t.Fatalf("Benchmarks = %+v, want a single CDI entry", report.Benchmarks)
	}
	// CDI rates are compounded into index levels, the comparison must be positive.
	if report.Benchmarks[0].Cumulative <= 0 {
		t.Errorf("CDI cumulative = %s, want > 0", report.Benchmarks[0].Cumulative)
	}
	// Series named NAV.<label> become the portfolio categories.
	if len(report.Categories) != 1 || report.Categories[0].Label != "FIIs" {
		t.Fatalf("Categories = %+v, want a single FIIs entry", report.Categories)
	}
	if !report.Categories[0].Cumulative.Equal(perf.Percent(4)) {
		t.Errorf("FIIs cumulative = %s, want +4.00%%", report.Categories[0].Cumulative)
	}
}

func TestReportGenerate_UnknownSeries(t *testing.T) {
	c := reportCmd{
		series: "missing",
		cal:    perf.B3,
		r:      perf.NewRange(perf.NewDate(2025, time.March, 10), perf.NewDate(2025, time.March, 12)),
		store:  storeFixture(),
	}
	if _, err := c.generate(); err == nil {
		t.Error("generate() with an unknown series should fail")
	}
}

func TestReportGenerate_DisjointRange(t *testing.T) {
	c := reportCmd{
		series: "NAV",
		cal:    perf.B3,
		r:      perf.NewRange(perf.NewDate(2030, time.January, 1), perf.NewDate(2030, time.January, 31)),
		store:  storeFixture(),
	}
	_, err := c.generate()
	if !errors.Is(err, perf.ErrInvalidRange) {
		t.Errorf("generate() error = %v, want ErrInvalidRange", err)
	}
}

func TestReportResolveRange_PeriodAnchors(t *testing.T) {
	// Period presets start at the previous period's last trading close, so
	// the first trading day of the period already contributes a return.
	tests := []struct {
		period string
		date   string
		from   perf.Date
		to     perf.Date
	}{
		// The week is measured from the previous week's Friday close.
		{"week", "2025-03-12", perf.NewDate(2025, time.March, 7), perf.NewDate(2025, time.March, 12)},
		// March 1st 2025 is a Saturday, the month anchors on Friday Feb 28.
		{"month", "2025-03-12", perf.NewDate(2025, time.February, 28), perf.NewDate(2025, time.March, 12)},
		{"quarter", "2025-05-15", perf.NewDate(2025, time.March, 31), perf.NewDate(2025, time.May, 15)},
		{"year", "2025-03-12", perf.NewDate(2024, time.December, 31), perf.NewDate(2025, time.March, 12)},
	}
	for _, test := range tests {
		c := reportCmd{period: test.period, date: test.date, calendar: "b3"}
		if err := c.resolveRange(); err != nil {
			t.Fatalf("resolveRange(%s) error = %v", test.period, err)
		}
		if c.r.From != test.from || c.r.To != test.to {
			t.Errorf("%s range = %s..%s, want %s..%s",
				test.period, c.r.From, c.r.To, test.from, test.to)
		}
	}
}

func TestFetchParseOnly(t *testing.T) {
	tests := []struct {
		only    string
		want    int
		wantErr bool
	}{
		{only: "", want: 3},
		{only: "CDI", want: 1},
		{only: "cdi, ibov", want: 2},
		{only: "SELIC", wantErr: true},
	}
	for _, test := range tests {
		c := fetchCmd{only: test.only}
		got, err := c.parseOnly()
		if (err != nil) != test.wantErr {
			t.Errorf("parseOnly(%q) error = %v, wantErr %v", test.only, err, test.wantErr)
			continue
		}
		if len(got) != test.want && !test.wantErr {
			t.Errorf("parseOnly(%q) = %v, want %d names", test.only, got, test.want)
		}
	}
}
