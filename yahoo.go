package perf

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// Fetching of daily index levels from the Yahoo Finance chart API, used for
// the Ibovespa and IFIX benchmarks that SGS does not publish.

// Yahoo symbols of the standard Brazilian index benchmarks.
const (
	YahooIbovespa = "^BVSP"
	YahooIFIX     = "IFIX.SA"
)

// Store names under which fetch keeps the index level series.
const (
	SeriesIbovespa = "IBOV"
	SeriesIFIX     = "IFIX"
)

var yahooBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// FetchYahooDaily retrieves the daily closes of a symbol over a date range.
// Days with a null close (halted sessions) are skipped.
func FetchYahooDaily(client *http.Client, symbol string, r Range) (*TimeSeries, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("period1", fmt.Sprintf("%d", r.From.time().Unix()))
	// period2 is exclusive, push it to the end of the last requested day.
	q.Set("period2", fmt.Sprintf("%d", r.To.Add(1).time().Unix()))
	addr := fmt.Sprintf("%s/%s?%s", yahooBaseURL, url.PathEscape(symbol), q.Encode())

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch %q from yahoo: %w", symbol, err)
	}

	timestamps, err := jsonlist(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, fmt.Errorf("yahoo %q: %w", symbol, err)
	}
	closes, err := jsonlist(jobj, "$.chart.result[0].indicators.quote[0].close")
	if err != nil {
		return nil, fmt.Errorf("yahoo %q: %w", symbol, err)
	}
	if len(timestamps) != len(closes) {
		return nil, fmt.Errorf("yahoo %q: %d timestamps but %d closes", symbol, len(timestamps), len(closes))
	}

	ts := NewTimeSeries()
	for i, jts := range timestamps {
		sec, ok := jts.(float64)
		if !ok {
			return nil, fmt.Errorf("yahoo %q: timestamp %v is not a number", symbol, jts)
		}
		val, ok := closes[i].(float64)
		if !ok {
			// null close for that session
			continue
		}
		on := time.Unix(int64(sec), 0).UTC()
		ts.Append(NewDate(on.Date()), val)
	}
	return ts, nil
}

// jsonlist evaluates a jsonpath expression that must resolve to a list.
func jsonlist(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing response: %q %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing response: %q is not a list, got %T", path, jval)
	}
	return jlist, nil
}
