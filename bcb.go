package perf

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Fetching of time series from Banco Central do Brasil's SGS service
// (Sistema Gerenciador de Séries Temporais). SGS is a public API, no key
// required. Series 12 is the daily CDI rate, the de-facto Brazilian
// risk-free benchmark.

// SGSSeriesCDI is the SGS code of the daily CDI rate (percent per business day).
const SGSSeriesCDI = 12

// SeriesCDI is the store name under which fetch keeps the CDI rate series.
// Unlike the level benchmarks, the stored values are daily percent rates.
const SeriesCDI = "CDI"

var sgsBaseURL = "https://api.bcb.gov.br/dados/serie"

const sgsDateFormat = "02/01/2006" // SGS speaks dd/MM/yyyy

// FetchSGS retrieves an SGS series over a date range. Values arrive as JSON
// strings; they are parsed exactly with decimal before conversion, because
// SGS publishes rates with more digits than a float literal round-trips.
//
// Pass [DailyClient] to benefit from the daily disk cache.
func FetchSGS(client *http.Client, series int, r Range) (*TimeSeries, error) {
	q := url.Values{}
	q.Set("formato", "json")
	q.Set("dataInicial", r.From.Format(sgsDateFormat))
	q.Set("dataFinal", r.To.Format(sgsDateFormat))
	addr := fmt.Sprintf("%s/bcdata.sgs.%d/dados?%s", sgsBaseURL, series, q.Encode())

	// jpoint is the object read from the SGS response using the json parser.
	type jpoint struct {
		Data  string `json:"data"`
		Valor string `json:"valor"`
	}
	var jpoints []jpoint
	if err := jwget(client, addr, &jpoints); err != nil {
		return nil, fmt.Errorf("cannot fetch SGS series %d: %w", series, err)
	}

	ts := NewTimeSeries()
	for _, p := range jpoints {
		on, err := time.Parse(sgsDateFormat, p.Data)
		if err != nil {
			return nil, fmt.Errorf("SGS series %d: invalid date %q: %w", series, p.Data, err)
		}
		val, err := decimal.NewFromString(p.Valor)
		if err != nil {
			return nil, fmt.Errorf("SGS series %d on %s: invalid value %q: %w", series, p.Data, p.Valor, err)
		}
		ts.Append(NewDate(on.Date()), val.InexactFloat64())
	}
	return ts, nil
}

// FetchCDI retrieves the daily CDI rate series over a range. The values are
// percent per business day; see [CDIIndex] and [CDIDailyReturns] for the
// conversions reports need.
func FetchCDI(client *http.Client, r Range) (*TimeSeries, error) {
	return FetchSGS(client, SGSSeriesCDI, r)
}
