package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/quantbr/perf"
	"github.com/quantbr/perf/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expect from the expert.
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand how his Brazilian portfolio performed:
			returns, volatility, drawdowns, and how it compares to CDI, Ibovespa or IFIX.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.

			The user will assume that you know which series are stored locally, check the
			store first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarkets returns an expert grounded by Google Search for anything the
// local store cannot answer: news, index composition, rate decisions.
func NewMarkets() *Expert {
	return &Expert{
		Name: "Markets",
		Description: `This is an expert on Brazilian financial markets.
		Very well aware of B3-listed companies, real estate funds, the Selic and CDI rates,
		and the latest market news. Ask Markets whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert on Brazilian financial markets: B3, fixed income, CDI and Selic,
			real estate funds (FIIs), and the institutions around them. You leverage Google
			Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the locally stored series. It can
// list what is stored and compute performance reports from it.
func NewAnalyst(storeDir string) *Expert {
	lib := []Function{listSeries(storeDir), performance(storeDir)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of the locally stored value series:
		portfolio NAV and benchmark levels. He can list the stored series and compute
		performance reports (returns, volatility, Sharpe, drawdown) over any date range.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a quantitative analyst in charge of the user's stored value series.
				You know how to use the Tools to list the series and compute performance
				reports. You are part of a team of experts, yours is everything that can be
				computed from the local store. They might ask you questions with approximative
				names, figure out which stored series they meant.

				Use the available tools to get information about
				  - which series are stored and over which dates
				  - the performance of a series, alone or against benchmarks
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func listSeries(storeDir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "ListSeries",
			Description: `ListSeries lists every value series in the local store, with the
			date span and number of points of each one.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the stored series with their spans.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			store, err := perf.DecodeSeriesStore(storeDir)
			if err != nil {
				return errResponse(id, "ListSeries", err)
			}
			var b strings.Builder
			fmt.Fprintln(&b, "| Series | From | To | Points |")
			fmt.Fprintln(&b, "|---|---|---|---:|")
			for _, name := range store.Names() {
				ts := store.Get(name)
				span, ok := ts.Span()
				if !ok {
					continue
				}
				fmt.Fprintf(&b, "| %s | %s | %s | %d |\n", name, span.From, span.To, ts.Len())
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "ListSeries",
				Response: map[string]any{
					"output": b.String(),
				},
			}
		},
	}
}

func performance(storeDir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Performance",
			Description: `Performance computes a full performance report for one stored series:
			cumulative return, annualized volatility, Sharpe and Sortino ratios, max drawdown,
			monthly returns, and the comparison against the requested benchmark series.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"series": {
						Type:        genai.TypeString,
						Description: "Name of the stored series to analyse, as returned by ListSeries.",
					},
					"benchmarks": {
						Type:        genai.TypeString,
						Description: "Comma-separated names of stored series to compare against. Optional.",
					},
					"from": {
						Type:        genai.TypeString,
						Description: "Start date, YYYY-MM-DD. Defaults to the first stored date.",
					},
					"to": {
						Type:        genai.TypeString,
						Description: "End date, YYYY-MM-DD. Defaults to the last stored date.",
					},
				},
				Required: []string{"series"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted performance report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			name, ok := args["series"].(string)
			if !ok {
				return errResponse(id, "Performance", fmt.Errorf("argument 'series' is not a string but %T", args["series"]))
			}
			store, err := perf.DecodeSeriesStore(storeDir)
			if err != nil {
				return errResponse(id, "Performance", err)
			}
			nav := store.Get(name)
			if nav == nil {
				return errResponse(id, "Performance", fmt.Errorf("no series %q in store, use ListSeries to see what is available", name))
			}

			span, ok := nav.Span()
			if !ok {
				return errResponse(id, "Performance", fmt.Errorf("series %q is empty", name))
			}
			r := span
			if s, ok := args["from"].(string); ok && s != "" {
				if r.From, err = perf.ParseDate(s); err != nil {
					return errResponse(id, "Performance", fmt.Errorf("argument 'from': %w", err))
				}
			}
			if s, ok := args["to"].(string); ok && s != "" {
				if r.To, err = perf.ParseDate(s); err != nil {
					return errResponse(id, "Performance", fmt.Errorf("argument 'to': %w", err))
				}
			}

			var benchmarks []perf.Benchmark
			if s, ok := args["benchmarks"].(string); ok && s != "" {
				var names []string
				for _, b := range strings.Split(s, ",") {
					names = append(names, strings.TrimSpace(b))
				}
				if benchmarks, err = store.Benchmarks(r, names...); err != nil {
					return errResponse(id, "Performance", err)
				}
			}

			// The stored CDI rates double as the risk-free rate for the ratios.
			var riskFree *perf.TimeSeries
			if store.Has(perf.SeriesCDI) {
				if riskFree, err = store.RiskFree(r, perf.SeriesCDI); err != nil {
					return errResponse(id, "Performance", err)
				}
			}

			report, err := perf.NewPerformanceReport(
				perf.Portfolio{Name: name, NAV: nav},
				benchmarks, riskFree, perf.B3, r, perf.DefaultReportConfig())
			if err != nil {
				return errResponse(id, "Performance", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Performance",
				Response: map[string]any{
					"output": renderer.ReportMarkdown(report),
				},
			}
		},
	}
}
