package kpi

import (
	"context"
	"fmt"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// FinnhubProvider derives competitor KPIs from FinnHub quote data for orgs
// with a configured ticker symbol. Orgs without a mapping fall through to the
// wrapped provider.
type FinnhubProvider struct {
	client   *finnhub.DefaultApiService
	symbols  map[string]string
	fallback Provider
}

func NewFinnhubProvider(apiKey string, symbols map[string]string, fallback Provider) *FinnhubProvider {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubProvider{
		client:   client,
		symbols:  symbols,
		fallback: fallback,
	}
}

func (p *FinnhubProvider) Name() string {
	return "FinnHub"
}

func (p *FinnhubProvider) Fetch(ctx context.Context, orgID, timeframe string) ([]Record, error) {
	symbol, ok := p.symbols[orgID]
	if !ok {
		return p.fallback.Fetch(ctx, orgID, timeframe)
	}

	quote, _, err := p.client.Quote(ctx).Symbol(symbol).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub quote for %s: %w", symbol, err)
	}

	var records []Record

	if quote.C != nil {
		r := Record{Name: "Share Price", Value: float64(*quote.C)}
		if quote.D != nil {
			r.Change = float64(*quote.D)
		}
		records = append(records, r)
	}

	if quote.Dp != nil {
		records = append(records, Record{
			Name:   "Price Change Percent",
			Value:  float64(*quote.Dp),
			Change: float64(*quote.Dp),
		})
	}

	if quote.H != nil && quote.L != nil {
		records = append(records, Record{
			Name:   "Intraday Range",
			Value:  float64(*quote.H - *quote.L),
			Change: 0,
		})
	}

	return records, nil
}
