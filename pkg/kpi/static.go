package kpi

import "context"

// StaticProvider returns a fixed KPI snapshot for every org. It stands in
// until a real competitor-data warehouse is wired up.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Name() string {
	return "Static"
}

func (p *StaticProvider) Fetch(ctx context.Context, orgID, timeframe string) ([]Record, error) {
	return []Record{
		{Name: "Market Share", Value: 25.0, Change: 2.5},
		{Name: "Avg Price vs Competitor", Value: -3.2, Change: -1.1},
		{Name: "Campaigns Active", Value: 4, Change: 1.0},
	}, nil
}
