package kpi

import "context"

type Record struct {
	Name   string
	Value  float64
	Change float64
}

type Provider interface {
	Fetch(ctx context.Context, orgID, timeframe string) ([]Record, error)
	Name() string
}
