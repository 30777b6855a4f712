package insight

import "context"

type KPIInput struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

type Insight struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	RiskScore       int      `json:"risk_score"`
}

type ModelClient interface {
	GenerateInsights(ctx context.Context, kpis []KPIInput) (*Insight, error)
	Name() string
}
