package insight

import (
	"context"
	"log/slog"
	"time"
)

const modelTimeout = 30 * time.Second

const (
	sourceModel = "model"
	sourceRules = "rules"
)

// Generator produces insights from KPI records. With a ModelClient it asks the
// model first and silently degrades to the rule-based path on any failure;
// callers never see an error and cannot tell which path produced the result.
type Generator struct {
	client ModelClient
}

// NewGenerator accepts a nil client, in which case only the rule-based path runs.
func NewGenerator(client ModelClient) *Generator {
	return &Generator{client: client}
}

func (g *Generator) Generate(ctx context.Context, kpis []KPIInput) Insight {
	result, _ := g.generate(ctx, kpis)
	return result
}

func (g *Generator) generate(ctx context.Context, kpis []KPIInput) (Insight, string) {
	if g.client == nil || len(kpis) == 0 {
		return RuleBased(kpis), sourceRules
	}

	ctx, cancel := context.WithTimeout(ctx, modelTimeout)
	defer cancel()

	result, err := g.client.GenerateInsights(ctx, kpis)
	if err != nil {
		slog.Warn("model insight generation failed, falling back to rules", "model", g.client.Name(), "error", err)
		return RuleBased(kpis), sourceRules
	}

	result.RiskScore = clampRisk(result.RiskScore)
	return *result, sourceModel
}
