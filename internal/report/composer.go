package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/khushikukreja26/MarketPulseAI/internal/model"
	"github.com/khushikukreja26/MarketPulseAI/pkg/insight"
	"github.com/khushikukreja26/MarketPulseAI/pkg/kpi"
	"github.com/khushikukreja26/MarketPulseAI/pkg/notify"
)

const (
	notificationTitle = "New Weekly MarketPulse Report"
	notificationBody  = "Your latest competitor insights report is ready."
)

type Store interface {
	SaveReport(report *model.Report) error
}

type InsightGenerator interface {
	Generate(ctx context.Context, kpis []insight.KPIInput) insight.Insight
}

// Composer builds the weekly report for an org: fetch KPIs, generate insights,
// persist the document, then notify. Persistence failure aborts the report;
// notification failure is logged and swallowed.
type Composer struct {
	provider  kpi.Provider
	generator InsightGenerator
	store     Store
	notifier  notify.Notifier
}

func NewComposer(provider kpi.Provider, generator InsightGenerator, store Store, notifier notify.Notifier) *Composer {
	return &Composer{
		provider:  provider,
		generator: generator,
		store:     store,
		notifier:  notifier,
	}
}

func (c *Composer) Compose(ctx context.Context, orgID string) (*model.Report, error) {
	records, err := c.provider.Fetch(ctx, orgID, "weekly")
	if err != nil {
		slog.Error("error fetching KPIs for report, continuing with empty set", "org_id", orgID, "error", err)
		records = nil
	}

	insights := c.generator.Generate(ctx, toInsightInputs(records))

	doc := &model.Report{
		OrgID:     orgID,
		Title:     fmt.Sprintf("Weekly MarketPulse Report for org %s", orgID),
		KPIs:      toModelKPIs(records),
		Insights:  toModelInsight(insights),
		CreatedAt: time.Now().UTC(),
	}

	if err := c.store.SaveReport(doc); err != nil {
		return nil, fmt.Errorf("saving report for org %s: %w", orgID, err)
	}

	topic := "org_" + orgID
	if err := c.notifier.Send(ctx, topic, notificationTitle, notificationBody); err != nil {
		slog.Error("error sending report notification", "org_id", orgID, "topic", topic, "error", err)
	}

	return doc, nil
}

func toInsightInputs(records []kpi.Record) []insight.KPIInput {
	inputs := make([]insight.KPIInput, len(records))
	for i, r := range records {
		inputs[i] = insight.KPIInput{
			Name:   r.Name,
			Value:  r.Value,
			Change: r.Change,
		}
	}
	return inputs
}

func toModelKPIs(records []kpi.Record) []model.KPI {
	kpis := make([]model.KPI, len(records))
	for i, r := range records {
		kpis[i] = model.KPI{
			Name:   r.Name,
			Value:  r.Value,
			Change: r.Change,
		}
	}
	return kpis
}

func toModelInsight(in insight.Insight) model.Insight {
	return model.Insight{
		Summary:         in.Summary,
		Recommendations: in.Recommendations,
		RiskScore:       in.RiskScore,
	}
}
