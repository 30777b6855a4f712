package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/khushikukreja26/MarketPulseAI/db"
	"github.com/khushikukreja26/MarketPulseAI/internal/config"
	"github.com/khushikukreja26/MarketPulseAI/internal/report"
	"github.com/khushikukreja26/MarketPulseAI/internal/repository"
	"github.com/khushikukreja26/MarketPulseAI/pkg/insight"
	"github.com/khushikukreja26/MarketPulseAI/pkg/kpi"
	"github.com/khushikukreja26/MarketPulseAI/pkg/notify"
)

// Run-once batch job, meant to be scheduled weekly. Generates and stores a
// report for every org listed in REPORT_ORG_IDS.
func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	if len(cfg.ReportOrgIDs) == 0 {
		slog.Error("REPORT_ORG_IDS is not configured, nothing to do")
		return
	}

	err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	provider := newKPIProvider(cfg)
	generator := insight.NewGenerator(newModelClient(cfg))
	reportRepo := repository.NewReportRepository(db.DB)
	notifier := notify.NewRedisNotifier(db.Redis)
	composer := report.NewComposer(provider, generator, reportRepo, notifier)

	ctx := context.Background()

	var generated, failed int
	for _, orgID := range cfg.ReportOrgIDs {
		doc, err := composer.Compose(ctx, orgID)
		if err != nil {
			slog.Error("error generating report", "org_id", orgID, "error", err)
			failed++
			continue
		}

		slog.Info("report generated", "org_id", orgID, "report_id", doc.ID, "risk_score", doc.Insights.RiskScore)
		generated++
	}

	slog.Info("reporter run complete", "generated", generated, "failed", failed)
}

func newKPIProvider(cfg *config.Config) kpi.Provider {
	static := kpi.NewStaticProvider()

	if cfg.FinnhubAPIKey != "" && len(cfg.OrgSymbols) > 0 {
		return kpi.NewFinnhubProvider(cfg.FinnhubAPIKey, cfg.OrgSymbols, static)
	}

	return static
}

func newModelClient(cfg *config.Config) insight.ModelClient {
	switch cfg.LLMProvider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			slog.Warn("ANTHROPIC_API_KEY not set, AI insights will fall back to rule-based logic")
			return nil
		}
		return insight.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.LLMModel)
	default:
		if cfg.OpenAIAPIKey == "" {
			slog.Warn("OPENAI_API_KEY not set, AI insights will fall back to rule-based logic")
			return nil
		}
		return insight.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	}
}
