package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/khushikukreja26/MarketPulseAI/db"
	"github.com/khushikukreja26/MarketPulseAI/internal/config"
	"github.com/khushikukreja26/MarketPulseAI/internal/handler"
	"github.com/khushikukreja26/MarketPulseAI/internal/report"
	"github.com/khushikukreja26/MarketPulseAI/internal/repository"
	"github.com/khushikukreja26/MarketPulseAI/pkg/insight"
	"github.com/khushikukreja26/MarketPulseAI/pkg/kpi"
	"github.com/khushikukreja26/MarketPulseAI/pkg/notify"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

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

	kpiHandler := handler.NewKPIHandler(provider)
	insightHandler := handler.NewInsightHandler(provider, generator)
	reportHandler := handler.NewReportHandler(composer, reportRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", kpiHandler.GetHealth)
	r.GET("/api/kpis", kpiHandler.GetKPIs)
	r.POST("/api/insights", insightHandler.GenerateInsights)
	r.POST("/api/generate-weekly-report", reportHandler.GenerateWeeklyReport)
	r.GET("/api/reports", reportHandler.GetReports)
	r.GET("/api/reports/latest", reportHandler.GetLatestReport)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
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
