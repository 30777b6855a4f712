package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khushikukreja26/MarketPulseAI/pkg/insight"
)

type InsightGenerator interface {
	Generate(ctx context.Context, kpis []insight.KPIInput) insight.Insight
}

type InsightHandler struct {
	provider  KPIProvider
	generator InsightGenerator
}

func NewInsightHandler(provider KPIProvider, generator InsightGenerator) *InsightHandler {
	return &InsightHandler{provider: provider, generator: generator}
}

type InsightRequest struct {
	OrgID     string `json:"orgId"`
	Timeframe string `json:"timeframe"`
}

func (h *InsightHandler) GenerateInsights(c *gin.Context) {
	var req InsightRequest
	// A missing or malformed body is treated the same as an empty one;
	// the orgId check below rejects both.
	_ = c.ShouldBindJSON(&req)

	if req.OrgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing orgId in request body"})
		return
	}
	if req.Timeframe == "" {
		req.Timeframe = "weekly"
	}

	records, err := h.provider.Fetch(c.Request.Context(), req.OrgID, req.Timeframe)
	if err != nil {
		slog.Error("error fetching KPIs for insights", "org_id", req.OrgID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "KPI source error"})
		return
	}

	inputs := make([]insight.KPIInput, len(records))
	for i, r := range records {
		inputs[i] = insight.KPIInput{Name: r.Name, Value: r.Value, Change: r.Change}
	}

	insights := h.generator.Generate(c.Request.Context(), inputs)

	c.JSON(http.StatusOK, InsightsResponse{
		OrgID:     req.OrgID,
		Timeframe: req.Timeframe,
		KPIs:      toKPIResponses(records),
		Insights:  toInsightResponse(insights),
	})
}
