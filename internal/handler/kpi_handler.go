package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khushikukreja26/MarketPulseAI/pkg/kpi"
)

type KPIProvider interface {
	Fetch(ctx context.Context, orgID, timeframe string) ([]kpi.Record, error)
}

type KPIHandler struct {
	provider KPIProvider
}

func NewKPIHandler(provider KPIProvider) *KPIHandler {
	return &KPIHandler{provider: provider}
}

func (h *KPIHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "MarketPulse AI backend is running"})
}

func (h *KPIHandler) GetKPIs(c *gin.Context) {
	orgID := c.Query("orgId")
	timeframe := c.DefaultQuery("timeframe", "weekly")

	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing orgId query param"})
		return
	}

	records, err := h.provider.Fetch(c.Request.Context(), orgID, timeframe)
	if err != nil {
		slog.Error("error fetching KPIs", "org_id", orgID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "KPI source error"})
		return
	}

	c.JSON(http.StatusOK, KPIsResponse{
		OrgID:     orgID,
		Timeframe: timeframe,
		Metrics:   toKPIResponses(records),
	})
}
