package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khushikukreja26/MarketPulseAI/internal/model"
)

type ReportComposer interface {
	Compose(ctx context.Context, orgID string) (*model.Report, error)
}

type ReportStore interface {
	GetReports(orgID string, limit, offset int) ([]model.Report, error)
	GetReportTotal(orgID string) (int, error)
	GetLatestReport(orgID string) (*model.Report, error)
}

type ReportHandler struct {
	composer ReportComposer
	store    ReportStore
}

func NewReportHandler(composer ReportComposer, store ReportStore) *ReportHandler {
	return &ReportHandler{composer: composer, store: store}
}

type GenerateReportRequest struct {
	OrgID string `json:"orgId"`
}

func (h *ReportHandler) GenerateWeeklyReport(c *gin.Context) {
	var req GenerateReportRequest
	_ = c.ShouldBindJSON(&req)

	if req.OrgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing orgId in request body"})
		return
	}

	report, err := h.composer.Compose(c.Request.Context(), req.OrgID)
	if err != nil {
		slog.Error("error generating weekly report", "org_id", req.OrgID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, toReportResponse(*report))
}

func (h *ReportHandler) GetReports(c *gin.Context) {
	orgID := c.Query("orgId")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing orgId query param"})
		return
	}

	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	reports, err := h.store.GetReports(orgID, limit, offset)
	if err != nil {
		slog.Error("error fetching reports", "org_id", orgID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.store.GetReportTotal(orgID)
	if err != nil {
		slog.Error("error fetching report total", "org_id", orgID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := ReportsResponse{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		History: []ReportResponse{},
	}

	if len(reports) > 0 {
		latest := toReportResponse(reports[0])
		res.Latest = &latest
		for _, r := range reports[1:] {
			res.History = append(res.History, toReportResponse(r))
		}
	}

	c.JSON(http.StatusOK, res)
}

func (h *ReportHandler) GetLatestReport(c *gin.Context) {
	orgID := c.Query("orgId")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing orgId query param"})
		return
	}

	report, err := h.store.GetLatestReport(orgID)
	if err != nil {
		slog.Error("error fetching latest report", "org_id", orgID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No report available"})
		return
	}

	c.JSON(http.StatusOK, toReportResponse(*report))
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
