package handler

import (
	"time"

	"github.com/khushikukreja26/MarketPulseAI/internal/model"
	"github.com/khushikukreja26/MarketPulseAI/pkg/insight"
	"github.com/khushikukreja26/MarketPulseAI/pkg/kpi"
)

type KPIResponse struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

type InsightResponse struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	RiskScore       int      `json:"risk_score"`
}

type KPIsResponse struct {
	OrgID     string        `json:"orgId"`
	Timeframe string        `json:"timeframe"`
	Metrics   []KPIResponse `json:"metrics"`
}

type InsightsResponse struct {
	OrgID     string          `json:"orgId"`
	Timeframe string          `json:"timeframe"`
	KPIs      []KPIResponse   `json:"kpis"`
	Insights  InsightResponse `json:"insights"`
}

type ReportResponse struct {
	OrgID     string          `json:"orgId"`
	CreatedAt string          `json:"createdAt"`
	KPIs      []KPIResponse   `json:"kpis"`
	Insights  InsightResponse `json:"insights"`
	Title     string          `json:"title"`
}

type ReportsResponse struct {
	Latest  *ReportResponse  `json:"latest"`
	History []ReportResponse `json:"history"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

func toKPIResponses(records []kpi.Record) []KPIResponse {
	res := make([]KPIResponse, len(records))
	for i, r := range records {
		res[i] = KPIResponse{Name: r.Name, Value: r.Value, Change: r.Change}
	}
	return res
}

func modelKPIsToResponses(kpis []model.KPI) []KPIResponse {
	res := make([]KPIResponse, len(kpis))
	for i, k := range kpis {
		res[i] = KPIResponse{Name: k.Name, Value: k.Value, Change: k.Change}
	}
	return res
}

func toInsightResponse(in insight.Insight) InsightResponse {
	return InsightResponse{
		Summary:         in.Summary,
		Recommendations: in.Recommendations,
		RiskScore:       in.RiskScore,
	}
}

func modelInsightToResponse(in model.Insight) InsightResponse {
	return InsightResponse{
		Summary:         in.Summary,
		Recommendations: in.Recommendations,
		RiskScore:       in.RiskScore,
	}
}

func toReportResponse(r model.Report) ReportResponse {
	return ReportResponse{
		OrgID:     r.OrgID,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		KPIs:      modelKPIsToResponses(r.KPIs),
		Insights:  modelInsightToResponse(r.Insights),
		Title:     r.Title,
	}
}
