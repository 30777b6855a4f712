package model

import "time"

type KPI struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

type Insight struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	RiskScore       int      `json:"risk_score"`
}

type Report struct {
	ID        string
	OrgID     string
	Title     string
	KPIs      []KPI
	Insights  Insight
	CreatedAt time.Time
}
