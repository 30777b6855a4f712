package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/khushikukreja26/MarketPulseAI/internal/model"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) SaveReport(report *model.Report) error {
	kpis, err := json.Marshal(report.KPIs)
	if err != nil {
		return err
	}

	insights, err := json.Marshal(report.Insights)
	if err != nil {
		return err
	}

	report.ID = uuid.NewString()

	_, err = r.db.Exec(`
		INSERT INTO weekly_report(id, org_id, title, kpis, insights, created_at)
		VALUES($1, $2, $3, $4, $5, $6)
	`, report.ID, report.OrgID, report.Title, kpis, insights, report.CreatedAt)
	return err
}

func (r *ReportRepository) GetReports(orgID string, limit, offset int) ([]model.Report, error) {
	rows, err := r.db.Query(`
		SELECT id, org_id, title, kpis, insights, created_at
		FROM weekly_report
		WHERE org_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *ReportRepository) GetLatestReport(orgID string) (*model.Report, error) {
	row := r.db.QueryRow(`
		SELECT id, org_id, title, kpis, insights, created_at
		FROM weekly_report
		WHERE org_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, orgID)

	report, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *ReportRepository) GetReportTotal(orgID string) (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM weekly_report WHERE org_id = $1`, orgID).Scan(&total)
	return total, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*model.Report, error) {
	var report model.Report
	var kpisJSON, insightsJSON []byte

	err := row.Scan(&report.ID, &report.OrgID, &report.Title, &kpisJSON, &insightsJSON, &report.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(kpisJSON, &report.KPIs); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(insightsJSON, &report.Insights); err != nil {
		return nil, err
	}

	return &report, nil
}
