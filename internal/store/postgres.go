package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/coppermetrics/internal/series"
)

// ReportRepository archives analysis reports in PostgreSQL, one row per
// run date. It is optional: the service runs file-only without it.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new report repository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// ArchivedReport is one archived analysis run.
type ArchivedReport struct {
	RunDate     string          `json:"run_date"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	Report      json.RawMessage `json:"report"`
	CreatedAt   time.Time       `json:"created_at"`
}

// EnsureSchema creates the reports table if it does not exist.
func (r *ReportRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS analysis_reports (
			run_date     date PRIMARY KEY,
			period_start date NOT NULL,
			period_end   date NOT NULL,
			report       jsonb NOT NULL,
			created_at   timestamptz NOT NULL DEFAULT now()
		)
	`

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create reports table: %w", err)
	}
	return nil
}

// Save upserts the report for a run date.
func (r *ReportRepository) Save(ctx context.Context, runDate time.Time, periodStart, periodEnd string, report interface{}) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	query := `
		INSERT INTO analysis_reports (run_date, period_start, period_end, report)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (run_date) DO UPDATE SET
			period_start = EXCLUDED.period_start,
			period_end = EXCLUDED.period_end,
			report = EXCLUDED.report,
			created_at = now()
	`

	if _, err := r.pool.Exec(ctx, query, runDate, periodStart, periodEnd, body); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

// GetLatest retrieves the most recent archived report.
func (r *ReportRepository) GetLatest(ctx context.Context) (*ArchivedReport, error) {
	query := `
		SELECT run_date, period_start, period_end, report, created_at
		FROM analysis_reports
		ORDER BY run_date DESC
		LIMIT 1
	`

	var rec ArchivedReport
	var runDate, periodStart, periodEnd time.Time
	err := r.pool.QueryRow(ctx, query).Scan(&runDate, &periodStart, &periodEnd, &rec.Report, &rec.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("no archived reports")
	}
	if err != nil {
		return nil, fmt.Errorf("get latest report: %w", err)
	}

	rec.RunDate = runDate.Format(series.DateFormat)
	rec.PeriodStart = periodStart.Format(series.DateFormat)
	rec.PeriodEnd = periodEnd.Format(series.DateFormat)
	return &rec, nil
}

// GetHistory retrieves the most recent archived runs, newest first.
func (r *ReportRepository) GetHistory(ctx context.Context, limit int) ([]ArchivedReport, error) {
	query := `
		SELECT run_date, period_start, period_end, report, created_at
		FROM analysis_reports
		ORDER BY run_date DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("get report history: %w", err)
	}
	defer rows.Close()

	var history []ArchivedReport
	for rows.Next() {
		var rec ArchivedReport
		var runDate, periodStart, periodEnd time.Time
		if err := rows.Scan(&runDate, &periodStart, &periodEnd, &rec.Report, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		rec.RunDate = runDate.Format(series.DateFormat)
		rec.PeriodStart = periodStart.Format(series.DateFormat)
		rec.PeriodEnd = periodEnd.Format(series.DateFormat)
		history = append(history, rec)
	}
	return history, rows.Err()
}
