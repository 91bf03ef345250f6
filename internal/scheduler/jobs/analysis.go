package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/coppermetrics/internal/analysis"
	"github.com/wonny/coppermetrics/internal/ingest"
	"github.com/wonny/coppermetrics/internal/series"
	"github.com/wonny/coppermetrics/internal/store"
	"github.com/wonny/coppermetrics/pkg/config"
	"github.com/wonny/coppermetrics/pkg/logger"
)

// AnalysisJob runs the settlement analysis over a trailing window
// and persists the report.
type AnalysisJob struct {
	config   *config.Config
	analyzer *analysis.Analyzer
	files    *store.FileStore
	archive  *store.ReportRepository // nil when the database is disabled
	logger   *logger.Logger
}

// NewAnalysisJob creates a new analysis job. archive may be nil.
func NewAnalysisJob(cfg *config.Config, files *store.FileStore, archive *store.ReportRepository, log *logger.Logger) *AnalysisJob {
	return &AnalysisJob{
		config:   cfg,
		analyzer: analysis.NewAnalyzer(log),
		files:    files,
		archive:  archive,
		logger:   log,
	}
}

// Name returns the job name
func (j *AnalysisJob) Name() string {
	return "settlement_analysis"
}

// Schedule returns the cron schedule from configuration
func (j *AnalysisJob) Schedule() string {
	return j.config.Scheduler.AnalysisCron
}

// Run loads the settlement history, analyzes the trailing window and
// writes the report to disk, the backup directory and, when enabled,
// the database archive.
func (j *AnalysisJob) Run(ctx context.Context) error {
	runAt := time.Now()
	j.logger.WithField("trailing_days", j.config.Scheduler.TrailingDays).Info("Starting scheduled settlement analysis")

	loader := ingest.NewLoader(j.config.CSVPath(), j.logger)
	history, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load settlement history: %w", err)
	}

	end := runAt
	start := end.AddDate(0, 0, -j.config.Scheduler.TrailingDays)
	period := series.NewPeriod(start, end)

	report, err := j.analyzer.Analyze(history, &period)
	if err != nil {
		return fmt.Errorf("analyze trailing window: %w", err)
	}
	report.Metadata = analysis.NewRunMetadata(j.config.CSVPath(), history, runAt)

	path, err := j.files.Save(report)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	backupPath, err := j.files.SaveBackup(report, runAt)
	if err != nil {
		return fmt.Errorf("save report backup: %w", err)
	}

	if j.archive != nil {
		runDate := time.Date(runAt.Year(), runAt.Month(), runAt.Day(), 0, 0, 0, 0, time.UTC)
		if err := j.archive.Save(ctx, runDate, report.Period.Start, report.Period.End, report); err != nil {
			return fmt.Errorf("archive report: %w", err)
		}
	}

	j.logger.WithFields(map[string]interface{}{
		"report": path,
		"backup": backupPath,
	}).Info("Settlement analysis completed")

	return nil
}
