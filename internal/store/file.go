package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wonny/coppermetrics/pkg/config"
	"github.com/wonny/coppermetrics/pkg/logger"
)

// FileStore persists analysis reports as JSON files: a primary copy in
// the output directory, a dashboard copy next to the binary, and
// timestamped backups.
type FileStore struct {
	outputDir  string
	backupDir  string
	reportName string
	logger     *logger.Logger
}

// NewFileStore creates a file store from config. Directories are assumed
// to exist (config.EnsureDirs runs at startup).
func NewFileStore(cfg *config.Config, log *logger.Logger) *FileStore {
	return &FileStore{
		outputDir:  cfg.OutputDir,
		backupDir:  cfg.BackupDir,
		reportName: cfg.ReportName,
		logger:     log,
	}
}

// Save writes the report to the output directory and refreshes the
// dashboard copy in the working directory. Returns the primary path.
func (s *FileStore) Save(report interface{}) (string, error) {
	primary := filepath.Join(s.outputDir, s.reportName)
	if err := writeJSON(primary, report); err != nil {
		return "", err
	}

	// Dashboard copy one level above the output directory, same name
	dashboard := filepath.Join(filepath.Dir(s.outputDir), s.reportName)
	if err := writeJSON(dashboard, report); err != nil {
		return "", err
	}

	s.logger.WithField("path", primary).Info("Report saved")
	return primary, nil
}

// SaveBackup writes a timestamped archival copy to the backup directory.
func (s *FileStore) SaveBackup(report interface{}, at time.Time) (string, error) {
	name := fmt.Sprintf("analysis_results_%s.json", at.Format("20060102_150405"))
	path := filepath.Join(s.backupDir, name)
	if err := writeJSON(path, report); err != nil {
		return "", err
	}

	s.logger.WithField("path", path).Info("Backup saved")
	return path, nil
}

// LoadLatest reads the primary report back as raw JSON. Used by the API
// to serve the most recent result without re-running the analysis.
func (s *FileStore) LoadLatest() (json.RawMessage, error) {
	path := filepath.Join(s.outputDir, s.reportName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return json.RawMessage(data), nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
