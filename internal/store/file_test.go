package store

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/coppermetrics/pkg/config"
	"github.com/wonny/coppermetrics/pkg/logger"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	base := t.TempDir()

	cfg := &config.Config{
		OutputDir:  filepath.Join(base, "output"),
		BackupDir:  filepath.Join(base, "output", "backups"),
		ReportName: "analysis_results.json",
	}
	require.NoError(t, os.MkdirAll(cfg.BackupDir, 0o755))

	return NewFileStore(cfg, logger.NewWithWriter(io.Discard)), base
}

func TestSaveWritesPrimaryAndDashboardCopies(t *testing.T) {
	fs, base := newTestStore(t)

	report := map[string]interface{}{"overall_stats": map[string]float64{"mean": 8250}}
	primary, err := fs.Save(report)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "output", "analysis_results.json"), primary)

	for _, path := range []string{
		primary,
		filepath.Join(base, "analysis_results.json"),
	} {
		data, err := os.ReadFile(path)
		require.NoError(t, err, path)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Contains(t, decoded, "overall_stats")
	}
}

func TestSaveBackupTimestamped(t *testing.T) {
	fs, base := newTestStore(t)

	at := time.Date(2024, time.March, 5, 19, 30, 14, 0, time.UTC)
	path, err := fs.SaveBackup(map[string]string{"ok": "yes"}, at)
	require.NoError(t, err)

	assert.Equal(t,
		filepath.Join(base, "output", "backups", "analysis_results_20240305_193014.json"),
		path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadLatest(t *testing.T) {
	fs, _ := newTestStore(t)

	_, err := fs.LoadLatest()
	assert.Error(t, err, "no report saved yet")

	_, err = fs.Save(map[string]int{"total_days": 31})
	require.NoError(t, err)

	raw, err := fs.LoadLatest()
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 31, decoded["total_days"])
}
