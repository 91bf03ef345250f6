package ingest

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/coppermetrics/pkg/logger"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testLoader(path string) *Loader {
	return NewLoader(path, logger.NewWithWriter(io.Discard))
}

func TestLoadCleanFile(t *testing.T) {
	path := writeCSV(t, `date,lme_copper_cash_settlement
2024-01-03,8301.5
2024-01-01,8250
2024-01-02,8275.25
`)

	s, err := testLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, s, 3)

	// Sorted ascending regardless of input order
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), s[0].Date)
	assert.Equal(t, 8250.0, s[0].Price)
	assert.Equal(t, 8301.5, s[2].Price)

	// Calendar enrichment applied
	assert.Equal(t, "Monday", s[0].Calendar.WeekdayName)
}

func TestLoadDropsBadRows(t *testing.T) {
	path := writeCSV(t, `date,lme_copper_cash_settlement
2024-01-01,8250
not-a-date,8300
2024-01-02,
2024-01-03,-50
2024-01-04,abc
2024-01-05,8320
`)

	s, err := testLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.Equal(t, 8250.0, s[0].Price)
	assert.Equal(t, 8320.0, s[1].Price)
}

func TestLoadDeduplicatesDates(t *testing.T) {
	path := writeCSV(t, `date,lme_copper_cash_settlement
2024-01-01,8250
2024-01-01,9999
2024-01-02,8275
`)

	s, err := testLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.Equal(t, 8250.0, s[0].Price)
}

func TestLoadMultipleDateFormats(t *testing.T) {
	path := writeCSV(t, `date,lme_copper_cash_settlement
2024/01/02,8275
01/03/2024,8301
2024-01-01,8250
`)

	s, err := testLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, s, 3)
	assert.Equal(t, time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC), s[2].Date)
}

func TestLoadThousandsSeparators(t *testing.T) {
	path := writeCSV(t, `date,lme_copper_cash_settlement
2024-01-01,"8,250.75"
`)

	s, err := testLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, s, 1)
	assert.Equal(t, 8250.75, s[0].Price)
}

func TestLoadAlternateColumnNames(t *testing.T) {
	path := writeCSV(t, `Date,Price
2024-01-01,8250
`)

	s, err := testLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, s, 1)
}

func TestLoadMissingColumns(t *testing.T) {
	path := writeCSV(t, `timestamp,value
2024-01-01,8250
`)

	_, err := testLoader(path).Load()
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := testLoader(filepath.Join(t.TempDir(), "absent.csv")).Load()
	assert.Error(t, err)
}
