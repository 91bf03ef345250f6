package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/wonny/coppermetrics/internal/series"
	"github.com/wonny/coppermetrics/pkg/logger"
)

// Loader reads the historical settlement price CSV and produces a
// cleaned Series: parseable rows only, sorted ascending, deduplicated.
type Loader struct {
	path   string
	logger *logger.Logger
}

// NewLoader creates a loader for the given CSV path.
func NewLoader(path string, log *logger.Logger) *Loader {
	return &Loader{path: path, logger: log}
}

// dateLayouts are tried in order when parsing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02 15:04:05",
}

// Load reads and cleans the CSV. Rows with unparseable dates or missing
// settlement values are dropped; they never reach the analytics core.
func (l *Loader) Load() (series.Series, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateCol, priceCol, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	var obs []series.Observation
	dropped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		if len(record) <= dateCol || len(record) <= priceCol {
			dropped++
			continue
		}

		date, ok := parseDate(record[dateCol])
		if !ok {
			dropped++
			continue
		}

		price, ok := parsePrice(record[priceCol])
		if !ok {
			dropped++
			continue
		}

		obs = append(obs, series.Observation{Date: date, Price: price})
	}

	s := series.New(obs)

	l.logger.WithFields(map[string]interface{}{
		"path":    l.path,
		"records": len(s),
		"dropped": dropped + len(obs) - len(s),
	}).Info("Price series loaded")

	return s, nil
}

// locateColumns finds the date and settlement columns in the header.
func locateColumns(header []string) (dateCol, priceCol int, err error) {
	dateCol, priceCol = -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateCol = i
		case "lme_copper_cash_settlement", "cash_settlement", "settlement", "price":
			if priceCol == -1 {
				priceCol = i
			}
		}
	}

	if dateCol == -1 {
		return 0, 0, fmt.Errorf("csv header has no date column")
	}
	if priceCol == -1 {
		return 0, 0, fmt.Errorf("csv header has no settlement price column")
	}
	return dateCol, priceCol, nil
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func parsePrice(value string) (float64, bool) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if value == "" {
		return 0, false
	}

	price, err := strconv.ParseFloat(value, 64)
	if err != nil || price <= 0 {
		return 0, false
	}
	return price, true
}
