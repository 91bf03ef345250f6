package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/coppermetrics/internal/series"
)

func TestAnalyzeMonthly(t *testing.T) {
	// Five days in January 2024: avg 102
	s := dailySeries(day(2024, time.January, 1), 100, 101, 102, 103, 104)

	result := analyzeMonthly(s)
	require.Len(t, result.MonthlyDetails, 1)

	m := result.MonthlyDetails[0]
	assert.Equal(t, 2024, m.Year)
	assert.Equal(t, 1, m.Month)
	assert.Equal(t, "January", m.MonthName)
	assert.InDelta(t, 102, m.Average, 1e-9)
	assert.Equal(t, 100.0, m.Min)
	assert.Equal(t, 104.0, m.Max)

	// 103 and 104 are above the average; 102 counts as at-or-below
	assert.Equal(t, 2, m.DaysAboveAverage)
	assert.Equal(t, 3, m.DaysBelowAverage)

	assert.Equal(t, "2024-01-05", m.BestDay.Date)
	assert.Equal(t, 104.0, m.BestDay.Value)
	assert.InDelta(t, 2, m.BestDay.PremiumToAvg, 1e-9)

	assert.Equal(t, "2024-01-01", m.WorstDay.Date)
	assert.Equal(t, 100.0, m.WorstDay.Value)
	assert.InDelta(t, 2, m.WorstDay.DiscountToAvg, 1e-9)
}

func TestMonthlyAboveBelowPartition(t *testing.T) {
	// Every observation falls on exactly one side of the average split.
	s := dailySeries(day(2024, time.March, 1),
		812, 805, 799, 830, 825, 801, 818, 822, 809, 815)

	result := analyzeMonthly(s)
	require.Len(t, result.MonthlyDetails, 1)

	m := result.MonthlyDetails[0]
	assert.Equal(t, len(s), m.DaysAboveAverage+m.DaysBelowAverage)
}

func TestMonthlyBestDayTieBreak(t *testing.T) {
	// Two days share the maximum; the earlier one wins.
	s := dailySeries(day(2024, time.June, 3), 100, 120, 90, 120, 110)

	result := analyzeMonthly(s)
	m := result.MonthlyDetails[0]
	assert.Equal(t, "2024-06-04", m.BestDay.Date)
}

func TestMonthlyDetailsChronological(t *testing.T) {
	s := dailySeries(day(2023, time.December, 20),
		100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100)

	result := analyzeMonthly(s)
	require.Len(t, result.MonthlyDetails, 2)
	assert.Equal(t, 2023, result.MonthlyDetails[0].Year)
	assert.Equal(t, 12, result.MonthlyDetails[0].Month)
	assert.Equal(t, 2024, result.MonthlyDetails[1].Year)
	assert.Equal(t, 1, result.MonthlyDetails[1].Month)
}

func TestSeasonality(t *testing.T) {
	// January in two different years contributes to a single
	// month-of-year bucket.
	jan2023 := flatMonth(2023, time.January, 100)
	jan2024 := flatMonth(2024, time.January, 200)

	all := append(append(series.Series{}, jan2023...), jan2024...)
	result := analyzeMonthly(all)

	require.Len(t, result.Seasonality, 1)
	sea := result.Seasonality[0]
	assert.Equal(t, 1, sea.Month)
	assert.Equal(t, "January", sea.MonthName)
	assert.InDelta(t, 150, sea.Mean, 1e-9)
	assert.Greater(t, sea.Std, 0.0)
}
