package analysis

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeWeeklyFlatMonth(t *testing.T) {
	s := flatMonth(2024, time.January, 100)

	patterns := analyzeWeekly(s)
	require.NotEmpty(t, patterns)

	for _, p := range patterns {
		assert.Equal(t, 100.0, p.AvgPrice, p.Week)
		assert.Equal(t, 0.0, p.Std, p.Week)
		// Every week average equals the month average exactly
		assert.Equal(t, 0.0, p.AvgPerformanceVsMonth, p.Week)
		assert.Equal(t, 0.0, p.BestPerformance, p.Week)
		assert.Equal(t, 0.0, p.WorstPerformance, p.Week)
	}

	// Bucket counts cover the whole month
	total := 0
	for _, p := range patterns {
		total += p.Count
	}
	assert.Equal(t, len(s), total)
}

func TestAnalyzeWeeklyRankedByPerformance(t *testing.T) {
	// January 2024 climbs steadily, so later weeks outperform the
	// month average and must rank first.
	prices := make([]float64, 31)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	s := dailySeries(day(2024, time.January, 1), prices...)

	patterns := analyzeWeekly(s)
	require.NotEmpty(t, patterns)

	sorted := sort.SliceIsSorted(patterns, func(i, j int) bool {
		return patterns[i].AvgPerformanceVsMonth > patterns[j].AvgPerformanceVsMonth
	})
	assert.True(t, sorted, "weekly patterns must be ranked descending")

	assert.Equal(t, "Week 5", patterns[0].Week)
	assert.Greater(t, patterns[0].AvgPerformanceVsMonth, 0.0)
}

func TestAnalyzeWeeklySkipsEmptyBuckets(t *testing.T) {
	// A few days in week 1 only
	s := dailySeries(day(2024, time.January, 1), 100, 101, 102)

	patterns := analyzeWeekly(s)
	require.Len(t, patterns, 1)
	assert.Equal(t, "Week 1", patterns[0].Week)
	assert.Equal(t, 3, patterns[0].Count)
}

func TestAnalyzeWeeklyDeviationFormula(t *testing.T) {
	// Week 1 of January 2024 is Jan 1-7. Construct a month whose week 1
	// is 10% above the month average.
	var prices []float64
	for d := 1; d <= 28; d++ {
		if d <= 7 {
			prices = append(prices, 110)
		} else {
			prices = append(prices, 110.0*3/3.3) // keeps month avg at 102.5
		}
	}
	s := dailySeries(day(2024, time.January, 1), prices...)

	monthAvg := mean(s.Prices())
	wantDeviation := (110.0/monthAvg - 1) * 100

	patterns := analyzeWeekly(s)
	for _, p := range patterns {
		if p.Week == "Week 1" {
			assert.InDelta(t, wantDeviation, p.AvgPerformanceVsMonth, 1e-9)
			return
		}
	}
	t.Fatal("week 1 pattern missing")
}
