package analysis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/coppermetrics/internal/series"
)

func TestMovingAverageMinPeriods(t *testing.T) {
	prices := []float64{10, 20, 30, 40}

	ma := movingAverage(prices, 3)
	require.Len(t, ma, 4)

	// The moving average at the first observation equals that
	// observation's price exactly.
	assert.Equal(t, 10.0, ma[0])
	assert.InDelta(t, 15, ma[1], 1e-9)
	assert.InDelta(t, 20, ma[2], 1e-9)
	assert.InDelta(t, 30, ma[3], 1e-9)
}

func TestMovingAverageWindowLargerThanSeries(t *testing.T) {
	ma := movingAverage([]float64{5, 7}, 90)
	require.Len(t, ma, 2)
	assert.Equal(t, 5.0, ma[0])
	assert.Equal(t, 6.0, ma[1])
}

func TestTrendDirection(t *testing.T) {
	rising := make([]float64, 40)
	for i := range rising {
		rising[i] = float64(i)
	}
	direction, err := trendDirection(rising)
	require.NoError(t, err)
	assert.Equal(t, "Upward", direction)

	falling := make([]float64, 40)
	for i := range falling {
		falling[i] = float64(-i)
	}
	direction, err = trendDirection(falling)
	require.NoError(t, err)
	assert.Equal(t, "Downward", direction)

	// Flat is not strictly greater, so not Upward
	flat := make([]float64, 40)
	direction, err = trendDirection(flat)
	require.NoError(t, err)
	assert.Equal(t, "Downward", direction)
}

func TestTrendDirectionInsufficientHistory(t *testing.T) {
	short := make([]float64, minTrendObservations-1)

	_, err := trendDirection(short)
	assert.True(t, errors.Is(err, ErrInsufficientHistory))
}

func TestAnalyzeTrendsShortSeries(t *testing.T) {
	s := dailySeries(day(2024, time.January, 1), 100, 101, 102)

	trends := analyzeTrends(s)
	assert.Equal(t, trendInsufficient, trends.CurrentTrend)
	assert.InDelta(t, 101, trends.MA7Current, 1e-9)
}

func TestYoYGrowthExactDouble(t *testing.T) {
	// Year 2 mean is exactly double year 1 mean.
	y1 := flatMonth(2023, time.March, 100)
	y2 := flatMonth(2024, time.March, 200)
	s := append(append(series.Series{}, y1...), y2...)

	growth := yoyGrowth(s)
	require.Len(t, growth, 1)
	assert.Equal(t, 2024, growth[0].Year)
	assert.InDelta(t, 100.0, growth[0].GrowthPct, 1e-9)
}

func TestYoYGrowthSkipsGapYears(t *testing.T) {
	// 2021 and 2023 present, 2022 missing: no growth entry for 2023.
	s := append(append(series.Series{},
		flatMonth(2021, time.May, 100)...),
		flatMonth(2023, time.May, 150)...)

	growth := yoyGrowth(s)
	assert.Empty(t, growth)
}

func TestFindPeaks(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		minSep int
		want   []int
	}{
		{
			name:   "single peak",
			values: []float64{1, 3, 1},
			minSep: 3,
			want:   []int{1},
		},
		{
			name:   "close peaks keep the higher",
			values: []float64{1, 5, 1, 4, 1},
			minSep: 3,
			want:   []int{1},
		},
		{
			name:   "separated peaks both kept",
			values: []float64{1, 5, 1, 1, 4, 1},
			minSep: 3,
			want:   []int{1, 4},
		},
		{
			name:   "endpoints are not peaks",
			values: []float64{9, 1, 2, 1, 9},
			minSep: 3,
			want:   []int{2},
		},
		{
			name:   "monotone has no peaks",
			values: []float64{1, 2, 3, 4},
			minSep: 3,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findPeaks(tt.values, tt.minSep)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCycleInfo(t *testing.T) {
	// Build a monthly sawtooth over 2023: peaks in Mar, Jul, Nov
	// (indices 2, 6, 10 of the monthly sequence).
	levels := []float64{100, 110, 130, 110, 100, 110, 130, 110, 100, 110, 130, 110}

	var s series.Series
	for m := 0; m < 12; m++ {
		s = append(s, flatMonth(2023, time.Month(m+1), levels[m])...)
	}

	info := cycleInfo(s)
	assert.Equal(t, 2, info.TroughsDetected) // May and September
	assert.Equal(t, 3, info.PeaksDetected)
	assert.InDelta(t, 4.0, info.AvgCycleMonths, 1e-9)
}

func TestCycleInfoFewPeaks(t *testing.T) {
	s := dailySeries(day(2024, time.January, 1), 100, 101, 102)

	info := cycleInfo(s)
	assert.Equal(t, 0, info.PeaksDetected)
	assert.Equal(t, 0.0, info.AvgCycleMonths)
}
