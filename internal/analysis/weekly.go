package analysis

import (
	"fmt"
	"sort"

	"github.com/wonny/coppermetrics/internal/series"
)

// weekBuckets is the valid week-of-month range.
const (
	minWeekOfMonth = 1
	maxWeekOfMonth = 5
)

// analyzeWeekly computes week-of-month patterns: for each week bucket
// 1..5 with data, the bucket's price distribution and its average
// deviation from the enclosing months' averages, ranked descending by
// that deviation.
func analyzeWeekly(s series.Series) []WeekPattern {
	monthAvg := monthAverages(s)

	var patterns []WeekPattern
	for week := minWeekOfMonth; week <= maxWeekOfMonth; week++ {
		var bucket series.Series
		for _, o := range s {
			if o.Calendar.WeekOfMonth == week {
				bucket = append(bucket, o)
			}
		}
		if len(bucket) == 0 {
			continue
		}

		perf := performanceVsMonth(bucket, monthAvg)

		patterns = append(patterns, WeekPattern{
			Week:                  fmt.Sprintf("Week %d", week),
			AvgPrice:              mean(bucket.Prices()),
			Std:                   sampleStd(bucket.Prices()),
			Count:                 len(bucket),
			AvgPerformanceVsMonth: meanOrZero(perf),
			BestPerformance:       maxOrZero(perf),
			WorstPerformance:      minOrZero(perf),
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].AvgPerformanceVsMonth > patterns[j].AvgPerformanceVsMonth
	})

	return patterns
}

func meanOrZero(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return mean(values)
}

func maxOrZero(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func minOrZero(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
