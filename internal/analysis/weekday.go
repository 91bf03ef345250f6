package analysis

import (
	"sort"

	"github.com/wonny/coppermetrics/internal/series"
)

// analyzeWeekday computes day-of-week patterns: for each weekday present
// in the data, the bucket's price distribution and its beat rate, the
// percentage of its days strictly above the enclosing month's average.
// Ranked descending by beat rate.
func analyzeWeekday(s series.Series) []WeekdayPattern {
	monthAvg := monthAverages(s)

	var patterns []WeekdayPattern
	for day := 0; day < 7; day++ {
		var bucket series.Series
		for _, o := range s {
			if o.Calendar.Weekday == day {
				bucket = append(bucket, o)
			}
		}
		if len(bucket) == 0 {
			continue
		}

		beats, total := 0, 0
		for _, o := range bucket {
			key := monthKey{Year: o.Calendar.Year, Month: o.Calendar.Month}
			if o.Price > monthAvg[key] {
				beats++
			}
			total++
		}

		beatPct := 0.0
		if total > 0 {
			beatPct = float64(beats) / float64(total) * 100
		}

		patterns = append(patterns, WeekdayPattern{
			Weekday:            series.WeekdayName(day),
			AvgPrice:           mean(bucket.Prices()),
			Std:                sampleStd(bucket.Prices()),
			Count:              len(bucket),
			BeatsMonthlyAvgPct: beatPct,
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].BeatsMonthlyAvgPct > patterns[j].BeatsMonthlyAvgPct
	})

	return patterns
}
