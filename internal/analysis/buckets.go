package analysis

import (
	"github.com/wonny/coppermetrics/internal/series"
)

// monthKey identifies a (year, month) bucket.
type monthKey struct {
	Year  int
	Month int
}

// groupMonths splits observations into (year, month) buckets. Keys come
// back in chronological order; the input is date-sorted so buckets appear
// in order of first occurrence.
func groupMonths(s series.Series) ([]monthKey, map[monthKey]series.Series) {
	groups := make(map[monthKey]series.Series)
	var keys []monthKey

	for _, o := range s {
		key := monthKey{Year: o.Calendar.Year, Month: o.Calendar.Month}
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], o)
	}

	return keys, groups
}

// monthAverages computes the average price per (year, month) bucket.
func monthAverages(s series.Series) map[monthKey]float64 {
	_, groups := groupMonths(s)

	averages := make(map[monthKey]float64, len(groups))
	for key, group := range groups {
		averages[key] = mean(group.Prices())
	}

	return averages
}

// performanceVsMonth computes, for every (year, month) bucket of the
// subset, the bucket average's percentage deviation from the enclosing
// month's average taken over the full period. Values come back in
// chronological bucket order.
func performanceVsMonth(subset series.Series, monthAvg map[monthKey]float64) []float64 {
	keys, groups := groupMonths(subset)

	perf := make([]float64, 0, len(keys))
	for _, key := range keys {
		avg, ok := monthAvg[key]
		if !ok || avg == 0 {
			continue
		}
		groupAvg := mean(groups[key].Prices())
		perf = append(perf, (groupAvg/avg-1)*100)
	}

	return perf
}
