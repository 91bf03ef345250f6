package analysis

import (
	"github.com/wonny/coppermetrics/internal/series"
)

// analyzeVolatility computes dispersion metrics overall, per calendar
// bucket and for day-over-day returns.
func analyzeVolatility(s series.Series) VolatilityReport {
	prices := s.Prices()

	mostMonth, leastMonth := monthlyVolatilityExtremes(s)

	return VolatilityReport{
		OverallVolatility:   sampleStd(prices),
		DailyReturnStats:    dailyReturnStats(prices),
		MostVolatileMonth:   mostMonth,
		LeastVolatileMonth:  leastMonth,
		MostVolatileWeekday: mostVolatileWeekday(s),
		MostVolatileWeek:    mostVolatileWeek(s),
	}
}

// dailyReturnStats computes day-over-day percentage-return statistics.
// With fewer than two observations the return series is undefined and
// every statistic is reported as 0.
func dailyReturnStats(prices []float64) ReturnStats {
	if len(prices) < 2 {
		return ReturnStats{}
	}

	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] == 0 {
			continue
		}
		returns = append(returns, prices[i]/prices[i-1]-1)
	}

	if len(returns) == 0 {
		return ReturnStats{}
	}

	return ReturnStats{
		Mean: mean(returns) * 100,
		Std:  sampleStd(returns) * 100,
		Max:  maxOrZero(returns) * 100,
		Min:  minOrZero(returns) * 100,
	}
}

// monthlyVolatilityExtremes finds the month numbers of the (year, month)
// buckets with the highest and lowest standard deviation. Buckets with a
// single observation have undefined dispersion and are skipped; ties keep
// the chronologically earlier bucket.
func monthlyVolatilityExtremes(s series.Series) (most, least int) {
	keys, groups := groupMonths(s)

	var mostStd, leastStd float64
	found := false
	for _, key := range keys {
		group := groups[key]
		if len(group) < 2 {
			continue
		}
		std := sampleStd(group.Prices())
		if !found {
			most, mostStd = key.Month, std
			least, leastStd = key.Month, std
			found = true
			continue
		}
		if std > mostStd {
			most, mostStd = key.Month, std
		}
		if std < leastStd {
			least, leastStd = key.Month, std
		}
	}

	return most, least
}

// mostVolatileWeekday returns the weekday index with the highest price
// standard deviation. Single-observation buckets are skipped.
func mostVolatileWeekday(s series.Series) int {
	byDay := make(map[int][]float64)
	for _, o := range s {
		byDay[o.Calendar.Weekday] = append(byDay[o.Calendar.Weekday], o.Price)
	}

	best, bestStd := 0, 0.0
	found := false
	for day := 0; day < 7; day++ {
		prices, ok := byDay[day]
		if !ok || len(prices) < 2 {
			continue
		}
		std := sampleStd(prices)
		if !found || std > bestStd {
			best, bestStd = day, std
			found = true
		}
	}

	return best
}

// mostVolatileWeek returns the week-of-month with the highest price
// standard deviation. Single-observation buckets are skipped.
func mostVolatileWeek(s series.Series) int {
	byWeek := make(map[int][]float64)
	for _, o := range s {
		byWeek[o.Calendar.WeekOfMonth] = append(byWeek[o.Calendar.WeekOfMonth], o.Price)
	}

	best, bestStd := 0, 0.0
	found := false
	for week := minWeekOfMonth; week <= maxWeekOfMonth; week++ {
		prices, ok := byWeek[week]
		if !ok || len(prices) < 2 {
			continue
		}
		std := sampleStd(prices)
		if !found || std > bestStd {
			best, bestStd = week, std
			found = true
		}
	}

	return best
}
