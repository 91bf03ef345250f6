package analysis

import (
	"time"

	"github.com/wonny/coppermetrics/internal/series"
)

// analyzeMonthly computes per-(year,month) statistics and month-of-year
// seasonality for the period.
func analyzeMonthly(s series.Series) MonthlyAnalysis {
	keys, groups := groupMonths(s)

	details := make([]MonthStat, 0, len(keys))
	for _, key := range keys {
		details = append(details, monthStat(key, groups[key]))
	}

	return MonthlyAnalysis{
		MonthlyDetails: details,
		Seasonality:    seasonality(s),
	}
}

// monthStat summarizes a single month bucket: distribution, the above /
// at-or-below split against the bucket average, and the best and worst
// days with their premium and discount to that average.
func monthStat(key monthKey, group series.Series) MonthStat {
	avg := mean(group.Prices())

	var daysAbove, daysBelow int
	best, worst := group[0], group[0]
	for _, o := range group {
		if o.Price > avg {
			daysAbove++
		} else {
			daysBelow++
		}
		// Strict comparisons: ties resolve to the first occurrence in
		// date order.
		if o.Price > best.Price {
			best = o
		}
		if o.Price < worst.Price {
			worst = o
		}
	}

	summary, _ := Summarize(group.Prices())

	return MonthStat{
		Year:             key.Year,
		Month:            key.Month,
		MonthName:        group[0].Calendar.MonthName,
		Average:          avg,
		Min:              summary.Min,
		Max:              summary.Max,
		Std:              summary.Std,
		DaysAboveAverage: daysAbove,
		DaysBelowAverage: daysBelow,
		BestDay: BestDay{
			Date:         best.Date.Format(series.DateFormat),
			Value:        best.Price,
			PremiumToAvg: best.Price - avg,
		},
		WorstDay: WorstDay{
			Date:          worst.Date.Format(series.DateFormat),
			Value:         worst.Price,
			DiscountToAvg: avg - worst.Price,
		},
	}
}

// seasonality computes mean/std per calendar month (1..12) across all
// years in the period. Months with no observations are omitted.
func seasonality(s series.Series) []SeasonalityStat {
	byMonth := make(map[int][]float64)
	for _, o := range s {
		byMonth[o.Calendar.Month] = append(byMonth[o.Calendar.Month], o.Price)
	}

	stats := make([]SeasonalityStat, 0, len(byMonth))
	for month := 1; month <= 12; month++ {
		prices, ok := byMonth[month]
		if !ok {
			continue
		}
		stats = append(stats, SeasonalityStat{
			Month:     month,
			Mean:      mean(prices),
			Std:       sampleStd(prices),
			MonthName: time.Month(month).String(),
		})
	}

	return stats
}
