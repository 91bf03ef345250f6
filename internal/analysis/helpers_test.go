package analysis

import (
	"time"

	"github.com/wonny/coppermetrics/internal/series"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dailySeries builds a series of consecutive daily observations starting
// at the given date.
func dailySeries(start time.Time, prices ...float64) series.Series {
	obs := make([]series.Observation, len(prices))
	for i, p := range prices {
		obs[i] = series.Observation{Date: start.AddDate(0, 0, i), Price: p}
	}
	return series.New(obs)
}

// flatMonth builds a whole calendar month at a constant price.
func flatMonth(y int, m time.Month, price float64) series.Series {
	var obs []series.Observation
	for d := day(y, m, 1); d.Month() == m; d = d.AddDate(0, 0, 1) {
		obs = append(obs, series.Observation{Date: d, Price: price})
	}
	return series.New(obs)
}
