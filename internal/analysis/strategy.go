package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wonny/coppermetrics/internal/series"
)

// weekFocusDamping models a 70%-in-best-week / 30%-spread-elsewhere
// allocation: the reported mean performance is damped, the success rate
// is not.
const weekFocusDamping = 0.7

// analyzeStrategies builds the four pricing strategies from weekday and
// week-of-month statistics and ranks them by expected performance.
func analyzeStrategies(s series.Series) []Strategy {
	monthAvg := monthAverages(s)
	weekdayAvgs := weekdayAverageRanking(s)
	if len(weekdayAvgs) == 0 {
		return nil
	}

	strategies := make([]Strategy, 0, 4)

	// Strategy 1: price everything on the best day of week.
	bestDay := weekdayAvgs[0].day
	bestName := series.WeekdayName(bestDay)
	perf := performanceVsMonth(filterWeekdays(s, bestDay), monthAvg)
	strategies = append(strategies, Strategy{
		Name:                    fmt.Sprintf("Single Day Strategy (All on %s)", bestName),
		Description:             fmt.Sprintf("Price 100%% of quantity on %s", bestName),
		AvgPerformanceVsMonthly: meanOrZero(perf),
		SuccessRate:             successRate(perf),
		RiskLevel:               "High",
	})

	// Strategy 2: split across the best two days.
	topDays := []int{bestDay}
	if len(weekdayAvgs) > 1 {
		topDays = append(topDays, weekdayAvgs[1].day)
	}
	topNames := make([]string, len(topDays))
	for i, d := range topDays {
		topNames[i] = series.WeekdayName(d)
	}
	perf = performanceVsMonth(filterWeekdays(s, topDays...), monthAvg)
	strategies = append(strategies, Strategy{
		Name:                    fmt.Sprintf("Two-Day Split Strategy (%s)", strings.Join(topNames, ", ")),
		Description:             fmt.Sprintf("Price 50%% each on %s", strings.Join(topNames, " and ")),
		AvgPerformanceVsMonthly: meanOrZero(perf),
		SuccessRate:             successRate(perf),
		RiskLevel:               "Medium",
	})

	// Strategy 3: focus on the best week of month. The mean is damped by
	// the allocation factor; the success rate uses the undamped series.
	bestWeek := bestWeekOfMonth(s)
	perf = performanceVsMonth(filterWeeks(s, bestWeek), monthAvg)
	strategies = append(strategies, Strategy{
		Name:                    fmt.Sprintf("Week %d Focus Strategy", bestWeek),
		Description:             fmt.Sprintf("Price 70%% in Week %d, 30%% spread across other weeks", bestWeek),
		AvgPerformanceVsMonthly: meanOrZero(perf) * weekFocusDamping,
		SuccessRate:             successRate(perf),
		RiskLevel:               "Medium",
	})

	// Strategy 4: spread across everything except the worst day.
	worstDay := weekdayAvgs[len(weekdayAvgs)-1].day
	worstName := series.WeekdayName(worstDay)
	var rest series.Series
	for _, o := range s {
		if o.Calendar.Weekday != worstDay {
			rest = append(rest, o)
		}
	}
	perf = performanceVsMonth(rest, monthAvg)
	strategies = append(strategies, Strategy{
		Name:                    fmt.Sprintf("Avoid %s Strategy", worstName),
		Description:             fmt.Sprintf("Spread pricing equally across all days except %s", worstName),
		AvgPerformanceVsMonthly: meanOrZero(perf),
		SuccessRate:             successRate(perf),
		RiskLevel:               "Low",
	})

	sort.SliceStable(strategies, func(i, j int) bool {
		return strategies[i].AvgPerformanceVsMonthly > strategies[j].AvgPerformanceVsMonthly
	})

	return strategies
}

// successRate is the percentage of per-month performance values strictly
// above zero. Empty series score 0.
func successRate(perf []float64) float64 {
	if len(perf) == 0 {
		return 0
	}
	positive := 0
	for _, p := range perf {
		if p > 0 {
			positive++
		}
	}
	return float64(positive) / float64(len(perf)) * 100
}

type weekdayAvg struct {
	day int
	avg float64
}

// weekdayAverageRanking returns the weekdays present in the data ordered
// by overall average price descending. Ties keep the lower weekday index.
func weekdayAverageRanking(s series.Series) []weekdayAvg {
	var sums [7]float64
	var counts [7]int
	for _, o := range s {
		sums[o.Calendar.Weekday] += o.Price
		counts[o.Calendar.Weekday]++
	}

	var ranking []weekdayAvg
	for day := 0; day < 7; day++ {
		if counts[day] == 0 {
			continue
		}
		ranking = append(ranking, weekdayAvg{day: day, avg: sums[day] / float64(counts[day])})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].avg > ranking[j].avg
	})

	return ranking
}

// bestWeekOfMonth returns the week-of-month bucket with the highest
// overall average price. Ties keep the lower week number.
func bestWeekOfMonth(s series.Series) int {
	var sums [maxWeekOfMonth + 1]float64
	var counts [maxWeekOfMonth + 1]int
	for _, o := range s {
		sums[o.Calendar.WeekOfMonth] += o.Price
		counts[o.Calendar.WeekOfMonth]++
	}

	best, bestAvg := minWeekOfMonth, 0.0
	found := false
	for week := minWeekOfMonth; week <= maxWeekOfMonth; week++ {
		if counts[week] == 0 {
			continue
		}
		avg := sums[week] / float64(counts[week])
		if !found || avg > bestAvg {
			best, bestAvg = week, avg
			found = true
		}
	}

	return best
}

func filterWeekdays(s series.Series, days ...int) series.Series {
	want := make(map[int]bool, len(days))
	for _, d := range days {
		want[d] = true
	}

	var out series.Series
	for _, o := range s {
		if want[o.Calendar.Weekday] {
			out = append(out, o)
		}
	}
	return out
}

func filterWeeks(s series.Series, week int) series.Series {
	var out series.Series
	for _, o := range s {
		if o.Calendar.WeekOfMonth == week {
			out = append(out, o)
		}
	}
	return out
}
