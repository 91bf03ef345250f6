package analysis

import (
	"sort"

	"github.com/wonny/coppermetrics/internal/series"
)

const (
	maWindowShort  = 7
	maWindowMedium = 30
	maWindowLong   = 90

	// minTrendObservations is the window needed to compare the current
	// medium moving average against its value that many observations
	// prior.
	minTrendObservations = 30

	// cycleMinSeparation is the minimum number of monthly buckets
	// between successive extrema of the same kind.
	cycleMinSeparation = 3
)

// trendInsufficient is reported as the trend direction when the series
// is shorter than minTrendObservations.
const trendInsufficient = "Insufficient Data"

// analyzeTrends computes moving averages, trend direction, year-over-year
// growth and cycle statistics.
func analyzeTrends(s series.Series) TrendReport {
	prices := s.Prices()

	ma7 := movingAverage(prices, maWindowShort)
	ma30 := movingAverage(prices, maWindowMedium)
	ma90 := movingAverage(prices, maWindowLong)

	trend, err := trendDirection(ma30)
	if err != nil {
		// Short series: the direction is undefined, everything else in
		// the trend block still holds.
		trend = trendInsufficient
	}

	return TrendReport{
		CurrentTrend: trend,
		MA7Current:   last(ma7),
		MA30Current:  last(ma30),
		MA90Current:  last(ma90),
		YoYGrowth:    yoyGrowth(s),
		CycleInfo:    cycleInfo(s),
	}
}

// movingAverage computes the trailing moving average with a minimum
// window of one: the value at index i averages the last `window`
// observations up to and including i, or all of them when fewer exist.
func movingAverage(prices []float64, window int) []float64 {
	out := make([]float64, len(prices))
	var sum float64
	for i, p := range prices {
		sum += p
		if i >= window {
			sum -= prices[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}

// trendDirection compares the latest medium moving average against its
// value minTrendObservations back: Upward if strictly greater, else
// Downward. Requires at least minTrendObservations values.
func trendDirection(ma []float64) (string, error) {
	if len(ma) < minTrendObservations {
		return "", ErrInsufficientHistory
	}
	if ma[len(ma)-1] > ma[len(ma)-minTrendObservations] {
		return "Upward", nil
	}
	return "Downward", nil
}

// yoyGrowth computes, for every year present except ones with no
// preceding year in the data, the growth of the yearly mean over the
// previous year's mean.
func yoyGrowth(s series.Series) []YearGrowth {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, o := range s {
		sums[o.Calendar.Year] += o.Price
		counts[o.Calendar.Year]++
	}

	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)

	var growth []YearGrowth
	for _, year := range years {
		prevCount, ok := counts[year-1]
		if !ok || prevCount == 0 {
			continue
		}
		curr := sums[year] / float64(counts[year])
		prev := sums[year-1] / float64(prevCount)
		if prev == 0 {
			continue
		}
		growth = append(growth, YearGrowth{
			Year:      year,
			GrowthPct: (curr/prev - 1) * 100,
		})
	}

	return growth
}

// cycleInfo detects local maxima and minima in the chronological monthly
// average sequence and reports counts plus the mean gap between
// consecutive peaks.
func cycleInfo(s series.Series) CycleInfo {
	keys, groups := groupMonths(s)

	monthly := make([]float64, len(keys))
	for i, key := range keys {
		monthly[i] = mean(groups[key].Prices())
	}

	peaks := findPeaks(monthly, cycleMinSeparation)

	negated := make([]float64, len(monthly))
	for i, v := range monthly {
		negated[i] = -v
	}
	troughs := findPeaks(negated, cycleMinSeparation)

	avgCycle := 0.0
	if len(peaks) > 1 {
		var gaps []float64
		for i := 1; i < len(peaks); i++ {
			gaps = append(gaps, float64(peaks[i]-peaks[i-1]))
		}
		avgCycle = mean(gaps)
	}

	return CycleInfo{
		PeaksDetected:   len(peaks),
		TroughsDetected: len(troughs),
		AvgCycleMonths:  avgCycle,
	}
}

// findPeaks returns the indices of strict local maxima, enforcing the
// minimum separation by dropping smaller peaks first.
func findPeaks(values []float64, minSeparation int) []int {
	var candidates []int
	for i := 1; i < len(values)-1; i++ {
		if values[i] > values[i-1] && values[i] > values[i+1] {
			candidates = append(candidates, i)
		}
	}

	if minSeparation <= 1 || len(candidates) < 2 {
		return candidates
	}

	// Process by height descending; ties keep the earlier candidate.
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[candidates[order[a]]] > values[candidates[order[b]]]
	})

	removed := make([]bool, len(candidates))
	for _, i := range order {
		if removed[i] {
			continue
		}
		for j := range candidates {
			if j == i || removed[j] {
				continue
			}
			if abs(candidates[j]-candidates[i]) < minSeparation {
				removed[j] = true
			}
		}
	}

	var kept []int
	for i, idx := range candidates {
		if !removed[i] {
			kept = append(kept, idx)
		}
	}
	return kept
}

func last(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[len(values)-1]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
