package analysis

import (
	"math"
	"sort"
)

// Summary is the distributional summary of a set of prices.
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Range  float64 `json:"range"`
}

// Summarize computes the distributional summary over a non-empty price
// sequence. The standard deviation is the sample deviation (n-1); for a
// single observation it is reported as 0 rather than undefined.
func Summarize(prices []float64) (Summary, error) {
	if len(prices) == 0 {
		return Summary{}, ErrEmptyInput
	}

	min, max := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}

	return Summary{
		Mean:   mean(prices),
		Median: median(prices),
		Std:    sampleStd(prices),
		Min:    min,
		Max:    max,
		Range:  max - min,
	}, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// sampleStd is the n-1 standard deviation, normalized to 0 below two
// observations. The normalization is an explicit design rule: undefined
// dispersion is reported as 0 everywhere in the report.
func sampleStd(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	m := mean(values)
	var variance float64
	for _, v := range values {
		diff := v - m
		variance += diff * diff
	}
	variance /= float64(n - 1)

	return math.Sqrt(variance)
}
