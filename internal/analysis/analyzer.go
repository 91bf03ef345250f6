package analysis

import (
	"time"

	"github.com/wonny/coppermetrics/internal/series"
	"github.com/wonny/coppermetrics/pkg/logger"
)

// Analyzer turns a cleaned settlement price series into the full report.
// It is a pure computation over an immutable series: no retries, no
// partial results.
type Analyzer struct {
	logger *logger.Logger
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer(log *logger.Logger) *Analyzer {
	return &Analyzer{logger: log}
}

// Analyze runs every pattern, strategy, trend and volatility computation
// over the observations falling in the period (nil means the whole
// series) and composes them into one report. A period with no
// observations yields ErrEmptyPeriod and no report.
func (a *Analyzer) Analyze(s series.Series, period *series.Period) (*Report, error) {
	sub := s.Filter(period)
	if len(sub) == 0 {
		return nil, ErrEmptyPeriod
	}

	overall, err := Summarize(sub.Prices())
	if err != nil {
		return nil, err
	}

	// The reported period is the requested range when one was given,
	// otherwise the data bounds.
	start, end := sub.Start(), sub.End()
	if period != nil {
		start, end = period.Start, period.End
	}

	report := &Report{
		Period: PeriodInfo{
			Start:     start.Format(series.DateFormat),
			End:       end.Format(series.DateFormat),
			TotalDays: len(sub),
		},
		OverallStats:    overall,
		MonthlyAnalysis: analyzeMonthly(sub),
		WeeklyPatterns:  analyzeWeekly(sub),
		WeekdayAnalysis: analyzeWeekday(sub),
		PricingStrategy: analyzeStrategies(sub),
		Trends:          analyzeTrends(sub),
		Volatility:      analyzeVolatility(sub),
	}

	a.logger.WithFields(map[string]interface{}{
		"start":      report.Period.Start,
		"end":        report.Period.End,
		"total_days": report.Period.TotalDays,
	}).Info("Analysis completed")

	return report, nil
}

// NewRunMetadata describes an analysis run over the full loaded series.
func NewRunMetadata(source string, full series.Series, at time.Time) *RunMetadata {
	return &RunMetadata{
		AnalysisTimestamp: at.Format(time.RFC3339),
		DataSource:        source,
		TotalRecords:      len(full),
		DataRange: DateRange{
			Start: full.Start().Format(series.DateFormat),
			End:   full.End().Format(series.DateFormat),
		},
	}
}
