package analysis

// Report is the full analysis output tree. It is assembled once per
// Analyze call and immutable afterwards. All floating values are finite
// and all dates are rendered as YYYY-MM-DD strings.
type Report struct {
	Period          PeriodInfo       `json:"period"`
	OverallStats    Summary          `json:"overall_stats"`
	MonthlyAnalysis MonthlyAnalysis  `json:"monthly_analysis"`
	WeeklyPatterns  []WeekPattern    `json:"weekly_patterns"`
	WeekdayAnalysis []WeekdayPattern `json:"weekday_analysis"`
	PricingStrategy []Strategy       `json:"pricing_strategy"`
	Trends          TrendReport      `json:"trends"`
	Volatility      VolatilityReport `json:"volatility"`
	Metadata        *RunMetadata     `json:"metadata,omitempty"`
}

// PeriodInfo describes the analyzed date range.
type PeriodInfo struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	TotalDays int    `json:"total_days"`
}

// MonthlyAnalysis holds per-(year,month) details and month-of-year
// seasonality across all years in the period.
type MonthlyAnalysis struct {
	MonthlyDetails []MonthStat       `json:"monthly_details"`
	Seasonality    []SeasonalityStat `json:"seasonality"`
}

// MonthStat summarizes one (year, month) bucket.
type MonthStat struct {
	Year             int      `json:"year"`
	Month            int      `json:"month"`
	MonthName        string   `json:"month_name"`
	Average          float64  `json:"average"`
	Min              float64  `json:"min"`
	Max              float64  `json:"max"`
	Std              float64  `json:"std"`
	DaysAboveAverage int      `json:"days_above_average"`
	DaysBelowAverage int      `json:"days_below_average"`
	BestDay          BestDay  `json:"best_day"`
	WorstDay         WorstDay `json:"worst_day"`
}

// BestDay is the highest-priced day of a month bucket.
type BestDay struct {
	Date         string  `json:"date"`
	Value        float64 `json:"value"`
	PremiumToAvg float64 `json:"premium_to_avg"`
}

// WorstDay is the lowest-priced day of a month bucket.
type WorstDay struct {
	Date          string  `json:"date"`
	Value         float64 `json:"value"`
	DiscountToAvg float64 `json:"discount_to_avg"`
}

// SeasonalityStat is the mean/std of price for one calendar month across
// all years in the period.
type SeasonalityStat struct {
	Month     int     `json:"month"`
	Mean      float64 `json:"mean"`
	Std       float64 `json:"std"`
	MonthName string  `json:"month_name"`
}

// WeekPattern summarizes one week-of-month bucket, ranked by its average
// deviation from the enclosing months' averages.
type WeekPattern struct {
	Week                  string  `json:"week"`
	AvgPrice              float64 `json:"avg_price"`
	Std                   float64 `json:"std"`
	Count                 int     `json:"count"`
	AvgPerformanceVsMonth float64 `json:"avg_performance_vs_month"`
	BestPerformance       float64 `json:"best_performance"`
	WorstPerformance      float64 `json:"worst_performance"`
}

// WeekdayPattern summarizes one weekday bucket, ranked by how often its
// days beat the enclosing month's average.
type WeekdayPattern struct {
	Weekday            string  `json:"weekday"`
	AvgPrice           float64 `json:"avg_price"`
	Std                float64 `json:"std"`
	Count              int     `json:"count"`
	BeatsMonthlyAvgPct float64 `json:"beats_monthly_avg_pct"`
}

// Strategy is a named pricing-timing strategy scored against the monthly
// average.
type Strategy struct {
	Name                    string  `json:"name"`
	Description             string  `json:"description"`
	AvgPerformanceVsMonthly float64 `json:"avg_performance_vs_monthly"`
	SuccessRate             float64 `json:"success_rate"`
	RiskLevel               string  `json:"risk_level"`
}

// TrendReport holds moving averages, trend direction, year-over-year
// growth and cycle statistics.
type TrendReport struct {
	CurrentTrend string       `json:"current_trend"`
	MA7Current   float64      `json:"ma_7_current"`
	MA30Current  float64      `json:"ma_30_current"`
	MA90Current  float64      `json:"ma_90_current"`
	YoYGrowth    []YearGrowth `json:"yoy_growth"`
	CycleInfo    CycleInfo    `json:"cycle_info"`
}

// YearGrowth is the year-over-year growth for one year.
type YearGrowth struct {
	Year      int     `json:"year"`
	GrowthPct float64 `json:"growth_pct"`
}

// CycleInfo holds simplified cycle statistics from local-extrema
// detection on the monthly-average sequence.
type CycleInfo struct {
	PeaksDetected   int     `json:"peaks_detected"`
	TroughsDetected int     `json:"troughs_detected"`
	AvgCycleMonths  float64 `json:"avg_cycle_months"`
}

// VolatilityReport holds dispersion metrics overall and per calendar
// bucket, plus daily-return statistics.
type VolatilityReport struct {
	OverallVolatility   float64     `json:"overall_volatility"`
	DailyReturnStats    ReturnStats `json:"daily_return_stats"`
	MostVolatileMonth   int         `json:"most_volatile_month"`
	LeastVolatileMonth  int         `json:"least_volatile_month"`
	MostVolatileWeekday int         `json:"most_volatile_weekday"`
	MostVolatileWeek    int         `json:"most_volatile_week"`
}

// ReturnStats are day-over-day percentage-return statistics.
type ReturnStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Max  float64 `json:"max"`
	Min  float64 `json:"min"`
}

// RunMetadata describes the run that produced the report.
type RunMetadata struct {
	AnalysisTimestamp string    `json:"analysis_timestamp"`
	DataSource        string    `json:"data_source"`
	TotalRecords      int       `json:"total_records"`
	DataRange         DateRange `json:"data_range"`
}

// DateRange is a rendered start/end date pair.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
