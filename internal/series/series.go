package series

import (
	"sort"
	"time"
)

// DateFormat is the wire format for all dates in reports.
const DateFormat = "2006-01-02"

// Observation is a single daily settlement price, enriched with
// calendar attributes at construction time.
type Observation struct {
	Date     time.Time
	Price    float64
	Calendar Calendar
}

// Series is an ordered sequence of observations, strictly sorted by date
// ascending with no duplicate dates. It is built once per analysis run and
// treated as immutable by every analyzer.
type Series []Observation

// New builds a Series from raw (date, price) observations: it derives the
// calendar attributes, sorts ascending by date and drops duplicate dates
// (first occurrence wins).
func New(obs []Observation) Series {
	s := make(Series, len(obs))
	copy(s, obs)

	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Date.Before(s[j].Date)
	})

	out := s[:0]
	var prev time.Time
	for _, o := range s {
		day := o.Date.Truncate(24 * time.Hour)
		if len(out) > 0 && day.Equal(prev) {
			continue
		}
		o.Date = day
		o.Calendar = NewCalendar(day)
		out = append(out, o)
		prev = day
	}

	return out
}

// Prices returns the price column in date order.
func (s Series) Prices() []float64 {
	prices := make([]float64, len(s))
	for i, o := range s {
		prices[i] = o.Price
	}
	return prices
}

// Start returns the earliest observation date. Zero time for an empty series.
func (s Series) Start() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}
	return s[0].Date
}

// End returns the latest observation date. Zero time for an empty series.
func (s Series) End() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}
	return s[len(s)-1].Date
}

// Filter returns the sub-series whose dates fall within the period.
// A nil period selects the whole series. The returned slice shares the
// backing array; callers never mutate observations.
func (s Series) Filter(p *Period) Series {
	if p == nil {
		return s
	}

	lo := sort.Search(len(s), func(i int) bool {
		return !s[i].Date.Before(p.Start)
	})
	hi := sort.Search(len(s), func(i int) bool {
		return s[i].Date.After(p.End)
	})

	return s[lo:hi]
}

// Period is a closed date interval, inclusive on both ends.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod builds a period from dates, normalized to midnight.
func NewPeriod(start, end time.Time) Period {
	return Period{
		Start: start.Truncate(24 * time.Hour),
		End:   end.Truncate(24 * time.Hour),
	}
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateFormat, value)
}
