package series

import "time"

// Calendar holds the calendar attributes derived from an observation date.
// Every field is a pure function of the date.
type Calendar struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	MonthName   string `json:"month_name"`
	Day         int    `json:"day"`
	Weekday     int    `json:"weekday"` // 0=Monday .. 6=Sunday
	WeekdayName string `json:"weekday_name"`
	WeekOfMonth int    `json:"week_of_month"` // 1..5
	Quarter     int    `json:"quarter"`       // 1..4
}

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// NewCalendar derives the calendar attribute bundle for a date.
func NewCalendar(date time.Time) Calendar {
	month := int(date.Month())
	weekday := mondayIndexed(date)

	return Calendar{
		Year:        date.Year(),
		Month:       month,
		MonthName:   date.Month().String(),
		Day:         date.Day(),
		Weekday:     weekday,
		WeekdayName: weekdayNames[weekday],
		WeekOfMonth: weekOfMonth(date),
		Quarter:     (month-1)/3 + 1,
	}
}

// WeekdayName returns the Monday-indexed weekday name for an index 0..6.
func WeekdayName(weekday int) string {
	return weekdayNames[weekday]
}

// mondayIndexed converts time.Weekday (Sunday=0) to Monday=0 .. Sunday=6.
func mondayIndexed(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// weekOfMonth computes the week of month (1..5): the day of month shifted
// by the weekday of the first of the month, divided into 7-day rows. Months
// starting on Friday or Saturday can spill a 6th row; those days are folded
// into week 5 so the bucket range stays 1..5.
func weekOfMonth(date time.Time) int {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	adjusted := date.Day() + mondayIndexed(first)
	week := (adjusted-1)/7 + 1
	if week > 5 {
		week = 5
	}
	return week
}
