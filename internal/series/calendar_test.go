package series

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewCalendar(t *testing.T) {
	tests := []struct {
		name            string
		date            time.Time
		wantWeekday     int
		wantWeekdayName string
		wantWeekOfMonth int
		wantQuarter     int
	}{
		{
			// 2024-01-01 is a Monday
			name:            "first of month on Monday",
			date:            date(2024, time.January, 1),
			wantWeekday:     0,
			wantWeekdayName: "Monday",
			wantWeekOfMonth: 1,
			wantQuarter:     1,
		},
		{
			name:            "monday of second row",
			date:            date(2024, time.January, 8),
			wantWeekday:     0,
			wantWeekdayName: "Monday",
			wantWeekOfMonth: 2,
			wantQuarter:     1,
		},
		{
			// 2024-03-01 is a Friday, so March 4 falls in week 2
			name:            "offset month start",
			date:            date(2024, time.March, 4),
			wantWeekday:     0,
			wantWeekdayName: "Monday",
			wantWeekOfMonth: 2,
			wantQuarter:     1,
		},
		{
			name:            "sunday",
			date:            date(2024, time.June, 30),
			wantWeekday:     6,
			wantWeekdayName: "Sunday",
			wantWeekOfMonth: 5,
			wantQuarter:     2,
		},
		{
			// 2024-12-31 is a Tuesday; Dec 1 is a Sunday, so the raw row
			// index is 6 and must fold into week 5
			name:            "sixth row folds into week five",
			date:            date(2024, time.December, 31),
			wantWeekday:     1,
			wantWeekdayName: "Tuesday",
			wantWeekOfMonth: 5,
			wantQuarter:     4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := NewCalendar(tt.date)

			if cal.Weekday != tt.wantWeekday {
				t.Errorf("Weekday = %d, want %d", cal.Weekday, tt.wantWeekday)
			}
			if cal.WeekdayName != tt.wantWeekdayName {
				t.Errorf("WeekdayName = %s, want %s", cal.WeekdayName, tt.wantWeekdayName)
			}
			if cal.WeekOfMonth != tt.wantWeekOfMonth {
				t.Errorf("WeekOfMonth = %d, want %d", cal.WeekOfMonth, tt.wantWeekOfMonth)
			}
			if cal.Quarter != tt.wantQuarter {
				t.Errorf("Quarter = %d, want %d", cal.Quarter, tt.wantQuarter)
			}
			if cal.Year != tt.date.Year() || cal.Month != int(tt.date.Month()) || cal.Day != tt.date.Day() {
				t.Errorf("date fields mismatch: %+v", cal)
			}
		})
	}
}

func TestWeekOfMonthRange(t *testing.T) {
	// Sweep several years: week_of_month must stay within 1..5 and be
	// stable for repeated derivations of the same date.
	for d := date(2020, time.January, 1); d.Year() < 2025; d = d.AddDate(0, 0, 1) {
		cal := NewCalendar(d)
		if cal.WeekOfMonth < 1 || cal.WeekOfMonth > 5 {
			t.Fatalf("week_of_month out of range for %s: %d", d.Format(DateFormat), cal.WeekOfMonth)
		}
		if again := NewCalendar(d); again != cal {
			t.Fatalf("calendar derivation not pure for %s", d.Format(DateFormat))
		}
	}
}

func TestNewCalendarMonthNames(t *testing.T) {
	cal := NewCalendar(date(2023, time.September, 15))
	if cal.MonthName != "September" {
		t.Errorf("MonthName = %s, want September", cal.MonthName)
	}
}
