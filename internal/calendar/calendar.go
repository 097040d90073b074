// Package calendar holds the date arithmetic that maps a program's start
// date to 1-based day numbers and week ranges.
package calendar

import "time"

// Midnight truncates a timestamp to midnight UTC. All program dates are
// compared and stored at day granularity.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayNumberFromDate returns the 1-based program day number for a calendar
// date. The start date itself is day 1. Dates before the start date yield
// numbers <= 0; callers are responsible for range checks.
func DayNumberFromDate(startDate, targetDate time.Time) int {
	delta := Midnight(targetDate).Sub(Midnight(startDate))
	return int(delta.Hours()/24) + 1
}

// DateFromDayNumber is the inverse of DayNumberFromDate.
func DateFromDayNumber(startDate time.Time, dayNumber int) time.Time {
	return Midnight(startDate).AddDate(0, 0, dayNumber-1)
}

// WeekDateRange returns the first and last date of a 1-based program week.
// Week 1 covers days 1-7, week 2 days 8-14, and so on.
func WeekDateRange(startDate time.Time, weekNumber int) (time.Time, time.Time) {
	weekStart := Midnight(startDate).AddDate(0, 0, (weekNumber-1)*7)
	weekEnd := weekStart.AddDate(0, 0, 6)
	return weekStart, weekEnd
}

// CurrentWeekDates returns the seven dates, Monday through Sunday, of the
// calendar week containing the given program day. The week is anchored on
// Monday independent of the program's own day numbering.
func CurrentWeekDates(startDate time.Time, currentDay int) []time.Time {
	currentDate := DateFromDayNumber(startDate, currentDay)

	daysSinceMonday := int(currentDate.Weekday()) - int(time.Monday)
	if daysSinceMonday < 0 {
		daysSinceMonday += 7
	}
	weekStart := currentDate.AddDate(0, 0, -daysSinceMonday)

	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = weekStart.AddDate(0, 0, i)
	}
	return dates
}
