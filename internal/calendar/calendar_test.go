package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayNumberFromDate_StartDateIsDayOne(t *testing.T) {
	start := date(2024, time.January, 1)
	assert.Equal(t, 1, DayNumberFromDate(start, start))
}

func TestDayNumberFromDate_Offsets(t *testing.T) {
	start := date(2024, time.January, 1)

	assert.Equal(t, 3, DayNumberFromDate(start, date(2024, time.January, 3)))
	assert.Equal(t, 31, DayNumberFromDate(start, date(2024, time.January, 31)))
	// Dates before the start are not rejected here
	assert.Equal(t, 0, DayNumberFromDate(start, date(2023, time.December, 31)))
	assert.Equal(t, -5, DayNumberFromDate(start, date(2023, time.December, 26)))
}

func TestDayNumberFromDate_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.March, 10, 23, 45, 0, 0, time.UTC)
	target := time.Date(2024, time.March, 11, 0, 15, 0, 0, time.UTC)

	assert.Equal(t, 2, DayNumberFromDate(start, target))
}

func TestDateFromDayNumber_RoundTrip(t *testing.T) {
	start := date(2024, time.February, 15)

	for _, target := range []time.Time{
		start,
		date(2024, time.February, 29), // leap day
		date(2024, time.March, 20),
		date(2023, time.December, 1),
	} {
		n := DayNumberFromDate(start, target)
		assert.Equal(t, target, DateFromDayNumber(start, n))
	}
}

func TestWeekDateRange(t *testing.T) {
	start := date(2024, time.January, 1)

	weekStart, weekEnd := WeekDateRange(start, 1)
	assert.Equal(t, start, weekStart)
	assert.Equal(t, date(2024, time.January, 7), weekEnd)

	for week := 1; week <= 5; week++ {
		weekStart, weekEnd = WeekDateRange(start, week)
		assert.Equal(t, start.AddDate(0, 0, (week-1)*7), weekStart)
		assert.Equal(t, weekStart.AddDate(0, 0, 6), weekEnd)
	}
}

func TestCurrentWeekDates_MondayAnchored(t *testing.T) {
	// 2024-01-01 is a Monday; day 3 is Wednesday 2024-01-03.
	start := date(2024, time.January, 1)

	dates := CurrentWeekDates(start, 3)
	assert.Len(t, dates, 7)
	assert.Equal(t, date(2024, time.January, 1), dates[0])
	assert.Equal(t, time.Monday, dates[0].Weekday())
	assert.Equal(t, date(2024, time.January, 7), dates[6])
	assert.Equal(t, time.Sunday, dates[6].Weekday())
}

func TestCurrentWeekDates_StartMidweek(t *testing.T) {
	// 2024-01-04 is a Thursday; its Monday is 2024-01-01.
	start := date(2024, time.January, 4)

	dates := CurrentWeekDates(start, 1)
	assert.Equal(t, date(2024, time.January, 1), dates[0])
	assert.Equal(t, date(2024, time.January, 7), dates[6])

	// Day 5 falls on Monday 2024-01-08, starting a fresh week.
	dates = CurrentWeekDates(start, 5)
	assert.Equal(t, date(2024, time.January, 8), dates[0])
}

func TestMidnight(t *testing.T) {
	ts := time.Date(2024, time.June, 5, 17, 30, 12, 999, time.UTC)
	assert.Equal(t, date(2024, time.June, 5), Midnight(ts))
}
