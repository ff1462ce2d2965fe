package utils

import (
	"math"
	"time"
)

// Entry dates are calendar days, not timestamps. DayOf collapses a moment
// to its calendar day, stored as midnight UTC so equality filters work.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func DaysAgo(now time.Time, days int) time.Time {
	return DayOf(now.AddDate(0, 0, -days))
}

// DaysUntil counts whole days from now until the given date, rounding up.
// Negative when the date is already past, zero when it falls within the
// next 24 hours.
func DaysUntil(date, now time.Time) int {
	return int(math.Ceil(date.Sub(now).Hours() / 24))
}

// RoundTo1 rounds to one decimal place, half away from zero.
func RoundTo1(x float64) float64 {
	return math.Round(x*10) / 10
}

// RoundPercent converts a part of a total into an integer percentage.
// A zero total yields 0 rather than dividing by zero.
func RoundPercent(part, total float64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(part / total * 100))
}
