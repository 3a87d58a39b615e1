// Package dates provides the calendar arithmetic used by the financial
// engine. Dates are carried as "YYYY-MM-DD" strings throughout the system
// and must always be interpreted in local time: parsing them as UTC and
// rendering in a negative-offset timezone shifts them back one day.
package dates

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const Layout = "2006-01-02"

// ParseLocal parses an ISO date string as local midnight. It splits the
// string on "-" and builds the date from its components directly rather
// than going through a UTC-parsing constructor. An empty or malformed
// input falls back to "now".
func ParseLocal(s string, now time.Time) time.Time {
	if s == "" {
		return now
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return now
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return now
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
}

// AddMonths adds n calendar months to an ISO date string. Month overflow
// is normalized by the standard library (Jan 31 + 1 month rolls into
// March); no end-of-month clamping is performed.
func AddMonths(s string, n int) string {
	t := ParseLocal(s, time.Now())
	return t.AddDate(0, n, 0).Format(Layout)
}

// DaysBetween returns the absolute difference between two instants in
// whole days, ceiling-rounded. A transaction dated at midnight today
// compared against an afternoon "now" counts as one day.
func DaysBetween(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// SameMonth reports whether t falls in the same calendar month and year
// as ref.
func SameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

// SameYear reports whether t falls in the same calendar year as ref.
func SameYear(t, ref time.Time) bool {
	return t.Year() == ref.Year()
}
