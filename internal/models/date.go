// ABOUTME: Date helpers shared by every tracker entry.
// ABOUTME: Entries key on calendar days stored as YYYY-MM-DD strings.
package models

import "time"

// DateLayout is the calendar-day format used by every entry's Date field.
const DateLayout = "2006-01-02"

// TimeLayout is the clock format used by meal and sleep times.
const TimeLayout = "15:04"

// DateOf formats t as a calendar day in t's location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysAgo returns the calendar day n days before now.
func DaysAgo(now time.Time, n int) string {
	return DateOf(now.AddDate(0, 0, -n))
}

// ParseDate parses a YYYY-MM-DD day in the local zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}
