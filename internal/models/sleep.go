// ABOUTME: Sleep entry model with start/end clock times and duration.
// ABOUTME: Duration is derived from the times and wraps past midnight.
package models

import (
	"fmt"
	"time"
)

// SleepEntry records one night of sleep. Quality 0 means not rated.
type SleepEntry struct {
	Date      string `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" yaml:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" yaml:"end_time" validate:"required,datetime=15:04"`
	Duration  int    `json:"duration" yaml:"duration" validate:"gt=0"`
	Quality   int    `json:"quality,omitempty" yaml:"quality,omitempty" validate:"omitempty,min=1,max=5"`
}

// Validate checks times, duration, and the optional 1-5 quality.
func (e SleepEntry) Validate() error {
	return validateStruct("sleep entry", e)
}

// SleepDuration returns the minutes between two HH:MM clock times.
// An end at or before the start is taken to be on the next day.
func SleepDuration(start, end string) (int, error) {
	s, err := time.Parse(TimeLayout, start)
	if err != nil {
		return 0, fmt.Errorf("parse start time %q: %w", start, err)
	}
	e, err := time.Parse(TimeLayout, end)
	if err != nil {
		return 0, fmt.Errorf("parse end time %q: %w", end, err)
	}
	if !e.After(s) {
		e = e.Add(24 * time.Hour)
	}
	return int(e.Sub(s).Minutes()), nil
}

// FormatMinutes renders a duration in minutes as "7h 05m".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
