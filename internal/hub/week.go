package hub

import (
	"fmt"
	"time"
)

// WeekOf names the drop box for the ISO week containing t.
func WeekOf(t time.Time) string {
	year, week := t.ISOWeek()
	return WeekID(year, week)
}

// WeekPeriod resolves a week identifier like "2024wk07" into the half-open
// local-time period [Monday 00:00, next Monday 00:00).
func WeekPeriod(id string) (time.Time, time.Time, error) {
	var year, week int
	if _, err := fmt.Sscanf(id, "%dwk%d", &year, &week); err != nil || week < 1 || week > 53 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid week identifier %q, expected e.g. 2024wk07", id)
	}
	// January 4th always falls in ISO week 1.
	anchor := time.Date(year, time.January, 4, 0, 0, 0, 0, time.Local)
	monday := anchor.AddDate(0, 0, -((int(anchor.Weekday()) + 6) % 7))
	from := monday.AddDate(0, 0, (week-1)*7)
	return from, from.AddDate(0, 0, 7), nil
}

// ReadPercentageFile parses a standalone "project,fraction" breakdown, as
// written by the review flow, for submission. Warnings describe skipped
// malformed lines.
func ReadPercentageFile(path string) (map[string]float64, []string, error) {
	var warnings []string
	fractions, err := readPercentages(path, func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	})
	return fractions, warnings, err
}
