// Package analyser summarizes a time log per top-level project over a
// reporting window.
package analyser

import (
	"sort"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/timelog"
)

// Summary maps top-level project names to total recorded time.
type Summary map[string]time.Duration

// Projects returns the project names in lexicographic order, so that any
// enumeration of the summary is deterministic.
func (s Summary) Projects() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hours converts a duration to fractional hours. Rounding happens only at
// presentation time.
func (s Summary) Hours(project string) float64 {
	return s[project].Hours()
}

// Total returns the sum over all projects.
func (s Summary) Total() time.Duration {
	var total time.Duration
	for _, d := range s {
		total += d
	}
	return total
}

// Analyse reads the log file and sums durations per top-level project,
// clipping every entry to the half-open period [from, to). Either bound may
// be nil for an unbounded side. Entries that are inverted after clipping,
// which covers both reversed log entries and entries entirely outside the
// window, are excluded. Malformed lines are returned as warnings; an
// unreadable file is a hard error.
func Analyse(logPath string, from, to *time.Time) (Summary, []timelog.Warning, error) {
	entries, warnings, err := timelog.ReadFile(logPath)
	if err != nil {
		return nil, warnings, err
	}
	sums := Summary{}
	for _, entry := range entries {
		if d, ok := clip(entry, from, to); ok {
			sums[entry.Path.Top()] += d
		}
	}
	return sums, warnings, nil
}

func clip(entry domain.Entry, from, to *time.Time) (time.Duration, bool) {
	start, end := entry.Start, entry.End
	if from != nil && start.Before(*from) {
		start = *from
	}
	if to != nil && end.After(*to) {
		end = *to
	}
	if start.After(end) {
		return 0, false
	}
	return end.Sub(start), true
}
