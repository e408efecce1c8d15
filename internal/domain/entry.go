package domain

import "time"

// Entry is a single recorded interval in the time log. Entries are written
// once and never rewritten; the log file is append-only.
//
// Start <= End is not guaranteed by the writer. Readers must tolerate
// reversed intervals and exclude them from sums.
type Entry struct {
	User  string // optional hub username; empty for single-user logs
	Start time.Time
	End   time.Time
	Path  ProjectPath
}

// Duration returns End - Start. May be negative for pathological entries.
func (e Entry) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Equal compares entries to second precision, which is what the log format
// preserves.
func (e Entry) Equal(o Entry) bool {
	return e.User == o.User &&
		e.Start.Truncate(time.Second).Equal(o.Start.Truncate(time.Second)) &&
		e.End.Truncate(time.Second).Equal(o.End.Truncate(time.Second)) &&
		e.Path.Equal(o.Path)
}
