package timelog

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

// TimeLayout is the timestamp format used everywhere in the log.
const TimeLayout = "02/01/2006 15:04:05"

// DateLayout is the day-granularity format used for reporting periods.
const DateLayout = "02/01/2006"

// ParseLine decodes one log line. Fields are comma-separated; whitespace
// around each field is ignored. Two layouts are accepted:
//
//	new: [user,]start,end,project[,subProject...]   (canonical output)
//	old: project,subProject,start,end               (read-only legacy)
//
// Layout detection branches on whether the leading fields parse as
// timestamps, not on recovered errors.
func ParseLine(line string) (domain.Entry, error) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 4 {
		return domain.Entry{}, fmt.Errorf("expected at least 4 fields, got %d", len(fields))
	}

	if start, ok := parseTime(fields[0]); ok {
		// New format without a user id.
		end, ok := parseTime(fields[1])
		if !ok {
			return domain.Entry{}, fmt.Errorf("bad end timestamp %q", fields[1])
		}
		return domain.Entry{Start: start, End: end, Path: domain.ProjectPath(fields[2:])}, nil
	}
	if start, ok := parseTime(fields[1]); ok {
		// New format with a leading user id.
		if len(fields) < 5 {
			return domain.Entry{}, fmt.Errorf("expected at least 5 fields with a user id, got %d", len(fields))
		}
		end, ok := parseTime(fields[2])
		if !ok {
			return domain.Entry{}, fmt.Errorf("bad end timestamp %q", fields[2])
		}
		return domain.Entry{User: fields[0], Start: start, End: end, Path: domain.ProjectPath(fields[3:])}, nil
	}

	// Legacy four-field layout: project,subProject,start,end.
	if len(fields) != 4 {
		return domain.Entry{}, fmt.Errorf("unrecognised layout: %d fields and no leading timestamp", len(fields))
	}
	start, ok := parseTime(fields[2])
	if !ok {
		return domain.Entry{}, fmt.Errorf("bad start timestamp %q", fields[2])
	}
	end, ok := parseTime(fields[3])
	if !ok {
		return domain.Entry{}, fmt.Errorf("bad end timestamp %q", fields[3])
	}
	return domain.Entry{Start: start, End: end, Path: domain.ProjectPath{fields[0], fields[1]}}, nil
}

// FormatLine encodes an entry in the canonical new format. An empty user id
// is omitted entirely, including its comma.
func FormatLine(e domain.Entry) string {
	parts := make([]string, 0, len(e.Path)+3)
	if e.User != "" {
		parts = append(parts, e.User)
	}
	parts = append(parts, e.Start.Format(TimeLayout), e.End.Format(TimeLayout))
	parts = append(parts, e.Path...)
	return strings.Join(parts, ",")
}

func parseTime(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
