package timelog

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
)

// Warning reports a malformed log line that was skipped during a read.
type Warning struct {
	Line    int
	Content string
	Err     error
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %v: %q", w.Line, w.Err, w.Content)
}

// ReadFile parses an entire log file. Malformed lines are skipped and
// reported as warnings; a missing or unreadable file is a hard error.
// Blank lines are ignored. Both \r\n and platform newlines are accepted.
func ReadFile(path string) ([]domain.Entry, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	var (
		entries  []domain.Entry
		warnings []Warning
		lineNo   int
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := ParseLine(line)
		if err != nil {
			warnings = append(warnings, Warning{Line: lineNo, Content: line, Err: err})
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("reading log file: %w", err)
	}
	return entries, warnings, nil
}
