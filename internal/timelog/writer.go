package timelog

import (
	"fmt"
	"os"

	"github.com/alexanderramin/tally/internal/domain"
)

// Appender persists log entries. The file-backed implementation is
// append-only; nothing in the system ever rewrites or deletes an entry.
type Appender interface {
	Append(e domain.Entry) error
}

// FileAppender appends canonical-format lines to a log file, opening and
// closing the file around every write so a crash never holds the handle.
type FileAppender struct {
	Path string
}

func NewFileAppender(path string) *FileAppender {
	return &FileAppender{Path: path}
}

func (a *FileAppender) Append(e domain.Entry) error {
	f, err := os.OpenFile(a.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file for append: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, FormatLine(e)); err != nil {
		return fmt.Errorf("appending log entry: %w", err)
	}
	return nil
}
