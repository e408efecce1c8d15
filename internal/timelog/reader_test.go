package timelog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile_MixedFormats(t *testing.T) {
	path := writeTempLog(t, ""+
		"ENG,backend,01/01/2020 09:00:00,01/01/2020 10:00:00\r\n"+
		"01/01/2020 10:00:00,01/01/2020 11:00:00,OPS,oncall\n"+
		"jsmith,01/01/2020 11:00:00,01/01/2020 12:00:00,ENG\n")

	entries, warnings, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, entries, 3)
	assert.Equal(t, "ENG", entries[0].Path.Top())
	assert.Equal(t, "OPS", entries[1].Path.Top())
	assert.Equal(t, "jsmith", entries[2].User)
}

func TestReadFile_MalformedLinesSkippedWithWarnings(t *testing.T) {
	path := writeTempLog(t, ""+
		"01/01/2020 09:00:00,01/01/2020 10:00:00,ENG\n"+
		"this is not a log line\n"+
		"\n"+
		"01/01/2020 12:00:00,01/01/2020 13:00:00,OPS\n")

	entries, warnings, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2, "one bad line never aborts the read")
	require.Len(t, warnings, 1)
	assert.Equal(t, 2, warnings[0].Line)
	assert.Equal(t, "this is not a log line", warnings[0].Content)
}

func TestReadFile_MissingFileIsHardError(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestFileAppender_AppendsWithoutRewriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	app := NewFileAppender(path)

	start := time.Date(2020, 1, 1, 9, 0, 0, 0, time.Local)
	first := domain.Entry{Start: start, End: start.Add(time.Hour), Path: domain.ProjectPath{"ENG"}}
	second := domain.Entry{Start: start.Add(time.Hour), End: start.Add(2 * time.Hour), Path: domain.ProjectPath{"OPS", "oncall"}}
	require.NoError(t, app.Append(first))
	require.NoError(t, app.Append(second))

	entries, warnings, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, entries, 2)
	assert.True(t, first.Equal(entries[0]))
	assert.True(t, second.Equal(entries[1]))
}
