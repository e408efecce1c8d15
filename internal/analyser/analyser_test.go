package analyser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func at(hour int) *time.Time {
	t := time.Date(2020, 1, 1, hour, 0, 0, 0, time.Local)
	return &t
}

func TestAnalyse_ClipsToPeriod(t *testing.T) {
	path := writeLog(t, "01/01/2020 08:00:00,01/01/2020 12:00:00,ENG\n")

	sums, warnings, err := Analyse(path, at(9), at(11))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 2*time.Hour, sums["ENG"])

	sums, _, err = Analyse(path, at(13), at(14))
	require.NoError(t, err)
	assert.NotContains(t, sums, "ENG", "entry entirely before the window contributes nothing")
}

func TestAnalyse_InvertedAfterClipExcluded(t *testing.T) {
	path := writeLog(t, "01/01/2020 10:00:00,01/01/2020 11:00:00,ENG\n")
	sums, _, err := Analyse(path, at(12), at(13))
	require.NoError(t, err)
	assert.Empty(t, sums)
}

func TestAnalyse_ReversedEntryExcluded(t *testing.T) {
	path := writeLog(t, "01/01/2020 11:00:00,01/01/2020 10:00:00,ENG\n")
	sums, _, err := Analyse(path, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, sums, "writer does not guarantee start <= end; readers discard")
}

func TestAnalyse_SumsByTopLevelProject(t *testing.T) {
	path := writeLog(t, ""+
		"01/01/2020 09:00:00,01/01/2020 10:00:00,ENG,backend\n"+
		"01/01/2020 10:00:00,01/01/2020 10:30:00,ENG,frontend\n"+
		"ENG,backend,01/01/2020 11:00:00,01/01/2020 12:00:00\n"+
		"01/01/2020 12:00:00,01/01/2020 13:00:00,OPS\n")

	sums, warnings, err := Analyse(path, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 150*time.Minute, sums["ENG"], "sub-project detail is folded into the top-level key")
	assert.Equal(t, time.Hour, sums["OPS"])
	assert.Equal(t, []string{"ENG", "OPS"}, sums.Projects())
	assert.InDelta(t, 2.5, sums.Hours("ENG"), 1e-9)
	assert.Equal(t, 210*time.Minute, sums.Total())
}

func TestAnalyse_UnboundedSides(t *testing.T) {
	path := writeLog(t, "01/01/2020 08:00:00,01/01/2020 12:00:00,ENG\n")

	sums, _, err := Analyse(path, at(10), nil)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, sums["ENG"])

	sums, _, err = Analyse(path, nil, at(10))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, sums["ENG"])
}

func TestAnalyse_MalformedLinesAreWarnings(t *testing.T) {
	path := writeLog(t, "bogus\n01/01/2020 09:00:00,01/01/2020 10:00:00,ENG\n")
	sums, warnings, err := Analyse(path, nil, nil)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, time.Hour, sums["ENG"])
}

func TestAnalyse_MissingFileIsHardError(t *testing.T) {
	_, _, err := Analyse(filepath.Join(t.TempDir(), "absent.txt"), nil, nil)
	assert.Error(t, err)
}
