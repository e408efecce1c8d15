package timelog

import (
	"testing"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_NewFormat(t *testing.T) {
	entry, err := ParseLine("01/01/2020 09:00:00,01/01/2020 10:30:00,ENG,backend,api")
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectPath{"ENG", "backend", "api"}, entry.Path)
	assert.Equal(t, "", entry.User)
	assert.Equal(t, 90*time.Minute, entry.Duration())
}

func TestParseLine_NewFormatWithUser(t *testing.T) {
	entry, err := ParseLine("jsmith,01/01/2020 09:00:00,01/01/2020 10:00:00,ENG")
	require.NoError(t, err)
	assert.Equal(t, "jsmith", entry.User)
	assert.Equal(t, domain.ProjectPath{"ENG"}, entry.Path)
	assert.Equal(t, time.Hour, entry.Duration())
}

func TestParseLine_OldFormat(t *testing.T) {
	entry, err := ParseLine("ENG,backend,01/01/2020 09:00:00,01/01/2020 10:00:00")
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectPath{"ENG", "backend"}, entry.Path)
	assert.Equal(t, time.Hour, entry.Duration())
}

func TestParseLine_TrimsFieldWhitespace(t *testing.T) {
	entry, err := ParseLine("  01/01/2020 09:00:00 , 01/01/2020 10:00:00 , ENG , backend ")
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectPath{"ENG", "backend"}, entry.Path)
}

func TestParseLine_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"garbage", "not,a,log,line"},
		{"too few fields", "01/01/2020 09:00:00,ENG"},
		{"bad end date in new format", "01/01/2020 09:00:00,eleven,ENG,backend"},
		{"five fields no timestamps", "a,b,c,d,e"},
		{"user variant missing project", "jsmith,01/01/2020 09:00:00,01/01/2020 10:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			assert.Error(t, err)
		})
	}
}

func TestFormatLine_RoundTrip(t *testing.T) {
	start := time.Date(2020, 6, 15, 14, 5, 9, 0, time.Local)
	tests := []struct {
		name  string
		entry domain.Entry
	}{
		{"no user", domain.Entry{Start: start, End: start.Add(25 * time.Minute), Path: domain.ProjectPath{"ENG", "backend"}}},
		{"with user", domain.Entry{User: "jsmith", Start: start, End: start.Add(time.Hour), Path: domain.ProjectPath{"OPS"}}},
		{"deep path", domain.Entry{Start: start, End: start, Path: domain.ProjectPath{"A", "b", "c", "d"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseLine(FormatLine(tt.entry))
			require.NoError(t, err)
			assert.True(t, tt.entry.Equal(parsed), "round trip changed the entry")
		})
	}
}

func TestFormatLine_EmptyUserOmitsField(t *testing.T) {
	start := time.Date(2020, 1, 1, 9, 0, 0, 0, time.Local)
	line := FormatLine(domain.Entry{Start: start, End: start.Add(time.Hour), Path: domain.ProjectPath{"ENG"}})
	assert.Equal(t, "01/01/2020 09:00:00,01/01/2020 10:00:00,ENG", line)
}
