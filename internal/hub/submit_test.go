package hub

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitThenAggregateRoundTrip(t *testing.T) {
	h := testutil.NewHub(t).
		WithTeams("alpha").
		WithTeamSettings("alpha", "headcount = 5\n").
		WithWeekDir("alpha", "2024wk07")

	now := time.Date(2024, 2, 14, 17, 30, 0, 0, time.Local)
	id, err := Submit(h.Root, "alpha", "2024wk07", "ana", map[string]float64{
		"ENG": 0.75,
		"OPS": 0.25,
	}, now)
	require.NoError(t, err)
	require.Len(t, id, 8)

	roster, err := os.ReadFile(filepath.Join(h.Root, "raw", "alpha", "2024wk07", "submitted.txt"))
	require.NoError(t, err)
	assert.Equal(t, id+",ana,14/02/2024 17:30:00\n", string(roster))

	percentages, err := os.ReadFile(filepath.Join(h.Root, "raw", "alpha", "2024wk07", id+".log"))
	require.NoError(t, err)
	assert.Equal(t, "ENG,0.75\nOPS,0.25\n", string(percentages))

	result, err := Aggregate(h.Root)
	require.NoError(t, err)
	week := result.Combined.Weeks["2024wk07"]
	require.NotNil(t, week)
	assert.InDelta(t, 1.0, week.PerUser["ana"], 1e-9)
	assert.InDelta(t, 4.0, week.Missing, 1e-9)
}

func TestSubmit_SecondSubmissionAppendsRoster(t *testing.T) {
	h := testutil.NewHub(t).
		WithTeams("alpha").
		WithWeekDir("alpha", "2024wk07")

	now := time.Date(2024, 2, 14, 9, 0, 0, 0, time.Local)
	first, err := Submit(h.Root, "alpha", "2024wk07", "ana", map[string]float64{"ENG": 0.5}, now)
	require.NoError(t, err)
	second, err := Submit(h.Root, "alpha", "2024wk07", "ana", map[string]float64{"ENG": 1.0}, now)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	roster, err := os.ReadFile(filepath.Join(h.Root, "raw", "alpha", "2024wk07", "submitted.txt"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(roster)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], first+","))
	assert.True(t, strings.HasPrefix(lines[1], second+","))
}

func TestSubmit_RequiresUserAndProvisionedWeek(t *testing.T) {
	h := testutil.NewHub(t).
		WithTeams("alpha").
		WithWeekDir("alpha", "2024wk07")

	now := time.Now()
	_, err := Submit(h.Root, "alpha", "2024wk07", "", nil, now)
	assert.ErrorContains(t, err, "username")

	_, err = Submit(h.Root, "alpha", "2024wk99", "ana", nil, now)
	assert.ErrorContains(t, err, "does not exist")
}

func TestProvision_CreatesWeekDropBoxes(t *testing.T) {
	h := testutil.NewHub(t).WithTeams("alpha", "beta")

	require.NoError(t, Provision(h.Root, 2024, 2025))

	for _, team := range []string{"alpha", "beta"} {
		for _, week := range []string{"2024wk01", "2024wk52", "2025wk07"} {
			info, err := os.Stat(filepath.Join(h.Root, "raw", team, week))
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		}
	}
	_, err := os.Stat(filepath.Join(h.Root, "raw", "alpha", "2026wk01"))
	assert.True(t, os.IsNotExist(err))
}

func TestProvision_EmptyYearRangeIsError(t *testing.T) {
	h := testutil.NewHub(t).WithTeams("alpha")
	assert.Error(t, Provision(h.Root, 2025, 2024))
}

func TestWeekID(t *testing.T) {
	assert.Equal(t, "2024wk07", WeekID(2024, 7))
	assert.Equal(t, "2024wk52", WeekID(2024, 52))
}
