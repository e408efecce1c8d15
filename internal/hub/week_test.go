package hub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekOf(t *testing.T) {
	// 2024-02-14 is a Wednesday in ISO week 7.
	assert.Equal(t, "2024wk07", WeekOf(time.Date(2024, 2, 14, 12, 0, 0, 0, time.Local)))
	// 2021-01-01 is a Friday belonging to 2020's week 53.
	assert.Equal(t, "2020wk53", WeekOf(time.Date(2021, 1, 1, 0, 0, 0, 0, time.Local)))
}

func TestWeekPeriod(t *testing.T) {
	from, to, err := WeekPeriod("2024wk07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 12, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2024, 2, 19, 0, 0, 0, 0, time.Local), to)
	assert.Equal(t, time.Monday, from.Weekday())

	// Round trip: every day of the period names the same week.
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		assert.Equal(t, "2024wk07", WeekOf(d))
	}
}

func TestWeekPeriod_FirstWeekMayStartInPreviousYear(t *testing.T) {
	from, _, err := WeekPeriod("2021wk01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 1, 4, 0, 0, 0, 0, time.Local), from)

	from, _, err = WeekPeriod("2020wk01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, 12, 30, 0, 0, 0, 0, time.Local), from)
}

func TestWeekPeriod_Invalid(t *testing.T) {
	for _, id := range []string{"", "2024", "wk07", "2024wk00", "2024wk54"} {
		_, _, err := WeekPeriod(id)
		assert.Error(t, err, id)
	}
}
