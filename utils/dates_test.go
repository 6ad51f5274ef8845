package utils

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginningOfDay(t *testing.T) {
	ts := time.Date(2026, 3, 15, 18, 42, 7, 123, time.UTC)
	got := BeginningOfDay(ts)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 1, 10, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, 1, 12, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(start, start))
	assert.Equal(t, -2, DaysBetween(end, start))
}

func TestDaysBetweenAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST starts 2026-03-08 in New York; the shortened day still counts.
	start := time.Date(2026, 3, 7, 0, 0, 0, 0, loc)
	end := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	assert.Equal(t, 2, DaysBetween(start, end))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("10/01/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}
