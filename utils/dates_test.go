package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfDay(t *testing.T) {
	ts := time.Date(2024, 6, 15, 14, 30, 45, 123, time.UTC)
	got := BeginningOfDay(ts)

	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestEndOfDay(t *testing.T) {
	ts := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	got := EndOfDay(ts)

	assert.Equal(t, 15, got.Day())
	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 59, got.Minute())
	// Still the same day; the next instant is midnight.
	assert.True(t, got.Before(time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)))
}

func TestDayGranularityRangeBoundaries(t *testing.T) {
	start := time.Date(2024, 6, 10, 17, 45, 0, 0, time.UTC)
	end := time.Date(2024, 6, 20, 8, 15, 0, 0, time.UTC)

	from := BeginningOfDay(start)
	to := EndOfDay(end)

	inRange := func(ts time.Time) bool {
		return !ts.Before(from) && !ts.After(to)
	}

	// midnight on the start day and 23:59 on the end day are inside
	assert.True(t, inRange(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, inRange(time.Date(2024, 6, 20, 23, 59, 0, 0, time.UTC)))
	// one day either side is outside
	assert.False(t, inRange(time.Date(2024, 6, 9, 23, 59, 59, 0, time.UTC)))
	assert.False(t, inRange(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 6, 10, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 13, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(start, start))
}
