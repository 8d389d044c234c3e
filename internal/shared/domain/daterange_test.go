package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange_EndBeforeStart(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewDateRange(start, end)
	require.Error(t, err)
}

func TestNewDateRangeFromDays(t *testing.T) {
	dr, err := NewDateRangeFromDays(730)
	require.NoError(t, err)
	assert.Equal(t, 730, dr.Days())

	_, err = NewDateRangeFromDays(-1)
	require.Error(t, err)
}

// Toute date tirée doit tomber dans la période.
func TestDateRange_RandomDateIn(t *testing.T) {
	dr, err := NewDateRangeFromDays(730)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		d := dr.RandomDateIn(r)
		assert.True(t, dr.Contains(d), "date %v outside range [%v, %v]", d, dr.Start(), dr.End())
	}
}

func TestDateRange_RandomDateIn_DegenerateRange(t *testing.T) {
	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	dr, err := NewDateRange(day, day)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(1))
	assert.Equal(t, day, dr.RandomDateIn(r))
}

func TestDateRange_Contains(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	dr, err := NewDateRange(start, end)
	require.NoError(t, err)

	assert.True(t, dr.Contains(start))
	assert.True(t, dr.Contains(end))
	assert.False(t, dr.Contains(start.AddDate(-1, 0, 0)))
	assert.False(t, dr.Contains(end.AddDate(0, 0, 1)))
}
