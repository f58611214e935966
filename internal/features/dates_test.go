package features

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-08-10"))
	assert.True(t, ValidDate("2000-02-29"))

	assert.False(t, ValidDate(""))
	assert.False(t, ValidDate("2026-8-1"))
	assert.False(t, ValidDate("10-08-2026"))
	assert.False(t, ValidDate("2026-13-01"))
	assert.False(t, ValidDate("2026-02-30"))
	assert.False(t, ValidDate("not-a-date"))
}

func TestWeekStartIsMonday(t *testing.T) {
	start, err := time.Parse(DateLayout, WeekStart())
	require.NoError(t, err)
	assert.Equal(t, time.Monday, start.Weekday())

	today, err := time.Parse(DateLayout, Today())
	require.NoError(t, err)
	diff := today.Sub(start).Hours() / 24
	assert.GreaterOrEqual(t, diff, float64(0))
	assert.Less(t, diff, float64(7))
}
