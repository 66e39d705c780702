package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, Clock(570), c)
	assert.Equal(t, "09:30", c.String())
	assert.Equal(t, "10:00", c.Add(30).String())

	for _, bad := range []string{"9:30", "24:00", "09:60", "0930", "", "ab:cd"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d.Weekday())
	assert.Equal(t, "2025-01-06", FormatDate(d))

	for _, bad := range []string{"2025-1-6", "06.01.2025", "2025-02-30", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}
