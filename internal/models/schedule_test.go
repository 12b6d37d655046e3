package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"12", 0, false},
		{"ab:cd", 0, false},
		{"-1:00", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.minutes, got, tc.in)
		} else {
			assert.Error(t, err, tc.in)
		}
	}
}

func TestHoursBetween(t *testing.T) {
	h, err := HoursBetween("18:00", "23:00")
	require.NoError(t, err)
	assert.Equal(t, 5.0, h)

	h, err = HoursBetween("09:30", "18:00")
	require.NoError(t, err)
	assert.Equal(t, 8.5, h)

	// Порядок аргументов не важен
	h, err = HoursBetween("23:00", "18:00")
	require.NoError(t, err)
	assert.Equal(t, 5.0, h)

	_, err = HoursBetween("25:00", "18:00")
	assert.Error(t, err)
}
