package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKeyOf_NormalizesTimeOfDay(t *testing.T) {
	late := time.Date(2025, 6, 14, 23, 59, 59, 999, time.UTC)
	early := time.Date(2025, 6, 14, 0, 0, 1, 0, time.UTC)

	assert.True(t, DateKeyOf(late).Equal(DateKeyOf(early)))
	assert.Equal(t, "2025-06-14", DateKeyOf(late).String())
}

func TestParseDateKey(t *testing.T) {
	key, err := ParseDateKey("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, NewDateKey(2025, time.March, 9), key)
	assert.Equal(t, time.Sunday, key.Weekday())

	_, err = ParseDateKey("09/03/2025")
	assert.Error(t, err)
}

func TestDateKey_DayIndexDifferences(t *testing.T) {
	base := NewDateKey(2025, time.January, 1)

	tests := []struct {
		name string
		date DateKey
		diff int
	}{
		{"same day", NewDateKey(2025, time.January, 1), 0},
		{"next day", NewDateKey(2025, time.January, 2), 1},
		{"previous day", NewDateKey(2024, time.December, 31), -1},
		{"across a year", NewDateKey(2026, time.January, 1), 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.diff, tt.date.DayIndex()-base.DayIndex())
		})
	}
}

func TestDateKey_AddDays(t *testing.T) {
	key := NewDateKey(2025, time.February, 27)
	assert.Equal(t, "2025-03-01", key.AddDays(2).String())
	assert.Equal(t, "2025-02-25", key.AddDays(-2).String())
}

func TestDateKey_At(t *testing.T) {
	key := NewDateKey(2025, time.May, 1)
	instant := key.At(8, 30)
	assert.Equal(t, time.Date(2025, time.May, 1, 8, 30, 0, 0, time.UTC), instant)
}

func TestDateRange_Validate(t *testing.T) {
	ok := DateRange{Start: NewDateKey(2025, time.January, 1), End: NewDateKey(2025, time.January, 7)}
	require.NoError(t, ok.Validate())
	assert.Equal(t, 7, ok.Days())

	single := DateRange{Start: NewDateKey(2025, time.January, 1), End: NewDateKey(2025, time.January, 1)}
	require.NoError(t, single.Validate())
	assert.Equal(t, 1, single.Days())

	inverted := DateRange{Start: NewDateKey(2025, time.January, 7), End: NewDateKey(2025, time.January, 1)}
	err := inverted.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewDateRange(inverted.Start, inverted.End)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{Start: NewDateKey(2025, time.January, 10), End: NewDateKey(2025, time.January, 20)}

	assert.True(t, r.Contains(NewDateKey(2025, time.January, 10)))
	assert.True(t, r.Contains(NewDateKey(2025, time.January, 20)))
	assert.False(t, r.Contains(NewDateKey(2025, time.January, 9)))
	assert.False(t, r.Contains(NewDateKey(2025, time.January, 21)))
}
