package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dailySegment() SegmentTemplate {
	return SegmentTemplate{
		ID:            "seg-daily",
		TaskID:        "task-1",
		Name:          "Gate watch",
		StartTime:     "08:00",
		DurationHours: 8,
		Frequency:     FrequencyDaily,
		Roles:         NewRoleComposition(RoleCount{RoleID: "guard", Count: 2}),
	}
}

func TestExpand_DailyOneInstancePerDay(t *testing.T) {
	seg := dailySegment()
	r := DateRange{Start: NewDateKey(2025, time.March, 3), End: NewDateKey(2025, time.March, 9)}

	instances, err := Expand(seg, r)
	require.NoError(t, err)
	require.Len(t, instances, 7)

	for i, inst := range instances {
		day := r.Start.AddDays(i)
		assert.Equal(t, day.At(8, 0), inst.Start, "instance %d start", i)
		assert.Equal(t, 8*time.Hour, inst.End.Sub(inst.Start), "instance %d duration", i)
		assert.Equal(t, seg.ID, inst.SegmentID)
	}

	// Independent instances never chain: each ends before the next begins.
	for i := 0; i+1 < len(instances); i++ {
		assert.True(t, instances[i].End.Before(instances[i+1].Start))
	}
}

func TestExpand_WeeklyFiltersByWeekday(t *testing.T) {
	seg := dailySegment()
	seg.ID = "seg-weekly"
	seg.Frequency = FrequencyWeekly
	seg.DaysOfWeek = []time.Weekday{time.Monday, time.Thursday}

	// Two full weeks starting on a Monday.
	r := DateRange{Start: NewDateKey(2025, time.March, 3), End: NewDateKey(2025, time.March, 16)}

	instances, err := Expand(seg, r)
	require.NoError(t, err)
	require.Len(t, instances, 4)

	for _, inst := range instances {
		weekday := inst.Start.Weekday()
		assert.Contains(t, []time.Weekday{time.Monday, time.Thursday}, weekday)
	}
	assert.Equal(t, NewDateKey(2025, time.March, 3).At(8, 0), instances[0].Start)
	assert.Equal(t, NewDateKey(2025, time.March, 6).At(8, 0), instances[1].Start)
}

func TestExpand_SpecificDate(t *testing.T) {
	date := NewDateKey(2025, time.March, 10)
	seg := dailySegment()
	seg.ID = "seg-once"
	seg.Frequency = FrequencySpecificDate
	seg.SpecificDate = &date

	inRange := DateRange{Start: NewDateKey(2025, time.March, 3), End: NewDateKey(2025, time.March, 16)}
	instances, err := Expand(seg, inRange)
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, date.At(8, 0), instances[0].Start)

	outOfRange := DateRange{Start: NewDateKey(2025, time.April, 1), End: NewDateKey(2025, time.April, 30)}
	instances, err = Expand(seg, outOfRange)
	require.NoError(t, err)
	assert.Empty(t, instances)
}

func TestExpand_RepeatTilesTheDay(t *testing.T) {
	seg := dailySegment()
	seg.ID = "seg-247"
	seg.IsRepeat = true
	seg.StartTime = "00:00"

	day := NewDateKey(2025, time.March, 3)
	instances, err := Expand(seg, DateRange{Start: day, End: day})
	require.NoError(t, err)
	require.Len(t, instances, 3, "three 8h instances tile one day")

	assert.Equal(t, day.At(0, 0), instances[0].Start)
	assert.Equal(t, day.AddDays(1).At(0, 0), instances[2].End)
	for i := 0; i+1 < len(instances); i++ {
		assert.Equal(t, instances[i].End, instances[i+1].Start, "no gap and no overlap between %d and %d", i, i+1)
	}
}

func TestExpand_RepeatCrossesDayBoundaries(t *testing.T) {
	seg := dailySegment()
	seg.ID = "seg-chain"
	seg.IsRepeat = true
	seg.StartTime = "06:00"
	seg.DurationHours = 10

	r := DateRange{Start: NewDateKey(2025, time.March, 3), End: NewDateKey(2025, time.March, 5)}
	instances, err := Expand(seg, r)
	require.NoError(t, err)
	require.NotEmpty(t, instances)

	// Chain starts at the template's start time on the first day.
	assert.Equal(t, r.Start.At(6, 0), instances[0].Start)

	bound := r.End.AddDays(1).Time()
	for i, inst := range instances {
		assert.True(t, inst.Start.Before(bound), "instance %d starts within the window bound", i)
		if i > 0 {
			assert.Equal(t, instances[i-1].End, inst.Start, "instance %d chains from previous end", i)
		}
	}

	// 66h from 06:00 on day one to the bound, so seven 10h instances fit.
	assert.Len(t, instances, 7)
	// The last instance may run past the bound but never starts past it.
	assert.True(t, instances[len(instances)-1].End.After(bound))
}

func TestExpand_RepeatFullDayRejected(t *testing.T) {
	seg := dailySegment()
	seg.IsRepeat = true
	seg.DurationHours = 24

	_, err := Expand(seg, DateRange{Start: NewDateKey(2025, time.March, 3), End: NewDateKey(2025, time.March, 3)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestExpand_InvalidInputs(t *testing.T) {
	day := NewDateKey(2025, time.March, 3)
	validRange := DateRange{Start: day, End: day.AddDays(6)}

	tests := []struct {
		name   string
		mutate func(*SegmentTemplate)
		r      DateRange
		want   error
	}{
		{
			name:   "inverted range",
			mutate: func(s *SegmentTemplate) {},
			r:      DateRange{Start: day.AddDays(6), End: day},
			want:   ErrOutOfRange,
		},
		{
			name:   "weekly without days of week",
			mutate: func(s *SegmentTemplate) { s.Frequency = FrequencyWeekly },
			r:      validRange,
			want:   ErrInvalidConfiguration,
		},
		{
			name:   "specific date without date",
			mutate: func(s *SegmentTemplate) { s.Frequency = FrequencySpecificDate },
			r:      validRange,
			want:   ErrInvalidConfiguration,
		},
		{
			name:   "zero duration",
			mutate: func(s *SegmentTemplate) { s.DurationHours = 0 },
			r:      validRange,
			want:   ErrInvalidConfiguration,
		},
		{
			name:   "bad start time",
			mutate: func(s *SegmentTemplate) { s.StartTime = "8am" },
			r:      validRange,
			want:   ErrInvalidConfiguration,
		},
		{
			name:   "unknown frequency",
			mutate: func(s *SegmentTemplate) { s.Frequency = "fortnightly" },
			r:      validRange,
			want:   ErrInvalidConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := dailySegment()
			tt.mutate(&seg)
			_, err := Expand(seg, tt.r)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExpand_HalfHourDurations(t *testing.T) {
	seg := dailySegment()
	seg.DurationHours = 1.5
	seg.StartTime = "09:15"

	day := NewDateKey(2025, time.March, 3)
	instances, err := Expand(seg, DateRange{Start: day, End: day})
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, day.At(9, 15), instances[0].Start)
	assert.Equal(t, day.At(10, 45), instances[0].End)
}

func TestExpand_Idempotent(t *testing.T) {
	seg := dailySegment()
	seg.IsRepeat = true
	r := DateRange{Start: NewDateKey(2025, time.March, 3), End: NewDateKey(2025, time.March, 9)}

	first, err := Expand(seg, r)
	require.NoError(t, err)
	second, err := Expand(seg, r)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
