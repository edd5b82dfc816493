package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/talmaimon/basecycle/pkg/core/schedule"
)

func assignment(day schedule.DateKey, startHour, durationHours, minRestHours int) schedule.ShiftInstance {
	start := day.At(startHour, 0)
	return schedule.ShiftInstance{
		SegmentID:    "seg",
		Start:        start,
		End:          start.Add(time.Duration(durationHours) * time.Hour),
		MinRestAfter: time.Duration(minRestHours) * time.Hour,
	}
}

func TestReviewAssignments_SortsBeforeChecking(t *testing.T) {
	day := schedule.NewDateKey(2025, time.April, 7)

	// Passed out of order: the short gap must still be found.
	assignments := []schedule.ShiftInstance{
		assignment(day, 20, 8, 8),
		assignment(day, 8, 8, 8),
	}

	violations := ReviewAssignments(zap.NewNop(), "person-1", assignments)
	require.Len(t, violations, 1)
	assert.Equal(t, 4*time.Hour, violations[0].Shortfall)
	assert.Equal(t, day.At(8, 0), violations[0].First.Start)
}

func TestReviewAssignments_NoViolations(t *testing.T) {
	day := schedule.NewDateKey(2025, time.April, 7)
	assignments := []schedule.ShiftInstance{
		assignment(day, 8, 8, 8),
		assignment(day.AddDays(1), 0, 8, 8),
	}

	assert.Empty(t, ReviewAssignments(zap.NewNop(), "person-1", assignments))
}

func TestReviewAssignments_InputNotMutated(t *testing.T) {
	day := schedule.NewDateKey(2025, time.April, 7)
	assignments := []schedule.ShiftInstance{
		assignment(day, 20, 8, 8),
		assignment(day, 8, 8, 8),
	}

	ReviewAssignments(zap.NewNop(), "person-1", assignments)
	assert.Equal(t, day.At(20, 0), assignments[0].Start, "caller's slice order preserved")
}

func TestReviewAssignments_Empty(t *testing.T) {
	assert.Empty(t, ReviewAssignments(zap.NewNop(), "person-1", nil))
}
