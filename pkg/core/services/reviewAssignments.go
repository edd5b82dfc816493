package services

import (
	"sort"

	"go.uber.org/zap"

	"github.com/talmaimon/basecycle/pkg/core/schedule"
)

// ReviewAssignments checks one person's shift assignments for minimum-rest
// violations. Assignments are sorted chronologically before the check, so
// callers may pass them in any order. Detection only: committing or resolving
// assignments stays with the caller.
func ReviewAssignments(logger *zap.Logger, personID string, assignments []schedule.ShiftInstance) []schedule.RestViolation {
	ordered := make([]schedule.ShiftInstance, len(assignments))
	copy(ordered, assignments)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Start.Equal(ordered[j].Start) {
			return ordered[i].Start.Before(ordered[j].Start)
		}
		return ordered[i].End.Before(ordered[j].End)
	})

	violations := schedule.CheckRest(ordered)

	if len(violations) > 0 {
		logger.Warn("Rest violations found",
			zap.String("person_id", personID),
			zap.Int("violations", len(violations)))
	} else {
		logger.Debug("No rest violations",
			zap.String("person_id", personID),
			zap.Int("assignments", len(assignments)))
	}

	return violations
}
