package schedule

import "time"

// RestViolation reports a pair of consecutive assignments whose gap falls
// short of the first shift's minimum rest requirement.
type RestViolation struct {
	First  ShiftInstance
	Second ShiftInstance

	// RequiredRest is the minimum rest demanded after the first shift.
	RequiredRest time.Duration
	// ActualRest is the gap between the shifts. Negative when they overlap.
	ActualRest time.Duration
	// Shortfall is how much rest is missing.
	Shortfall time.Duration
}

// CheckRest scans one person's assignments for minimum-rest violations and
// returns every violating consecutive pair, not just the first. Detection
// only: resolving conflicts is the caller's concern.
//
// Assignments must be in chronological order by start time; the service layer
// sorts before calling.
func CheckRest(assignments []ShiftInstance) []RestViolation {
	var violations []RestViolation
	for i := 0; i+1 < len(assignments); i++ {
		a, b := assignments[i], assignments[i+1]

		earliestNext := a.End.Add(a.MinRestAfter)
		if b.Start.Before(earliestNext) {
			violations = append(violations, RestViolation{
				First:        a,
				Second:       b,
				RequiredRest: a.MinRestAfter,
				ActualRest:   b.Start.Sub(a.End),
				Shortfall:    earliestNext.Sub(b.Start),
			})
		}
	}
	return violations
}
