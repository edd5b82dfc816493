package schedule

import (
	"fmt"
	"time"
)

// Frequency selects how a segment template recurs.
type Frequency string

const (
	FrequencyDaily        Frequency = "daily"
	FrequencyWeekly       Frequency = "weekly"
	FrequencySpecificDate Frequency = "specific_date"
)

func (f Frequency) IsValid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencySpecificDate
}

// RoleCount is one role→headcount requirement.
type RoleCount struct {
	RoleID string
	Count  int
}

// RoleComposition is an ordered set of role→headcount requirements, unique by
// role ID. Zero-count entries are never stored. Values are immutable: updates
// produce a new composition.
type RoleComposition []RoleCount

// NewRoleComposition builds a composition from entries, keeping the last count
// for a repeated role and dropping non-positive counts.
func NewRoleComposition(entries ...RoleCount) RoleComposition {
	var comp RoleComposition
	for _, e := range entries {
		comp = comp.WithRole(e.RoleID, e.Count)
	}
	return comp
}

// WithRole returns a new composition with the role's count set. A count of
// zero or less removes the entry. The receiver is never modified.
func (rc RoleComposition) WithRole(roleID string, count int) RoleComposition {
	out := make(RoleComposition, 0, len(rc)+1)
	replaced := false
	for _, e := range rc {
		if e.RoleID == roleID {
			if count > 0 {
				out = append(out, RoleCount{RoleID: roleID, Count: count})
			}
			replaced = true
			continue
		}
		out = append(out, e)
	}
	if !replaced && count > 0 {
		out = append(out, RoleCount{RoleID: roleID, Count: count})
	}
	return out
}

// TotalCount sums all headcounts in the composition.
func (rc RoleComposition) TotalCount() int {
	total := 0
	for _, e := range rc {
		total += e.Count
	}
	return total
}

// CountFor returns the headcount required for a role, zero if absent.
func (rc RoleComposition) CountFor(roleID string) int {
	for _, e := range rc {
		if e.RoleID == roleID {
			return e.Count
		}
	}
	return 0
}

// SegmentTemplate is a reusable definition of a recurring shift segment. The
// engine treats templates as read-only input; concrete shift instances are
// always derived on demand from the template, never cached.
type SegmentTemplate struct {
	ID     string
	TaskID string
	Name   string

	// StartTime is the segment's daily start in 24h "HH:MM" form.
	StartTime     string
	DurationHours float64

	Frequency Frequency
	// DaysOfWeek is required iff Frequency is weekly.
	DaysOfWeek []time.Weekday
	// SpecificDate is required iff Frequency is specific_date.
	SpecificDate *DateKey

	Roles RoleComposition

	MinRestHoursAfter int

	// IsRepeat chains instances back-to-back from the first qualifying day
	// until the window bound, producing continuous round-the-clock coverage.
	IsRepeat bool
}

// Duration returns the segment length as a time.Duration.
func (s SegmentTemplate) Duration() time.Duration {
	return time.Duration(s.DurationHours * float64(time.Hour))
}

// MinRestAfter returns the minimum rest required after the segment.
func (s SegmentTemplate) MinRestAfter() time.Duration {
	return time.Duration(s.MinRestHoursAfter) * time.Hour
}

// startClock parses StartTime into an hour and minute.
func (s SegmentTemplate) startClock() (hour, minute int, err error) {
	t, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: segment %q start time %q is not HH:MM: %v",
			ErrInvalidConfiguration, s.ID, s.StartTime, err)
	}
	return t.Hour(), t.Minute(), nil
}

// Validate enforces every construction invariant of a segment template.
// Templates are validated when authored and re-validated defensively at
// expansion time.
func (s SegmentTemplate) Validate() error {
	if !s.Frequency.IsValid() {
		return fmt.Errorf("%w: segment %q has unknown frequency %q", ErrInvalidConfiguration, s.ID, s.Frequency)
	}
	if _, _, err := s.startClock(); err != nil {
		return err
	}
	if s.DurationHours <= 0 {
		return fmt.Errorf("%w: segment %q duration must be positive, got %v hours",
			ErrInvalidConfiguration, s.ID, s.DurationHours)
	}
	if s.IsRepeat && s.DurationHours >= 24 {
		// A self-chaining cycle spanning a full day or more has no defined period.
		return fmt.Errorf("%w: segment %q repeats but spans %v hours (must be under 24)",
			ErrInvalidConfiguration, s.ID, s.DurationHours)
	}
	if s.Frequency == FrequencyWeekly && len(s.DaysOfWeek) == 0 {
		return fmt.Errorf("%w: weekly segment %q has no days of week", ErrInvalidConfiguration, s.ID)
	}
	if s.Frequency == FrequencySpecificDate && s.SpecificDate == nil {
		return fmt.Errorf("%w: specific-date segment %q has no date", ErrInvalidConfiguration, s.ID)
	}
	if s.MinRestHoursAfter < 0 {
		return fmt.Errorf("%w: segment %q minimum rest must not be negative, got %d",
			ErrInvalidConfiguration, s.ID, s.MinRestHoursAfter)
	}
	return nil
}
