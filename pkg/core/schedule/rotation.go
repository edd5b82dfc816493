package schedule

import "fmt"

// DayStatus describes where a team stands in its rotation cycle on a given day.
type DayStatus int

const (
	// StatusNotStarted means the date precedes the rotation's start date.
	StatusNotStarted DayStatus = iota
	// StatusArrival is the first day of an on-base period.
	StatusArrival
	// StatusFull is a whole on-base day between arrival and departure.
	StatusFull
	// StatusDeparture is the last day of an on-base period.
	StatusDeparture
	// StatusHome is a day spent away from base.
	StatusHome
)

func (s DayStatus) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusArrival:
		return "arrival"
	case StatusFull:
		return "full"
	case StatusDeparture:
		return "departure"
	case StatusHome:
		return "home"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// RotationDefinition is a team's cyclic deployment pattern, anchored at a
// start date: DaysOnBase days on base followed by DaysAtHome days at home,
// repeating indefinitely. Definitions are replaced wholesale on edit, never
// mutated in place.
type RotationDefinition struct {
	TeamID     string
	StartDate  DateKey
	DaysOnBase int
	DaysAtHome int
}

// CycleLength returns the rotation period in days.
func (d RotationDefinition) CycleLength() int {
	return d.DaysOnBase + d.DaysAtHome
}

// Validate enforces the construction invariants of a rotation definition.
func (d RotationDefinition) Validate() error {
	if d.DaysOnBase <= 0 {
		return fmt.Errorf("%w: days on base must be positive, got %d", ErrInvalidConfiguration, d.DaysOnBase)
	}
	if d.DaysAtHome <= 0 {
		return fmt.Errorf("%w: days at home must be positive, got %d", ErrInvalidConfiguration, d.DaysAtHome)
	}
	return nil
}

// DayStatusOn computes the rotation status of a single day. It is a pure
// function of the definition and the date; statuses are never persisted,
// always recomputed.
//
// Day zero of each cycle is Arrival and the last on-base day is Departure.
// When DaysOnBase is 1 the single active day is both, and the Arrival branch
// wins: a one-day stay reports Arrival, never Departure. Confirmed behavior,
// do not reorder the branches.
func DayStatusOn(def RotationDefinition, date DateKey) (DayStatus, error) {
	cycle := def.CycleLength()
	if cycle <= 0 {
		return StatusNotStarted, fmt.Errorf("%w: rotation cycle length must be positive, got %d", ErrInvalidConfiguration, cycle)
	}

	diffDays := date.DayIndex() - def.StartDate.DayIndex()
	if diffDays < 0 {
		return StatusNotStarted, nil
	}

	dayInCycle := diffDays % cycle
	switch {
	case dayInCycle == 0:
		return StatusArrival, nil
	case dayInCycle < def.DaysOnBase-1:
		return StatusFull, nil
	case dayInCycle == def.DaysOnBase-1:
		return StatusDeparture, nil
	default:
		return StatusHome, nil
	}
}

// DayStatusEntry pairs a calendar day with its computed rotation status.
type DayStatusEntry struct {
	Date   DateKey
	Status DayStatus
}

// StatusRange computes the status of every day in the range, in order.
func StatusRange(def RotationDefinition, r DateRange) ([]DayStatusEntry, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	entries := make([]DayStatusEntry, 0, r.Days())
	for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
		status, err := DayStatusOn(def, d)
		if err != nil {
			return nil, err
		}
		entries = append(entries, DayStatusEntry{Date: d, Status: status})
	}
	return entries, nil
}
