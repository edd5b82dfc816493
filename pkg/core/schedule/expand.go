package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// ShiftInstance is one concrete occurrence of a segment template. Instances
// are generated on demand for a requested window and discarded after use; the
// template remains the source of truth.
type ShiftInstance struct {
	SegmentID string
	Start     time.Time
	End       time.Time
	Roles     RoleComposition

	// MinRestAfter is carried from the template for rest-constraint checks.
	MinRestAfter time.Duration
}

// Expand produces the ordered shift instances of a segment template within an
// inclusive day range. It is pure and idempotent: identical inputs always
// yield identical output.
//
// Without IsRepeat each qualifying day gets one independent instance anchored
// at the template's start time. With IsRepeat the first qualifying day anchors
// a chain: every subsequent instance starts exactly at the previous one's end,
// crossing day boundaries with no gap and no overlap, until the first instance
// whose start would fall at or past midnight after the range's last day.
func Expand(seg SegmentTemplate, r DateRange) ([]ShiftInstance, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := seg.Validate(); err != nil {
		return nil, err
	}

	days, err := qualifyingDays(seg, r)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, nil
	}

	hour, minute, err := seg.startClock()
	if err != nil {
		return nil, err
	}
	duration := seg.Duration()

	if !seg.IsRepeat {
		instances := make([]ShiftInstance, 0, len(days))
		for _, day := range days {
			instances = append(instances, newInstance(seg, day.At(hour, minute), duration))
		}
		return instances, nil
	}

	// Chained expansion: later qualifying days are irrelevant once the chain
	// is seeded, coverage is continuous from the first anchor.
	bound := r.End.AddDays(1).Time()
	var instances []ShiftInstance
	for start := days[0].At(hour, minute); start.Before(bound); start = start.Add(duration) {
		instances = append(instances, newInstance(seg, start, duration))
	}
	return instances, nil
}

func newInstance(seg SegmentTemplate, start time.Time, duration time.Duration) ShiftInstance {
	return ShiftInstance{
		SegmentID:    seg.ID,
		Start:        start,
		End:          start.Add(duration),
		Roles:        seg.Roles,
		MinRestAfter: seg.MinRestAfter(),
	}
}

// qualifyingDays lists the days in the range on which the segment occurs.
func qualifyingDays(seg SegmentTemplate, r DateRange) ([]DateKey, error) {
	switch seg.Frequency {
	case FrequencySpecificDate:
		if seg.SpecificDate != nil && r.Contains(*seg.SpecificDate) {
			return []DateKey{*seg.SpecificDate}, nil
		}
		return nil, nil

	case FrequencyDaily, FrequencyWeekly:
		opt := rrule.ROption{
			Freq:    rrule.DAILY,
			Dtstart: r.Start.Time(),
		}
		if seg.Frequency == FrequencyWeekly {
			opt.Freq = rrule.WEEKLY
			opt.Byweekday = rruleWeekdays(seg.DaysOfWeek)
		}

		rule, err := rrule.NewRRule(opt)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %q recurrence rule: %v", ErrInvalidConfiguration, seg.ID, err)
		}

		occurrences := rule.Between(r.Start.Time(), r.End.Time(), true)
		days := make([]DateKey, len(occurrences))
		for i, occ := range occurrences {
			days[i] = DateKeyOf(occ)
		}
		return days, nil
	}

	return nil, fmt.Errorf("%w: segment %q has unknown frequency %q", ErrInvalidConfiguration, seg.ID, seg.Frequency)
}

var weekdayRules = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

func rruleWeekdays(days []time.Weekday) []rrule.Weekday {
	out := make([]rrule.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, weekdayRules[d])
	}
	return out
}
