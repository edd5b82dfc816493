package schedule

import (
	"fmt"
	"time"
)

const dateKeyLayout = "2006-01-02"

// DateKey identifies a single calendar day. It normalizes any instant to
// midnight UTC so comparisons and day arithmetic are unaffected by
// time-of-day, timezone, or DST drift in the input.
type DateKey struct {
	t time.Time
}

// NewDateKey builds a key for the given calendar day.
func NewDateKey(year int, month time.Month, day int) DateKey {
	return DateKey{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateKeyOf normalizes an arbitrary instant to its calendar day.
// The instant's own location determines which day it falls on.
func DateKeyOf(t time.Time) DateKey {
	return NewDateKey(t.Year(), t.Month(), t.Day())
}

// ParseDateKey parses a "2006-01-02" formatted date.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(dateKeyLayout, s)
	if err != nil {
		return DateKey{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return DateKeyOf(t), nil
}

// Time returns midnight UTC on the key's day.
func (k DateKey) Time() time.Time {
	return k.t
}

func (k DateKey) String() string {
	return k.t.Format(dateKeyLayout)
}

// DayIndex returns the number of whole days since the Unix epoch. Exact for
// midnight-UTC times, so differences between keys are exact day counts.
func (k DateKey) DayIndex() int {
	return int(k.t.Unix() / 86400)
}

// AddDays returns the key n days later (or earlier for negative n).
func (k DateKey) AddDays(n int) DateKey {
	return DateKey{t: k.t.AddDate(0, 0, n)}
}

func (k DateKey) Before(other DateKey) bool { return k.t.Before(other.t) }
func (k DateKey) After(other DateKey) bool  { return k.t.After(other.t) }
func (k DateKey) Equal(other DateKey) bool  { return k.t.Equal(other.t) }

func (k DateKey) Weekday() time.Weekday {
	return k.t.Weekday()
}

// At returns the concrete UTC instant at hour:minute on the key's day.
func (k DateKey) At(hour, minute int) time.Time {
	return time.Date(k.t.Year(), k.t.Month(), k.t.Day(), hour, minute, 0, 0, time.UTC)
}

// IsZero reports whether the key is the zero value (no date set).
func (k DateKey) IsZero() bool {
	return k.t.IsZero()
}

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start DateKey
	End   DateKey
}

// NewDateRange builds an inclusive range, rejecting start > end.
func NewDateRange(start, end DateKey) (DateRange, error) {
	r := DateRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate rejects ranges whose start falls after their end.
func (r DateRange) Validate() error {
	if r.Start.After(r.End) {
		return fmt.Errorf("%w: start %s is after end %s", ErrOutOfRange, r.Start, r.End)
	}
	return nil
}

// Days returns the number of calendar days in the range, inclusive.
func (r DateRange) Days() int {
	return r.End.DayIndex() - r.Start.DayIndex() + 1
}

// Contains reports whether the given day falls inside the range.
func (r DateRange) Contains(k DateKey) bool {
	return !k.Before(r.Start) && !k.After(r.End)
}
