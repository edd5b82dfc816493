package db

// TeamRecord is a deployable team.
type TeamRecord struct {
	ID   string
	Name string
}

// RotationRecord is the persisted rotation definition for a team. Exactly one
// per team; edits replace the record wholesale and deleting the team destroys
// it.
type RotationRecord struct {
	TeamID     string
	StartDate  string // Date format
	DaysOnBase int
	DaysAtHome int
}

// RoleCountRecord is one role→headcount entry of a segment's composition.
type RoleCountRecord struct {
	RoleID string
	Count  int
}

// SegmentRecord is a persisted shift-segment template.
type SegmentRecord struct {
	ID                string
	TaskID            string
	Name              string
	StartTime         string // "HH:MM"
	DurationHours     float64
	Frequency         string
	DaysOfWeek        []int  // 0 = Sunday .. 6 = Saturday, weekly segments only
	SpecificDate      string // Date format, specific-date segments only
	Roles             []RoleCountRecord
	MinRestHoursAfter int
	IsRepeat          bool
}

// RoleRecord is an entry of the current role catalog.
type RoleRecord struct {
	ID   string
	Name string
}
