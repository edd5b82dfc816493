package services

import (
	"fmt"
	"time"

	"github.com/talmaimon/basecycle/pkg/core/schedule"
	"github.com/talmaimon/basecycle/pkg/db"
)

// toDefinition converts a persisted rotation record into an engine definition,
// validating it on the way in.
func toDefinition(rec *db.RotationRecord) (schedule.RotationDefinition, error) {
	start, err := schedule.ParseDateKey(rec.StartDate)
	if err != nil {
		return schedule.RotationDefinition{}, fmt.Errorf("rotation for team %s: %w", rec.TeamID, err)
	}

	def := schedule.RotationDefinition{
		TeamID:     rec.TeamID,
		StartDate:  start,
		DaysOnBase: rec.DaysOnBase,
		DaysAtHome: rec.DaysAtHome,
	}
	if err := def.Validate(); err != nil {
		return schedule.RotationDefinition{}, err
	}
	return def, nil
}

// toTemplate converts a persisted segment record into an engine template,
// validating it on the way in.
func toTemplate(rec db.SegmentRecord) (schedule.SegmentTemplate, error) {
	seg := schedule.SegmentTemplate{
		ID:                rec.ID,
		TaskID:            rec.TaskID,
		Name:              rec.Name,
		StartTime:         rec.StartTime,
		DurationHours:     rec.DurationHours,
		Frequency:         schedule.Frequency(rec.Frequency),
		MinRestHoursAfter: rec.MinRestHoursAfter,
		IsRepeat:          rec.IsRepeat,
	}

	for _, d := range rec.DaysOfWeek {
		seg.DaysOfWeek = append(seg.DaysOfWeek, time.Weekday(d))
	}

	if rec.SpecificDate != "" {
		key, err := schedule.ParseDateKey(rec.SpecificDate)
		if err != nil {
			return schedule.SegmentTemplate{}, fmt.Errorf("segment %s: %w", rec.ID, err)
		}
		seg.SpecificDate = &key
	}

	entries := make([]schedule.RoleCount, 0, len(rec.Roles))
	for _, rc := range rec.Roles {
		entries = append(entries, schedule.RoleCount{RoleID: rc.RoleID, Count: rc.Count})
	}
	seg.Roles = schedule.NewRoleComposition(entries...)

	if err := seg.Validate(); err != nil {
		return schedule.SegmentTemplate{}, err
	}
	return seg, nil
}

// roleCatalog builds the set of live role IDs from catalog records.
func roleCatalog(records []db.RoleRecord) map[string]bool {
	catalog := make(map[string]bool, len(records))
	for _, rec := range records {
		catalog[rec.ID] = true
	}
	return catalog
}
