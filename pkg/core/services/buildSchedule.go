package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/talmaimon/basecycle/pkg/core/schedule"
	"github.com/talmaimon/basecycle/pkg/db"
)

// StaffedShift is one concrete shift instance together with its staffing
// summary against the current role catalog.
type StaffedShift struct {
	Shift       schedule.ShiftInstance
	SegmentName string
	Staffing    schedule.Staffing
}

// StaleRoleWarning flags a segment whose composition references a role that
// no longer exists. The schedule is still computed; the operator decides the
// remediation.
type StaleRoleWarning struct {
	SegmentID   string
	SegmentName string
	RoleID      string
}

// ScheduleResult is the expanded, staffed schedule of one task over a window.
type ScheduleResult struct {
	TaskID   string
	Range    schedule.DateRange
	Shifts   []StaffedShift
	Warnings []StaleRoleWarning
}

// BuildSchedule expands every segment template of a task over the requested
// window, resolves staffing against the live role catalog, and returns the
// merged chronological schedule. Stale role references come back as warnings
// alongside the result, never as errors.
func BuildSchedule(ctx context.Context, segments db.SegmentStore, roles db.RoleStore, logger *zap.Logger, taskID string, r schedule.DateRange) (*ScheduleResult, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Building schedule",
		zap.String("task_id", taskID),
		zap.String("from", r.Start.String()),
		zap.String("to", r.End.String()))

	records, err := segments.GetSegmentsByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch segments: %w", err)
	}
	logger.Debug("Found segment templates", zap.Int("count", len(records)))

	roleRecords, err := roles.GetRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch role catalog: %w", err)
	}
	catalog := roleCatalog(roleRecords)

	result := &ScheduleResult{TaskID: taskID, Range: r}

	for _, rec := range records {
		seg, err := toTemplate(rec)
		if err != nil {
			return nil, err
		}

		instances, err := schedule.Expand(seg, r)
		if err != nil {
			return nil, err
		}

		staffing := schedule.ResolveStaffing(seg.Roles, catalog)
		for _, staleRole := range staffing.StaleRoles {
			result.Warnings = append(result.Warnings, StaleRoleWarning{
				SegmentID:   seg.ID,
				SegmentName: seg.Name,
				RoleID:      staleRole,
			})
		}

		for _, inst := range instances {
			result.Shifts = append(result.Shifts, StaffedShift{
				Shift:       inst,
				SegmentName: seg.Name,
				Staffing:    staffing,
			})
		}
	}

	sortShifts(result.Shifts)

	if len(result.Warnings) > 0 {
		logger.Warn("Schedule references deleted roles",
			zap.String("task_id", taskID),
			zap.Int("stale_references", len(result.Warnings)))
	}
	logger.Info("Schedule built",
		zap.String("task_id", taskID),
		zap.Int("shifts", len(result.Shifts)))

	return result, nil
}

// sortShifts orders shifts chronologically, breaking start-time ties by
// segment ID so output is deterministic.
func sortShifts(shifts []StaffedShift) {
	sort.SliceStable(shifts, func(i, j int) bool {
		if !shifts[i].Shift.Start.Equal(shifts[j].Shift.Start) {
			return shifts[i].Shift.Start.Before(shifts[j].Shift.Start)
		}
		return shifts[i].Shift.SegmentID < shifts[j].Shift.SegmentID
	})
}
