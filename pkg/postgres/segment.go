package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/talmaimon/basecycle/pkg/db"
)

const segmentColumns = `id, task_id, name, start_time, duration_hours, frequency,
	days_of_week, specific_date, min_rest_hours_after, is_repeat`

// GetSegment retrieves one segment template by ID.
func (s *Store) GetSegment(ctx context.Context, segmentID string) (*db.SegmentRecord, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+segmentColumns+`
		FROM segment
		WHERE id = $1
	`, segmentID)

	rec, err := scanSegment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("segment %s not found", segmentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query segment %s: %w", segmentID, err)
	}

	if err := s.loadSegmentRoles(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// GetSegmentsByTask retrieves every segment template belonging to a task,
// ordered by name.
func (s *Store) GetSegmentsByTask(ctx context.Context, taskID string) ([]db.SegmentRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+segmentColumns+`
		FROM segment
		WHERE task_id = $1
		ORDER BY name
	`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query segments for task %s: %w", taskID, err)
	}
	defer rows.Close()

	var segments []db.SegmentRecord
	for rows.Next() {
		rec, err := scanSegment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		segments = append(segments, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating segments: %w", err)
	}

	for i := range segments {
		if err := s.loadSegmentRoles(ctx, &segments[i]); err != nil {
			return nil, err
		}
	}
	return segments, nil
}

func scanSegment(row pgx.Row) (*db.SegmentRecord, error) {
	var rec db.SegmentRecord
	var daysOfWeek []int32
	var specificDate *time.Time

	err := row.Scan(&rec.ID, &rec.TaskID, &rec.Name, &rec.StartTime, &rec.DurationHours,
		&rec.Frequency, &daysOfWeek, &specificDate, &rec.MinRestHoursAfter, &rec.IsRepeat)
	if err != nil {
		return nil, err
	}

	rec.DaysOfWeek = make([]int, len(daysOfWeek))
	for i, d := range daysOfWeek {
		rec.DaysOfWeek[i] = int(d)
	}
	if specificDate != nil {
		rec.SpecificDate = specificDate.Format("2006-01-02")
	}
	return &rec, nil
}

func (s *Store) loadSegmentRoles(ctx context.Context, rec *db.SegmentRecord) error {
	rows, err := s.pool.Query(ctx, `
		SELECT role_id, head_count
		FROM segment_role
		WHERE segment_id = $1
		ORDER BY role_id
	`, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to query roles for segment %s: %w", rec.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rc db.RoleCountRecord
		if err := rows.Scan(&rc.RoleID, &rc.Count); err != nil {
			return fmt.Errorf("failed to scan segment role: %w", err)
		}
		rec.Roles = append(rec.Roles, rc)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating segment roles: %w", err)
	}
	return nil
}
