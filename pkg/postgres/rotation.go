package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/talmaimon/basecycle/pkg/db"
)

// GetRotation returns the team's rotation definition, nil if none is set.
func (s *Store) GetRotation(ctx context.Context, teamID string) (*db.RotationRecord, error) {
	var rec db.RotationRecord
	var startDate time.Time

	err := s.pool.QueryRow(ctx, `
		SELECT team_id, start_date, days_on_base, days_at_home
		FROM rotation
		WHERE team_id = $1
	`, teamID).Scan(&rec.TeamID, &startDate, &rec.DaysOnBase, &rec.DaysAtHome)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query rotation for team %s: %w", teamID, err)
	}

	rec.StartDate = startDate.Format("2006-01-02")
	return &rec, nil
}

// ReplaceRotation swaps the team's rotation definition wholesale inside a
// transaction. There is no partial update path.
func (s *Store) ReplaceRotation(ctx context.Context, rec *db.RotationRecord) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin rotation replacement: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM rotation WHERE team_id = $1`, rec.TeamID); err != nil {
		return fmt.Errorf("failed to clear previous rotation: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO rotation (team_id, start_date, days_on_base, days_at_home)
		VALUES ($1, $2, $3, $4)
	`, rec.TeamID, rec.StartDate, rec.DaysOnBase, rec.DaysAtHome)
	if err != nil {
		return fmt.Errorf("failed to insert rotation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rotation replacement: %w", err)
	}
	return nil
}
