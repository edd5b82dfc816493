package postgres

import (
	"context"
	"fmt"

	"github.com/talmaimon/basecycle/pkg/db"
)

// GetTeams retrieves all teams ordered by name.
func (s *Store) GetTeams(ctx context.Context) ([]db.TeamRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name
		FROM team
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []db.TeamRecord
	for rows.Next() {
		var t db.TeamRecord
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teams: %w", err)
	}
	return teams, nil
}

// InsertTeam inserts a new team record.
func (s *Store) InsertTeam(ctx context.Context, team *db.TeamRecord) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO team (id, name)
		VALUES ($1, $2)
	`, team.ID, team.Name)
	if err != nil {
		return fmt.Errorf("failed to insert team: %w", err)
	}
	return nil
}

// DeleteTeam removes a team. Its rotation definition goes with it via the
// foreign-key cascade.
func (s *Store) DeleteTeam(ctx context.Context, teamID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM team WHERE id = $1`, teamID)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}
