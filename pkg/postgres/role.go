package postgres

import (
	"context"
	"fmt"

	"github.com/talmaimon/basecycle/pkg/db"
)

// GetRoles retrieves the current role catalog ordered by name.
func (s *Store) GetRoles(ctx context.Context) ([]db.RoleRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name
		FROM role
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	var roles []db.RoleRecord
	for rows.Next() {
		var r db.RoleRecord
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roles: %w", err)
	}
	return roles, nil
}
