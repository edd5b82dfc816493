package db

import "context"

// TeamStore defines team persistence operations.
type TeamStore interface {
	GetTeams(ctx context.Context) ([]TeamRecord, error)
	InsertTeam(ctx context.Context, team *TeamRecord) error
	// DeleteTeam removes a team and, with it, its rotation definition.
	DeleteTeam(ctx context.Context, teamID string) error
}

// RotationStore defines rotation-definition persistence operations.
type RotationStore interface {
	// GetRotation returns the team's rotation definition, nil if none is set.
	GetRotation(ctx context.Context, teamID string) (*RotationRecord, error)
	// ReplaceRotation swaps the team's rotation wholesale. Definitions are
	// immutable; there is no partial update.
	ReplaceRotation(ctx context.Context, rec *RotationRecord) error
}

// SegmentStore defines segment-template persistence operations.
type SegmentStore interface {
	GetSegment(ctx context.Context, segmentID string) (*SegmentRecord, error)
	GetSegmentsByTask(ctx context.Context, taskID string) ([]SegmentRecord, error)
}

// RoleStore exposes the current role catalog.
type RoleStore interface {
	GetRoles(ctx context.Context) ([]RoleRecord, error)
}
