package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/talmaimon/basecycle/pkg/core/schedule"
	"github.com/talmaimon/basecycle/pkg/db"
)

// ErrNotFound reports a missing team or rotation record.
var ErrNotFound = errors.New("not found")

// TeamCalendar computes the rotation status of every day in the range for one
// team. Statuses are always derived fresh from the persisted rotation record;
// nothing is cached between calls.
func TeamCalendar(ctx context.Context, rotations db.RotationStore, logger *zap.Logger, teamID string, r schedule.DateRange) ([]schedule.DayStatusEntry, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Computing team calendar",
		zap.String("team_id", teamID),
		zap.String("from", r.Start.String()),
		zap.String("to", r.End.String()))

	rec, err := rotations.GetRotation(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rotation: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: team %s has no rotation defined", ErrNotFound, teamID)
	}

	def, err := toDefinition(rec)
	if err != nil {
		return nil, err
	}

	entries, err := schedule.StatusRange(def, r)
	if err != nil {
		return nil, err
	}

	logger.Debug("Team calendar computed",
		zap.String("team_id", teamID),
		zap.Int("days", len(entries)))

	return entries, nil
}
