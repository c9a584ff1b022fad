package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
)

const defaultFeedLimit = 50

type activityService struct {
	repo   ports.ActivityRepository
	logger zerolog.Logger
}

// NewActivityService returns an ActivityService implementation backed by repo.
func NewActivityService(repo ports.ActivityRepository, logger zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, logger: logger}
}

// Record persists a single queued entry. Called from dispatcher workers.
func (s *activityService) Record(ctx context.Context, entry ports.ActivityInput) error {
	row := &domain.ActivityEntry{
		Actor:     entry.Actor,
		Action:    entry.Action,
		Detail:    entry.Detail,
		CreatedAt: entry.Timestamp,
	}
	if err := s.repo.Insert(ctx, row); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.logger.Debug().Str("actor", entry.Actor).Str("action", entry.Action).Msg("activity recorded")
	return nil
}

func (s *activityService) ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultFeedLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
