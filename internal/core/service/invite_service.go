package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
	"github.com/niverapp/event-system/internal/metrics"
)

// InviteService stores RSVP submissions and serves the admin listing.
type InviteService struct {
	repo     ports.InviteRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewInviteService(repo ports.InviteRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *InviteService {
	return &InviteService{repo: repo, activity: activity, logger: logger}
}

// Save persists one submission. Guest order is preserved exactly as received;
// the returned invite carries the store-assigned id and timestamp.
func (s *InviteService) Save(ctx context.Context, in ports.InviteInput) (*domain.Invite, error) {
	invite := &domain.Invite{
		MainGuest: domain.Guest{
			FullName: in.MainGuest.FullName,
			Age:      in.MainGuest.Age,
		},
		OtherGuests: make([]domain.Guest, 0, len(in.OtherGuests)),
	}
	for _, g := range in.OtherGuests {
		invite.OtherGuests = append(invite.OtherGuests, domain.Guest{FullName: g.FullName, Age: g.Age})
	}

	saved, err := s.repo.Save(ctx, invite)
	if err != nil {
		s.logger.Error().Err(err).Str("main_guest", in.MainGuest.FullName).Msg("failed to save invite")
		return nil, err
	}

	metrics.InvitesReceivedTotal.Inc()
	s.activity.Enqueue(ports.ActivityInput{
		Actor:     saved.MainGuest.FullName,
		Action:    domain.ActionInviteReceived,
		Detail:    fmt.Sprintf("%d guests", 1+len(saved.OtherGuests)),
		Timestamp: time.Now().UTC(),
	})
	s.logger.Info().
		Int64("invite_id", saved.ID).
		Str("main_guest", saved.MainGuest.FullName).
		Int("other_guests", len(saved.OtherGuests)).
		Msg("invite received")

	return saved, nil
}

func (s *InviteService) List(ctx context.Context) ([]domain.Invite, error) {
	return s.repo.List(ctx)
}
