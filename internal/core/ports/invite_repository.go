package ports

import (
	"context"

	"github.com/niverapp/event-system/internal/core/domain"
)

// InviteRepository persists RSVP submissions. Invites are append-only.
type InviteRepository interface {
	// Save stores the invite and returns the stored representation including
	// the assigned id and timestamp.
	Save(ctx context.Context, invite *domain.Invite) (*domain.Invite, error)
	// List returns invites in submission order, newest first.
	List(ctx context.Context) ([]domain.Invite, error)
}
