package ports

import (
	"context"

	"github.com/niverapp/event-system/internal/core/domain"
)

// GuestInput is one guest as submitted on the RSVP form.
type GuestInput struct {
	FullName string
	Age      string
}

// InviteInput is the DTO passed from the transport layer to InviteService.
type InviteInput struct {
	MainGuest   GuestInput
	OtherGuests []GuestInput
}

// InviteService defines use-case operations for RSVP invites.
type InviteService interface {
	Save(ctx context.Context, in InviteInput) (*domain.Invite, error)
	List(ctx context.Context) ([]domain.Invite, error)
}
