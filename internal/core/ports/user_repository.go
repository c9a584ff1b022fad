package ports

import (
	"context"

	"github.com/niverapp/event-system/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when no row matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, username string) error
}
