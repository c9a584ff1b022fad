package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
)

var _ ports.InviteRepository = (*InviteRepository)(nil)

// InviteRepository provides Postgres-backed persistence for RSVP invites.
// The other_guests column is an opaque JSONB blob; guest order survives the
// round trip because json arrays are ordered.
type InviteRepository struct {
	pool *pgxpool.Pool
}

func NewInviteRepository(pool *pgxpool.Pool) *InviteRepository {
	return &InviteRepository{pool: pool}
}

func (r *InviteRepository) Save(ctx context.Context, invite *domain.Invite) (*domain.Invite, error) {
	const query = `
		INSERT INTO invites (main_guest_full_name, main_guest_age, other_guests)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	blob, err := json.Marshal(invite.OtherGuests)
	if err != nil {
		return nil, fmt.Errorf("marshal other guests: %w", err)
	}

	saved := &domain.Invite{
		MainGuest:   invite.MainGuest,
		OtherGuests: invite.OtherGuests,
	}
	row := r.pool.QueryRow(ctx, query, invite.MainGuest.FullName, invite.MainGuest.Age, blob)
	if err := row.Scan(&saved.ID, &saved.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert invite: %w", err)
	}
	return saved, nil
}

func (r *InviteRepository) List(ctx context.Context) ([]domain.Invite, error) {
	const query = `
		SELECT id, main_guest_full_name, main_guest_age, other_guests, created_at
		FROM invites
		ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	defer rows.Close()

	invites := make([]domain.Invite, 0)
	for rows.Next() {
		var inv domain.Invite
		var blob []byte
		if err := rows.Scan(&inv.ID, &inv.MainGuest.FullName, &inv.MainGuest.Age, &blob, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invite: %w", err)
		}
		inv.OtherGuests = make([]domain.Guest, 0)
		if len(blob) > 0 {
			if err := json.Unmarshal(blob, &inv.OtherGuests); err != nil {
				return nil, fmt.Errorf("unmarshal other guests: %w", err)
			}
		}
		invites = append(invites, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	return invites, nil
}
