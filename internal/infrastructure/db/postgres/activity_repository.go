package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
)

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

// ActivityRepository persists the audit feed written by dispatcher workers.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *domain.ActivityEntry) error {
	const query = `
		INSERT INTO activity (actor, action, detail, created_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.pool.Exec(ctx, query, entry.Actor, entry.Action, entry.Detail, entry.CreatedAt); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	const query = `
		SELECT id, actor, action, detail, created_at
		FROM activity
		ORDER BY id DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.ActivityEntry, 0, limit)
	for rows.Next() {
		var e domain.ActivityEntry
		if err := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return entries, nil
}
