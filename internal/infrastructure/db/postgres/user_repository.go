package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
)

var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository provides Postgres-backed persistence for users.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
		SELECT username, password_hash, last_login_date, role
		FROM users
		WHERE username = $1`

	var u domain.User
	row := r.pool.QueryRow(ctx, query, username)
	if err := row.Scan(&u.Username, &u.PasswordHash, &u.LastLoginDate, &u.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const query = `
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)`

	if _, err := r.pool.Exec(ctx, query, user.Username, user.PasswordHash, user.Role); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &domain.User{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
	}, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, username string) error {
	const query = `UPDATE users SET last_login_date = NOW() WHERE username = $1`

	if _, err := r.pool.Exec(ctx, query, username); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
