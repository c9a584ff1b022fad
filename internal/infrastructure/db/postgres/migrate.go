package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates all tables if absent. Runs exactly once at startup, before
// the HTTP listener opens; repositories never re-check table existence on the
// write path.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS expenses (
			id SERIAL PRIMARY KEY,
			description TEXT NOT NULL,
			value NUMERIC NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS invites (
			id SERIAL PRIMARY KEY,
			main_guest_full_name VARCHAR(255) NOT NULL,
			main_guest_age VARCHAR(10) NOT NULL,
			other_guests JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			last_login_date TIMESTAMP,
			role TEXT NOT NULL CHECK (role IN ('member','admin'))
		);`,
		`CREATE TABLE IF NOT EXISTS activity (
			id SERIAL PRIMARY KEY,
			actor TEXT NOT NULL,
			action TEXT NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}
