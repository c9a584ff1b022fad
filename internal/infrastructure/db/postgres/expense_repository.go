package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
)

// Ensure ExpenseRepository satisfies the port at compile time.
var _ ports.ExpenseRepository = (*ExpenseRepository)(nil)

// ExpenseRepository provides Postgres-backed persistence for expenses.
// NUMERIC values are scanned into float64, so callers always see a number
// regardless of how the store renders it on the wire.
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

func (r *ExpenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	const query = `SELECT id, description, value FROM expenses ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]domain.Expense, 0)
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Value); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, id int64) (*domain.Expense, error) {
	const query = `SELECT id, description, value FROM expenses WHERE id = $1`

	var e domain.Expense
	if err := r.pool.QueryRow(ctx, query, id).Scan(&e.ID, &e.Description, &e.Value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("find expense: %w", err)
	}
	return &e, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, description string, value float64) (*domain.Expense, error) {
	const query = `
		INSERT INTO expenses (description, value)
		VALUES ($1, $2)
		RETURNING id, description, value`

	var e domain.Expense
	if err := r.pool.QueryRow(ctx, query, description, value).Scan(&e.ID, &e.Description, &e.Value); err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	return &e, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, id int64, description string, value float64) (*domain.Expense, error) {
	const query = `
		UPDATE expenses SET description = $1, value = $2
		WHERE id = $3
		RETURNING id, description, value`

	var e domain.Expense
	if err := r.pool.QueryRow(ctx, query, description, value, id).Scan(&e.ID, &e.Description, &e.Value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("update expense: %w", err)
	}
	return &e, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM expenses WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}
