package ports

import (
	"context"

	"github.com/niverapp/event-system/internal/core/domain"
)

// ExpenseRepository defines persistence operations for expenses.
type ExpenseRepository interface {
	List(ctx context.Context) ([]domain.Expense, error)
	// FindByID returns domain.ErrExpenseNotFound when no row matches id.
	FindByID(ctx context.Context, id int64) (*domain.Expense, error)
	Create(ctx context.Context, description string, value float64) (*domain.Expense, error)
	// Update returns domain.ErrExpenseNotFound when id does not exist;
	// a missing target is a negative result, not a store failure.
	Update(ctx context.Context, id int64, description string, value float64) (*domain.Expense, error)
	// Delete returns domain.ErrExpenseNotFound when id does not exist.
	Delete(ctx context.Context, id int64) error
}
