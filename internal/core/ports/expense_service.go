package ports

import (
	"context"

	"github.com/niverapp/event-system/internal/core/domain"
)

// ExpenseInput carries the mutable fields of an expense from the transport layer.
type ExpenseInput struct {
	Description string
	Value       float64
	// Actor is the authenticated username recorded in the activity feed.
	Actor string
}

// ExpenseService defines use-case operations for shared expenses.
type ExpenseService interface {
	List(ctx context.Context) ([]domain.Expense, error)
	Get(ctx context.Context, id int64) (*domain.Expense, error)
	Create(ctx context.Context, in ExpenseInput) (*domain.Expense, error)
	Update(ctx context.Context, id int64, in ExpenseInput) (*domain.Expense, error)
	Delete(ctx context.Context, id int64, actor string) error
}
