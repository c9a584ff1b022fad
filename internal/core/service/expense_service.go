package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
	"github.com/niverapp/event-system/internal/metrics"
)

// ExpenseService implements CRUD over shared event expenses.
type ExpenseService struct {
	repo     ports.ExpenseRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewExpenseService(repo ports.ExpenseRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *ExpenseService {
	return &ExpenseService{repo: repo, activity: activity, logger: logger}
}

func (s *ExpenseService) List(ctx context.Context) ([]domain.Expense, error) {
	return s.repo.List(ctx)
}

func (s *ExpenseService) Get(ctx context.Context, id int64) (*domain.Expense, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ExpenseService) Create(ctx context.Context, in ports.ExpenseInput) (*domain.Expense, error) {
	expense, err := s.repo.Create(ctx, in.Description, in.Value)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create expense")
		return nil, err
	}

	metrics.ExpensesCreatedTotal.Inc()
	s.record(in.Actor, domain.ActionExpenseCreated, expense)
	s.logger.Info().Int64("expense_id", expense.ID).Str("description", expense.Description).Msg("expense created")

	return expense, nil
}

// Update replaces description and value of an existing expense. A missing id
// surfaces as domain.ErrExpenseNotFound; the caller turns it into a 404.
func (s *ExpenseService) Update(ctx context.Context, id int64, in ports.ExpenseInput) (*domain.Expense, error) {
	expense, err := s.repo.Update(ctx, id, in.Description, in.Value)
	if err != nil {
		return nil, err
	}

	s.record(in.Actor, domain.ActionExpenseUpdated, expense)
	s.logger.Info().Int64("expense_id", id).Msg("expense updated")

	return expense, nil
}

// Delete removes an expense. Deleting twice reports not-found on the second
// call; the effect is idempotent.
func (s *ExpenseService) Delete(ctx context.Context, id int64, actor string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Enqueue(ports.ActivityInput{
		Actor:     actor,
		Action:    domain.ActionExpenseDeleted,
		Detail:    fmt.Sprintf("expense %d", id),
		Timestamp: time.Now().UTC(),
	})
	s.logger.Info().Int64("expense_id", id).Msg("expense deleted")

	return nil
}

func (s *ExpenseService) record(actor, action string, expense *domain.Expense) {
	s.activity.Enqueue(ports.ActivityInput{
		Actor:     actor,
		Action:    action,
		Detail:    fmt.Sprintf("%s (%.2f)", expense.Description, expense.Value),
		Timestamp: time.Now().UTC(),
	})
}
