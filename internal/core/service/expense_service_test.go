package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
)

type stubExpenseRepo struct {
	expenses map[int64]*domain.Expense
	nextID   int64
}

func newStubExpenseRepo() *stubExpenseRepo {
	return &stubExpenseRepo{expenses: make(map[int64]*domain.Expense), nextID: 1}
}

func (r *stubExpenseRepo) List(_ context.Context) ([]domain.Expense, error) {
	out := make([]domain.Expense, 0, len(r.expenses))
	for id := int64(1); id < r.nextID; id++ {
		if e, ok := r.expenses[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubExpenseRepo) FindByID(_ context.Context, id int64) (*domain.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, domain.ErrExpenseNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubExpenseRepo) Create(_ context.Context, description string, value float64) (*domain.Expense, error) {
	e := &domain.Expense{ID: r.nextID, Description: description, Value: value}
	r.expenses[e.ID] = e
	r.nextID++
	clone := *e
	return &clone, nil
}

func (r *stubExpenseRepo) Update(_ context.Context, id int64, description string, value float64) (*domain.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, domain.ErrExpenseNotFound
	}
	e.Description = description
	e.Value = value
	clone := *e
	return &clone, nil
}

func (r *stubExpenseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.expenses[id]; !ok {
		return domain.ErrExpenseNotFound
	}
	delete(r.expenses, id)
	return nil
}

// stubRecorder collects enqueued activity entries synchronously.
type stubRecorder struct {
	entries []ports.ActivityInput
}

func (s *stubRecorder) Enqueue(entry ports.ActivityInput) {
	s.entries = append(s.entries, entry)
}

func TestExpenseService_Create_AssignsIncreasingIDs(t *testing.T) {
	svc := NewExpenseService(newStubExpenseRepo(), &stubRecorder{}, zerolog.Nop())

	var lastID int64
	for i, desc := range []string{"Cake", "Balloons", "Drinks"} {
		e, err := svc.Create(context.Background(), ports.ExpenseInput{Description: desc, Value: float64(10 * (i + 1)), Actor: "admin"})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if e.ID <= lastID {
			t.Fatalf("expected id > %d, got %d", lastID, e.ID)
		}
		lastID = e.ID
	}
}

func TestExpenseService_Create_RecordsActivity(t *testing.T) {
	rec := &stubRecorder{}
	svc := NewExpenseService(newStubExpenseRepo(), rec, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.ExpenseInput{Description: "Cake", Value: 50, Actor: "admin"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if len(rec.entries) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(rec.entries))
	}
	if rec.entries[0].Action != domain.ActionExpenseCreated || rec.entries[0].Actor != "admin" {
		t.Fatalf("unexpected entry: %+v", rec.entries[0])
	}
}

func TestExpenseService_Update_NotFound(t *testing.T) {
	svc := NewExpenseService(newStubExpenseRepo(), &stubRecorder{}, zerolog.Nop())

	_, err := svc.Update(context.Background(), 42, ports.ExpenseInput{Description: "Cake", Value: 75})
	if !errors.Is(err, domain.ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound, got %v", err)
	}
}

func TestExpenseService_Update_ReplacesFields(t *testing.T) {
	svc := NewExpenseService(newStubExpenseRepo(), &stubRecorder{}, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.ExpenseInput{Description: "Cake", Value: 50})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.ExpenseInput{Description: "Cake", Value: 75})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Value != 75 {
		t.Fatalf("expected value 75, got %v", updated.Value)
	}
}

func TestExpenseService_Delete_Twice(t *testing.T) {
	svc := NewExpenseService(newStubExpenseRepo(), &stubRecorder{}, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.ExpenseInput{Description: "Cake", Value: 50})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, "admin"); err != nil {
		t.Fatalf("first Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID, "admin"); !errors.Is(err, domain.ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound on second delete, got %v", err)
	}
}

func TestExpenseService_Get_NotFound(t *testing.T) {
	svc := NewExpenseService(newStubExpenseRepo(), &stubRecorder{}, zerolog.Nop())

	if _, err := svc.Get(context.Background(), 7); !errors.Is(err, domain.ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound, got %v", err)
	}
}
