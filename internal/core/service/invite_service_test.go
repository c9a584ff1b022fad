package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
)

type stubInviteRepo struct {
	saved  []*domain.Invite
	nextID int64
	err    error
}

func (r *stubInviteRepo) Save(_ context.Context, invite *domain.Invite) (*domain.Invite, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	stored := &domain.Invite{
		ID:          r.nextID,
		MainGuest:   invite.MainGuest,
		OtherGuests: append([]domain.Guest(nil), invite.OtherGuests...),
		CreatedAt:   time.Now().UTC(),
	}
	r.saved = append(r.saved, stored)
	return stored, nil
}

func (r *stubInviteRepo) List(_ context.Context) ([]domain.Invite, error) {
	out := make([]domain.Invite, 0, len(r.saved))
	for i := len(r.saved) - 1; i >= 0; i-- {
		out = append(out, *r.saved[i])
	}
	return out, nil
}

func TestInviteService_Save_PreservesGuestOrder(t *testing.T) {
	repo := &stubInviteRepo{}
	svc := NewInviteService(repo, &stubRecorder{}, zerolog.Nop())

	in := ports.InviteInput{
		MainGuest: ports.GuestInput{FullName: "Maria Silva", Age: "32"},
		OtherGuests: []ports.GuestInput{
			{FullName: "João Silva", Age: "35"},
			{FullName: "Ana Silva", Age: "5"},
			{FullName: "Pedro Silva", Age: "3 meses"},
		},
	}

	saved, err := svc.Save(context.Background(), in)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if saved.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatalf("expected assigned timestamp")
	}
	if len(saved.OtherGuests) != 3 {
		t.Fatalf("expected 3 other guests, got %d", len(saved.OtherGuests))
	}
	for i, want := range in.OtherGuests {
		got := saved.OtherGuests[i]
		if got.FullName != want.FullName || got.Age != want.Age {
			t.Fatalf("guest %d mismatch: got %+v want %+v", i, got, want)
		}
	}
}

func TestInviteService_Save_RepoError(t *testing.T) {
	repo := &stubInviteRepo{err: errors.New("connection refused")}
	svc := NewInviteService(repo, &stubRecorder{}, zerolog.Nop())

	if _, err := svc.Save(context.Background(), ports.InviteInput{MainGuest: ports.GuestInput{FullName: "Maria"}}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestInviteService_Save_RecordsActivity(t *testing.T) {
	rec := &stubRecorder{}
	svc := NewInviteService(&stubInviteRepo{}, rec, zerolog.Nop())

	_, err := svc.Save(context.Background(), ports.InviteInput{
		MainGuest:   ports.GuestInput{FullName: "Maria Silva", Age: "32"},
		OtherGuests: []ports.GuestInput{{FullName: "João Silva", Age: "35"}},
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if len(rec.entries) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(rec.entries))
	}
	if rec.entries[0].Action != domain.ActionInviteReceived {
		t.Fatalf("unexpected action: %s", rec.entries[0].Action)
	}
}

func TestInviteService_List_NewestFirst(t *testing.T) {
	repo := &stubInviteRepo{}
	svc := NewInviteService(repo, &stubRecorder{}, zerolog.Nop())

	for _, name := range []string{"first", "second"} {
		if _, err := svc.Save(context.Background(), ports.InviteInput{MainGuest: ports.GuestInput{FullName: name, Age: "30"}}); err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
	}

	invites, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(invites) != 2 {
		t.Fatalf("expected 2 invites, got %d", len(invites))
	}
	if invites[0].MainGuest.FullName != "second" {
		t.Fatalf("expected newest first, got %s", invites[0].MainGuest.FullName)
	}
}
