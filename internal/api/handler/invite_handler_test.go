package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
)

type fakeInviteService struct {
	saved []domain.Invite
	err   error
}

func (s *fakeInviteService) Save(_ context.Context, in ports.InviteInput) (*domain.Invite, error) {
	if s.err != nil {
		return nil, s.err
	}
	invite := domain.Invite{
		ID:        int64(len(s.saved) + 1),
		MainGuest: domain.Guest{FullName: in.MainGuest.FullName, Age: in.MainGuest.Age},
		CreatedAt: time.Now().UTC(),
	}
	for _, g := range in.OtherGuests {
		invite.OtherGuests = append(invite.OtherGuests, domain.Guest{FullName: g.FullName, Age: g.Age})
	}
	s.saved = append(s.saved, invite)
	return &invite, nil
}

func (s *fakeInviteService) List(_ context.Context) ([]domain.Invite, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Invite, 0, len(s.saved))
	for i := len(s.saved) - 1; i >= 0; i-- {
		out = append(out, s.saved[i])
	}
	return out, nil
}

func TestInviteHandler_Save(t *testing.T) {
	svc := &fakeInviteService{}
	h := NewInviteHandler(svc)

	body := `{"mainGuest":{"fullName":"Maria Silva","age":"32"},"otherGuests":[{"fullName":"João Silva","age":"35"},{"fullName":"Pedro Silva","age":"3 meses"}]}`
	c, rec := newExpenseContext(t, http.MethodPost, "/api/invite", body)
	if err := h.Save(c); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp inviteEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatalf("expected success envelope, got %s", rec.Body.String())
	}
	if resp.Data.MainGuest.FullName != "Maria Silva" {
		t.Fatalf("unexpected main guest: %+v", resp.Data.MainGuest)
	}
	if len(resp.Data.OtherGuests) != 2 || resp.Data.OtherGuests[1].Age != "3 meses" {
		t.Fatalf("guest order lost: %+v", resp.Data.OtherGuests)
	}
}

func TestInviteHandler_Save_ServiceError(t *testing.T) {
	h := NewInviteHandler(&fakeInviteService{err: errors.New("connection refused")})

	c, rec := newExpenseContext(t, http.MethodPost, "/api/invite", `{"mainGuest":{"fullName":"Maria","age":"32"}}`)
	if err := h.Save(c); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp inviteEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Success || resp.Error != "Server error" {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
}

func TestInviteHandler_List(t *testing.T) {
	svc := &fakeInviteService{}
	_, _ = svc.Save(context.Background(), ports.InviteInput{MainGuest: ports.GuestInput{FullName: "first", Age: "30"}})
	_, _ = svc.Save(context.Background(), ports.InviteInput{MainGuest: ports.GuestInput{FullName: "second", Age: "28"}})
	h := NewInviteHandler(svc)

	c, rec := newExpenseContext(t, http.MethodGet, "/api/invites", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp inviteListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || len(resp.Data) != 2 {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
	if resp.Data[0].MainGuest.FullName != "second" {
		t.Fatalf("expected newest first, got %s", resp.Data[0].MainGuest.FullName)
	}
}
