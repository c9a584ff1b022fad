package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
)

type stubActivityRepo struct {
	inserted  []*domain.ActivityEntry
	lastLimit int
}

func (r *stubActivityRepo) Insert(_ context.Context, entry *domain.ActivityEntry) error {
	r.inserted = append(r.inserted, entry)
	return nil
}

func (r *stubActivityRepo) ListRecent(_ context.Context, limit int) ([]domain.ActivityEntry, error) {
	r.lastLimit = limit
	return nil, nil
}

func TestActivityService_Record(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	ts := time.Now().UTC()
	err := svc.Record(context.Background(), ports.ActivityInput{
		Actor:     "admin",
		Action:    domain.ActionExpenseCreated,
		Detail:    "Cake (50.00)",
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}
	got := repo.inserted[0]
	if got.Actor != "admin" || got.Action != domain.ActionExpenseCreated || !got.CreatedAt.Equal(ts) {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestActivityService_ListRecent_ClampsLimit(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	cases := []struct {
		in   int
		want int
	}{
		{0, defaultFeedLimit},
		{-5, defaultFeedLimit},
		{1000, defaultFeedLimit},
		{25, 25},
	}
	for _, tc := range cases {
		if _, err := svc.ListRecent(context.Background(), tc.in); err != nil {
			t.Fatalf("ListRecent(%d) returned error: %v", tc.in, err)
		}
		if repo.lastLimit != tc.want {
			t.Fatalf("ListRecent(%d): expected limit %d, got %d", tc.in, tc.want, repo.lastLimit)
		}
	}
}
