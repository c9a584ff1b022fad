package ports

import (
	"context"
	"time"

	"github.com/niverapp/event-system/internal/core/domain"
)

// ActivityInput is the DTO handed to the dispatcher when a service emits an
// audit entry.
type ActivityInput struct {
	Actor     string
	Action    string
	Detail    string
	Timestamp time.Time
}

// ActivityRecorder accepts entries for asynchronous persistence. The queue
// dispatcher implements it; services never block on the audit trail.
type ActivityRecorder interface {
	Enqueue(entry ActivityInput)
}

// ActivityRepository persists audit entries.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityEntry) error
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}

// ActivityService processes queued entries and serves the admin feed.
type ActivityService interface {
	Record(ctx context.Context, entry ActivityInput) error
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}
