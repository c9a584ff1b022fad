package domain

import "time"

// Activity actions emitted by the services.
const (
	ActionExpenseCreated = "expense_created"
	ActionExpenseUpdated = "expense_updated"
	ActionExpenseDeleted = "expense_deleted"
	ActionInviteReceived = "invite_received"
	ActionLogin          = "login"
)

// ActivityEntry is one row of the audit feed shown to admins.
type ActivityEntry struct {
	ID        int64     `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
