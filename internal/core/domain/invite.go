package domain

import "time"

// Guest identifies one attendee on an invite. Age is free-form text because
// guests answer however they like ("3 meses", "30+").
type Guest struct {
	FullName string `json:"fullName"`
	Age      string `json:"age"`
}

// Invite is an RSVP submission: the person filling the form plus the guests
// they bring along. Invites are written once and never updated; otherGuests
// ordering is preserved exactly as submitted.
type Invite struct {
	ID          int64     `json:"id"`
	MainGuest   Guest     `json:"mainGuest"`
	OtherGuests []Guest   `json:"otherGuests"`
	CreatedAt   time.Time `json:"createdAt"`
}
