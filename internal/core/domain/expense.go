package domain

import "errors"

var ErrExpenseNotFound = errors.New("expense not found")

// Expense is a single shared cost tracked for the event. Identifiers are
// assigned by the store; the value is always normalized to a float on read
// even when the store hands it back as text.
type Expense struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}
