package handler

// createExpenseRequest is the body of POST /api/expenses.
type createExpenseRequest struct {
	Description string  `json:"description" validate:"required"`
	Value       float64 `json:"value"       validate:"gte=0"`
}

// updateExpenseRequest is the body of PUT /api/expenses/{id}. Clients send the
// full expense back; the path parameter is authoritative for the id.
type updateExpenseRequest struct {
	ID          int64   `json:"id"`
	Description string  `json:"description" validate:"required"`
	Value       float64 `json:"value"       validate:"gte=0"`
}

// messageResponse is the {message} envelope returned by DELETE.
type messageResponse struct {
	Message string `json:"message"`
}
