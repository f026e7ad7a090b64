package models

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateEntryRequest is the body of POST /entries/. Date, Hours and
// Description are required; Completed defaults to false when omitted.
type CreateEntryRequest struct {
	Date        *string `json:"date"`
	Hours       *Hours  `json:"hours"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// UpdateEntryRequest is the body of PUT /entries/{id}. Every field is
// optional; only the fields present are validated and applied.
type UpdateEntryRequest struct {
	Date        *string `json:"date"`
	Hours       *Hours  `json:"hours"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// ListQuery carries the raw query parameters of GET /entries/ before
// validation. Page and PerPage stay strings so that non-numeric values can
// silently fall back to the defaults instead of erroring.
type ListQuery struct {
	StartDate string
	EndDate   string
	Page      string
	PerPage   string
}
