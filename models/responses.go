package models

// AuthResponse is returned by the register and login endpoints. The issued
// bearer token travels both in the body and in the Authorization header.
type AuthResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// ProfileResponse is returned by GET /auth/profile.
type ProfileResponse struct {
	User User `json:"user"`
}

// EntryResponse wraps a single work entry.
type EntryResponse struct {
	Message   string    `json:"message,omitempty"`
	WorkEntry WorkEntry `json:"work_entry"`
}

// Pagination describes the window of a listing over the full filtered set.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// ListEntriesResponse is returned by GET /entries/.
type ListEntriesResponse struct {
	WorkEntries []WorkEntry `json:"work_entries"`
	Pagination  Pagination  `json:"pagination"`
}

// EntryPage is the service-level result of a listing operation.
type EntryPage struct {
	Entries    []WorkEntry
	Pagination Pagination
}

// Statistics holds the derived aggregates over a user's completed entries.
type Statistics struct {
	// TodayHours is the sum of hours for completed entries dated today.
	TodayHours float64 `json:"today_hours"`

	// LastWeekHours is the sum of hours for completed entries within the
	// trailing seven days (inclusive bounds).
	LastWeekHours float64 `json:"last_week_hours"`

	// LastWeekTasks is the row count over the same window and filter.
	LastWeekTasks int64 `json:"last_week_tasks"`
}

// MessageResponse is a bare confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Error string `json:"error"`
}
