package models

import "time"

// WorkEntry is a single tracked unit of work owned by exactly one user.
// Ownership is fixed at creation time and never changes.
type WorkEntry struct {
	// ID is the internal unique identifier of the entry.
	ID int64 `json:"id"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"user_id"`

	// Date is the calendar day the work was performed on.
	Date Date `json:"date"`

	// Hours is the amount of time worked. Always strictly positive.
	Hours float64 `json:"hours"`

	// Description is a free-text note about the work. Never empty.
	Description string `json:"description"`

	// Completed marks the entry as finished. Only completed entries are
	// counted by the statistics aggregates.
	Completed bool `json:"completed"`

	// CreatedAt is the timestamp when the entry was persisted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last successful mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the WorkEntry model.
func (e WorkEntry) TableName() string {
	return "work_entries"
}

// EntryUpdate describes a partial update of a work entry. Nil fields are
// left untouched.
type EntryUpdate struct {
	ID     int64
	UserID int64

	Date        *Date
	Hours       *float64
	Description *string
	Completed   *bool
}

// EntryFilter narrows a work-entry listing. UserID is always mandatory;
// the date bounds are inclusive and each is independently optional.
type EntryFilter struct {
	UserID    int64
	StartDate *Date
	EndDate   *Date

	Limit  uint64
	Offset uint64
}
