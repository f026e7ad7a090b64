package store

import (
	"context"

	"github.com/MKhiriev/go-work-tracker/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// EntryRepository persists work entries. Every read and write is scoped by
// the owning user's identity; there is no way to reach another user's rows
// through this interface.
type EntryRepository interface {
	CreateEntry(ctx context.Context, entry models.WorkEntry) (models.WorkEntry, error)
	GetEntry(ctx context.Context, userID, entryID int64) (models.WorkEntry, error)
	UpdateEntry(ctx context.Context, update models.EntryUpdate) (models.WorkEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID int64) error

	ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.WorkEntry, error)
	CountEntries(ctx context.Context, filter models.EntryFilter) (int64, error)

	// SumCompletedHours returns the sum of hours over completed entries
	// owned by userID with date in [from, to] inclusive. Zero when empty.
	SumCompletedHours(ctx context.Context, userID int64, from, to models.Date) (float64, error)

	// CountCompletedEntries returns the row count over the same window and
	// completion filter.
	CountCompletedEntries(ctx context.Context, userID int64, from, to models.Date) (int64, error)
}
