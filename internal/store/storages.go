package store

import "github.com/MKhiriev/go-work-tracker/internal/logger"

// Storages bundles all repositories behind a single injectable handle.
type Storages struct {
	UserRepository  UserRepository
	EntryRepository EntryRepository
}

// NewStorages wires every repository to the shared database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		EntryRepository: NewEntryRepository(db, logger),
	}
}
