// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the work-tracker server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-work-tracker/models"
)

// ServerAdapter defines transport-agnostic communication with the
// work-tracker server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the given credentials. On success it
	// stores the returned bearer token via SetToken and returns the created
	// user record.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates with the given credentials. On success it stores the
	// returned bearer token via SetToken and returns the user record.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Profile fetches the account record of the authenticated user.
	Profile(ctx context.Context) (models.User, error)

	// CreateEntry creates a new work entry owned by the authenticated user.
	CreateEntry(ctx context.Context, req models.CreateEntryRequest) (models.WorkEntry, error)

	// GetEntry fetches a single work entry by id. Returns [ErrNotFound]
	// (wrapped) when the entry does not exist or belongs to another user.
	GetEntry(ctx context.Context, entryID int64) (models.WorkEntry, error)

	// UpdateEntry applies a partial update to the work entry with the given id
	// and returns the updated record.
	UpdateEntry(ctx context.Context, entryID int64, req models.UpdateEntryRequest) (models.WorkEntry, error)

	// DeleteEntry permanently removes the work entry with the given id.
	DeleteEntry(ctx context.Context, entryID int64) error

	// ListEntries fetches one page of the authenticated user's entries.
	// Zero-valued query fields are omitted from the request so that the
	// server-side defaults apply.
	ListEntries(ctx context.Context, query models.ListQuery) (models.ListEntriesResponse, error)

	// Statistics fetches the completed-entry aggregates of the authenticated
	// user.
	Statistics(ctx context.Context) (models.Statistics, error)
}
