package service

import (
	"context"

	"github.com/MKhiriev/go-work-tracker/models"
)

// AuthService covers registration, credential verification, and the JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	Profile(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EntryService covers all work-entry operations. Every method takes the
// authenticated user's id as the mandatory owner filter; ownership is never
// inferred from the payload.
type EntryService interface {
	Create(ctx context.Context, userID int64, req models.CreateEntryRequest) (models.WorkEntry, error)
	Get(ctx context.Context, userID, entryID int64) (models.WorkEntry, error)
	Update(ctx context.Context, userID, entryID int64, req models.UpdateEntryRequest) (models.WorkEntry, error)
	Delete(ctx context.Context, userID, entryID int64) error
	List(ctx context.Context, userID int64, query models.ListQuery) (models.EntryPage, error)
	Statistics(ctx context.Context, userID int64) (models.Statistics, error)
}
