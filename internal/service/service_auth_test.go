// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-work-tracker/internal/logger"
	"github.com/MKhiriev/go-work-tracker/internal/store"
	"github.com/MKhiriev/go-work-tracker/internal/utils"
	"github.com/MKhiriev/go-work-tracker/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func newTestAuthService(repo *mockUserRepository) *authService {
	return &authService{
		userRepository: repo,
		tokenSignKey:   "test-sign-key",
		tokenIssuer:    "work-tracker-test",
		tokenDuration:  time.Hour,
		logger:         logger.Nop(),
	}
}

func TestRegisterUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Email:    "john@example.com",
		Password: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "john@example.com", registered.Email)

	// the stored hash must verify against the plaintext and never equal it
	assert.NotEqual(t, "longenough", registered.PasswordHash)
	assert.True(t, utils.CheckPassword(registered.PasswordHash, "longenough"))
}

func TestRegisterUser_InvalidEmail(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []string{"", "plainaddress", "missing@tld", "@no-local.com", "spaces in@mail.com"}
	for _, email := range tests {
		_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
			Email:    email,
			Password: "longenough",
		})
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
}

func TestRegisterUser_PasswordTooShort(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Email:    "john@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Email:    "john@example.com",
		Password: "longenough",
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("longenough")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "john@example.com",
		Password: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestLogin_EmptyData(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	noUserRepo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	wrongPassRepo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: hash}, nil
		},
	}

	_, errNoUser := newTestAuthService(noUserRepo).Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, errWrongPass := newTestAuthService(wrongPassRepo).Login(context.Background(), models.LoginRequest{
		Email:    "john@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errNoUser.Error(), errWrongPass.Error())
}

func TestLogin_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errors.New("db is down")
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "john@example.com",
		Password: "longenough",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfile_Success(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Email: "john@example.com"}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Profile(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestCreateToken_And_ParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_WrongSignKey(t *testing.T) {
	issuing := newTestAuthService(&mockUserRepository{})
	verifying := newTestAuthService(&mockUserRepository{})
	verifying.tokenSignKey = "different-key"

	token, err := issuing.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = verifying.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	svc.tokenDuration = -time.Minute

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
