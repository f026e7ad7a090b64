package models

import "time"

// User represents an account entity used for authentication and authorization.
// Credential material must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique account identifier used during authentication.
	// Compared case-sensitively.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never serialized and never logged.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
