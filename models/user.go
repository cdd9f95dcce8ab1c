package models

import (
	"time"

	"github.com/rs/zerolog"
)

// User represents an account entity owned by the user store.
// The authentication core only reads Username and PasswordHash and writes
// PasswordHash once, at registration.
type User struct {
	// UserID is the numeric identifier assigned by the store. Immutable.
	UserID int64 `json:"id"`

	// Username is the unique login name. Immutable after creation.
	Username string `json:"username"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	// PasswordHash is the opaque output of the password hasher.
	// It is never serialized to JSON and never logged.
	PasswordHash string `json:"-"`

	// CreatedAt is the moment the account was persisted.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler] so that a
// User can be attached to log events without exposing PasswordHash.
func (u User) MarshalZerologObject(e *zerolog.Event) {
	e.Int64("id", u.UserID).
		Str("username", u.Username).
		Str("email", u.Email)
}
