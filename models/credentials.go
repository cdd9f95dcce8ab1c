package models

import "github.com/rs/zerolog"

// Credentials is the transient username/password pair submitted at login.
// It is request-scoped and must never be persisted or logged as a whole.
type Credentials struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=72"`
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler]; only the
// username is emitted.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", c.Username)
}

// RegistrationRequest is the body of POST /auth/register.
type RegistrationRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
	FullName string `json:"fullName" validate:"max=255"`
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler]; the
// password is never emitted.
func (r RegistrationRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", r.Username).
		Str("email", r.Email).
		Str("fullName", r.FullName)
}

// Echo returns the submission without the password, suitable for the
// registration response body.
func (r RegistrationRequest) Echo() RegistrationEcho {
	return RegistrationEcho{
		Username: r.Username,
		Email:    r.Email,
		FullName: r.FullName,
	}
}

// RegistrationEcho is the password-free copy of a registration submission.
type RegistrationEcho struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}
