package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an issued JWT.
//
// The compact form (header.payload.signature) is what leaves the process;
// the remaining fields are server-side conveniences.
type Token struct {
	// Token is the underlying JWT object used for signing.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS serialization of the token.
	SignedString string `json:"-"`

	// Subject is the username the token was issued for.
	Subject string `json:"-"`

	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenInvalidReason explains why a presented token was not accepted.
// Reasons are for server-side logs only; clients always observe
// "unauthenticated".
type TokenInvalidReason string

const (
	ReasonNone              TokenInvalidReason = ""
	ReasonEmpty             TokenInvalidReason = "empty"
	ReasonMalformed         TokenInvalidReason = "malformed"
	ReasonExpired           TokenInvalidReason = "expired"
	ReasonUnsupported       TokenInvalidReason = "unsupported"
	ReasonSignatureMismatch TokenInvalidReason = "signature_mismatch"
	ReasonInvalidClaims     TokenInvalidReason = "invalid_claims"
	ReasonUnknownSubject    TokenInvalidReason = "unknown_subject"
	ReasonLookupFailed      TokenInvalidReason = "lookup_failed"
)

// TokenValidation is the tagged result of validating a token string:
// either Valid with a Subject, or invalid with a Reason.
type TokenValidation struct {
	Valid   bool
	Subject string
	Reason  TokenInvalidReason
}

// ValidToken returns a successful validation for subject.
func ValidToken(subject string) TokenValidation {
	return TokenValidation{Valid: true, Subject: subject}
}

// InvalidToken returns a failed validation tagged with reason.
func InvalidToken(reason TokenInvalidReason) TokenValidation {
	return TokenValidation{Reason: reason}
}
