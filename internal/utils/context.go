// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for carrying the authenticated identity in a context,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// identityCtxKey stores the [models.Identity] resolved by the request gate.
	identityCtxKey = contextKey("identity")
	// authRejectionCtxKey stores the reason a presented token was refused.
	authRejectionCtxKey = contextKey("authRejection")
)

// WithIdentity returns a copy of ctx carrying identity.
// The identity lives exactly as long as the derived context.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, identity)
}

// IdentityFromContext retrieves the authenticated identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true : the request was authenticated
//   - ok == false: the request is anonymous
//
// Example usage:
//
//	identity, ok := utils.IdentityFromContext(r.Context())
//	if !ok {
//	    // anonymous caller
//	}
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey).(models.Identity)
	return identity, ok
}

// WithAuthRejection returns a copy of ctx recording that a credential was
// presented and refused for reason.
func WithAuthRejection(ctx context.Context, reason models.TokenInvalidReason) context.Context {
	return context.WithValue(ctx, authRejectionCtxKey, reason)
}

// AuthRejectionFromContext returns the recorded rejection reason, if any.
func AuthRejectionFromContext(ctx context.Context) (models.TokenInvalidReason, bool) {
	reason, ok := ctx.Value(authRejectionCtxKey).(models.TokenInvalidReason)
	return reason, ok
}
