package service

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and checks stateless HS256 session tokens.
type TokenService interface {
	// Issue signs a token for identity: sub is the username, exp is the
	// issuance instant plus the configured lifetime.
	Issue(ctx context.Context, identity models.Identity) (models.Token, error)
	// Validate never fails on attacker input; the outcome is a tagged value.
	Validate(ctx context.Context, tokenString string) models.TokenValidation
	// ExtractSubject reads the subject of an already validated token
	// without verifying it again.
	ExtractSubject(ctx context.Context, tokenString string) (string, error)
}

// AuthService owns registration, credential verification and token
// resolution.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegistrationRequest) (models.User, error)
	// Authenticate returns [ErrInvalidCredentials] for both unknown
	// usernames and wrong passwords.
	Authenticate(ctx context.Context, credentials models.Credentials) (models.Identity, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	// ResolveToken validates tokenString and loads the identity of its
	// subject. The validation result carries the rejection reason when the
	// identity could not be resolved.
	ResolveToken(ctx context.Context, tokenString string) (models.Identity, models.TokenValidation)
}

// UserService exposes read access to user accounts.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

// HealthService reports readiness of the service's dependencies.
type HealthService interface {
	Check(ctx context.Context) error
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
